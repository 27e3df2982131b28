package useragent

import "errors"

var (
	// ErrEmptyUserAgent indicates a blank User-Agent.
	ErrEmptyUserAgent = errors.New("empty user agent string")

	// ErrMalformedUserAgent indicates a User-Agent not produced by Format.
	ErrMalformedUserAgent = errors.New("malformed user agent string")

	// ErrMissingAppName indicates an app without a name or bundle identifier.
	ErrMissingAppName = errors.New("app has neither a name nor a bundle identifier")
)
