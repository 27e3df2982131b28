package useragent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/devicekit"
	"github.com/dmitrymomot/devicekit/pkg/hardware"
	"github.com/dmitrymomot/devicekit/pkg/version"
)

// osName is the operating system token written into every User-Agent.
const osName = "iOS"

// unknownModelID replaces an empty hardware identifier.
const unknownModelID = "unknown"

// Client is the parsed form of an app User-Agent.
type Client struct {
	AppName    string
	AppVersion version.Version
	// ModelID is the raw hardware identifier, for example "iPhone7,2".
	ModelID   string
	Model     hardware.Model
	OSVersion version.Version
	Scale     float64
}

// String renders c in the format produced by Format.
func (c Client) String() string {
	return render(c.AppName, c.AppVersion, c.ModelID, c.OSVersion, c.Scale)
}

// IsIPhone returns true if the client runs on an iPhone.
func (c Client) IsIPhone() bool { return c.Model.IsIPhone() }

// IsIPad returns true if the client runs on an iPad of any size.
func (c Client) IsIPad() bool { return c.Model.IsIPad() }

// IsIPodTouch returns true if the client runs on an iPod touch.
func (c Client) IsIPodTouch() bool { return c.Model.IsIPodTouch() }

// Format builds the User-Agent of the app running on the device described by
// k, for example "Demo/1.4.2 (iPhone4,1; iOS 7.1.2; Scale/2.00)". The app
// name falls back to the bundle identifier.
func Format(k *devicekit.Kit) (string, error) {
	app, err := k.App()
	if err != nil {
		return "", err
	}
	sys, err := k.System()
	if err != nil {
		return "", err
	}

	name := app.Name
	if name == "" {
		name = app.BundleID
	}
	if name == "" {
		return "", ErrMissingAppName
	}

	modelID := k.Hardware().ModelID
	if modelID == "" {
		modelID = unknownModelID
	}
	return render(name, app.Version, modelID, sys.Version, k.Screen().Scale), nil
}

func render(name string, app version.Version, modelID string, os version.Version, scale float64) string {
	return fmt.Sprintf("%s/%s (%s; %s %s; Scale/%.2f)", name, app, modelID, osName, os, scale)
}

// The app name may contain spaces and slashes; the version is the last
// slash-separated token before the parenthesized device block.
var userAgentRe = regexp.MustCompile(`^(.+)/(\S+) \(([^;()]+); ` + osName + ` ([^;()]+); Scale/([0-9]+(?:\.[0-9]+)?)\)$`)

// Parse reads a User-Agent produced by Format. Version segments that fail to
// parse are reported as a wrapped *version.ParseError.
func Parse(s string) (Client, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Client{}, ErrEmptyUserAgent
	}

	m := userAgentRe.FindStringSubmatch(s)
	if m == nil {
		return Client{}, fmt.Errorf("%w: %q", ErrMalformedUserAgent, s)
	}

	appVersion, err := version.Parse(m[2])
	if err != nil {
		return Client{}, fmt.Errorf("app version: %w", err)
	}
	osVersion, err := version.Parse(m[4])
	if err != nil {
		return Client{}, fmt.Errorf("os version: %w", err)
	}
	scale, err := strconv.ParseFloat(m[5], 64)
	if err != nil {
		return Client{}, fmt.Errorf("%w: scale %q", ErrMalformedUserAgent, m[5])
	}

	modelID := strings.TrimSpace(m[3])
	model, _ := hardware.Lookup(modelID)
	return Client{
		AppName:    m[1],
		AppVersion: appVersion,
		ModelID:    modelID,
		Model:      model,
		OSVersion:  osVersion,
		Scale:      scale,
	}, nil
}
