package devicekit

import (
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/hardware"
	"github.com/dmitrymomot/devicekit/pkg/logger"
)

// Option configures a Kit.
type Option func(*Kit)

// WithLogger sets the logger used to report how facts were resolved.
// Records are tagged with component=devicekit. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kit) {
		if l != nil {
			k.log = l.With(logger.Component("devicekit"))
		}
	}
}

// WithClassifier replaces the default hardware classifier, typically one
// extended with hardware.WithIdentifiers. Nil classifiers are ignored.
func WithClassifier(c *hardware.Classifier) Option {
	return func(k *Kit) {
		if c != nil {
			k.classifier = c
		}
	}
}
