package logger

import (
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/hardware"
	"github.com/dmitrymomot/devicekit/pkg/version"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Facts records the name of an environment group, for example "system" or "screen".
func Facts(name string) slog.Attr {
	return slog.String("facts", name)
}

// Model records a hardware model by its slug under the key "model".
func Model(m hardware.Model) slog.Attr {
	return slog.String("model", m.Slug())
}

// ModelID records the raw hardware identifier under the key "model_id".
func ModelID(id string) slog.Attr {
	return slog.String("model_id", id)
}

// OSVersion records an OS version under the key "os_version".
func OSVersion(v version.Version) slog.Attr {
	return slog.String("os_version", v.String())
}

// Source records where environment facts were read from, for example
// "profile", "env" or "host".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}
