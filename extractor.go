package devicekit

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor that adds a "device"
// group (model, model_id and os_version when known) to records logged with a
// context carrying a Kit.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		k := FromContext(ctx)
		if k == nil {
			return slog.Attr{}, false
		}

		hw := k.Hardware()
		attrs := []slog.Attr{logger.Model(hw.Model), logger.ModelID(hw.ModelID)}
		if sys, err := k.System(); err == nil {
			attrs = append(attrs, logger.OSVersion(sys.Version))
		}
		return logger.Group("device", attrs...), true
	}
}
