// Package logger builds *slog.Logger values with functional options and
// context-driven attributes.
//
// New picks a text or JSON handler, applies the level and static attributes,
// and wraps the handler in LogHandlerDecorator, which runs every registered
// ContextExtractor when a record is handled. This is how device facts stored
// in a context (see devicekit.LoggerExtractor) end up on each record without
// callers passing them explicitly.
//
// # Usage
//
//	log := logger.New(
//		logger.WithDevelopment("devicekit"),
//		logger.WithContextExtractors(devicekit.LoggerExtractor()),
//	)
//
//	ctx := devicekit.WithContext(context.Background(), kit)
//	log.InfoContext(ctx, "layout selected", slog.String("layout", "compact"))
//
// Attribute helpers in attr.go (Model, ModelID, OSVersion, Facts, Error, ...)
// keep key names consistent across packages.
package logger
