// Package logger builds configured slog loggers for the validation layer:
// JSON for production aggregation, text for machines, pretty (tint) for
// development terminals.
//
//	log := logger.New(
//	    logger.WithService("checkout"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	v := validate.New(validate.WithLogger(log))
package logger
