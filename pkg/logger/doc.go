// Package logger builds the *slog.Logger instances used by the filename
// sanitizer and provides attribute helpers that keep log keys consistent.
//
// New applies functional options on top of quiet defaults (JSON output, INFO
// level, stdout):
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("uploads")),
//	)
//
// Nop returns a logger that discards every record. Library code defaults to it
// so nothing is written unless the caller opts in.
//
// Helpers such as Error and Pass return slog.Attr values. Error returns an
// empty attribute for a nil error, so it can be passed unconditionally:
//
//	log.Warn("escape failed", logger.Error(err))
package logger
