// Package xlogger builds the process logger.
package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler and verbosity of the logger.
type Config struct {
	Level      string // debug, info, warn, error; defaults to info
	Format     string // json or text; defaults to text
	AddSource  bool   // annotate records with the call site
	SourcePath string // path prefix stripped from source file names
	Output     io.Writer
}

// New returns a slog.Logger configured per conf. A nil Output writes to
// stderr.
func New(conf Config) *slog.Logger {
	out := conf.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       parseLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	var handler slog.Handler
	switch strings.ToLower(conf.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// replaceAttr flattens the source attribute to "file:line", trimming
// conf.SourcePath so logs carry repo-relative paths instead of build-host
// absolute ones.
func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}
		source, ok := attr.Value.Any().(*slog.Source)
		if !ok || source == nil {
			return attr
		}

		file := source.File
		if conf.SourcePath != "" {
			if strings.HasPrefix(file, conf.SourcePath) {
				file = strings.TrimPrefix(file, conf.SourcePath)
			} else if index := strings.Index(file, conf.SourcePath); index > 0 {
				file = file[index+len(conf.SourcePath):]
			}
		}

		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", file, source.Line))
	}
}
