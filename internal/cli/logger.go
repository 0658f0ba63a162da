package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/crucible/config"
)

// NewLogger builds the command's logger from the log settings without
// touching the global default. The level is parsed by slog itself; an unknown
// level or format is an ExitError.
func NewLogger(s config.Settings, outW io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("%v: %v", config.ErrBadSetting, err)}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch s.LogFormat {
	case "json":
		return slog.New(slog.NewJSONHandler(outW, handlerOpts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(outW, handlerOpts)), nil
	default:
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("%v: log format %q", config.ErrBadSetting, s.LogFormat)}
	}
}
