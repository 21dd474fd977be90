// Package logging builds the leveled console logger used by the command
// line.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the verbosity selected on the command line.
type Level int

const (
	// SilentLevel disables log output.
	SilentLevel Level = iota
	// InfoLevel shows progress and the proposed message.
	InfoLevel
	// DebugLevel also shows request details.
	DebugLevel
)

// LevelIds maps levels to their flag values.
var LevelIds = map[Level][]string{
	SilentLevel: {"silent", "quiet"},
	InfoLevel:   {"info"},
	DebugLevel:  {"debug"},
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a logger writing human readable lines to w.
func New(level Level, w io.Writer) *zap.SugaredLogger {
	if level == SilentLevel {
		return zap.NewNop().Sugar()
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder(w),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		level.zapLevel(),
	)

	return zap.New(core).Sugar()
}

// levelEncoder colors levels only when w is a terminal.
func levelEncoder(w io.Writer) zapcore.LevelEncoder {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return zapcore.CapitalColorLevelEncoder
	}
	return zapcore.CapitalLevelEncoder
}
