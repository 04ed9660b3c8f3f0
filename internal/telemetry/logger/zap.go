package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLevel mirrors globalLevel for the zap backend.
var zapLevel = zap.NewAtomicLevel()

type zapLogger struct {
	sugar  *zap.SugaredLogger
	reveal bool
}

func newZapLogger(cfg Config, output io.Writer) *zapLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.MessageKey = "msg"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "text", "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	var opts []zap.Option
	if cfg.AddSource {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(output), zapLevel)
	return &zapLogger{
		sugar:  zap.New(core, opts...).Sugar(),
		reveal: cfg.Reveal,
	}
}

func (l *zapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, l.fields(args)...)
}

func (l *zapLogger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, l.fields(args)...)
}

func (l *zapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, l.fields(args)...)
}

func (l *zapLogger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, l.fields(args)...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{
		sugar:  l.sugar.With(l.fields(args)...),
		reveal: l.reveal,
	}
}

// WithContext is a no-op for zap; context values are added through L.
func (l *zapLogger) WithContext(context.Context) Logger {
	return l
}

// fields masks sensitive key-value pairs before they reach zap.
func (l *zapLogger) fields(args []any) []any {
	if l.reveal {
		return args
	}
	out := make([]any, len(args))
	copy(out, args)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}
		if s, ok := out[i+1].(string); ok {
			a := redactSensitive(slog.String(key, s))
			out[i+1] = a.Value.String()
		}
	}
	return out
}

func toZapLevel(l slog.Level) zapcore.Level {
	switch {
	case l <= slog.LevelDebug:
		return zapcore.DebugLevel
	case l <= slog.LevelInfo:
		return zapcore.InfoLevel
	case l <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
