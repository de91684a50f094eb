package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevelMapping(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{"debug", LevelDebug, zapcore.DebugLevel},
		{"warn", LevelWarn, zapcore.WarnLevel},
		{"error", LevelError, zapcore.ErrorLevel},
		{"unknown falls back to info", "verbose", zapcore.InfoLevel},
		{"empty falls back to info", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &zapLogger{cfg: &ZapConfig{Level: tt.level}}
			assert.Equal(t, tt.want, l.level())
		})
	}
}

func TestContextLoggerOverridesBase(t *testing.T) {
	base := Init(ZapConfig{Level: LevelInfo, Mode: ModeDevelopment, Encoding: EncodingConsole})
	child := base.With("request_id", "abc")

	ctx := ToContext(context.Background(), child)

	zl := base.(*zapLogger)
	assert.Same(t, child.(*zapLogger).sugarLogger, zl.ctx(ctx))
	assert.Same(t, zl.sugarLogger, zl.ctx(context.Background()))
}

func TestNopDoesNotPanic(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Infof(context.Background(), "hello %s", "world")
		l.With("k", "v").Warn(context.Background(), "warn")
	})
}
