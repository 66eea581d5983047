package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, dev := range []bool{false, true} {
		log := New("warn", dev)
		if log == nil {
			t.Fatal("New returned nil")
		}
		if log.Core().Enabled(zapcore.InfoLevel) {
			t.Errorf("development=%v: info enabled at warn level", dev)
		}
		if !log.Core().Enabled(zapcore.ErrorLevel) {
			t.Errorf("development=%v: error disabled at warn level", dev)
		}
		Sync(log)
	}
	Sync(nil)
}
