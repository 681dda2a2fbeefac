package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"codebreaker/internal/config"
)

func TestNewRespectsConfiguredLevel(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "warn", Format: "console"}, false)
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Sync()

	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info enabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn disabled at warn level")
	}
}

func TestNewVerboseForcesDebug(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "error", Format: "json"}, true)
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Sync()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug disabled despite verbose")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(config.LoggingConfig{Level: "loud", Format: "console"}, false); err == nil {
		t.Fatal("bad level accepted")
	}
}
