package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLoggerConfigLevel(t *testing.T) {
	if got := NewLoggerConfig(false).Level.Level(); got != zap.InfoLevel {
		t.Fatalf("unexpected level: %v", got)
	}
	if got := NewLoggerConfig(true).Level.Level(); got != zap.DebugLevel {
		t.Fatalf("unexpected level: %v", got)
	}
	cfg := NewLoggerConfig(true)
	if len(cfg.OutputPaths) != 1 || cfg.OutputPaths[0] != "stderr" {
		t.Fatalf("logs must stay off stdout: %v", cfg.OutputPaths)
	}
}

func TestNew(t *testing.T) {
	logger, err := New("toyrobot", true)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !logger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Fatalf("verbose logger must enable debug")
	}
	Nop().Infow("discarded", "k", "v")
}
