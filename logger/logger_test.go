package logger

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
}

func TestNewDiscardsByDefault(t *testing.T) {
	clearEnv(t)
	log, closer, err := New(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	if log.Out != io.Discard {
		t.Errorf("expected io.Discard output, got %T", log.Out)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}
}

func TestNewWritesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "logs", "fps.log")
	log, closer, err := New(config.LogConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatal(err)
	}
	log.WithField("entity_id", "abc").Info("spawned")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[0] != '{' {
		t.Errorf("expected a JSON line, got %q", data)
	}
}

func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")
	log, _, err := New(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("LOG_LEVEL should override config, got %v", log.GetLevel())
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	clearEnv(t)
	tests := []config.LogConfig{
		{Level: "loud"},
		{Level: "info", Format: "xml"},
	}
	for _, cfg := range tests {
		if _, _, err := New(cfg); err == nil {
			t.Errorf("New(%+v) should fail", cfg)
		}
	}
}
