package internal

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("IC_SOURCE", "sqlite")
	t.Setenv("BATCH_WORKERS", "3")
	t.Setenv("HTTP_TIMEOUT", "2s")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.ICSource != ICSourceSQLite {
		t.Errorf("ICSource = %q, expected %q", config.ICSource, ICSourceSQLite)
	}
	if config.BatchWorkers != 3 {
		t.Errorf("BatchWorkers = %d, expected 3", config.BatchWorkers)
	}
	if config.HTTPTimeout != 2*time.Second {
		t.Errorf("HTTPTimeout = %v, expected 2s", config.HTTPTimeout)
	}
	if config.EchoAddr != ":8080" {
		t.Errorf("EchoAddr = %q, expected default :8080", config.EchoAddr)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "many")
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() expected an error for a non-numeric BATCH_WORKERS")
	}
}
