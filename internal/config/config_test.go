package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8084 {
		t.Errorf("Port = %d, want 8084", cfg.Server.Port)
	}
	if cfg.Dataset.Source != "synthetic" {
		t.Errorf("Source = %q, want synthetic", cfg.Dataset.Source)
	}
	if cfg.Dataset.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Dataset.Seed)
	}
	if cfg.Dataset.Rows != 10000 {
		t.Errorf("Rows = %d, want 10000", cfg.Dataset.Rows)
	}
	if !cfg.Dataset.StartDate.Equal(time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", cfg.Dataset.StartDate)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.Format != "json" {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if !cfg.Security.EnableRateLimit {
		t.Error("rate limiting should be enabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATASET_SOURCE", "csv")
	t.Setenv("DATASET_CSV_FILE", "orders.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Dataset.Source != "csv" || cfg.Dataset.CSVFile != "orders.csv" {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Format != "text" {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"bad port", "SERVER_PORT", "70000", "server port"},
		{"bad source", "DATASET_SOURCE", "postgres", "dataset source"},
		{"bad log level", "LOG_LEVEL", "verbose", "log level"},
		{"bad log format", "LOG_FORMAT", "xml", "log format"},
		{"bad start date", "DATASET_START_DATE", "01/01/2014", "DATASET_START_DATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_InvertedDateRange(t *testing.T) {
	t.Setenv("DATASET_START_DATE", "2017-01-01")
	t.Setenv("DATASET_END_DATE", "2014-01-01")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject an inverted dataset date range")
	}
}

func TestConfig_Address(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "localhost", Port: 8084}}
	if got := cfg.Address(); got != "localhost:8084" {
		t.Errorf("Address() = %q, want localhost:8084", got)
	}
}
