package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParse_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGO_URI", "MONGO_DATABASE", "MONGO_COLLECTION", "MONGO_CONNECT_TIMEOUT",
		"SQLITE_DB_PATH", "MULTIPART_MEMORY", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), ":3000")
	}
	if cfg.UseMongo() {
		t.Error("UseMongo() = true without MONGO_URI")
	}
	if cfg.MongoDatabase != "test" || cfg.MongoCollection != "images" {
		t.Errorf("mongo defaults = %q/%q", cfg.MongoDatabase, cfg.MongoCollection)
	}
	if cfg.SQLitePath != "./fotos.db" {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath)
	}
	if cfg.MultipartMemoryBytes() != 32<<20 {
		t.Errorf("MultipartMemoryBytes() = %d, want %d", cfg.MultipartMemoryBytes(), 32<<20)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "fotos")
	t.Setenv("MULTIPART_MEMORY", "1MB")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "2s")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), ":8080")
	}
	if !cfg.UseMongo() {
		t.Error("UseMongo() = false with MONGO_URI set")
	}
	if cfg.MongoDatabase != "fotos" {
		t.Errorf("MongoDatabase = %q, want %q", cfg.MongoDatabase, "fotos")
	}
	if cfg.MultipartMemoryBytes() != 1<<20 {
		t.Errorf("MultipartMemoryBytes() = %d, want %d", cfg.MultipartMemoryBytes(), 1<<20)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
	if cfg.MongoConnectTimeout != 2*time.Second {
		t.Errorf("MongoConnectTimeout = %v, want 2s", cfg.MongoConnectTimeout)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"bad size", "MULTIPART_MEMORY", "lots"},
		{"bad level", "LOG_LEVEL", "loud"},
		{"bad format", "LOG_FORMAT", "xml"},
		{"bad duration", "SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Parse(); err == nil {
				t.Errorf("Parse() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}
