package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("CMS_BACKEND")
	os.Unsetenv("MONGODB_URI")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.CMS.Backend != BackendLocal {
		t.Fatalf("default backend = %q, want %q", cfg.CMS.Backend, BackendLocal)
	}
	if cfg.CMS.LocalPath == "" {
		t.Fatalf("expected a default local db path")
	}
	if !cfg.CMS.Seed {
		t.Fatalf("seeding should default on for local development")
	}
}

func TestLoadConfigMongoRequiresURI(t *testing.T) {
	os.Setenv("CMS_BACKEND", "mongo")
	os.Unsetenv("MONGODB_URI")
	defer os.Unsetenv("CMS_BACKEND")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when CMS_BACKEND=mongo without MONGODB_URI")
	}

	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/leadcore_test")
	defer os.Unsetenv("MONGODB_URI")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.CMS.Backend != BackendMongo || cfg.MongoDB.URI == "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	os.Setenv("CMS_BACKEND", "cassette-tape")
	defer os.Unsetenv("CMS_BACKEND")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
