package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testYAML = `
env:
  env: test
  serviceName: hub
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
    writeTimeout: 10s
mongo:
  uri: mongodb://localhost:27017
  database: hub
secretKey:
  session: test-secret
auth:
  bcryptCost: 4
  sessionTTL: 168h
`

func writeTestConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	t.Chdir(dir)
}

func TestLoadWithEnv_ParsesFile(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Errorf("HTTP.Port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.HTTP.Timeouts.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.HTTP.Timeouts.ReadTimeout)
	}
	if cfg.Mongo.Database != "hub" {
		t.Errorf("Mongo.Database = %q, want hub", cfg.Mongo.Database)
	}
	if cfg.Auth == nil || cfg.Auth.SessionTTL != 168*time.Hour {
		t.Errorf("Auth.SessionTTL = %v, want 168h", cfg.Auth)
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("MONGO_DATABASE", "hub_override")

	cfg, err := LoadWithEnv[Config]("test")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.Mongo.Database != "hub_override" {
		t.Errorf("Mongo.Database = %q, want hub_override", cfg.Mongo.Database)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("nonexistent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
