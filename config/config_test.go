package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.UISP.Timeout.Duration() != 30*time.Second {
		t.Errorf("default UISP timeout: expected 30s, got %v", cfg.UISP.Timeout)
	}

	if !cfg.UISP.TLSSkipVerify {
		t.Errorf("default UISP tls_skip_verify: expected true")
	}

	if cfg.Log.Level != "info" {
		t.Errorf("default log level: expected 'info', got %q", cfg.Log.Level)
	}
}

func TestLoadYAML(t *testing.T) {
	yml := `uisp:
  url: https://uisp.example.com
  token: uisp-secret
  timeout: 45s
  tls_skip_verify: false
zabbix:
  url: https://zabbix.example.com
  token: zabbix-secret
  timeout: 10
log:
  level: debug
  file: check.log
`

	file := filepath.Join(t.TempDir(), "uisp-zabbix-sync.yaml")
	if err := os.WriteFile(file, []byte(yml), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := NewConfig()
	if err := cfg.Load(file, ""); err != nil {
		t.Fatalf("Load: unexpected error (%v)", err)
	}

	if cfg.UISP.URL != "https://uisp.example.com" {
		t.Errorf("uisp.url: expected 'https://uisp.example.com', got %q", cfg.UISP.URL)
	}

	if cfg.UISP.Timeout.Duration() != 45*time.Second {
		t.Errorf("uisp.timeout: expected 45s, got %v", cfg.UISP.Timeout)
	}

	if cfg.UISP.TLSSkipVerify {
		t.Errorf("uisp.tls_skip_verify: expected false")
	}

	if cfg.Zabbix.Timeout.Duration() != 10*time.Second {
		t.Errorf("zabbix.timeout: expected 10s from bare integer, got %v", cfg.Zabbix.Timeout)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level: expected 'debug', got %q", cfg.Log.Level)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	yml := `zabbix:
  url: https://zabbix.internal
  token: from-file
`

	file := filepath.Join(t.TempDir(), "uisp-zabbix-sync.yaml")
	if err := os.WriteFile(file, []byte(yml), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv(EnvZabbixAPIKey, "from-env")
	t.Setenv(EnvLogLevel, "warning")

	cfg := NewConfig()
	if err := cfg.Load(file, ""); err != nil {
		t.Fatalf("Load: unexpected error (%v)", err)
	}

	if cfg.Zabbix.URL != "https://zabbix.internal" {
		t.Errorf("zabbix.url: expected file value, got %q", cfg.Zabbix.URL)
	}

	if cfg.Zabbix.Token != "from-env" {
		t.Errorf("zabbix.token: expected environment to win, got %q", cfg.Zabbix.Token)
	}

	if cfg.Log.Level != "warning" {
		t.Errorf("log.level: expected 'warning', got %q", cfg.Log.Level)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	env := "UNMS_SERVER=https://uisp.example.com\nUNMS_API_KEY=dotenv-secret\n"

	file := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(file, []byte(env), 0644); err != nil {
		t.Fatalf("writing .env file: %v", err)
	}

	// godotenv only sets variables absent from the environment; t.Setenv
	// registers the restore, then the variables are unset for the load
	t.Setenv(EnvUISPServer, "")
	t.Setenv(EnvUISPAPIKey, "")
	os.Unsetenv(EnvUISPServer)
	os.Unsetenv(EnvUISPAPIKey)

	cfg := NewConfig()
	if err := cfg.Load("", file); err != nil {
		t.Fatalf("Load: unexpected error (%v)", err)
	}

	if cfg.UISP.URL != "https://uisp.example.com" {
		t.Errorf("uisp.url: expected .env value, got %q", cfg.UISP.URL)
	}

	if cfg.UISP.Token != "dotenv-secret" {
		t.Errorf("uisp.token: expected .env value, got %q", cfg.UISP.Token)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := NewConfig()

	if err := cfg.Load(filepath.Join(t.TempDir(), "no-such.yaml"), ""); err == nil {
		t.Errorf("Load: expected error for missing configuration file, got nil")
	}
}
