// Package config holds the startup configuration for uisp-zabbix-sync. A
// single Config is assembled once at process start (defaults, then an optional
// YAML file, then .env/environment variables) and passed explicitly into the
// commands.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables recognised by Load. The UNMS_/ZABBIX_ names match the
// original deployment's .env files.
const (
	EnvUISPServer   = "UNMS_SERVER"
	EnvUISPAPIKey   = "UNMS_API_KEY"
	EnvZabbixServer = "ZABBIX_SERVER"
	EnvZabbixAPIKey = "ZABBIX_API_KEY"
	EnvLogLevel     = "UZS_LOG_LEVEL"
	EnvLogFile      = "UZS_LOG_FILE"
)

type UISP struct {
	URL           string   `yaml:"url"`
	Token         string   `yaml:"token"`
	Timeout       Duration `yaml:"timeout"`
	TLSSkipVerify bool     `yaml:"tls_skip_verify"`
}

type Zabbix struct {
	URL     string   `yaml:"url"`
	Token   string   `yaml:"token"`
	Timeout Duration `yaml:"timeout"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Google struct {
	Credentials string `yaml:"credentials"`
}

type Config struct {
	UISP   UISP   `yaml:"uisp"`
	Zabbix Zabbix `yaml:"zabbix"`
	Log    Log    `yaml:"log"`
	Google Google `yaml:"google"`
}

// NewConfig returns a Config initialised with the built-in defaults.
func NewConfig() *Config {
	return &Config{
		UISP: UISP{
			Timeout:       Duration(30 * time.Second),
			TLSSkipVerify: true,
		},
		Zabbix: Zabbix{
			Timeout: Duration(30 * time.Second),
		},
		Log: Log{
			Level: "info",
		},
		Google: Google{
			Credentials: "credentials.json",
		},
	}
}

// Load overlays the Config with an optional YAML file, an optional .env file
// and the process environment, in that order. An empty file argument skips
// the YAML stage; a missing .env file is not an error.
func (c *Config) Load(file string, envfile string) error {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading configuration file %s: %w", file, err)
		}

		if err := yaml.Unmarshal(b, c); err != nil {
			return fmt.Errorf("parsing configuration file %s: %w", file, err)
		}
	}

	if envfile != "" {
		if err := godotenv.Load(envfile); err != nil {
			return fmt.Errorf("loading %s: %w", envfile, err)
		}
	} else {
		// default .env, if present
		godotenv.Load()
	}

	if v := os.Getenv(EnvUISPServer); v != "" {
		c.UISP.URL = v
	}

	if v := os.Getenv(EnvUISPAPIKey); v != "" {
		c.UISP.Token = v
	}

	if v := os.Getenv(EnvZabbixServer); v != "" {
		c.Zabbix.URL = v
	}

	if v := os.Getenv(EnvZabbixAPIKey); v != "" {
		c.Zabbix.Token = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}

	return nil
}
