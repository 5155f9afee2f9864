// Package config loads service settings from an optional YAML file and
// REPORT_API_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. REPORT_API_SERVER_PORT.
const EnvPrefix = "REPORT_API"

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Report ReportConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	MaxUploadBytes  int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type ReportConfig struct {
	// TopIssues is how many issues the issues overview keeps.
	TopIssues int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.max_upload_bytes", 32<<20)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "INFO")
	v.SetDefault("report.top_issues", 15)
}

// Load reads configuration. configFile may be empty, in which case
// ./report-api.yaml is used when present.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is what most hosting platforms set.
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("report-api")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			MaxUploadBytes:  v.GetInt64("server.max_upload_bytes"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			IdleTimeout:     v.GetDuration("server.idle_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Log:    LogConfig{Level: strings.ToUpper(v.GetString("log.level"))},
		Report: ReportConfig{TopIssues: v.GetInt("report.top_issues")},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Server.MaxUploadBytes <= 0 {
		return ErrInvalidUploadLimit
	}
	for _, d := range []time.Duration{
		c.Server.ReadTimeout, c.Server.WriteTimeout, c.Server.IdleTimeout, c.Server.ShutdownTimeout,
	} {
		if d <= 0 {
			return ErrInvalidTimeout
		}
	}
	if c.Report.TopIssues < 0 {
		return ErrInvalidTopIssues
	}
	switch c.Log.Level {
	case "ERROR", "WARN", "INFO", "DEBUG":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// Addr is the listen address, host:port.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
