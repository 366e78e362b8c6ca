// Package config loads runtime settings shared by the web server and the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/spf13/viper"
)

const EnvPrefix = "DESTINY"

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ReportConfig struct {
	Formats   []string `mapstructure:"formats"`
	OutputDir string   `mapstructure:"output_dir"`
}

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

type DraftsConfig struct {
	// Path of the SQLite database; empty disables drafts.
	Path string `mapstructure:"path"`
}

type ArchiveConfig struct {
	// Bucket is the S3 bucket reports are copied to; empty disables the archive.
	Bucket   string `mapstructure:"bucket"`
	Region   string `mapstructure:"region"`
	Prefix   string `mapstructure:"prefix"`
	Endpoint string `mapstructure:"endpoint"`
}

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Report  ReportConfig  `mapstructure:"report"`
	Server  ServerConfig  `mapstructure:"server"`
	Drafts  DraftsConfig  `mapstructure:"drafts"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:5001/api")
	v.SetDefault("api.timeout", 60*time.Second)
	v.SetDefault("report.formats", []string{"pdf", "docx", "excel"})
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("drafts.path", "")
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.region", "")
	v.SetDefault("archive.prefix", "reports")
	v.SetDefault("archive.endpoint", "")
}

// Load reads settings from an optional YAML file and the environment.
// Environment variables use the DESTINY_ prefix with dots replaced by
// underscores (DESTINY_SERVER_PORT); DESTINY_API_URL is accepted for the
// report service url. An explicit path must exist; without one a
// destiny.yaml in the working directory is used when present.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("destiny")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.base_url", EnvPrefix+"_API_URL", EnvPrefix+"_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.ReportTypes(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReportTypes is the configured set of formats in preference order.
func (c *Config) ReportTypes() ([]domain.ReportType, error) {
	types := make([]domain.ReportType, 0, len(c.Report.Formats))
	for _, f := range c.Report.Formats {
		rt, err := domain.ParseReportType(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid report.formats: %w", err)
		}
		types = append(types, rt)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("invalid report.formats: at least one format is required")
	}
	return types, nil
}

// ApplyProfile overrides the report service endpoint with a named profile.
func (c *Config) ApplyProfile(p *Profile) {
	if p == nil {
		return
	}
	if p.BaseURL != "" {
		c.API.BaseURL = p.BaseURL
	}
	if p.Timeout > 0 {
		c.API.Timeout = p.Timeout
	}
}
