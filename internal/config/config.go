package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const defaultAPIBase = "https://api.notion.com"

// Config represents the full application configuration loaded from file/env.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Notion NotionConfig `mapstructure:"notion"`
}

// ServerConfig holds server-specific options.
type ServerConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// NotionConfig encapsulates the Notion integration settings.
type NotionConfig struct {
	Token                  string `mapstructure:"token"`
	APIBase                string `mapstructure:"api_base"`
	Version                string `mapstructure:"version"`
	PostsDataSource        string `mapstructure:"posts_data_source"`
	ReadingNotesDataSource string `mapstructure:"reading_notes_data_source"`
}

// Load reads configuration from the provided directory and environment
// variables. A token missing from both falls back to the .netrc entry for the
// API host.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if path != "" {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			v.AddConfigPath(path)
		} else {
			v.SetConfigFile(path)
		}
	} else {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("notion_mcp")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("notion.api_base", defaultAPIBase)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.Notion.Token == "" {
		token, err := tokenFromNetrc(apiHost(cfg.Notion.APIBase))
		if err != nil {
			return nil, err
		}
		cfg.Notion.Token = token
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Notion.Token == "" {
		return fmt.Errorf("config: notion.token is required (set it, NOTION_MCP_NOTION_TOKEN, or a .netrc entry)")
	}

	if c.Notion.PostsDataSource == "" {
		return fmt.Errorf("config: notion.posts_data_source is required")
	}

	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}

	return nil
}

// apiHost extracts the hostname used for netrc lookups.
func apiHost(base string) string {
	if base == "" {
		base = defaultAPIBase
	}
	if u, err := url.Parse(base); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return "api.notion.com"
}
