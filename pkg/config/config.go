package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rubiojr/tagalog/pkg/tagalog"
)

//go:embed config.toml.sample
var configTemplate string

type Config struct {
	LogDestination string          `toml:"log_destination"`
	KillSwitch     bool            `toml:"kill_switch"`
	DateFormat     string          `toml:"date_format"`
	MessageFormat  string          `toml:"message_format"`
	Sink           SinkConfig      `toml:"sink"`
	Tags           map[string]bool `toml:"tags"`
}

type SinkConfig struct {
	// Type names a sink registered in pkg/sink. Empty means file.
	Type string `toml:"type"`
	URL  string `toml:"url,omitempty"`
}

func GetDefaultConfig() *Config {
	def := tagalog.DefaultConfig()
	tags := make(map[string]bool, len(def.Tags))
	for tag, enabled := range def.Tags {
		tags[string(tag)] = enabled
	}
	return &Config{
		LogDestination: def.LogDestination,
		KillSwitch:     def.KillSwitch,
		DateFormat:     def.DateFormat,
		MessageFormat:  def.MessageFormat,
		Sink:           SinkConfig{Type: "file"},
		Tags:           tags,
	}
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	def := GetDefaultConfig()
	if config.LogDestination == "" {
		config.LogDestination = def.LogDestination
	}
	if config.DateFormat == "" {
		config.DateFormat = def.DateFormat
	}
	if config.MessageFormat == "" {
		config.MessageFormat = def.MessageFormat
	}
	if config.Sink.Type == "" {
		config.Sink.Type = def.Sink.Type
	}
	if config.Tags == nil {
		config.Tags = def.Tags
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	template := configTemplate
	if c.LogDestination != "" {
		template = strings.Replace(template, tagalog.DefaultDestination, c.LogDestination, 1)
	}
	return os.WriteFile(configPath, []byte(template), 0644)
}

// LoggerConfig converts the file representation into the logger's.
func (c *Config) LoggerConfig() tagalog.Config {
	tags := make(map[tagalog.Tag]bool, len(c.Tags))
	for name, enabled := range c.Tags {
		tags[tagalog.Tag(name)] = enabled
	}
	return tagalog.Config{
		LogDestination: c.LogDestination,
		KillSwitch:     c.KillSwitch,
		DateFormat:     c.DateFormat,
		MessageFormat:  c.MessageFormat,
		Tags:           tags,
	}
}

func (c *Config) SetTag(name string, enabled bool) error {
	if name == "" {
		return fmt.Errorf("tag name cannot be empty")
	}
	if c.Tags == nil {
		c.Tags = make(map[string]bool)
	}
	c.Tags[name] = enabled
	return nil
}

func (c *Config) TagNames() []string {
	names := make([]string, 0, len(c.Tags))
	for name := range c.Tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetConfigDir returns the configuration directory for tagalog
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	tagalogConfigDir := filepath.Join(configDir, "tagalog")

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(tagalogConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", tagalogConfigDir, err)
	}

	return tagalogConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
