package shared

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// OutputFormats lists the accepted values for [OutputConfig.Format].
var OutputFormats = []string{"console", "text", "csv", "markdown", "json", "table"}

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Selectors SelectorsConfig `toml:"selectors"`
	Output    OutputConfig    `toml:"output"`
	Log       LogConfig       `toml:"log"`
}

// SelectorsConfig contains the CSS selectors used to locate playlist rows and their fields.
type SelectorsConfig struct {
	Track      string `toml:"track" json:"track"`
	Title      string `toml:"title" json:"title"`
	ArtistLink string `toml:"artist_link" json:"artist_link"`
	DirectText string `toml:"direct_text" json:"direct_text"`
}

// OutputConfig contains report rendering settings.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
	Footer bool   `toml:"footer"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
