// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/ashdale/stl2obj/internal/convert"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string        `toml:"log_level"`
	History  HistoryConfig `toml:"history"`
	Convert  ConvertConfig `toml:"convert"`
}

// HistoryConfig controls the optional run journal. An empty path disables
// persistence entirely.
type HistoryConfig struct {
	Path string `toml:"path"`
}

// ConvertConfig holds the default conversion options; convert-command flags
// override individual values.
type ConvertConfig struct {
	Weld    bool `toml:"weld"`
	Cleanup bool `toml:"cleanup"`
	Center  bool `toml:"center"`
	SwapYZ  bool `toml:"swap_yz"`
	FlipX   bool `toml:"flip_x"`
	FlipY   bool `toml:"flip_y"`
	FlipZ   bool `toml:"flip_z"`

	Scale      float64 `toml:"scale"`
	OutputDir  string  `toml:"output_dir"`
	Naming     string  `toml:"naming"` // same, suffix, custom
	Suffix     string  `toml:"suffix"`
	CustomBase string  `toml:"custom_base"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cc := convert.DefaultConfig()
	return &Config{
		LogLevel: "info",
		Convert: ConvertConfig{
			Weld:    cc.WeldVertices,
			Cleanup: cc.CleanupMesh,
			Scale:   cc.ScaleFactor,
			Naming:  string(cc.NamingMode),
			Suffix:  cc.Suffix,
		},
	}
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Convert.Scale == 0 {
		cfg.Convert.Scale = 1.0
	}
	if cfg.Convert.Naming == "" {
		cfg.Convert.Naming = string(convert.NameSame)
	}

	return cfg, nil
}

// ConversionConfig maps the file values onto a run configuration.
func (c *Config) ConversionConfig() convert.Config {
	return convert.Config{
		WeldVertices:   c.Convert.Weld,
		CleanupMesh:    c.Convert.Cleanup,
		CenterToOrigin: c.Convert.Center,
		SwapYZ:         c.Convert.SwapYZ,
		FlipX:          c.Convert.FlipX,
		FlipY:          c.Convert.FlipY,
		FlipZ:          c.Convert.FlipZ,
		ScaleFactor:    c.Convert.Scale,
		OutputDir:      c.Convert.OutputDir,
		NamingMode:     convert.NamingMode(c.Convert.Naming),
		Suffix:         c.Convert.Suffix,
		CustomBase:     c.Convert.CustomBase,
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
