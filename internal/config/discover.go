package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./stl2obj.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stl2obj", "config.toml")
}

// Discover finds the config file using the standard search order:
//  1. STL2OBJ_CONFIG environment variable
//  2. ./stl2obj.toml (current directory)
//  3. $XDG_CONFIG_HOME/stl2obj/config.toml
//
// Unlike the conversion itself, a missing config file is not an error:
// Discover returns "" and the caller falls back to Default().
func Discover() string {
	if envPath := os.Getenv("STL2OBJ_CONFIG"); envPath != "" {
		return envPath
	}

	paths := []string{
		"./stl2obj.toml",
		DefaultPath(),
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
