// Package config loads acels settings from acels.toml or acels.yaml.
package config

import "strings"

// Config holds all acels settings. Fields missing from the file keep the
// value from Defaults.
type Config struct {
	Log       LogConfig       `toml:"log" yaml:"log"`
	Parse     ParseConfig     `toml:"parse" yaml:"parse"`
	Workspace WorkspaceConfig `toml:"workspace" yaml:"workspace"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type LogConfig struct {
	// Verbosity follows commonlog: 0 logs notices and above, each step up
	// adds a level and each step down drops one.
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

type ParseConfig struct {
	// Recover parses past malformed statements and attributes.
	Recover bool `toml:"recover" yaml:"recover"`
}

type WorkspaceConfig struct {
	// Extensions selects the files scanned in a directory, with the dot.
	Extensions []string `toml:"extensions" yaml:"extensions"`
	// Jobs bounds the files parsed at once. Zero or less means one per CPU.
	Jobs  int  `toml:"jobs" yaml:"jobs"`
	Watch bool `toml:"watch" yaml:"watch"`
}

// Defaults returns the configuration used when no file is found.
func Defaults() *Config {
	return &Config{
		Log: LogConfig{
			Verbosity: 0,
		},
		Parse: ParseConfig{
			Recover: true,
		},
		Workspace: WorkspaceConfig{
			Extensions: []string{".ace"},
			Jobs:       0,
		},
	}
}

// HasExtension reports whether path ends with one of the workspace
// extensions.
func (c *Config) HasExtension(path string) bool {
	for _, ext := range c.Workspace.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
