// Package config loads the compiler's ambient, cosmetic-only settings: the
// default output path, the assembly writer's indentation width, and
// whether it emits trailing `# index` comments. None of these change
// compiled output; they only shape how the CLI and the assembly writer
// present things.
//
// Grounded on lookbusy1344-arm_emulator/config/config.go's Config/
// DefaultConfig/GetConfigPath trio, adapted from the emulator's execution/
// debugger/display/trace/statistics sections down to the two sections
// (output and assembly) this compiler actually needs.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the cosmetic knobs read from a TOML file.
type Config struct {
	Output struct {
		DefaultPath string `toml:"default_path"`
	} `toml:"output"`

	Assembly struct {
		IndentWidth  int  `toml:"indent_width"`
		IndexComment bool `toml:"index_comment"`
	} `toml:"assembly"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Output.DefaultPath = "out"
	cfg.Assembly.IndentWidth = 0
	cfg.Assembly.IndexComment = false
	return cfg
}

// Load reads and parses the TOML file at path, starting from
// DefaultConfig so any field the file omits keeps its default.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigPath returns the platform-specific config file path, creating
// its containing directory if needed. Falls back to "config.toml" in the
// current directory when the platform or environment gives no better
// answer.
func GetConfigPath() string {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "c0x")

	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		dir = filepath.Join(home, ".config", "c0x")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "config.toml")
}
