// Package reonconfig loads optional CLI flag defaults from a .reonrc.toml
// file, checked first in the current working directory and then in the
// user's home directory. A missing file is not an error; flags the user
// passes explicitly always override whatever the file supplies.
//
// This repository has no persisted runtime state of its own (each
// translation is a one-shot stdin/file-to-stdout/file run) so TOML has no
// other natural home in the domain stack; this config file is the reason
// BurntSushi/toml is in go.mod rather than a dependency dropped for lack
// of a use.
package reonconfig

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the flag defaults .reonrc.toml may supply.
type Config struct {
	Input    string `toml:"input"`
	Output   string `toml:"output"`
	Variable string `toml:"variable"`
}

const fileName = ".reonrc.toml"

// Load reads .reonrc.toml from the current directory, falling back to the
// user's home directory. It returns a zero Config, not an error, if
// neither location has the file.
func Load() (Config, error) {
	var cfg Config

	if path, ok := findConfigFile(); ok {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func findConfigFile() (string, bool) {
	if _, err := os.Stat(fileName); err == nil {
		return fileName, true
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(home, fileName)
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	return "", false
}
