package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound);
// a missing config file is normal and means built-in defaults apply.
var ErrConfigNotFound = errors.New("config file not found")

// OutputConfig holds pretty-printer defaults. Command-line flags take
// precedence over every field here.
type OutputConfig struct {
	// Indent is the number of spaces per nesting level. Zero means the
	// built-in default.
	Indent int `yaml:"indent"`

	// Namespaces maps prefix to URI; each entry is declared on the output's
	// root element. When absent, the built-in android declaration applies.
	Namespaces map[string]string `yaml:"namespaces"`
}

// ToolConfig is the full .axmldump.yaml structure.
type ToolConfig struct {
	Output OutputConfig `yaml:"output"`
}

// ConfigFileName is looked up in the directory of the manifest being
// decoded.
const ConfigFileName = ".axmldump.yaml"

// Load reads the tool config from sourcePath. Returns ErrConfigNotFound if
// the file does not exist.
func Load(sourcePath string) (*ToolConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
