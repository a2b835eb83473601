package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var supportedExtensions = []string{"json", "toml", "yaml", "yml"}

// ErrFileExists is returned by Generate when the target already exists.
var ErrFileExists = errors.New("target file already exists")

// Marshal encodes conf in the format named by ext (without the dot).
func Marshal(conf Config, ext string) ([]byte, error) {
	switch ext {
	case "json":
		return json.MarshalIndent(conf, "", "  ")
	case "toml":
		return toml.Marshal(conf)
	case "yaml", "yml":
		return yaml.Marshal(conf)
	}
	return nil, errors.New("config file must have one of supported extensions: " + strings.Join(supportedExtensions, ", "))
}

// Generate writes the default configuration to path, picking the format
// from the extension. An existing file is never overwritten.
func Generate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	conf := Default()
	if err := conf.Validate(); err != nil {
		return err
	}
	b, err := Marshal(conf, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
