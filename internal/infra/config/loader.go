package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/tally/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace marker and configuration file.
const FileName = "tally.yaml"

// LoadConfig loads tally.yaml from the workspace root and applies defaults.
// A missing file is not an error: the defaults are returned.
func LoadConfig(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	cfg, err := LoadFile(path)
	if err != nil && domain.IsKind(err, domain.KindNotFound) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile loads an explicit config path. Unlike LoadConfig a missing file is KindNotFound.
func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y)
}

// Marshal renders cfg as tally.yaml content.
func Marshal(cfg domain.Config) ([]byte, error) {
	return yaml.Marshal(ToYAML(cfg))
}
