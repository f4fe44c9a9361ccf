package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/tally/internal/domain"
)

// MapConfig applies parsed values on top of domain.DefaultConfig.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if v := strings.TrimSpace(y.Tally.DataFile); v != "" {
		cfg.DataFile = v
	}
	if y.Tally.Currency != nil {
		if strings.TrimSpace(*y.Tally.Currency) == "" {
			return cfg, invalidField(path, "tally.currency", "currency must not be empty")
		}
		cfg.Currency = *y.Tally.Currency
	}
	if v := strings.TrimSpace(y.Tally.Paths.LogsDir); v != "" {
		cfg.Paths.LogsDir = v
	}

	if y.Tally.Categories != nil {
		set, err := mapCategories(path, y.Tally.Categories)
		if err != nil {
			return cfg, err
		}
		cfg.Categories = set
	}

	return cfg, nil
}

func mapCategories(path string, in []string) (domain.CategorySet, error) {
	if len(in) == 0 {
		return domain.CategorySet{}, invalidField(path, "tally.categories", "at least one category is required")
	}

	seen := make(map[string]bool, len(in))
	names := make([]string, 0, len(in))
	for i, c := range in {
		name := strings.TrimSpace(c)
		field := fmt.Sprintf("tally.categories[%d]", i)
		if name == "" {
			return domain.CategorySet{}, invalidField(path, field, "category name is required")
		}
		key := strings.ToLower(name)
		if seen[key] {
			return domain.CategorySet{}, invalidField(path, field, fmt.Sprintf("duplicate category %q", name))
		}
		seen[key] = true
		names = append(names, name)
	}
	return domain.NewCategorySet(names...), nil
}

// ToYAML is the inverse of MapConfig, used when writing a fresh tally.yaml.
func ToYAML(cfg domain.Config) YAMLConfig {
	currency := cfg.Currency
	return YAMLConfig{
		Tally: YAMLTally{
			DataFile:   cfg.DataFile,
			Currency:   &currency,
			Categories: cfg.Categories.Names(),
			Paths:      YAMLPaths{LogsDir: cfg.Paths.LogsDir},
		},
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
