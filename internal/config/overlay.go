// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type CategoriesFile struct {
	Categories []Category `yaml:"categories"`
}

// OverlayCategories replaces the category registry with the contents of a
// standalone categories file, so users can swap the scraped sections without
// touching the rest of their config.
func OverlayCategories(cfg *Config, categoriesPath string) error {
	b, err := os.ReadFile(categoriesPath)
	if err != nil {
		// Missing categories file should not kill startup
		return nil
	}

	var cf CategoriesFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return err
	}

	if len(cf.Categories) > 0 {
		cfg.Categories = cf.Categories
	}
	return nil
}
