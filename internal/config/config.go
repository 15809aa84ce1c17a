// engine/internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Category is one scrapeable section of the source site: a stable key the UI
// selects by, a display label, the category base URL, and the item-type tag
// stamped onto every listing scraped from it.
type Category struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
	Type  string `yaml:"type" json:"type"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Scrape struct {
		Pages          int    `yaml:"pages" json:"pages"`
		DelayMs        int    `yaml:"delay_ms" json:"delay_ms"`
		TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent" json:"user_agent"`
	} `yaml:"scrape" json:"scrape"`

	Cache struct {
		TTLMinutes int `yaml:"ttl_minutes" json:"ttl_minutes"`
	} `yaml:"cache" json:"cache"`

	Categories []Category `yaml:"categories" json:"categories"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) CategoryByKey(key string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// Delay is the pacing delay between successive requests to the source host.
func (c Config) Delay() time.Duration {
	return time.Duration(c.Scrape.DelayMs) * time.Millisecond
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.Scrape.TimeoutSeconds) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}
