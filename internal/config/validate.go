package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy alongside the validation
// result. Normalization trims category fields; it never drops a category, so
// a bad entry shows up as an error instead of vanishing silently.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	for i := range out.Categories {
		c := &out.Categories[i]
		c.Key = strings.TrimSpace(c.Key)
		c.Label = strings.TrimSpace(c.Label)
		c.URL = strings.TrimSpace(c.URL)
		c.Type = strings.TrimSpace(c.Type)
	}

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Scrape.Pages <= 0 {
		res.addErr("scrape.pages must be > 0")
	} else if out.Scrape.Pages > 20 {
		res.addWarn("scrape.pages is high (%d); scrape time grows linearly with pages.", out.Scrape.Pages)
	}
	if out.Scrape.DelayMs < 0 {
		res.addErr("scrape.delay_ms must be >= 0")
	} else if out.Scrape.DelayMs == 0 {
		res.addWarn("scrape.delay_ms is 0; unpaced requests risk getting the scraper blocked.")
	}
	if out.Scrape.TimeoutSeconds <= 0 {
		res.addErr("scrape.timeout_seconds must be > 0")
	}
	if strings.TrimSpace(out.Scrape.UserAgent) == "" {
		res.addWarn("scrape.user_agent is empty; sites commonly reject requests without one.")
	}

	if out.Cache.TTLMinutes <= 0 {
		res.addErr("cache.ttl_minutes must be > 0")
	}

	if len(out.Categories) == 0 {
		res.addErr("categories must have at least 1 entry")
	}
	seen := map[string]bool{}
	for i, c := range out.Categories {
		if c.Key == "" {
			res.addErr("categories[%d].key is required", i)
		} else if seen[c.Key] {
			res.addErr("categories[%d].key %q is duplicated", i, c.Key)
		}
		seen[c.Key] = true

		if c.Label == "" {
			res.addWarn("categories[%d].label is empty; the UI will show the key instead.", i)
		}
		if c.Type == "" {
			res.addErr("categories[%d].type is required", i)
		}
		if c.URL == "" {
			res.addErr("categories[%d].url is required", i)
		} else if u, err := url.Parse(c.URL); err != nil || u.Scheme == "" || u.Host == "" {
			res.addErr("categories[%d].url %q is not an absolute http(s) URL", i, c.URL)
		}
	}

	return out, res
}
