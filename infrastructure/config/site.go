package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSiteConfigPath is where the generators look for site overrides.
const DefaultSiteConfigPath = "site.yaml"

// SiteConfig describes the site for the build-time generators.
type SiteConfig struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	BaseURL        string `yaml:"base_url"`
	NewsletterURL  string `yaml:"newsletter_url"`
	Language       string `yaml:"language"`
	ManagingEditor string `yaml:"managing_editor"`
	WebMaster      string `yaml:"web_master"`
	BlogPath       string `yaml:"blog_path"`

	ArticlesPath string `yaml:"articles_path"`
	RSSPath      string `yaml:"rss_path"`
	SitemapPath  string `yaml:"sitemap_path"`
}

// DefaultSiteConfig returns the compiled-in site metadata and paths.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:          "Example Dev Blog",
		Description:    "Articles on software engineering, web development and the tools behind them.",
		BaseURL:        "https://example.dev",
		NewsletterURL:  "https://newsletter.example.dev",
		Language:       "en-us",
		ManagingEditor: "hello@example.dev (Example Dev)",
		WebMaster:      "hello@example.dev (Example Dev)",
		BlogPath:       "/blog",

		ArticlesPath: "src/data/blog-posts.json",
		RSSPath:      "public/rss.xml",
		SitemapPath:  "public/sitemap.xml",
	}
}

// LoadSiteConfig returns the defaults overlaid with the YAML file at path.
// A missing file is not an error.
func LoadSiteConfig(path string) (SiteConfig, error) {
	cfg := DefaultSiteConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read site config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse site config %s: %w", path, err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the fields every generator depends on.
func (c SiteConfig) Validate() error {
	switch {
	case c.BaseURL == "":
		return fmt.Errorf("site base_url is required")
	case c.ArticlesPath == "":
		return fmt.Errorf("site articles_path is required")
	case c.RSSPath == "" || c.SitemapPath == "":
		return fmt.Errorf("site rss_path and sitemap_path are required")
	}
	return nil
}

// PostURL returns the permalink of the article with the given slug.
func (c SiteConfig) PostURL(slug string) string {
	return c.BlogURL() + "/" + slug
}

// BlogURL returns the blog listing URL.
func (c SiteConfig) BlogURL() string {
	return c.BaseURL + "/" + strings.Trim(c.BlogPath, "/")
}

// FeedURL returns the public URL of the RSS document.
func (c SiteConfig) FeedURL() string {
	return c.BaseURL + "/" + strings.TrimPrefix(strings.TrimPrefix(c.RSSPath, "public"), "/")
}
