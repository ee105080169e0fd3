package feed

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/application/ports"
	"portfolio-backend/domain/content"
	"portfolio-backend/infrastructure/config"
	"portfolio-backend/pkg/clock"

	"go.uber.org/zap"
)

// Generator renders one document from the article list.
type Generator func(site config.SiteConfig, articles []content.Article, now time.Time) ([]byte, error)

// Builder runs one generation pass: load, render, write. It keeps no state
// between runs.
type Builder struct {
	site     config.SiteConfig
	articles ports.ArticleRepository
	writer   ports.DocumentWriter
	clock    clock.Clock
	logger   *zap.Logger
}

// NewBuilder creates a new builder
func NewBuilder(
	site config.SiteConfig,
	articles ports.ArticleRepository,
	writer ports.DocumentWriter,
	clk clock.Clock,
	logger *zap.Logger,
) *Builder {
	return &Builder{
		site:     site,
		articles: articles,
		writer:   writer,
		clock:    clk,
		logger:   logger,
	}
}

// BuildRSS writes the RSS feed to the configured path.
func (b *Builder) BuildRSS(ctx context.Context) error {
	return b.build(ctx, "rss", b.site.RSSPath, GenerateRSS)
}

// BuildSitemap writes the sitemap to the configured path.
func (b *Builder) BuildSitemap(ctx context.Context) error {
	return b.build(ctx, "sitemap", b.site.SitemapPath, GenerateSitemap)
}

func (b *Builder) build(ctx context.Context, name, path string, generate Generator) error {
	articles, err := b.articles.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	data, err := generate(b.site, articles, b.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", name, err)
	}

	if err := b.writer.Write(path, data); err != nil {
		return err
	}

	b.logger.Info("Generated document",
		zap.String("document", name),
		zap.String("path", path),
		zap.Int("articles", len(articles)),
		zap.Int("bytes", len(data)),
	)
	return nil
}
