// Command sitemap writes the site's sitemap from the article list.
package main

import (
	"context"
	"log"
	"os"

	"portfolio-backend/infrastructure/config"
	"portfolio-backend/infrastructure/feed"
	"portfolio-backend/infrastructure/persistence/articles"
	"portfolio-backend/pkg/clock"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	site, err := config.LoadSiteConfig(config.DefaultSiteConfigPath)
	if err != nil {
		logger.Error("Failed to load site configuration", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	builder := feed.NewBuilder(
		site,
		articles.NewJSONRepository(site.ArticlesPath, logger),
		feed.FileWriter{},
		clock.Real(),
		logger,
	)

	if err := builder.BuildSitemap(context.Background()); err != nil {
		logger.Error("Failed to generate sitemap", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}
