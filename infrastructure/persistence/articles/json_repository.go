// Package articles loads the site's article records from the static JSON
// file maintained alongside the site content.
package articles

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"portfolio-backend/domain/content"
	"portfolio-backend/pkg/utils"

	"go.uber.org/zap"
)

// record mirrors one entry of the article JSON file.
type record struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
	Content     *string  `json:"content"`
}

// JSONRepository reads articles from a JSON array on disk.
type JSONRepository struct {
	path   string
	logger *zap.Logger
}

// NewJSONRepository creates a repository reading path.
func NewJSONRepository(path string, logger *zap.Logger) *JSONRepository {
	return &JSONRepository{path: path, logger: logger}
}

// LoadAll reads and maps every record. A missing or malformed file is an
// error. Unparseable dates are logged and left as the zero time.
func (r *JSONRepository) LoadAll(ctx context.Context) ([]content.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read articles from %s: %w", r.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse articles in %s: %w", r.path, err)
	}

	articles := make([]content.Article, 0, len(records))
	for _, rec := range records {
		articles = append(articles, r.toArticle(rec))
	}
	return articles, nil
}

func (r *JSONRepository) toArticle(rec record) content.Article {
	article := content.Article{
		Slug:        rec.Slug,
		Title:       rec.Title,
		Description: rec.Description,
		Tags:        rec.Tags,
	}
	if rec.Content != nil {
		article.Content = *rec.Content
	}

	if rec.PublishedAt != "" {
		published, err := utils.ParseTimestamp(rec.PublishedAt)
		if err != nil {
			r.logger.Warn("Article has an invalid publish date",
				zap.String("slug", rec.Slug),
				zap.String("publishedAt", rec.PublishedAt),
				zap.Error(err),
			)
		} else {
			article.PublishedAt = published
		}
	}
	return article
}
