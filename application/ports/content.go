package ports

import (
	"context"

	"portfolio-backend/domain/content"
)

// ArticleRepository reads the site's article records. The generators never
// write back to it.
type ArticleRepository interface {
	LoadAll(ctx context.Context) ([]content.Article, error)
}

// DocumentWriter persists a generated document.
type DocumentWriter interface {
	Write(path string, data []byte) error
}
