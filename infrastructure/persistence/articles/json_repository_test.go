package articles

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfolio-backend/domain/content"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeArticles(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blog-posts.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestJSONRepositoryLoadAll(t *testing.T) {
	path := writeArticles(t, `[
		{
			"slug": "hello-world",
			"title": "Hello, World",
			"description": "First post",
			"tags": ["go", "meta"],
			"publishedAt": "2024-02-01T09:30:00Z",
			"content": "# Hello"
		},
		{
			"slug": "no-content",
			"title": "Draft notes",
			"description": "Short",
			"tags": [],
			"publishedAt": "2024-01-15"
		},
		{
			"slug": "bad-date",
			"title": "Bad date",
			"description": "",
			"publishedAt": "sometime last week"
		}
	]`)

	repo := NewJSONRepository(path, zap.NewNop())
	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)

	want := []content.Article{
		{
			Slug:        "hello-world",
			Title:       "Hello, World",
			Description: "First post",
			Tags:        []string{"go", "meta"},
			PublishedAt: time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
			Content:     "# Hello",
		},
		{
			Slug:        "no-content",
			Title:       "Draft notes",
			Description: "Short",
			Tags:        []string{},
			PublishedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Slug:  "bad-date",
			Title: "Bad date",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONRepositoryErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		repo := NewJSONRepository(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())
		_, err := repo.LoadAll(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid json", func(t *testing.T) {
		repo := NewJSONRepository(writeArticles(t, `{"slug": "not-an-array"}`), zap.NewNop())
		_, err := repo.LoadAll(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		repo := NewJSONRepository(writeArticles(t, `[]`), zap.NewNop())
		_, err := repo.LoadAll(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
