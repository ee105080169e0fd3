// Package content defines the article records the site is built from.
package content

import (
	"sort"
	"time"
)

// Article is a published blog post. Records are read-only inputs to the
// build-time generators.
type Article struct {
	Slug        string
	Title       string
	Description string
	Tags        []string
	PublishedAt time.Time
	Content     string
}

// HasPublishDate reports whether the article carried a parseable date.
func (a Article) HasPublishDate() bool {
	return !a.PublishedAt.IsZero()
}

// SortByPublishedDesc returns a copy of articles ordered newest first.
// Articles without a date keep their relative order after all dated ones.
func SortByPublishedDesc(articles []Article) []Article {
	sorted := make([]Article, len(articles))
	copy(sorted, articles)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return sorted
}
