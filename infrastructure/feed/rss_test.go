package feed

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"portfolio-backend/domain/content"
	"portfolio-backend/infrastructure/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buildTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testSite() config.SiteConfig {
	site := config.DefaultSiteConfig()
	site.Title = "Test Blog"
	site.Description = "Notes & experiments"
	site.BaseURL = "https://blog.test"
	site.NewsletterURL = "https://newsletter.blog.test"
	return site
}

func testArticles() []content.Article {
	return []content.Article{
		{
			Slug:        "older",
			Title:       "Older post",
			Description: "From the archive",
			Tags:        []string{"archive"},
			PublishedAt: time.Date(2023, 12, 24, 8, 0, 0, 0, time.UTC),
		},
		{
			Slug:        "escaping",
			Title:       `Tom & Jerry <3 "quotes"`,
			Description: "a < b && c > d",
			Tags:        []string{"go", "xml"},
			PublishedAt: time.Date(2024, 5, 20, 18, 30, 0, 0, time.UTC),
		},
		{
			Slug:        "middle",
			Title:       "Middle post",
			Description: "Somewhere in between",
			PublishedAt: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestBuildRSS(t *testing.T) {
	rss := BuildRSS(testSite(), testArticles(), buildTime)

	assert.Equal(t, "2.0", rss.Version)
	assert.Equal(t, "Test Blog", rss.Channel.Title)
	assert.Equal(t, "Sat, 01 Jun 2024 12:00:00 +0000", rss.Channel.LastBuildDate)
	assert.Equal(t, AtomLink{Href: "https://blog.test/rss.xml", Rel: "self", Type: "application/rss+xml"}, rss.Channel.AtomLink)

	want := []Item{
		{
			Title:       `Tom & Jerry <3 "quotes"`,
			Link:        "https://blog.test/blog/escaping",
			GUID:        GUID{IsPermaLink: true, Value: "https://blog.test/blog/escaping"},
			Description: "a < b && c > d",
			PubDate:     "Mon, 20 May 2024 18:30:00 +0000",
			Categories:  []string{"go", "xml"},
		},
		{
			Title:       "Middle post",
			Link:        "https://blog.test/blog/middle",
			GUID:        GUID{IsPermaLink: true, Value: "https://blog.test/blog/middle"},
			Description: "Somewhere in between",
			PubDate:     "Thu, 29 Feb 2024 00:00:00 +0000",
		},
		{
			Title:       "Older post",
			Link:        "https://blog.test/blog/older",
			GUID:        GUID{IsPermaLink: true, Value: "https://blog.test/blog/older"},
			Description: "From the archive",
			PubDate:     "Sun, 24 Dec 2023 08:00:00 +0000",
			Categories:  []string{"archive"},
		},
	}
	if diff := cmp.Diff(want, rss.Channel.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateRSSOrderingAndCount(t *testing.T) {
	articles := testArticles()
	for i := 0; i < 20; i++ {
		articles = append(articles, content.Article{
			Slug:        "bulk",
			PublishedAt: time.Date(2022, time.Month(i%12+1), i+1, 0, 0, 0, 0, time.UTC),
		})
	}

	data, err := GenerateRSS(testSite(), articles, buildTime)
	require.NoError(t, err)

	var doc RSS
	require.NoError(t, xml.Unmarshal(data, &doc))
	require.Len(t, doc.Channel.Items, len(articles))

	var previous time.Time
	for i, item := range doc.Channel.Items {
		published, err := time.Parse(time.RFC1123Z, item.PubDate)
		require.NoError(t, err)
		if i > 0 {
			assert.False(t, published.After(previous), "item %d is newer than item %d", i, i-1)
		}
		previous = published
	}
}

func TestGenerateRSSDocument(t *testing.T) {
	data, err := GenerateRSS(testSite(), testArticles(), buildTime)
	require.NoError(t, err)
	doc := string(data)

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, doc, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, doc, `<atom:link href="https://blog.test/rss.xml" rel="self" type="application/rss+xml">`)
	assert.Contains(t, doc, `<title>Tom &amp; Jerry &lt;3 &#34;quotes&#34;</title>`)
	assert.Contains(t, doc, `<description>a &lt; b &amp;&amp; c &gt; d</description>`)
	assert.Contains(t, doc, `<guid isPermaLink="true">https://blog.test/blog/escaping</guid>`)
	assert.Contains(t, doc, `<category>go</category>`)
	assert.Contains(t, doc, `<description>Notes &amp; experiments</description>`)
}

func TestGenerateRSSIsDeterministic(t *testing.T) {
	first, err := GenerateRSS(testSite(), testArticles(), buildTime)
	require.NoError(t, err)

	second, err := GenerateRSS(testSite(), testArticles(), buildTime.Add(time.Hour))
	require.NoError(t, err)

	normalize := func(b []byte) string {
		var lines []string
		for _, line := range strings.Split(string(b), "\n") {
			if !strings.Contains(line, "<lastBuildDate>") {
				lines = append(lines, line)
			}
		}
		return strings.Join(lines, "\n")
	}
	assert.Equal(t, normalize(first), normalize(second))
}

func TestGenerateRSSUndatedArticles(t *testing.T) {
	articles := append(testArticles(), content.Article{Slug: "undated", Title: "Undated"})

	rss := BuildRSS(testSite(), articles, buildTime)

	last := rss.Channel.Items[len(rss.Channel.Items)-1]
	assert.Equal(t, "Undated", last.Title)
	assert.Empty(t, last.PubDate)
}

func TestGenerateRSSEmpty(t *testing.T) {
	data, err := GenerateRSS(testSite(), nil, buildTime)
	require.NoError(t, err)

	var doc RSS
	require.NoError(t, xml.Unmarshal(data, &doc))
	assert.Empty(t, doc.Channel.Items)
}
