package feed

import (
	"encoding/xml"
	"time"

	"portfolio-backend/domain/content"
	"portfolio-backend/infrastructure/config"
	"portfolio-backend/pkg/utils"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Change frequencies and priorities per page kind.
const (
	homeChangeFreq       = "weekly"
	homePriority         = "1.0"
	blogChangeFreq       = "weekly"
	blogPriority         = "0.9"
	newsletterChangeFreq = "monthly"
	newsletterPriority   = "0.7"
	postChangeFreq       = "monthly"
	postPriority         = "0.8"
)

// URLSet is a Sitemap 0.9 document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// BuildSitemap lists the home page, the blog listing and the newsletter
// site, then every article newest first. Static pages are stamped with now.
func BuildSitemap(site config.SiteConfig, articles []content.Article, now time.Time) URLSet {
	generated := utils.FormatRFC3339UTC(now)

	urls := []URL{
		{Loc: site.BaseURL, LastMod: generated, ChangeFreq: homeChangeFreq, Priority: homePriority},
		{Loc: site.BlogURL(), LastMod: generated, ChangeFreq: blogChangeFreq, Priority: blogPriority},
		{Loc: site.NewsletterURL, LastMod: generated, ChangeFreq: newsletterChangeFreq, Priority: newsletterPriority},
	}

	for _, a := range content.SortByPublishedDesc(articles) {
		entry := URL{
			Loc:        site.PostURL(a.Slug),
			ChangeFreq: postChangeFreq,
			Priority:   postPriority,
		}
		if a.HasPublishDate() {
			entry.LastMod = utils.FormatRFC3339UTC(a.PublishedAt)
		}
		urls = append(urls, entry)
	}

	return URLSet{Xmlns: sitemapNamespace, URLs: urls}
}

// GenerateSitemap renders the sitemap as UTF-8 XML.
func GenerateSitemap(site config.SiteConfig, articles []content.Article, now time.Time) ([]byte, error) {
	return marshalDocument(BuildSitemap(site, articles, now))
}
