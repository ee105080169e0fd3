// Package feed renders the site's RSS feed and sitemap from the article
// list and writes them to the public directory.
package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"portfolio-backend/domain/content"
	"portfolio-backend/infrastructure/config"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

// RSS is an RSS 2.0 document with the Atom namespace declared for the
// channel's self link.
type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel Channel  `xml:"channel"`
}

// Channel is the RSS channel.
type Channel struct {
	Title          string   `xml:"title"`
	Link           string   `xml:"link"`
	Description    string   `xml:"description"`
	Language       string   `xml:"language,omitempty"`
	ManagingEditor string   `xml:"managingEditor,omitempty"`
	WebMaster      string   `xml:"webMaster,omitempty"`
	LastBuildDate  string   `xml:"lastBuildDate"`
	AtomLink       AtomLink `xml:"atom:link"`
	Items          []Item   `xml:"item"`
}

// AtomLink is the channel's self reference.
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// Item is one article in the feed.
type Item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        GUID     `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category"`
}

// GUID identifies an item. Items use their permalink.
type GUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// BuildRSS assembles the feed for articles, newest first. now becomes the
// channel's lastBuildDate.
func BuildRSS(site config.SiteConfig, articles []content.Article, now time.Time) RSS {
	sorted := content.SortByPublishedDesc(articles)

	items := make([]Item, 0, len(sorted))
	for _, a := range sorted {
		permalink := site.PostURL(a.Slug)
		item := Item{
			Title:       a.Title,
			Link:        permalink,
			GUID:        GUID{IsPermaLink: true, Value: permalink},
			Description: a.Description,
			Categories:  a.Tags,
		}
		if a.HasPublishDate() {
			item.PubDate = a.PublishedAt.UTC().Format(time.RFC1123Z)
		}
		items = append(items, item)
	}

	return RSS{
		Version: "2.0",
		AtomNS:  atomNamespace,
		Channel: Channel{
			Title:          site.Title,
			Link:           site.BaseURL,
			Description:    site.Description,
			Language:       site.Language,
			ManagingEditor: site.ManagingEditor,
			WebMaster:      site.WebMaster,
			LastBuildDate:  now.UTC().Format(time.RFC1123Z),
			AtomLink: AtomLink{
				Href: site.FeedURL(),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: items,
		},
	}
}

// GenerateRSS renders the feed as UTF-8 XML.
func GenerateRSS(site config.SiteConfig, articles []content.Article, now time.Time) ([]byte, error) {
	return marshalDocument(BuildRSS(site, articles, now))
}

func marshalDocument(doc interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
