package yahoo

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/dwhitmore/finlens/internal/core"
)

// RSS feed types for the Yahoo Finance headline feed.
type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title   string    `xml:"title"`
	Link    string    `xml:"link"`
	PubDate string    `xml:"pubDate"`
	Source  rssSource `xml:"source"`
}

type rssSource struct {
	URL  string `xml:"url,attr"`
	Text string `xml:",chardata"`
}

// News fetches recent headlines from the RSS feed, most recent first,
// capped at limit.
func (y *Yahoo) News(ctx context.Context, symbol string, limit int) ([]core.NewsItem, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}

	resp, err := y.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"s":      symbol,
			"region": "US",
			"lang":   "en-US",
		}).
		Get(y.feedURL)
	if err != nil {
		return nil, core.WrapError(core.ErrNewsUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, core.WrapError(core.ErrNewsUnavailable,
			fmt.Errorf("unexpected status: %d", resp.StatusCode()))
	}

	var feed rssFeed
	if err := xml.Unmarshal(resp.Body(), &feed); err != nil {
		return nil, core.WrapError(core.ErrMalformedData, err)
	}

	items := make([]core.NewsItem, 0, limit)
	for _, it := range feed.Channel.Items {
		if it.Title == "" {
			continue
		}

		publisher := it.Source.Text
		if publisher == "" {
			publisher = "Yahoo Finance"
		}

		publishedAt, err := time.Parse(time.RFC1123, it.PubDate)
		if err != nil {
			// Some feeds use the numeric-zone variant
			publishedAt, _ = time.Parse(time.RFC1123Z, it.PubDate)
		}

		items = append(items, core.NewsItem{
			Title:       it.Title,
			Publisher:   publisher,
			URL:         it.Link,
			PublishedAt: publishedAt,
		})
		if len(items) == limit {
			break
		}
	}

	return items, nil
}
