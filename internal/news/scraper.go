package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/layon940/cine-skeletor-bot/internal/config"
)

// Item is one scraped headline.
type Item struct {
	Title string
	Link  string
}

// Scraper extracts headlines from a configurable news page via CSS selectors.
type Scraper struct {
	cfg    config.NewsConfig
	hc     *http.Client
	logger zerolog.Logger
}

func NewScraper(cfg config.NewsConfig, logger zerolog.Logger) *Scraper {
	return &Scraper{
		cfg:    cfg,
		hc:     &http.Client{Timeout: 15 * time.Second},
		logger: logger.With().Str("component", "news-scraper").Logger(),
	}
}

// Fetch downloads the configured page and extracts items, deduplicated by
// link within the page. Items missing a title or link are skipped.
func (s *Scraper) Fetch(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("news: create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; cine-skeletor-bot)")

	resp, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news: fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news: page status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news: parse page: %w", err)
	}

	base, err := url.Parse(s.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("news: parse base url: %w", err)
	}

	seen := make(map[string]bool)
	var items []Item
	doc.Find(s.cfg.ItemSelector).Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find(s.cfg.TitleSelector).First().Text())
		href, _ := sel.Find(s.cfg.LinkSelector).First().Attr("href")
		href = strings.TrimSpace(href)
		if title == "" || href == "" {
			return
		}
		link := resolveLink(base, href)
		if link == "" || seen[link] {
			return
		}
		seen[link] = true
		items = append(items, Item{Title: title, Link: link})
	})

	s.logger.Debug().
		Str("url", s.cfg.URL).
		Int("items", len(items)).
		Msg("News page scraped")

	return items, nil
}

func resolveLink(base *url.URL, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
