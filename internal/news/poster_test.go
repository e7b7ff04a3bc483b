package news

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/layon940/cine-skeletor-bot/internal/config"
	"github.com/layon940/cine-skeletor-bot/internal/tg"
)

func newTestPoster(t *testing.T, maxPerRun int) (*Poster, *[]map[string]any) {
	t.Helper()

	newsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<article><h2>Primera</h2><a href="/n/1">x</a></article>
			<article><h2>Segunda</h2><a href="/n/2">x</a></article>
			<article><h2>Tercera</h2><a href="/n/3">x</a></article>
		</body></html>`))
	}))
	t.Cleanup(newsServer.Close)

	var mu sync.Mutex
	sent := []map[string]any{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		mu.Lock()
		sent = append(sent, payload)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	t.Cleanup(tgServer.Close)

	cfg := config.NewsConfig{
		Enabled:       true,
		URL:           newsServer.URL,
		ItemSelector:  "article",
		TitleSelector: "h2",
		LinkSelector:  "a",
		Cron:          "0 */6 * * *",
		MaxPerRun:     maxPerRun,
	}
	log := zerolog.Nop()
	scraper := NewScraper(cfg, log)
	poster := NewPoster(cfg, -100, scraper, nil, tg.NewClientWithBaseURL(tgServer.URL), log)
	return poster, &sent
}

func TestPosterRun(t *testing.T) {
	poster, sent := newTestPoster(t, 0)

	if err := poster.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(*sent) != 3 {
		t.Fatalf("posted %d messages, want 3", len(*sent))
	}

	first := (*sent)[0]
	text := first["text"].(string)
	if !strings.Contains(text, "📰") || !strings.Contains(text, "Primera") || !strings.Contains(text, "/n/1") {
		t.Errorf("posted text = %q", text)
	}
	if first["parse_mode"] != "HTML" {
		t.Errorf("parse_mode = %v", first["parse_mode"])
	}
	if first["chat_id"].(float64) != -100 {
		t.Errorf("chat_id = %v", first["chat_id"])
	}
}

func TestPosterRunIsIdempotentWithinProcess(t *testing.T) {
	poster, sent := newTestPoster(t, 0)

	if err := poster.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := poster.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(*sent) != 3 {
		t.Errorf("posted %d messages across two runs, want 3", len(*sent))
	}
}

func TestPosterRetriesFailedSend(t *testing.T) {
	newsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<article><h2>Primera</h2><a href="/n/1">x</a></article>
		</body></html>`))
	}))
	t.Cleanup(newsServer.Close)

	var mu sync.Mutex
	delivered := 0
	failNext := true
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if failNext {
			failNext = false
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		delivered++
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	t.Cleanup(tgServer.Close)

	cfg := config.NewsConfig{
		URL:           newsServer.URL,
		ItemSelector:  "article",
		TitleSelector: "h2",
		LinkSelector:  "a",
	}
	log := zerolog.Nop()
	poster := NewPoster(cfg, -100, NewScraper(cfg, log), nil, tg.NewClientWithBaseURL(tgServer.URL), log)

	// The failed delivery must not burn the link; the next run retries it.
	if err := poster.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := poster.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if delivered != 1 {
		t.Errorf("delivered %d messages across two runs, want 1", delivered)
	}
}

func TestPosterRunRespectsCap(t *testing.T) {
	poster, sent := newTestPoster(t, 2)

	if err := poster.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(*sent) != 2 {
		t.Errorf("posted %d messages, want cap of 2", len(*sent))
	}
}
