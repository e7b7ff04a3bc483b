package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/layon940/cine-skeletor-bot/internal/config"
)

const newsPage = `<!DOCTYPE html>
<html><body>
<article>
  <h2>  Estreno sorpresa de la semana </h2>
  <a href="/noticias/estreno-sorpresa">Leer más</a>
</article>
<article>
  <h2>Secuela confirmada</h2>
  <a href="https://otro.example.com/secuela">Leer más</a>
</article>
<article>
  <h2>Duplicada</h2>
  <a href="/noticias/estreno-sorpresa">Leer más</a>
</article>
<article>
  <h2>Sin enlace</h2>
</article>
<article>
  <a href="/sin-titulo">Leer más</a>
</article>
</body></html>`

func TestScraperFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(newsPage))
	}))
	defer server.Close()

	s := NewScraper(config.NewsConfig{
		URL:           server.URL + "/portada",
		ItemSelector:  "article",
		TitleSelector: "h2",
		LinkSelector:  "a",
	}, zerolog.Nop())

	items, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(items), items)
	}

	if items[0].Title != "Estreno sorpresa de la semana" {
		t.Errorf("title not trimmed: %q", items[0].Title)
	}
	if want := server.URL + "/noticias/estreno-sorpresa"; items[0].Link != want {
		t.Errorf("relative link = %q, want %q", items[0].Link, want)
	}
	if items[1].Link != "https://otro.example.com/secuela" {
		t.Errorf("absolute link = %q", items[1].Link)
	}
}

func TestScraperFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := NewScraper(config.NewsConfig{
		URL:           server.URL,
		ItemSelector:  "article",
		TitleSelector: "h2",
		LinkSelector:  "a",
	}, zerolog.Nop())

	if _, err := s.Fetch(context.Background()); err == nil {
		t.Error("expected error on non-200 status")
	}
}

func TestScraperFetchEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>nada</p></body></html>`))
	}))
	defer server.Close()

	s := NewScraper(config.NewsConfig{
		URL:           server.URL,
		ItemSelector:  "article",
		TitleSelector: "h2",
		LinkSelector:  "a",
	}, zerolog.Nop())

	items, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items from empty page", len(items))
	}
}
