// Local development runner: polls getUpdates instead of exposing a webhook,
// replaying each update through the same handler the server mounts.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"

	handler "github.com/layon940/cine-skeletor-bot/api"
)

func main() {
	_ = godotenv.Load()

	a, err := handler.App()
	if err != nil {
		os.Stderr.WriteString("startup failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := a.Logger
	if a.Cfg.Telegram.Token == "" {
		log.Fatal().Msg("Telegram token is empty")
	}

	if a.Poster != nil {
		if err := a.Poster.Start(); err != nil {
			log.Error().Err(err).Msg("News poster failed to start")
		}
	}

	base := fmt.Sprintf("https://api.telegram.org/bot%s", a.Cfg.Telegram.Token)
	deleteWebhook(base)
	log.Info().Msg("Polling started")

	allowed := url.QueryEscape(`["message","callback_query"]`)
	client := &http.Client{Timeout: 45 * time.Second}
	offset := 0

	for {
		u := fmt.Sprintf("%s/getUpdates?timeout=30&allowed_updates=%s&offset=%d", base, allowed, offset)
		resp, err := client.Get(u)
		if err != nil {
			log.Warn().Err(err).Msg("Polling request failed")
			time.Sleep(2 * time.Second)
			continue
		}
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
		_ = resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			log.Warn().Int("status", resp.StatusCode).Msg("Polling status not OK")
			time.Sleep(2 * time.Second)
			continue
		}

		var out struct {
			OK     bool              `json:"ok"`
			Result []json.RawMessage `json:"result"`
		}
		if err := json.Unmarshal(b, &out); err != nil {
			log.Warn().Err(err).Msg("Polling decode failed")
			time.Sleep(2 * time.Second)
			continue
		}

		for _, raw := range out.Result {
			var upd struct {
				UpdateID int `json:"update_id"`
			}
			_ = json.Unmarshal(raw, &upd)
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}

			r := httptest.NewRequest(http.MethodPost, "http://localhost/api/webhook", bytes.NewReader(raw))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.Handler(w, r)
			if w.Code != http.StatusOK {
				log.Warn().Int("status", w.Code).Int("update_id", upd.UpdateID).Msg("Handler rejected update")
			}
		}
	}
}

func deleteWebhook(base string) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(base + "/deleteWebhook?drop_pending_updates=true")
	if err != nil {
		return
	}
	_ = resp.Body.Close()
}
