package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/layon940/cine-skeletor-bot/internal/app"
	"github.com/layon940/cine-skeletor-bot/internal/bot"
)

var (
	initOnce    sync.Once
	application *app.App
	initErr     error
)

// App returns the process-wide application instance, built on first use.
func App() (*app.App, error) {
	initOnce.Do(func() {
		application, initErr = app.New(context.Background(), "")
	})
	return application, initErr
}

// Handler receives one Telegram webhook delivery. Telegram retries non-200
// responses, so a malformed or unwanted update still acknowledges with 200;
// only a broken deployment reports an error status.
func Handler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	a, err := App()
	if err != nil {
		http.Error(w, "configuration error", http.StatusInternalServerError)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 2<<20))
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	var upd bot.Update
	if err := json.Unmarshal(body, &upd); err != nil {
		a.Logger.Debug().Err(err).Msg("Undecodable update body ignored")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 50*time.Second)
	defer cancel()
	a.Router.HandleUpdate(ctx, &upd)

	w.WriteHeader(http.StatusOK)
}

// HealthHandler answers liveness probes.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
