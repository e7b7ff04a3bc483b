package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/layon940/cine-skeletor-bot/internal/bot"
	"github.com/layon940/cine-skeletor-bot/internal/commentary"
	"github.com/layon940/cine-skeletor-bot/internal/config"
	"github.com/layon940/cine-skeletor-bot/internal/logger"
	"github.com/layon940/cine-skeletor-bot/internal/news"
	"github.com/layon940/cine-skeletor-bot/internal/storage"
	"github.com/layon940/cine-skeletor-bot/internal/tg"
	"github.com/layon940/cine-skeletor-bot/internal/tmdb"
)

// App wires the clients and the router together. Built once at startup;
// everything downstream receives its dependencies from here.
type App struct {
	Cfg    *config.Config
	Logger zerolog.Logger
	Bot    *tg.Client
	Store  *storage.Store
	Router *bot.Router

	// Poster is nil when news auto-posting is disabled.
	Poster *news.Poster
}

// New loads configuration and constructs the full dependency graph. A missing
// or unreachable store degrades to nil-store behavior instead of failing.
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging)

	botClient := tg.NewClient(cfg.Telegram.Token)
	metadata := tmdb.NewClient(cfg.TMDB, log)
	commentaryClient := commentary.NewClient(cfg.Commentary, log)

	var store *storage.Store
	if cfg.Mongo.URI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		store, err = storage.NewStore(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("Store unavailable, continuing without it")
			store = nil
		}
	}

	router := bot.NewRouter(cfg, botClient, metadata, commentaryClient, store, log)

	a := &App{
		Cfg:    cfg,
		Logger: log,
		Bot:    botClient,
		Store:  store,
		Router: router,
	}

	if cfg.News.Enabled && cfg.News.URL != "" && cfg.Telegram.GroupID != 0 {
		scraper := news.NewScraper(cfg.News, log)
		a.Poster = news.NewPoster(cfg.News, cfg.Telegram.GroupID, scraper, store, botClient, log)
	}

	return a, nil
}

// Close stops the poster and disconnects the store.
func (a *App) Close(ctx context.Context) {
	if a.Poster != nil {
		if err := a.Poster.Stop(); err != nil {
			a.Logger.Warn().Err(err).Msg("News poster shutdown failed")
		}
	}
	if err := a.Store.Close(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("Store disconnect failed")
	}
}
