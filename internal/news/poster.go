package news

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"github.com/layon940/cine-skeletor-bot/internal/config"
	"github.com/layon940/cine-skeletor-bot/internal/media"
	"github.com/layon940/cine-skeletor-bot/internal/storage"
	"github.com/layon940/cine-skeletor-bot/internal/tg"
)

// Poster scrapes the news page on a schedule and posts unseen headlines to
// the allowed group.
type Poster struct {
	cfg     config.NewsConfig
	chatID  int64
	scraper *Scraper
	store   *storage.Store
	bot     *tg.Client
	gocron  gocron.Scheduler
	logger  zerolog.Logger

	// In-memory dedup backstop for runs without a configured store.
	seenMu sync.Mutex
	seen   map[string]bool
}

func NewPoster(cfg config.NewsConfig, chatID int64, scraper *Scraper, store *storage.Store, bot *tg.Client, logger zerolog.Logger) *Poster {
	return &Poster{
		cfg:     cfg,
		chatID:  chatID,
		scraper: scraper,
		store:   store,
		bot:     bot,
		logger:  logger.With().Str("component", "news-poster").Logger(),
		seen:    make(map[string]bool),
	}
}

// Start schedules the poster on its cron expression.
func (p *Poster) Start() error {
	gs, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("news: create scheduler: %w", err)
	}
	_, err = gs.NewJob(
		gocron.CronJob(p.cfg.Cron, false),
		gocron.NewTask(func() {
			if err := p.Run(context.Background()); err != nil {
				p.logger.Error().Err(err).Msg("News run failed")
			}
		}),
		gocron.WithName("news-autopost"),
	)
	if err != nil {
		return fmt.Errorf("news: create job: %w", err)
	}
	p.gocron = gs
	gs.Start()
	p.logger.Info().Str("cron", p.cfg.Cron).Msg("News auto-poster started")
	return nil
}

// Stop shuts the scheduler down gracefully.
func (p *Poster) Stop() error {
	if p.gocron == nil {
		return nil
	}
	return p.gocron.Shutdown()
}

// Run performs one scrape-and-post cycle. Posting the same link twice within
// one process run never happens, store or not. A link is recorded as posted
// only after the send succeeds, so a failed delivery is retried next run.
func (p *Poster) Run(ctx context.Context) error {
	items, err := p.scraper.Fetch(ctx)
	if err != nil {
		return err
	}

	posted := 0
	for _, item := range items {
		if p.cfg.MaxPerRun > 0 && posted >= p.cfg.MaxPerRun {
			break
		}
		if p.seenBefore(item.Link) {
			continue
		}
		known, err := p.store.IsNewsPosted(ctx, item.Link)
		if err != nil {
			p.logger.Warn().Err(err).Str("link", item.Link).Msg("News dedup check failed, skipping")
			continue
		}
		if known {
			p.markSeen(item.Link)
			continue
		}

		text := fmt.Sprintf("📰 <b>%s</b>\n%s", media.EscapeHTML(item.Title), item.Link)
		if err := p.bot.SendMessage(ctx, tg.SendMessageRequest{
			ChatID:    p.chatID,
			Text:      text,
			ParseMode: "HTML",
		}); err != nil {
			p.logger.Warn().Err(err).Str("link", item.Link).Msg("News post failed")
			continue
		}
		p.markSeen(item.Link)
		if _, err := p.store.MarkNewsPosted(ctx, item.Link); err != nil {
			p.logger.Warn().Err(err).Str("link", item.Link).Msg("News dedup record failed")
		}
		posted++
	}

	p.logger.Info().Int("scraped", len(items)).Int("posted", posted).Msg("News run completed")
	return nil
}

func (p *Poster) seenBefore(link string) bool {
	p.seenMu.Lock()
	defer p.seenMu.Unlock()
	return p.seen[link]
}

func (p *Poster) markSeen(link string) {
	p.seenMu.Lock()
	p.seen[link] = true
	p.seenMu.Unlock()
}
