package bot

import (
	"context"
	"strings"
	"sync"

	"github.com/layon940/cine-skeletor-bot/internal/commentary"
	"github.com/layon940/cine-skeletor-bot/internal/media"
	"github.com/layon940/cine-skeletor-bot/internal/tg"
	"github.com/layon940/cine-skeletor-bot/internal/tmdb"
)

const (
	msgAskForTitle = "¿Hablas en lenguaje de cobayas? ¡Especifica la obra, mortal!"
	msgNoResults   = "¡Ni rastro de esa bazofia en el multiverso del cine! Vuelve cuando tengas buenos gustos."
	msgPong        = "¡Myah! Sigo vivo, insignificante mortal."
	msgPickOne     = "He encontrado estas obras, mortal. Elige una:"
)

func (r *Router) handlePing(ctx context.Context, msg *Message) {
	r.reply(ctx, msg, msgPong)
}

func (r *Router) handlePersonaQuestion(ctx context.Context, msg *Message, question string) {
	if strings.TrimSpace(question) == "" {
		r.reply(ctx, msg, msgAskForTitle)
		return
	}
	_ = r.bot.SendTyping(ctx, msg.Chat.ID)
	answer := r.commentary.Generate(ctx, commentary.BuildQuestionPrompt(question))
	r.reply(ctx, msg, answer)
}

// handleSearch runs the bounded search-and-list flow: normalize, search both
// kinds concurrently, and present the disambiguation menu.
func (r *Router) handleSearch(ctx context.Context, msg *Message, rawQuery string) {
	query := media.NormalizeQuery(rawQuery)
	if query == "" {
		r.reply(ctx, msg, msgAskForTitle)
		return
	}
	_ = r.bot.SendTyping(ctx, msg.Chat.ID)

	candidates := r.searchBoth(ctx, query)
	r.sendMenu(ctx, msg, query, candidates)
}

// handleCritique reproduces the persona fact-flow: take the best candidate
// for the query and have the commentary client roast it, poster attached.
func (r *Router) handleCritique(ctx context.Context, msg *Message, rawQuery string) {
	query := media.NormalizeQuery(rawQuery)
	if query == "" {
		r.reply(ctx, msg, msgAskForTitle)
		return
	}
	_ = r.bot.SendTyping(ctx, msg.Chat.ID)

	candidates := r.searchBoth(ctx, query)
	if len(candidates) == 0 {
		r.reply(ctx, msg, msgNoResults)
		return
	}

	c := candidates[0]
	prompt := commentary.BuildTitlePrompt(c.DisplayTitle, c.ReleaseYear, c.GenreLabels(), c.Overview)
	text := r.commentary.Generate(ctx, prompt)

	if c.PosterPath != "" {
		if err := r.bot.SendPhoto(ctx, tg.SendPhotoRequest{
			ChatID:  msg.Chat.ID,
			Photo:   r.metadata.ImageURL(c.PosterPath, "w500"),
			Caption: text,
		}); err == nil {
			return
		}
		// Poster delivery failed: fall through to plain text.
	}
	r.reply(ctx, msg, text)
}

func (r *Router) handleTrending(ctx context.Context, msg *Message) {
	_ = r.bot.SendTyping(ctx, msg.Chat.ID)

	results, err := r.metadata.Trending(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Trending fetch failed")
		results = nil
	}
	candidates := make([]media.Candidate, 0, len(results))
	for _, m := range results {
		// Mixed trending listings include person entries; those have no
		// fetchable detail record and no title to list.
		if m.MediaType == "person" || (m.Title == "" && m.Name == "") {
			continue
		}
		candidates = append(candidates, media.CandidateFromMulti(m))
	}
	if len(candidates) > media.MaxMenuItems {
		candidates = candidates[:media.MaxMenuItems]
	}
	r.sendMenu(ctx, msg, "tendencias", candidates)
}

func (r *Router) handleRecommend(ctx context.Context, msg *Message, genre string) {
	genreID, ok := media.GenreIDByName(genre)
	if !ok {
		r.reply(ctx, msg, "No conozco ese género, mortal. Prueba con Terror, Drama, Comedia...")
		return
	}
	_ = r.bot.SendTyping(ctx, msg.Chat.ID)

	results, err := r.metadata.DiscoverMovies(ctx, genreID)
	if err != nil {
		r.logger.Warn().Err(err).Int("genre", genreID).Msg("Discover fetch failed")
		results = nil
	}
	candidates := make([]media.Candidate, 0, len(results))
	for _, m := range results {
		candidates = append(candidates, media.CandidateFromMovie(m))
	}
	if len(candidates) > media.MaxMenuItems {
		candidates = candidates[:media.MaxMenuItems]
	}
	r.sendMenu(ctx, msg, genre, candidates)
}

// handleDetail resolves a menu pick: fetch the full record and send the
// rendered fact sheet.
func (r *Router) handleDetail(ctx context.Context, cq *CallbackQuery, kind media.Kind, id int) {
	chatID := cq.Message.Chat.ID
	_ = r.bot.SendTyping(ctx, chatID)

	var sheet, poster string
	switch kind {
	case media.KindShow:
		d, err := r.metadata.GetShow(ctx, id)
		if err != nil {
			r.logger.Warn().Err(err).Int("id", id).Msg("Show detail fetch failed")
			_ = r.bot.AnswerCallbackQuery(ctx, cq.ID, msgNoResults)
			return
		}
		sheet = media.RenderShowSheet(d)
		if d.PosterPath != nil {
			poster = r.metadata.ImageURL(*d.PosterPath, "w500")
		}
	default:
		d, err := r.metadata.GetMovie(ctx, id)
		if err != nil {
			r.logger.Warn().Err(err).Int("id", id).Msg("Movie detail fetch failed")
			_ = r.bot.AnswerCallbackQuery(ctx, cq.ID, msgNoResults)
			return
		}
		sheet = media.RenderMovieSheet(d)
		if d.PosterPath != nil {
			poster = r.metadata.ImageURL(*d.PosterPath, "w500")
		}
	}

	sent := false
	if poster != "" {
		if err := r.bot.SendPhoto(ctx, tg.SendPhotoRequest{
			ChatID:    chatID,
			Photo:     poster,
			Caption:   sheet,
			ParseMode: "HTML",
		}); err == nil {
			sent = true
		}
	}
	if !sent {
		_ = r.bot.SendMessage(ctx, tg.SendMessageRequest{
			ChatID:    chatID,
			Text:      sheet,
			ParseMode: "HTML",
		})
	}
	_ = r.bot.AnswerCallbackQuery(ctx, cq.ID, "")
}

// searchBoth issues the movie and show searches concurrently and joins both
// results; a failed leg degrades to an empty slice so the merge still runs.
func (r *Router) searchBoth(ctx context.Context, query string) []media.Candidate {
	var (
		wg     sync.WaitGroup
		movies []tmdb.MovieResult
		shows  []tmdb.TVResult
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := r.metadata.SearchMovies(ctx, query)
		if err != nil {
			r.logger.Warn().Err(err).Str("query", query).Msg("Movie search failed")
			return
		}
		movies = res
	}()
	go func() {
		defer wg.Done()
		res, err := r.metadata.SearchShows(ctx, query)
		if err != nil {
			r.logger.Warn().Err(err).Str("query", query).Msg("TV search failed")
			return
		}
		shows = res
	}()
	wg.Wait()
	return media.MergeCandidates(movies, shows)
}

func (r *Router) sendMenu(ctx context.Context, msg *Message, query string, candidates []media.Candidate) {
	if len(candidates) == 0 {
		r.reply(ctx, msg, msgNoResults)
		return
	}

	menu := media.NewMenu(query, candidates)
	if err := r.store.SetActiveMenu(ctx, msg.Chat.ID, menu.ID, query); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to record active menu")
	}

	text := msgPickOne + "\n\n" + menu.Listing()
	_ = r.bot.SendMessage(ctx, tg.SendMessageRequest{
		ChatID:           msg.Chat.ID,
		Text:             text,
		ReplyMarkup:      menu.Keyboard(),
		ReplyToMessageID: msg.MessageID,
	})
}

func (r *Router) reply(ctx context.Context, msg *Message, text string) {
	_ = r.bot.SendMessage(ctx, tg.SendMessageRequest{
		ChatID:           msg.Chat.ID,
		Text:             text,
		ReplyToMessageID: msg.MessageID,
	})
}
