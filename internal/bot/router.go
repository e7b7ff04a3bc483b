package bot

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/layon940/cine-skeletor-bot/internal/commentary"
	"github.com/layon940/cine-skeletor-bot/internal/config"
	"github.com/layon940/cine-skeletor-bot/internal/media"
	"github.com/layon940/cine-skeletor-bot/internal/storage"
	"github.com/layon940/cine-skeletor-bot/internal/tg"
	"github.com/layon940/cine-skeletor-bot/internal/tmdb"
)

// Router classifies one inbound event into an intent and dispatches it.
// Stateless per event: every handler gets everything it needs as arguments
// and nothing survives between turns except the optional menu store.
type Router struct {
	cfg        *config.Config
	bot        *tg.Client
	metadata   *tmdb.Client
	commentary *commentary.Client
	store      *storage.Store
	logger     zerolog.Logger
	mentionRe  *regexp.Regexp
}

func NewRouter(cfg *config.Config, botClient *tg.Client, metadata *tmdb.Client, commentaryClient *commentary.Client, store *storage.Store, logger zerolog.Logger) *Router {
	r := &Router{
		cfg:        cfg,
		bot:        botClient,
		metadata:   metadata,
		commentary: commentaryClient,
		store:      store,
		logger:     logger.With().Str("component", "router").Logger(),
	}
	if cfg.Telegram.Mention != "" {
		mention := "@" + strings.TrimPrefix(cfg.Telegram.Mention, "@")
		r.mentionRe = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(mention))
	}
	return r
}

// HandleUpdate routes one event. Unauthorized and malformed events are
// dropped silently; collaborator failures surface as user-visible text, never
// as an error to the caller.
func (r *Router) HandleUpdate(ctx context.Context, upd *Update) {
	switch {
	case upd.CallbackQuery != nil:
		r.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		r.handleMessage(ctx, upd.Message)
	}
}

func (r *Router) handleMessage(ctx context.Context, msg *Message) {
	if msg.From == nil || strings.TrimSpace(msg.Text) == "" {
		return
	}
	if !r.authorizedMessage(msg) {
		// Dropped without a response so unauthorized callers learn nothing.
		r.logger.Debug().Int64("chat", msg.Chat.ID).Msg("Unauthorized message dropped")
		return
	}

	text := r.stripMention(msg.Text)
	command, args := splitCommand(text)

	switch command {
	case "/ping":
		r.handlePing(ctx, msg)
	case "/skeletor":
		r.handlePersonaQuestion(ctx, msg, args)
	case "/buscar":
		r.handleSearch(ctx, msg, args)
	case "/critica":
		r.handleCritique(ctx, msg, args)
	case "/tendencias":
		r.handleTrending(ctx, msg)
	case "/recomienda":
		r.handleRecommend(ctx, msg, args)
	default:
		// Free text falls through to the commentary client.
		r.handlePersonaQuestion(ctx, msg, text)
	}
}

func (r *Router) handleCallback(ctx context.Context, cq *CallbackQuery) {
	if cq.Message == nil {
		return
	}
	if !r.authorizedCallback(cq) {
		r.logger.Debug().Int64("from", cq.From.ID).Msg("Unauthorized callback dropped")
		return
	}

	data := strings.TrimSpace(cq.Data)
	if data == media.CloseToken {
		_ = r.bot.DeleteMessage(ctx, cq.Message.Chat.ID, cq.Message.MessageID)
		_ = r.bot.AnswerCallbackQuery(ctx, cq.ID, "")
		return
	}

	menuID, kind, id, ok := media.DecodeToken(data)
	if !ok {
		// Wrong prefix or malformed payload: not ours, ignore.
		return
	}
	if !r.store.IsMenuActive(ctx, cq.Message.Chat.ID, menuID) {
		_ = r.bot.AnswerCallbackQuery(ctx, cq.ID, "Ese menú ya caducó, mortal.")
		return
	}

	r.handleDetail(ctx, cq, kind, id)
}

// authorizedMessage gates every text event: the owner is always allowed; the
// allowed group requires the bot's @mention in the text.
func (r *Router) authorizedMessage(msg *Message) bool {
	if r.cfg.Telegram.OwnerID != 0 && msg.From.ID == r.cfg.Telegram.OwnerID {
		return true
	}
	if r.cfg.Telegram.GroupID != 0 && msg.Chat.ID == r.cfg.Telegram.GroupID {
		if r.cfg.Telegram.Mention == "" {
			return true
		}
		return containsMention(msg.Text, r.cfg.Telegram.Mention)
	}
	return false
}

// authorizedCallback gates button presses: pressing a button carries no
// mention, so group membership or ownership suffices.
func (r *Router) authorizedCallback(cq *CallbackQuery) bool {
	if r.cfg.Telegram.OwnerID != 0 && cq.From.ID == r.cfg.Telegram.OwnerID {
		return true
	}
	return r.cfg.Telegram.GroupID != 0 && cq.Message.Chat.ID == r.cfg.Telegram.GroupID
}

// stripMention removes every occurrence of the bot's @handle,
// case-insensitively. Matching runs over the original text, never over a
// lowered copy: lowering can change byte offsets for some runes.
func (r *Router) stripMention(text string) string {
	if r.mentionRe == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(r.mentionRe.ReplaceAllString(text, ""))
}

func containsMention(text, mention string) bool {
	mention = "@" + strings.TrimPrefix(mention, "@")
	return strings.Contains(strings.ToLower(text), strings.ToLower(mention))
}

// splitCommand separates a leading /command from its argument text. Commands
// may carry a @botname suffix, which Telegram appends in groups.
func splitCommand(text string) (command, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	head, rest, _ := strings.Cut(text, " ")
	if i := strings.Index(head, "@"); i > 0 {
		head = head[:i]
	}
	return strings.ToLower(head), strings.TrimSpace(rest)
}
