package media

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/layon940/cine-skeletor-bot/internal/tg"
)

const (
	// MaxMenuItems bounds a menu to the numbered-button limit of the UI.
	MaxMenuItems = 10
	// buttonsPerRow bounds one keyboard row.
	buttonsPerRow = 5

	tokenPrefix = "pick"
	// CloseToken dismisses a menu message.
	CloseToken = "close"
)

// Menu is the disambiguation menu presented when a search yields multiple
// candidates. Its ID scopes every callback token so a press against a
// superseded menu can be detected.
type Menu struct {
	ID         string
	Query      string
	Candidates []Candidate
}

// NewMenu builds a menu over an already-merged candidate list.
func NewMenu(query string, candidates []Candidate) *Menu {
	if len(candidates) > MaxMenuItems {
		candidates = candidates[:MaxMenuItems]
	}
	return &Menu{
		ID:         uuid.NewString()[:8],
		Query:      query,
		Candidates: candidates,
	}
}

// EncodeToken builds the callback token for one candidate. Tokens are unique
// within a menu as long as (kind, id) pairs are, which the upstream API
// guarantees per endpoint.
func EncodeToken(menuID string, c Candidate) string {
	return fmt.Sprintf("%s:%s:%s:%d", tokenPrefix, menuID, c.Kind, c.ID)
}

// DecodeToken reverses EncodeToken. Malformed tokens (wrong prefix, wrong
// arity, bad kind, non-numeric ID) are rejected.
func DecodeToken(token string) (menuID string, kind Kind, id int, ok bool) {
	parts := strings.Split(token, ":")
	if len(parts) != 4 || parts[0] != tokenPrefix {
		return "", "", 0, false
	}
	kind, kok := ParseKind(parts[2])
	if !kok {
		return "", "", 0, false
	}
	id, err := strconv.Atoi(parts[3])
	if err != nil || id <= 0 {
		return "", "", 0, false
	}
	return parts[1], kind, id, true
}

// Listing renders the numbered text list shown above the buttons:
// "N. <icon> <title> [<year>] - <kind>".
func (m *Menu) Listing() string {
	b := strings.Builder{}
	for i, c := range m.Candidates {
		icon, kind := "🎬", "película"
		if c.Kind == KindShow {
			icon, kind = "📺", "serie"
		}
		year := ""
		if c.ReleaseYear > 0 {
			year = fmt.Sprintf(" [%d]", c.ReleaseYear)
		}
		b.WriteString(fmt.Sprintf("%d. %s %s%s - %s\n", i+1, icon, c.DisplayTitle, year, kind))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Keyboard partitions the numbered buttons into rows, preserving order, and
// appends a close row.
func (m *Menu) Keyboard() *tg.InlineKeyboardMarkup {
	rows := make([][]tg.InlineKeyboardButton, 0, len(m.Candidates)/buttonsPerRow+2)
	row := []tg.InlineKeyboardButton{}
	for i, c := range m.Candidates {
		row = append(row, tg.InlineKeyboardButton{
			Text:         strconv.Itoa(i + 1),
			CallbackData: EncodeToken(m.ID, c),
		})
		if len(row) == buttonsPerRow {
			rows = append(rows, row)
			row = []tg.InlineKeyboardButton{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []tg.InlineKeyboardButton{{Text: "Cerrar", CallbackData: CloseToken}})
	kb := tg.NewInlineKeyboardMarkup(rows)
	return &kb
}
