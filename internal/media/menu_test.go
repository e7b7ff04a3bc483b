package media

import (
	"strings"
	"testing"

	"github.com/layon940/cine-skeletor-bot/internal/tmdb"
)

func candidates(n int) []Candidate {
	out := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		kind := KindMovie
		if i%2 == 1 {
			kind = KindShow
		}
		out = append(out, Candidate{
			ID:           100 + i,
			Kind:         kind,
			DisplayTitle: "Title",
			ReleaseYear:  2000 + i,
		})
	}
	return out
}

func TestEncodeDecodeToken(t *testing.T) {
	for _, kind := range []Kind{KindMovie, KindShow} {
		c := Candidate{ID: 42, Kind: kind}
		token := EncodeToken("ab12cd34", c)
		menuID, gotKind, id, ok := DecodeToken(token)
		if !ok {
			t.Fatalf("DecodeToken(%q) rejected", token)
		}
		if menuID != "ab12cd34" || gotKind != kind || id != 42 {
			t.Errorf("DecodeToken(%q) = %q, %v, %d", token, menuID, gotKind, id)
		}
	}
}

func TestDecodeTokenRejectsMalformed(t *testing.T) {
	// Wrong arity, wrong prefix, bad kind, and non-positive or non-numeric IDs.
	bad := []string{
		"",
		"close",
		"pick",
		"pick:abc:movie",
		"pick:abc:movie:42:extra",
		"grab:abc:movie:42",
		"pick:abc:film:42",
		"pick:abc:movie:x",
		"pick:abc:movie:-3",
		"pick:abc:movie:0",
	}
	for _, token := range bad {
		if _, _, _, ok := DecodeToken(token); ok {
			t.Errorf("DecodeToken(%q) accepted", token)
		}
	}
}

func TestNewMenuBoundsCandidates(t *testing.T) {
	m := NewMenu("query", candidates(25))
	if len(m.Candidates) != MaxMenuItems {
		t.Errorf("menu holds %d candidates, want %d", len(m.Candidates), MaxMenuItems)
	}
	if m.ID == "" {
		t.Error("menu ID is empty")
	}
}

func TestKeyboardRows(t *testing.T) {
	m := NewMenu("query", candidates(7))
	kb := m.Keyboard()

	// 7 buttons partition into rows of 5 and 2, plus the close row.
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("keyboard has %d rows, want 3", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 5 || len(kb.InlineKeyboard[1]) != 2 {
		t.Errorf("row sizes = %d, %d, want 5, 2", len(kb.InlineKeyboard[0]), len(kb.InlineKeyboard[1]))
	}

	closeRow := kb.InlineKeyboard[2]
	if len(closeRow) != 1 || closeRow[0].CallbackData != CloseToken {
		t.Errorf("last row = %+v, want single close button", closeRow)
	}

	// Button order follows candidate order and every token round-trips.
	n := 0
	for _, row := range kb.InlineKeyboard[:2] {
		for _, btn := range row {
			menuID, kind, id, ok := DecodeToken(btn.CallbackData)
			if !ok {
				t.Fatalf("button %d carries undecodable token %q", n, btn.CallbackData)
			}
			c := m.Candidates[n]
			if menuID != m.ID || kind != c.Kind || id != c.ID {
				t.Errorf("button %d decodes to %q/%v/%d, want %q/%v/%d", n, menuID, kind, id, m.ID, c.Kind, c.ID)
			}
			n++
		}
	}
}

func TestListing(t *testing.T) {
	m := NewMenu("query", []Candidate{
		{ID: 1, Kind: KindMovie, DisplayTitle: "Dune", ReleaseYear: 2021},
		{ID: 2, Kind: KindShow, DisplayTitle: "Dark", ReleaseYear: 0},
	})
	got := m.Listing()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("listing has %d lines: %q", len(lines), got)
	}
	if lines[0] != "1. 🎬 Dune [2021] - película" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "2. 📺 Dark - serie" {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestMergeCandidatesMoviesFirst(t *testing.T) {
	movies := []tmdb.MovieResult{
		{ID: 1, Title: "A", ReleaseDate: "2001-01-01"},
		{ID: 2, Title: "B", ReleaseDate: "2002-01-01"},
	}
	shows := []tmdb.TVResult{
		{ID: 3, Name: "C", FirstAirDate: "2003-01-01"},
	}
	got := MergeCandidates(movies, shows)
	if len(got) != 3 {
		t.Fatalf("merged %d candidates, want 3", len(got))
	}
	wantKinds := []Kind{KindMovie, KindMovie, KindShow}
	wantIDs := []int{1, 2, 3}
	for i, c := range got {
		if c.Kind != wantKinds[i] || c.ID != wantIDs[i] {
			t.Errorf("candidate %d = %v/%d, want %v/%d", i, c.Kind, c.ID, wantKinds[i], wantIDs[i])
		}
	}
}

func TestMergeCandidatesTruncates(t *testing.T) {
	movies := make([]tmdb.MovieResult, 8)
	shows := make([]tmdb.TVResult, 8)
	for i := range movies {
		movies[i] = tmdb.MovieResult{ID: i + 1, Title: "M"}
	}
	for i := range shows {
		shows[i] = tmdb.TVResult{ID: i + 100, Name: "S"}
	}
	got := MergeCandidates(movies, shows)
	if len(got) != MaxMenuItems {
		t.Fatalf("merged %d candidates, want %d", len(got), MaxMenuItems)
	}
	// Movies fill the list before any show appears.
	for i, c := range got[:8] {
		if c.Kind != KindMovie {
			t.Errorf("candidate %d kind = %v, want movie", i, c.Kind)
		}
	}
	for i, c := range got[8:] {
		if c.Kind != KindShow {
			t.Errorf("candidate %d kind = %v, want tv", i+8, c.Kind)
		}
	}
}
