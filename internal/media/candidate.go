package media

import (
	"github.com/layon940/cine-skeletor-bot/internal/tmdb"
)

// Candidate is a search-result record for one title, before full detail is
// fetched. Ephemeral: it lives only inside one request/response cycle.
type Candidate struct {
	ID            int
	Kind          Kind
	DisplayTitle  string
	OriginalTitle string
	ReleaseYear   int
	GenreIDs      []int
	Overview      string
	PosterPath    string
}

// GenreLabels maps the candidate's genre IDs through the static table,
// silently dropping unmapped IDs.
func (c Candidate) GenreLabels() []string {
	names := make([]string, 0, len(c.GenreIDs))
	for _, id := range c.GenreIDs {
		if name, ok := GenreName(id); ok {
			names = append(names, name)
		}
	}
	return names
}

// CandidateFromMovie converts a movie search result.
func CandidateFromMovie(m tmdb.MovieResult) Candidate {
	return Candidate{
		ID:            m.ID,
		Kind:          KindMovie,
		DisplayTitle:  m.Title,
		OriginalTitle: m.OriginalTitle,
		ReleaseYear:   yearOf(m.ReleaseDate),
		GenreIDs:      m.GenreIDs,
		Overview:      m.Overview,
		PosterPath:    deref(m.PosterPath),
	}
}

// CandidateFromShow converts a TV search result.
func CandidateFromShow(s tmdb.TVResult) Candidate {
	return Candidate{
		ID:            s.ID,
		Kind:          KindShow,
		DisplayTitle:  s.Name,
		OriginalTitle: s.OriginalName,
		ReleaseYear:   yearOf(s.FirstAirDate),
		GenreIDs:      s.GenreIDs,
		Overview:      s.Overview,
		PosterPath:    deref(s.PosterPath),
	}
}

// CandidateFromMulti converts a mixed-listing entry, resolving its kind
// through the inference heuristic.
func CandidateFromMulti(m tmdb.MultiResult) Candidate {
	kind := InferKind(m.MediaType, m.FirstAirDate)
	title, original, date := m.Title, m.OriginalTitle, m.ReleaseDate
	if kind == KindShow {
		title, original, date = m.Name, m.OriginalName, m.FirstAirDate
	}
	return Candidate{
		ID:            m.ID,
		Kind:          kind,
		DisplayTitle:  title,
		OriginalTitle: original,
		ReleaseYear:   yearOf(date),
		GenreIDs:      m.GenreIDs,
		Overview:      m.Overview,
		PosterPath:    deref(m.PosterPath),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MergeCandidates concatenates movie results first, then show results, in
// API-returned order, truncated to the menu bound.
func MergeCandidates(movies []tmdb.MovieResult, shows []tmdb.TVResult) []Candidate {
	out := make([]Candidate, 0, len(movies)+len(shows))
	for _, m := range movies {
		out = append(out, CandidateFromMovie(m))
	}
	for _, s := range shows {
		out = append(out, CandidateFromShow(s))
	}
	if len(out) > MaxMenuItems {
		out = out[:MaxMenuItems]
	}
	return out
}
