package media

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/layon940/cine-skeletor-bot/internal/tmdb"
)

const (
	// synopsisLimit is the rendered synopsis budget, in runes.
	synopsisLimit = 750

	sentinelUnrated    = "Sin clasificar"
	sentinelUnknown    = "desconocida"
	sentinelNoSynopsis = "Sin sinopsis disponible."
)

// RenderMovieSheet renders the fact sheet for one fully-fetched movie.
// Pure derivation, no I/O; rendering the same detail twice is identical.
func RenderMovieSheet(d *tmdb.MovieDetails) string {
	b := strings.Builder{}
	writeTitle(&b, "🎬", d.Title, d.OriginalTitle)

	year := ""
	if y := yearOf(d.ReleaseDate); y > 0 {
		year = fmt.Sprintf("%d", y)
	}
	country := firstCountry(nil, d.ProductionCountries)
	writeMetaLine(&b, year, country)

	cert := movieCertification(d, country)
	duration := sentinelUnknown
	if d.Runtime > 0 {
		duration = fmt.Sprintf("%d min", d.Runtime)
	}
	b.WriteString(fmt.Sprintf("🔞 %s   ⏱ %s\n", cert, duration))

	writeGenres(&b, d.Genres)
	writeRating(&b, d.VoteAverage)
	b.WriteString("\n")
	b.WriteString(EscapeHTML(Synopsis(d.Overview)))
	return b.String()
}

// RenderShowSheet renders the fact sheet for one fully-fetched show. Shows
// carry season/episode counts and a year range instead of a runtime.
func RenderShowSheet(d *tmdb.TVDetails) string {
	b := strings.Builder{}
	writeTitle(&b, "📺", d.Name, d.OriginalName)

	years := yearRange(d.FirstAirDate, d.LastAirDate, d.InProduction)
	country := firstCountry(d.OriginCountry, d.ProductionCountries)
	writeMetaLine(&b, years, country)

	cert := showCertification(d, country)
	b.WriteString(fmt.Sprintf("🔞 %s\n", cert))
	b.WriteString(fmt.Sprintf("📺 Temporadas: %d · Episodios: %d\n", d.NumberOfSeasons, d.NumberOfEpisodes))

	writeGenres(&b, d.Genres)
	writeRating(&b, d.VoteAverage)
	b.WriteString("\n")
	b.WriteString(EscapeHTML(Synopsis(d.Overview)))
	return b.String()
}

func writeTitle(b *strings.Builder, icon, title, original string) {
	b.WriteString(fmt.Sprintf("<b>%s %s</b>", icon, EscapeHTML(title)))
	if original != "" && original != title {
		b.WriteString(fmt.Sprintf(" (<i>%s</i>)", EscapeHTML(original)))
	}
	b.WriteString("\n")
}

func writeMetaLine(b *strings.Builder, years, countryCode string) {
	flag, name := CountryDisplay(countryCode)
	if years == "" {
		b.WriteString(fmt.Sprintf("%s %s\n", flag, name))
		return
	}
	b.WriteString(fmt.Sprintf("📅 %s   %s %s\n", years, flag, name))
}

func writeGenres(b *strings.Builder, genres []tmdb.Genre) {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		if name, ok := GenreName(g.ID); ok {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		b.WriteString("🎭 " + strings.Join(names, " | ") + "\n")
	}
}

func writeRating(b *strings.Builder, vote float64) {
	if vote > 0 {
		b.WriteString(fmt.Sprintf("⭐ %.1f/10\n", vote))
	}
}

// yearOf extracts the 4-digit year from a YYYY-MM-DD date, 0 when absent.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	y := 0
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		y = y*10 + int(r-'0')
	}
	return y
}

// yearRange renders "start–end" for ended shows and "start–" for shows still
// airing. The open end renders empty, never a placeholder.
func yearRange(firstAirDate, lastAirDate string, inProduction bool) string {
	start := yearOf(firstAirDate)
	if start == 0 {
		return ""
	}
	end := ""
	if !inProduction {
		if y := yearOf(lastAirDate); y > 0 && y != start {
			end = fmt.Sprintf("%d", y)
		}
		if end == "" && yearOf(lastAirDate) == start {
			return fmt.Sprintf("%d", start)
		}
	}
	return fmt.Sprintf("%d–%s", start, end)
}

// firstCountry resolves the sheet's country: first origin country, else first
// production country, else empty (rendered as the unknown sentinel).
func firstCountry(origin []string, production []tmdb.ProductionCountry) string {
	for _, c := range origin {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	if len(production) > 0 {
		return production[0].Iso31661
	}
	return ""
}

// movieCertification prefers a release certification matching the resolved
// country, else the first non-empty one, else the unrated sentinel.
func movieCertification(d *tmdb.MovieDetails, country string) string {
	if d.ReleaseDates == nil {
		return sentinelUnrated
	}
	first := ""
	for _, region := range d.ReleaseDates.Results {
		for _, rd := range region.ReleaseDates {
			cert := strings.TrimSpace(rd.Certification)
			if cert == "" {
				continue
			}
			if strings.EqualFold(region.Iso31661, country) {
				return cert
			}
			if first == "" {
				first = cert
			}
		}
	}
	if first != "" {
		return first
	}
	return sentinelUnrated
}

// showCertification prefers a content rating matching the resolved country,
// else the first non-empty one, else the unrated sentinel.
func showCertification(d *tmdb.TVDetails, country string) string {
	if d.ContentRatings == nil {
		return sentinelUnrated
	}
	first := ""
	for _, cr := range d.ContentRatings.Results {
		rating := strings.TrimSpace(cr.Rating)
		if rating == "" {
			continue
		}
		if strings.EqualFold(cr.Iso31661, country) {
			return rating
		}
		if first == "" {
			first = rating
		}
	}
	if first != "" {
		return first
	}
	return sentinelUnrated
}

var synopsisWhitespaceRe = regexp.MustCompile(`\s+`)

// Synopsis collapses internal whitespace runs and truncates to the character
// budget on a rune boundary, so a multi-byte character is never split.
func Synopsis(overview string) string {
	s := strings.TrimSpace(synopsisWhitespaceRe.ReplaceAllString(overview, " "))
	if s == "" {
		return sentinelNoSynopsis
	}
	runes := []rune(s)
	if len(runes) <= synopsisLimit {
		return s
	}
	return string(runes[:synopsisLimit-1]) + "…"
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes the markup-sensitive characters individually so
// legitimate punctuation in titles and synopses survives.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
