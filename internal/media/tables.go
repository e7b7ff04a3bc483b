package media

import "strings"

// genreNames maps TMDB genre IDs to their Spanish names. IDs with no entry
// are dropped from rendered output, never shown as blanks.
var genreNames = map[int]string{
	28:    "Acción",
	12:    "Aventura",
	16:    "Animación",
	35:    "Comedia",
	80:    "Crimen",
	99:    "Documental",
	18:    "Drama",
	10751: "Familia",
	14:    "Fantasía",
	36:    "Historia",
	27:    "Terror",
	10402: "Música",
	9648:  "Misterio",
	10749: "Romance",
	878:   "Ciencia ficción",
	53:    "Suspenso",
	10752: "Bélica",
	37:    "Western",
	// TV-only genres
	10759: "Acción y aventura",
	10762: "Infantil",
	10763: "Noticias",
	10764: "Reality",
	10765: "Ciencia ficción y fantasía",
	10766: "Telenovela",
	10767: "Entrevistas",
	10768: "Guerra y política",
}

// GenreName resolves a TMDB genre ID; ok is false for unmapped IDs.
func GenreName(id int) (string, bool) {
	name, ok := genreNames[id]
	return name, ok
}

// GenreIDByName resolves a Spanish genre name (case-insensitive) back to its
// TMDB ID, for the genre-filtered recommendation command.
func GenreIDByName(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range genreNames {
		if strings.ToLower(n) == name {
			return id, true
		}
	}
	return 0, false
}

type countryInfo struct {
	Flag string
	Name string
}

// countries maps ISO 3166-1 alpha-2 codes to a flag glyph and a Spanish name.
// Unmapped codes render with the generic flag and the raw code.
var countries = map[string]countryInfo{
	"US": {"🇺🇸", "Estados Unidos"},
	"GB": {"🇬🇧", "Reino Unido"},
	"ES": {"🇪🇸", "España"},
	"MX": {"🇲🇽", "México"},
	"AR": {"🇦🇷", "Argentina"},
	"CO": {"🇨🇴", "Colombia"},
	"CL": {"🇨🇱", "Chile"},
	"FR": {"🇫🇷", "Francia"},
	"DE": {"🇩🇪", "Alemania"},
	"IT": {"🇮🇹", "Italia"},
	"JP": {"🇯🇵", "Japón"},
	"KR": {"🇰🇷", "Corea del Sur"},
	"CN": {"🇨🇳", "China"},
	"IN": {"🇮🇳", "India"},
	"BR": {"🇧🇷", "Brasil"},
	"CA": {"🇨🇦", "Canadá"},
	"AU": {"🇦🇺", "Australia"},
	"NZ": {"🇳🇿", "Nueva Zelanda"},
	"RU": {"🇷🇺", "Rusia"},
	"SE": {"🇸🇪", "Suecia"},
	"NO": {"🇳🇴", "Noruega"},
	"DK": {"🇩🇰", "Dinamarca"},
	"NL": {"🇳🇱", "Países Bajos"},
	"BE": {"🇧🇪", "Bélgica"},
	"IE": {"🇮🇪", "Irlanda"},
	"PL": {"🇵🇱", "Polonia"},
	"TR": {"🇹🇷", "Turquía"},
}

const (
	genericFlag    = "🏳️"
	unknownCountry = "desconocido"
)

// CountryDisplay maps a country code to its flag glyph and human-readable
// name. An empty code yields the unknown sentinel; an unmapped code yields
// the generic flag and the raw code.
func CountryDisplay(code string) (flag, name string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return genericFlag, unknownCountry
	}
	if info, ok := countries[code]; ok {
		return info.Flag, info.Name
	}
	return genericFlag, code
}
