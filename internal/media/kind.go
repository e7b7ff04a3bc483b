package media

// Kind discriminates movies from TV shows in callback tokens and API paths.
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "tv"
)

// ParseKind validates a kind discriminator coming back from a callback token.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindMovie:
		return KindMovie, true
	case KindShow:
		return KindShow, true
	}
	return "", false
}

// InferKind classifies a listing entry. An explicit media_type wins; without
// one, the presence of a first_air_date (a show-only attribute) marks a show.
// This is a heuristic inherited from the upstream API, not a guarantee:
// mixed listings carry media_type, plain search results do not.
func InferKind(mediaType, firstAirDate string) Kind {
	switch mediaType {
	case "movie":
		return KindMovie
	case "tv":
		return KindShow
	}
	if firstAirDate != "" {
		return KindShow
	}
	return KindMovie
}
