package tmdb

// SearchMoviesResponse is the response from TMDB movie search.
type SearchMoviesResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// MovieResult is a movie from TMDB search results.
type MovieResult struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    *string `json:"poster_path"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids"`
}

// SearchTVResponse is the response from TMDB TV search.
type SearchTVResponse struct {
	Page         int        `json:"page"`
	Results      []TVResult `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// TVResult is a TV series from TMDB search results.
type TVResult struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	OriginalName  string   `json:"original_name"`
	Overview      string   `json:"overview"`
	FirstAirDate  string   `json:"first_air_date"`
	PosterPath    *string  `json:"poster_path"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
	Popularity    float64  `json:"popularity"`
	GenreIDs      []int    `json:"genre_ids"`
	OriginCountry []string `json:"origin_country"`
}

// TrendingResponse is the response from the TMDB trending endpoint.
type TrendingResponse struct {
	Page    int           `json:"page"`
	Results []MultiResult `json:"results"`
}

// MultiResult is an entry from a mixed movie/TV listing. MediaType is set by
// the trending endpoint; search endpoints omit it.
type MultiResult struct {
	ID            int     `json:"id"`
	MediaType     string  `json:"media_type"`
	Title         string  `json:"title"`
	Name          string  `json:"name"`
	OriginalTitle string  `json:"original_title"`
	OriginalName  string  `json:"original_name"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	FirstAirDate  string  `json:"first_air_date"`
	PosterPath    *string `json:"poster_path"`
	GenreIDs      []int   `json:"genre_ids"`
}

// Genre represents a genre from TMDB.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCountry represents a production country from TMDB details.
type ProductionCountry struct {
	Iso31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

// MovieDetails is the detailed movie info from TMDB, with release dates
// appended via append_to_response.
type MovieDetails struct {
	ID                  int                   `json:"id"`
	Title               string                `json:"title"`
	OriginalTitle       string                `json:"original_title"`
	Overview            string                `json:"overview"`
	ReleaseDate         string                `json:"release_date"`
	PosterPath          *string               `json:"poster_path"`
	VoteAverage         float64               `json:"vote_average"`
	Runtime             int                   `json:"runtime"`
	Status              string                `json:"status"`
	Tagline             string                `json:"tagline"`
	Genres              []Genre               `json:"genres"`
	ProductionCountries []ProductionCountry   `json:"production_countries"`
	ReleaseDates        *ReleaseDatesResponse `json:"release_dates,omitempty"`
}

// TVDetails is the detailed TV series info from TMDB, with content ratings
// appended via append_to_response.
type TVDetails struct {
	ID                  int                     `json:"id"`
	Name                string                  `json:"name"`
	OriginalName        string                  `json:"original_name"`
	Overview            string                  `json:"overview"`
	FirstAirDate        string                  `json:"first_air_date"`
	LastAirDate         string                  `json:"last_air_date"`
	InProduction        bool                    `json:"in_production"`
	PosterPath          *string                 `json:"poster_path"`
	VoteAverage         float64                 `json:"vote_average"`
	Status              string                  `json:"status"`
	Genres              []Genre                 `json:"genres"`
	OriginCountry       []string                `json:"origin_country"`
	ProductionCountries []ProductionCountry     `json:"production_countries"`
	NumberOfSeasons     int                     `json:"number_of_seasons"`
	NumberOfEpisodes    int                     `json:"number_of_episodes"`
	EpisodeRunTime      []int                   `json:"episode_run_time"`
	ContentRatings      *ContentRatingsResponse `json:"content_ratings,omitempty"`
}

// ReleaseDatesResponse is the appended /movie/{id}/release_dates sub-resource.
type ReleaseDatesResponse struct {
	Results []ReleaseDatesByRegion `json:"results"`
}

// ReleaseDatesByRegion contains release dates for one country.
type ReleaseDatesByRegion struct {
	Iso31661     string        `json:"iso_3166_1"`
	ReleaseDates []ReleaseDate `json:"release_dates"`
}

// ReleaseDate is a single release entry; Certification may be empty.
type ReleaseDate struct {
	Certification string `json:"certification"`
	ReleaseDate   string `json:"release_date"`
	Type          int    `json:"type"`
}

// ContentRatingsResponse is the appended /tv/{id}/content_ratings sub-resource.
type ContentRatingsResponse struct {
	Results []ContentRating `json:"results"`
}

// ContentRating is a TV content rating for one country.
type ContentRating struct {
	Iso31661 string `json:"iso_3166_1"`
	Rating   string `json:"rating"`
}

// ErrorResponse is an error from the TMDB API.
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
