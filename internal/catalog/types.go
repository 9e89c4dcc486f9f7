package catalog

// Movie is a list entry from the now playing, upcoming, popular and search endpoints.
type Movie struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int64   `json:"vote_count"`
	GenreIDs      []int64 `json:"genre_ids,omitempty"`
}

// DisplayTitle prefers the localized title.
func (m Movie) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.OriginalTitle
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the single-movie response.
type MovieDetails struct {
	Movie
	Tagline string  `json:"tagline"`
	Runtime int     `json:"runtime"`
	Genres  []Genre `json:"genres"`
}

type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
}

type videos struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// PickTrailer returns the key of the first YouTube trailer, falling back to
// any YouTube video that is not behind-the-scenes footage. Empty if none.
func PickTrailer(vs []Video) string {
	for _, v := range vs {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return v.Key
		}
	}
	for _, v := range vs {
		if v.Site == "YouTube" && v.Type != "Behind the Scenes" {
			return v.Key
		}
	}
	return ""
}
