package models

// Track is a single catalogue entry. Search matches against Title, Artist,
// Mood, and Tags.
type Track struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Artist    string   `json:"artist"`
	Duration  string   `json:"duration"`
	Mood      string   `json:"mood"`
	URL       string   `json:"url"`
	Tags      []string `json:"tags"`
	Spotlight bool     `json:"spotlight,omitempty"`
}

// CatalogueAlbum is the marketing-page music widget payload. Immutable.
type CatalogueAlbum struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Curator     string   `json:"curator"`
	ReleaseDate string   `json:"releaseDate"`
	Description string   `json:"description"`
	CoverArt    string   `json:"coverArt"`
	Tags        []string `json:"tags"`
	Tracks      []Track  `json:"tracks"`
}
