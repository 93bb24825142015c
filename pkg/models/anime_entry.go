package models

// AnimeEntry is the slim record served by the demo deployment from the `animes` table.
type AnimeEntry struct {
	ID    int64   `json:"id"`
	Title *string `json:"title"`
	Year  *int    `json:"year"`
	Genre *string `json:"genre"`
}
