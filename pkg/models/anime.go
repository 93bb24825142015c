package models

// Anime is one row of the `details` table (MyAnimeList export).
// Every field except MalID may be NULL in the store and is serialized as null.
type Anime struct {
	MalID         int64    `json:"malId"`
	Title         *string  `json:"title"`
	TitleJapanese *string  `json:"titleJapanese"`
	TitleEnglish  *string  `json:"titleEnglish"`
	Type          *string  `json:"type"`
	Source        *string  `json:"source"`
	Episodes      *int     `json:"episodes"`
	Status        *string  `json:"status"`
	AiredFrom     *string  `json:"airedFrom"`
	AiredTo       *string  `json:"airedTo"`
	Duration      *string  `json:"duration"`
	Rating        *string  `json:"rating"`
	Score         *float64 `json:"score"`
	ScoredBy      *int     `json:"scoredBy"`
	Rank          *int     `json:"rank"`
	Popularity    *int     `json:"popularity"`
	Members       *int     `json:"members"`
	Favorites     *int     `json:"favorites"`
	Synopsis      *string  `json:"synopsis"`
	Background    *string  `json:"background"`
	Premiered     *string  `json:"premiered"`
	Broadcast     *string  `json:"broadcast"`
	Studios       *string  `json:"studios"`
	Genres        *string  `json:"genres"`
	URL           *string  `json:"url"`
	ImageURL      *string  `json:"imageUrl"`
	TrailerURL    *string  `json:"trailerUrl"`
}
