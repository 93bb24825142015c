package models

type Character struct {
	CharacterID int64   `json:"characterId"`
	Name        *string `json:"name"`
	NameKanji   *string `json:"nameKanji"`
	URL         *string `json:"url"`
	ImageURL    *string `json:"imageUrl"`
	About       *string `json:"about"`
	Favorites   *int    `json:"favorites"`
}
