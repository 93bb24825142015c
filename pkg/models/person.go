package models

// Person covers voice actors and staff from person_details.
type Person struct {
	PersonID   int64   `json:"personId"`
	Name       *string `json:"name"`
	GivenName  *string `json:"givenName"`
	FamilyName *string `json:"familyName"`
	Birthday   *string `json:"birthday"`
	URL        *string `json:"url"`
	ImageURL   *string `json:"imageUrl"`
	WebsiteURL *string `json:"websiteUrl"`
	Favorites  *int    `json:"favorites"`
	About      *string `json:"about"`
}
