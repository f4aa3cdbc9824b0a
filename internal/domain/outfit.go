package domain

type OutfitStatus string

const (
	OutfitStatusAvailable OutfitStatus = "AVAILABLE"
	OutfitStatusUnlisted  OutfitStatus = "UNLISTED"
)

type Outfit struct {
	ID              string       `json:"id"`
	OwnerID         string       `json:"owner_id"`
	Owner           *User        `json:"owner,omitempty"` // Populated when fetching outfit details
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	ImageURLs       []string     `json:"image_urls"`
	DailyPriceCents int32        `json:"daily_price_cents"`
	Status          OutfitStatus `json:"status"`
	CreatedOn       string       `json:"created_on"`
	UpdatedOn       string       `json:"updated_on"`
}
