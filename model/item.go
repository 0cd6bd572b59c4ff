// model/item.go
package model

import "time"

type Item struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	PriceUnit   string    `json:"price_unit"`
	Location    string    `json:"location"`
	GeoLocation *string   `json:"geo_location,omitempty"`
	IsVaultItem bool      `json:"is_vault_item"`
	VaultStory  *string   `json:"vault_story,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemSummary is an item as returned by the listing endpoint: the row plus
// owner info and review rollups joined in.
type ItemSummary struct {
	Item
	OwnerName   string  `json:"owner_name"`
	OwnerKarma  int     `json:"owner_karma"`
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

// ItemDetail adds the owner's contact fields for the single-item view.
type ItemDetail struct {
	ItemSummary
	OwnerEmail string `json:"owner_email"`
	OwnerPhone string `json:"owner_phone"`
}

type Category struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
