package item

type CreateItemReq struct {
	Title       string  `json:"title" validate:"required,min=5"`
	Description string  `json:"description" validate:"required,min=20"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	PriceUnit   string  `json:"price_unit" validate:"omitempty,oneof=hour day week month"`
	Location    string  `json:"location" validate:"required"`
	GeoLocation *string `json:"geo_location"`
	IsVaultItem bool    `json:"is_vault_item"`
	VaultStory  *string `json:"vault_story"`
}
