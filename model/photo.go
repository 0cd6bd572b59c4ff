// model/photo.go
package model

import "time"

type Photo struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	BookingID  *string   `json:"booking_id,omitempty"`
	URL        string    `json:"url"`
	PhotoType  string    `json:"photo_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}
