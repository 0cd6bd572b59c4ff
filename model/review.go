// model/review.go
package model

import "time"

type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	// Joined on read.
	ReviewerName  string `json:"reviewer_name,omitempty"`
	ReviewerKarma int    `json:"reviewer_karma,omitempty"`
}
