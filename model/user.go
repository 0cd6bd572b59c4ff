package model

import "time"

type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Phone            string    `json:"phone"`
	AadhaarEncrypted *string   `json:"-"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	KarmaPoints      int       `json:"karma_points"`
	JoinedDate       time.Time `json:"joined_date"`
}

// RegisterReq represents user registration payload
// swagger:model RegisterReq
type RegisterReq struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required,min=7"`
	Aadhaar  string `json:"aadhaar" validate:"omitempty,len=12,numeric"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Profile is the /profile view: the user row plus derived counts.
type Profile struct {
	User
	ItemsCount    int64 `json:"items_count"`
	BookingsCount int64 `json:"bookings_count"`
}
