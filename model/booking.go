// model/booking.go
package model

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is a status an owner may set.
// "pending" is the initial state only; it is never a transition target.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingConfirmed, BookingRejected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ItemID        string        `json:"item_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// BookingRow is a booking as listed for a user, joined with the item and
// the counterparty. For the renter view Counterparty* is the item's owner;
// for the owner view it is the renter.
type BookingRow struct {
	Booking
	ItemTitle         string  `json:"item_title"`
	ItemPrice         float64 `json:"price"`
	ItemPriceUnit     string  `json:"price_unit"`
	CounterpartyName  string  `json:"counterparty_name"`
	CounterpartyPhone string  `json:"counterparty_phone"`
}
