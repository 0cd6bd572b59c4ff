package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/alitacodes/Circlo-rental/model"
)

type Repo interface {
	// Creation path. All three run inside the caller's transaction; the
	// FOR UPDATE lock on the item row serializes concurrent bookings for
	// the same item.
	ItemOwnerForUpdate(ctx context.Context, tx *sql.Tx, itemID string) (string, error)
	HasOverlap(ctx context.Context, tx *sql.Tx, itemID string, start, end time.Time) (bool, error)
	Insert(ctx context.Context, tx *sql.Tx, b *model.Booking) error

	ListByRenter(ctx context.Context, userID string) ([]model.BookingRow, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.BookingRow, error)

	// UpdateStatusOwned sets the status iff ownerID owns the booked item.
	// Returns false when the booking is absent or owned by someone else.
	UpdateStatusOwned(ctx context.Context, bookingID, ownerID string, status model.BookingStatus) (bool, error)

	HasCompleted(ctx context.Context, userID, itemID string) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ItemOwnerForUpdate(ctx context.Context, tx *sql.Tx, itemID string) (string, error) {
	const q = `
		SELECT owner_id
		FROM items
		WHERE id = $1
		FOR UPDATE`
	var ownerID string
	err := tx.QueryRowContext(ctx, q, itemID).Scan(&ownerID)
	return ownerID, err
}

func (r *repo) HasOverlap(ctx context.Context, tx *sql.Tx, itemID string, start, end time.Time) (bool, error) {
	// Inclusive interval intersection against every live booking.
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1
			AND status NOT IN ('cancelled', 'rejected')
			AND (
				(start_date <= $2 AND end_date >= $2) OR
				(start_date <= $3 AND end_date >= $3) OR
				(start_date >= $2 AND end_date <= $3)
			)
		)`
	var overlap bool
	err := tx.QueryRowContext(ctx, q, itemID, start, end).Scan(&overlap)
	return overlap, err
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `
		INSERT INTO bookings (id, user_id, item_id, start_date, end_date, status, payment_status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
		RETURNING created_at`
	return tx.QueryRowContext(ctx, q,
		b.ID, b.UserID, b.ItemID, b.StartDate, b.EndDate, b.Status, b.PaymentStatus,
	).Scan(&b.CreatedAt)
}

func (r *repo) ListByRenter(ctx context.Context, userID string) ([]model.BookingRow, error) {
	const q = `
		SELECT b.id, b.user_id, b.item_id, b.start_date, b.end_date, b.status, b.payment_status, b.created_at,
		       i.title AS item_title, i.price, i.price_unit,
		       u.name AS owner_name, u.phone AS owner_phone
		FROM bookings b
		JOIN items i ON b.item_id = i.id
		JOIN users u ON i.owner_id = u.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`
	return r.list(ctx, q, userID)
}

func (r *repo) ListByOwner(ctx context.Context, ownerID string) ([]model.BookingRow, error) {
	const q = `
		SELECT b.id, b.user_id, b.item_id, b.start_date, b.end_date, b.status, b.payment_status, b.created_at,
		       i.title AS item_title, i.price, i.price_unit,
		       u.name AS renter_name, u.phone AS renter_phone
		FROM bookings b
		JOIN items i ON b.item_id = i.id
		JOIN users u ON b.user_id = u.id
		WHERE i.owner_id = $1
		ORDER BY b.created_at DESC`
	return r.list(ctx, q, ownerID)
}

func (r *repo) list(ctx context.Context, q, userID string) ([]model.BookingRow, error) {
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BookingRow
	for rows.Next() {
		var b model.BookingRow
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.ItemID, &b.StartDate, &b.EndDate, &b.Status, &b.PaymentStatus, &b.CreatedAt,
			&b.ItemTitle, &b.ItemPrice, &b.ItemPriceUnit,
			&b.CounterpartyName, &b.CounterpartyPhone,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) UpdateStatusOwned(ctx context.Context, bookingID, ownerID string, status model.BookingStatus) (bool, error) {
	const q = `
		UPDATE bookings b
		SET status = $3
		FROM items i
		WHERE b.item_id = i.id
		AND b.id = $1
		AND i.owner_id = $2`
	res, err := r.db.ExecContext(ctx, q, bookingID, ownerID, status)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff > 0, nil
}

func (r *repo) HasCompleted(ctx context.Context, userID, itemID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND item_id = $2 AND status = 'completed'
		)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, userID, itemID).Scan(&ok)
	return ok, err
}
