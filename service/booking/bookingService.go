package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alitacodes/Circlo-rental/model"
	bookingrepo "github.com/alitacodes/Circlo-rental/repository/booking"
)

// errors used by controllers

type ErrCode string

const (
	ErrItemNotFound  ErrCode = "ITEM_NOT_FOUND"
	ErrSelfBooking   ErrCode = "SELF_BOOKING"
	ErrDateConflict  ErrCode = "DATE_CONFLICT"
	ErrInvalidRange  ErrCode = "INVALID_RANGE"
	ErrInvalidStatus ErrCode = "INVALID_STATUS"
	ErrNotAuthorized ErrCode = "NOT_AUTHORIZED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
)

type Service interface {
	// Create books itemID for renterID over [start, end], both dates
	// inclusive. Fails when the item is absent, owned by the renter, or
	// already booked for an intersecting range.
	Create(ctx context.Context, renterID, itemID string, start, end time.Time) (*model.Booking, error)

	ListForUser(ctx context.Context, userID string, role Role) ([]model.BookingRow, error)

	// UpdateStatus sets a booking's status on behalf of the item's owner.
	// A missing booking and a booking on someone else's item both come
	// back as ErrNotAuthorized.
	UpdateStatus(ctx context.Context, actingUserID, bookingID string, status model.BookingStatus) error
}

type service struct {
	db *sql.DB
	r  bookingrepo.Repo
}

func New(db *sql.DB, r bookingrepo.Repo) Service {
	return &service{db: db, r: r}
}

func (s *service) Create(ctx context.Context, renterID, itemID string, start, end time.Time) (b *model.Booking, err error) {
	if end.Before(start) {
		return nil, makeErr(ErrInvalidRange)
	}

	// The overlap check and the insert must act as one critical section
	// per item: the FOR UPDATE lock on the item row serializes concurrent
	// Create calls, and the schema's exclusion constraint backstops it.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	ownerID, err := s.r.ItemOwnerForUpdate(ctx, tx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrItemNotFound)
		}
		return nil, err
	}
	if ownerID == renterID {
		return nil, makeErr(ErrSelfBooking)
	}

	overlap, err := s.r.HasOverlap(ctx, tx, itemID, start, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, makeErr(ErrDateConflict)
	}

	b = &model.Booking{
		ID:            uuid.NewString(),
		UserID:        renterID,
		ItemID:        itemID,
		StartDate:     start,
		EndDate:       end,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentUnpaid,
	}
	if err = s.r.Insert(ctx, tx, b); err != nil {
		if isExclusionViolation(err) {
			err = makeErr(ErrDateConflict)
		}
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		if isExclusionViolation(err) {
			err = makeErr(ErrDateConflict)
		}
		return nil, err
	}
	return b, nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation
}

func (s *service) ListForUser(ctx context.Context, userID string, role Role) ([]model.BookingRow, error) {
	if role == RoleOwner {
		return s.r.ListByOwner(ctx, userID)
	}
	return s.r.ListByRenter(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, actingUserID, bookingID string, status model.BookingStatus) error {
	if !model.ValidBookingStatus(status) {
		return makeErr(ErrInvalidStatus)
	}
	ok, err := s.r.UpdateStatusOwned(ctx, bookingID, actingUserID, status)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotAuthorized)
	}
	return nil
}
