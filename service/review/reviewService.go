package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alitacodes/Circlo-rental/model"
	bookingrepo "github.com/alitacodes/Circlo-rental/repository/booking"
	reviewrepo "github.com/alitacodes/Circlo-rental/repository/review"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotEligible     ErrCode = "NOT_ELIGIBLE"
	ErrAlreadyReviewed ErrCode = "ALREADY_REVIEWED"
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

type Service interface {
	// Create records a review. The reviewer must hold a completed booking
	// on the item and must not have reviewed it before.
	Create(ctx context.Context, userID, itemID string, rating int, comment string) (string, error)
}

type service struct {
	rr reviewrepo.Repo
	br bookingrepo.Repo
}

func New(rr reviewrepo.Repo, br bookingrepo.Repo) Service {
	return &service{rr: rr, br: br}
}

func (s *service) Create(ctx context.Context, userID, itemID string, rating int, comment string) (string, error) {
	completed, err := s.br.HasCompleted(ctx, userID, itemID)
	if err != nil {
		return "", err
	}
	if !completed {
		return "", makeErr(ErrNotEligible)
	}

	reviewed, err := s.rr.Exists(ctx, userID, itemID)
	if err != nil {
		return "", err
	}
	if reviewed {
		return "", makeErr(ErrAlreadyReviewed)
	}

	rev := &model.Review{
		ID:      uuid.NewString(),
		UserID:  userID,
		ItemID:  itemID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.rr.Insert(ctx, rev); err != nil {
		// The (user_id, item_id) unique constraint decides concurrent
		// duplicate submissions.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", makeErr(ErrAlreadyReviewed)
		}
		return "", err
	}
	return rev.ID, nil
}
