package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alitacodes/Circlo-rental/model"
	userrepo "github.com/alitacodes/Circlo-rental/repository/user"
)

// errors used by controllers

type ErrCode string

const ErrNotFound ErrCode = "USER_NOT_FOUND"

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
	Get(ctx context.Context, userID string) (*model.Profile, error)
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur: ur} }

func (s *service) Get(ctx context.Context, userID string) (*model.Profile, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}

	items, err := s.ur.CountItemsOwned(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.ur.CountBookingsMade(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.Profile{
		User:          *u,
		ItemsCount:    items,
		BookingsCount: bookings,
	}, nil
}
