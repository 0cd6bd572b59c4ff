package item

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/alitacodes/Circlo-rental/model"
	itemrepo "github.com/alitacodes/Circlo-rental/repository/item"
	photorepo "github.com/alitacodes/Circlo-rental/repository/photo"
	reviewrepo "github.com/alitacodes/Circlo-rental/repository/review"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound ErrCode = "ITEM_NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
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

// DefaultPageSize is the listing page size when the caller sends none.
const DefaultPageSize = 12

type Filter = itemrepo.Filter

type CreateInput struct {
	Title       string
	Description string
	Category    string
	Price       float64
	PriceUnit   string
	Location    string
	GeoLocation *string
	IsVaultItem bool
	VaultStory  *string
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ListResult struct {
	Items      []model.ItemSummary
	Pagination Pagination
}

type DetailResult struct {
	Item    *model.ItemDetail
	Reviews []model.Review
	Photos  []model.Photo
}

type Service interface {
	Create(ctx context.Context, ownerID string, in CreateInput) (string, error)
	List(ctx context.Context, f Filter, page, limit int) (*ListResult, error)
	Detail(ctx context.Context, id string) (*DetailResult, error)
	Categories(ctx context.Context) ([]model.Category, error)
}

type service struct {
	ir itemrepo.Repo
	rr reviewrepo.Repo
	pr photorepo.Repo
}

func New(ir itemrepo.Repo, rr reviewrepo.Repo, pr photorepo.Repo) Service {
	return &service{ir: ir, rr: rr, pr: pr}
}

func (s *service) Create(ctx context.Context, ownerID string, in CreateInput) (string, error) {
	if in.Title == "" || in.Category == "" || in.Location == "" || in.Price <= 0 {
		return "", makeErr(ErrBadInput)
	}
	if in.PriceUnit == "" {
		in.PriceUnit = "day"
	}

	it := &model.Item{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		PriceUnit:   in.PriceUnit,
		Location:    in.Location,
		GeoLocation: in.GeoLocation,
		IsVaultItem: in.IsVaultItem,
		VaultStory:  in.VaultStory,
	}
	if err := s.ir.Insert(ctx, it); err != nil {
		return "", err
	}
	return it.ID, nil
}

func (s *service) List(ctx context.Context, f Filter, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	offset := (page - 1) * limit

	items, err := s.ir.List(ctx, f, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.ir.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items: items,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (s *service) Detail(ctx context.Context, id string) (*DetailResult, error) {
	it, err := s.ir.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}

	reviews, err := s.rr.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.pr.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}

	return &DetailResult{Item: it, Reviews: reviews, Photos: photos}, nil
}

func (s *service) Categories(ctx context.Context) ([]model.Category, error) {
	return s.ir.Categories(ctx)
}
