// service/item/item_service_test.go
package item_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alitacodes/Circlo-rental/model"
	itemrepo "github.com/alitacodes/Circlo-rental/repository/item"
	itemsvc "github.com/alitacodes/Circlo-rental/service/item"
)

type itemRepoMock struct {
	insertFn func(ctx context.Context, it *model.Item) error
	listFn   func(ctx context.Context, f itemrepo.Filter, limit, offset int) ([]model.ItemSummary, error)
	countFn  func(ctx context.Context, f itemrepo.Filter) (int64, error)
	detailFn func(ctx context.Context, id string) (*model.ItemDetail, error)
}

func (m *itemRepoMock) Insert(ctx context.Context, it *model.Item) error {
	return m.insertFn(ctx, it)
}
func (m *itemRepoMock) List(ctx context.Context, f itemrepo.Filter, limit, offset int) ([]model.ItemSummary, error) {
	return m.listFn(ctx, f, limit, offset)
}
func (m *itemRepoMock) Count(ctx context.Context, f itemrepo.Filter) (int64, error) {
	return m.countFn(ctx, f)
}
func (m *itemRepoMock) Detail(ctx context.Context, id string) (*model.ItemDetail, error) {
	return m.detailFn(ctx, id)
}
func (m *itemRepoMock) Categories(ctx context.Context) ([]model.Category, error) {
	return nil, nil
}

type reviewRepoMock struct{}

func (reviewRepoMock) Exists(ctx context.Context, userID, itemID string) (bool, error) {
	return false, nil
}
func (reviewRepoMock) Insert(ctx context.Context, rev *model.Review) error { return nil }
func (reviewRepoMock) ListByItem(ctx context.Context, itemID string) ([]model.Review, error) {
	return []model.Review{}, nil
}

type photoRepoMock struct{}

func (photoRepoMock) ListByItem(ctx context.Context, itemID string) ([]model.Photo, error) {
	return []model.Photo{}, nil
}

func TestCreate_Validation(t *testing.T) {
	s := itemsvc.New(&itemRepoMock{}, reviewRepoMock{}, photoRepoMock{})

	cases := []itemsvc.CreateInput{
		{Title: "", Category: "camping", Location: "Pune", Price: 50},
		{Title: "Trekking tent", Category: "", Location: "Pune", Price: 50},
		{Title: "Trekking tent", Category: "camping", Location: "", Price: 50},
		{Title: "Trekking tent", Category: "camping", Location: "Pune", Price: 0},
		{Title: "Trekking tent", Category: "camping", Location: "Pune", Price: -5},
	}
	for _, in := range cases {
		_, err := s.Create(context.Background(), "owner-1", in)
		require.Error(t, err)
		require.Equal(t, itemsvc.ErrBadInput, itemsvc.Code(err))
	}
}

func TestCreate_DefaultsPriceUnit(t *testing.T) {
	var got *model.Item
	s := itemsvc.New(&itemRepoMock{
		insertFn: func(ctx context.Context, it *model.Item) error {
			got = it
			return nil
		},
	}, reviewRepoMock{}, photoRepoMock{})

	id, err := s.Create(context.Background(), "owner-1", itemsvc.CreateInput{
		Title:    "Trekking tent",
		Category: "camping",
		Location: "Pune",
		Price:    120,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, "day", got.PriceUnit)
	require.Equal(t, "owner-1", got.OwnerID)
}

func TestList_PaginationMath(t *testing.T) {
	var gotLimit, gotOffset int
	s := itemsvc.New(&itemRepoMock{
		listFn: func(ctx context.Context, f itemrepo.Filter, limit, offset int) ([]model.ItemSummary, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
		countFn: func(ctx context.Context, f itemrepo.Filter) (int64, error) {
			return 25, nil
		},
	}, reviewRepoMock{}, photoRepoMock{})

	res, err := s.List(context.Background(), itemsvc.Filter{}, 2, 12)
	require.NoError(t, err)
	require.Equal(t, 12, gotLimit)
	require.Equal(t, 12, gotOffset)
	require.Equal(t, int64(25), res.Pagination.Total)
	require.Equal(t, int64(3), res.Pagination.Pages) // ceil(25/12)
}

func TestList_DefaultsPageAndLimit(t *testing.T) {
	var gotLimit, gotOffset int
	s := itemsvc.New(&itemRepoMock{
		listFn: func(ctx context.Context, f itemrepo.Filter, limit, offset int) ([]model.ItemSummary, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
		countFn: func(ctx context.Context, f itemrepo.Filter) (int64, error) {
			return 0, nil
		},
	}, reviewRepoMock{}, photoRepoMock{})

	res, err := s.List(context.Background(), itemsvc.Filter{}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, itemsvc.DefaultPageSize, gotLimit)
	require.Equal(t, 0, gotOffset)
	require.Equal(t, 1, res.Pagination.Page)
	require.Equal(t, int64(0), res.Pagination.Pages)
}

func TestList_FilterPassthrough(t *testing.T) {
	min, max := 50.0, 100.0
	var gotFilter itemrepo.Filter
	s := itemsvc.New(&itemRepoMock{
		listFn: func(ctx context.Context, f itemrepo.Filter, limit, offset int) ([]model.ItemSummary, error) {
			gotFilter = f
			return nil, nil
		},
		countFn: func(ctx context.Context, f itemrepo.Filter) (int64, error) {
			return 0, nil
		},
	}, reviewRepoMock{}, photoRepoMock{})

	f := itemsvc.Filter{Category: "camping", Location: "pune", Search: "tent", MinPrice: &min, MaxPrice: &max}
	_, err := s.List(context.Background(), f, 1, 12)
	require.NoError(t, err)
	require.Equal(t, f, gotFilter)
}

func TestDetail_NotFound(t *testing.T) {
	s := itemsvc.New(&itemRepoMock{
		detailFn: func(ctx context.Context, id string) (*model.ItemDetail, error) {
			return nil, sql.ErrNoRows
		},
	}, reviewRepoMock{}, photoRepoMock{})

	_, err := s.Detail(context.Background(), "missing")
	require.Error(t, err)
	require.Equal(t, itemsvc.ErrNotFound, itemsvc.Code(err))
}

func TestDetail_Success(t *testing.T) {
	s := itemsvc.New(&itemRepoMock{
		detailFn: func(ctx context.Context, id string) (*model.ItemDetail, error) {
			d := &model.ItemDetail{}
			d.ID = id
			return d, nil
		},
	}, reviewRepoMock{}, photoRepoMock{})

	res, err := s.Detail(context.Background(), "item-1")
	require.NoError(t, err)
	require.Equal(t, "item-1", res.Item.ID)
	require.NotNil(t, res.Reviews)
	require.NotNil(t, res.Photos)
}
