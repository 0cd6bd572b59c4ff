package item

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestList_PriceFilterArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := New(db)

	min, max := 50.0, 100.0
	cols := []string{
		"id", "owner_id", "title", "description", "category", "price", "price_unit",
		"location", "geo_location", "is_vault_item", "vault_story", "created_at",
		"owner_name", "owner_karma", "avg_rating", "review_count",
	}
	mock.ExpectQuery(`SELECT i\.id, .+ FROM items i\s+JOIN users u ON i\.owner_id = u\.id\s+WHERE 1=1 AND i\.price >= \$1 AND i\.price <= \$2`).
		WithArgs(min, max, 12, 0).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"item-1", "owner-1", "Trekking tent", "A sturdy 4-person tent", "camping", 75.0, "day",
			"Pune", nil, false, nil, time.Now(),
			"Asha", 10, 4.5, int64(2),
		))

	items, err := repo.List(context.Background(), Filter{MinPrice: &min, MaxPrice: &max}, 12, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "item-1", items[0].ID)
	require.Equal(t, 75.0, items[0].Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_AllFiltersConjunctive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := New(db)

	min, max := 10.0, 20.0
	mock.ExpectQuery(`WHERE 1=1 AND i\.category = \$1 AND i\.location ILIKE \$2 AND \(i\.title ILIKE \$3 OR i\.description ILIKE \$3\) AND i\.price >= \$4 AND i\.price <= \$5`).
		WithArgs("camping", "%pune%", "%tent%", min, max, 5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.List(context.Background(), Filter{
		Category: "camping",
		Location: "pune",
		Search:   "tent",
		MinPrice: &min,
		MaxPrice: &max,
	}, 5, 10)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_SharesFilterClause(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := New(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM items i JOIN users u ON i\.owner_id = u\.id WHERE 1=1 AND i\.category = \$1`).
		WithArgs("camping").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(25)))

	total, err := repo.Count(context.Background(), Filter{Category: "camping"})
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategories_OrderedByCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := New(db)

	mock.ExpectQuery(`GROUP BY category\s+ORDER BY count DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("camping", int64(9)).
			AddRow("tools", int64(4)))

	cats, err := repo.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	require.Equal(t, "camping", cats[0].Category)
	require.Equal(t, int64(9), cats[0].Count)
	require.NoError(t, mock.ExpectationsWereMet())
}
