package item

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alitacodes/Circlo-rental/model"
)

// Filter holds the conjunctive listing filters. Zero values mean "not set";
// price bounds are pointers so 0 remains a usable bound.
type Filter struct {
	Category string
	Location string
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

type Repo interface {
	Insert(ctx context.Context, it *model.Item) error
	List(ctx context.Context, f Filter, limit, offset int) ([]model.ItemSummary, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Detail(ctx context.Context, id string) (*model.ItemDetail, error)
	Categories(ctx context.Context) ([]model.Category, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, it *model.Item) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO items (id, owner_id, title, description, category, price, price_unit,
		                   location, geo_location, is_vault_item, vault_story, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NOW())
		RETURNING created_at`,
		it.ID, it.OwnerID, it.Title, it.Description, it.Category, it.Price, it.PriceUnit,
		it.Location, it.GeoLocation, it.IsVaultItem, it.VaultStory,
	).Scan(&it.CreatedAt)
}

// where builds the filter clause with positional args starting at $1.
func where(f Filter) (string, []any) {
	conds := []string{"1=1"}
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Category != "" {
		add("i.category = $%d", f.Category)
	}
	if f.Location != "" {
		add("i.location ILIKE $%d", "%"+f.Location+"%")
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(i.title ILIKE $%d OR i.description ILIKE $%d)", len(args), len(args)))
	}
	if f.MinPrice != nil {
		add("i.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("i.price <= $%d", *f.MaxPrice)
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *repo) List(ctx context.Context, f Filter, limit, offset int) ([]model.ItemSummary, error) {
	clause, args := where(f)
	q := fmt.Sprintf(`
		SELECT i.id, i.owner_id, i.title, i.description, i.category, i.price, i.price_unit,
		       i.location, i.geo_location, i.is_vault_item, i.vault_story, i.created_at,
		       u.name AS owner_name, u.karma_points AS owner_karma,
		       COALESCE((SELECT AVG(rating)::float8 FROM reviews r WHERE r.item_id = i.id), 0) AS avg_rating,
		       (SELECT COUNT(*) FROM reviews r WHERE r.item_id = i.id) AS review_count
		FROM items i
		JOIN users u ON i.owner_id = u.id
		%s
		ORDER BY i.created_at DESC
		LIMIT $%d OFFSET $%d`, clause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ItemSummary
	for rows.Next() {
		var it model.ItemSummary
		if err := rows.Scan(
			&it.ID, &it.OwnerID, &it.Title, &it.Description, &it.Category, &it.Price, &it.PriceUnit,
			&it.Location, &it.GeoLocation, &it.IsVaultItem, &it.VaultStory, &it.CreatedAt,
			&it.OwnerName, &it.OwnerKarma, &it.AvgRating, &it.ReviewCount,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *repo) Count(ctx context.Context, f Filter) (int64, error) {
	clause, args := where(f)
	q := fmt.Sprintf(`SELECT COUNT(*) FROM items i JOIN users u ON i.owner_id = u.id %s`, clause)
	var total int64
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&total)
	return total, err
}

func (r *repo) Detail(ctx context.Context, id string) (*model.ItemDetail, error) {
	it := &model.ItemDetail{}
	err := r.db.QueryRowContext(ctx, `
		SELECT i.id, i.owner_id, i.title, i.description, i.category, i.price, i.price_unit,
		       i.location, i.geo_location, i.is_vault_item, i.vault_story, i.created_at,
		       u.name AS owner_name, u.karma_points AS owner_karma,
		       u.email AS owner_email, u.phone AS owner_phone,
		       COALESCE((SELECT AVG(rating)::float8 FROM reviews r WHERE r.item_id = i.id), 0) AS avg_rating,
		       (SELECT COUNT(*) FROM reviews r WHERE r.item_id = i.id) AS review_count
		FROM items i
		JOIN users u ON i.owner_id = u.id
		WHERE i.id = $1`,
		id,
	).Scan(
		&it.ID, &it.OwnerID, &it.Title, &it.Description, &it.Category, &it.Price, &it.PriceUnit,
		&it.Location, &it.GeoLocation, &it.IsVaultItem, &it.VaultStory, &it.CreatedAt,
		&it.OwnerName, &it.OwnerKarma, &it.OwnerEmail, &it.OwnerPhone,
		&it.AvgRating, &it.ReviewCount,
	)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repo) Categories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, COUNT(*) AS count
		FROM items
		WHERE category IS NOT NULL AND category <> ''
		GROUP BY category
		ORDER BY count DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
