package review

import (
	"context"
	"database/sql"

	"github.com/alitacodes/Circlo-rental/model"
)

type Repo interface {
	Exists(ctx context.Context, userID, itemID string) (bool, error)
	Insert(ctx context.Context, rev *model.Review) error
	ListByItem(ctx context.Context, itemID string) ([]model.Review, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Exists(ctx context.Context, userID, itemID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND item_id = $2)`,
		userID, itemID,
	).Scan(&exists)
	return exists, err
}

func (r *repo) Insert(ctx context.Context, rev *model.Review) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (id, user_id, item_id, rating, comment, created_at)
		VALUES ($1,$2,$3,$4,$5,NOW())
		RETURNING created_at`,
		rev.ID, rev.UserID, rev.ItemID, rev.Rating, rev.Comment,
	).Scan(&rev.CreatedAt)
}

func (r *repo) ListByItem(ctx context.Context, itemID string) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.user_id, r.item_id, r.rating, r.comment, r.created_at,
		       u.name AS reviewer_name, u.karma_points AS reviewer_karma
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.item_id = $1
		ORDER BY r.created_at DESC`,
		itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(
			&rev.ID, &rev.UserID, &rev.ItemID, &rev.Rating, &rev.Comment, &rev.CreatedAt,
			&rev.ReviewerName, &rev.ReviewerKarma,
		); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
