package photo

import (
	"context"
	"database/sql"

	"github.com/alitacodes/Circlo-rental/model"
)

type Repo interface {
	ListByItem(ctx context.Context, itemID string) ([]model.Photo, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ListByItem(ctx context.Context, itemID string) ([]model.Photo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_id, booking_id, url, photo_type, uploaded_at
		FROM photos
		WHERE item_id = $1
		ORDER BY uploaded_at ASC`,
		itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.ItemID, &p.BookingID, &p.URL, &p.PhotoType, &p.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
