package user

import (
	"context"
	"database/sql"

	"github.com/alitacodes/Circlo-rental/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id string) (*model.User, error)
	CountItemsOwned(ctx context.Context, userID string) (int64, error)
	CountBookingsMade(ctx context.Context, userID string) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users(id, name, email, password_hash, phone, aadhaar_encrypted, karma_points, joined_date)
		VALUES ($1,$2,$3,$4,$5,$6,0,CURRENT_DATE)
		RETURNING karma_points, joined_date`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Phone, u.AadhaarEncrypted,
	).Scan(&u.KarmaPoints, &u.JoinedDate)
}

func (r *repo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`,
		email,
	).Scan(&exists)
	return exists, err
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, phone, avatar_url, karma_points, joined_date
		FROM users
		WHERE lower(email) = lower($1)`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.AvatarURL, &u.KarmaPoints, &u.JoinedDate)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, avatar_url, karma_points, joined_date
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.AvatarURL, &u.KarmaPoints, &u.JoinedDate)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) CountItemsOwned(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE owner_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *repo) CountBookingsMade(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
