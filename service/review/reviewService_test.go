package review

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alitacodes/Circlo-rental/model"
	bookingrepo "github.com/alitacodes/Circlo-rental/repository/booking"
	reviewrepo "github.com/alitacodes/Circlo-rental/repository/review"
)

type reviewRepoMock struct {
	existsFn func(ctx context.Context, userID, itemID string) (bool, error)
	insertFn func(ctx context.Context, rev *model.Review) error
}

var _ reviewrepo.Repo = (*reviewRepoMock)(nil)

func (m *reviewRepoMock) Exists(ctx context.Context, userID, itemID string) (bool, error) {
	if m.existsFn == nil {
		return false, nil
	}
	return m.existsFn(ctx, userID, itemID)
}

func (m *reviewRepoMock) Insert(ctx context.Context, rev *model.Review) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, rev)
}

func (m *reviewRepoMock) ListByItem(ctx context.Context, itemID string) ([]model.Review, error) {
	return nil, nil
}

type bookingRepoMock struct {
	hasCompletedFn func(ctx context.Context, userID, itemID string) (bool, error)
}

var _ bookingrepo.Repo = (*bookingRepoMock)(nil)

func (m *bookingRepoMock) HasCompleted(ctx context.Context, userID, itemID string) (bool, error) {
	if m.hasCompletedFn == nil {
		return false, nil
	}
	return m.hasCompletedFn(ctx, userID, itemID)
}

func (m *bookingRepoMock) ItemOwnerForUpdate(ctx context.Context, tx *sql.Tx, itemID string) (string, error) {
	return "", nil
}
func (m *bookingRepoMock) HasOverlap(ctx context.Context, tx *sql.Tx, itemID string, start, end time.Time) (bool, error) {
	return false, nil
}
func (m *bookingRepoMock) Insert(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	return nil
}
func (m *bookingRepoMock) ListByRenter(ctx context.Context, userID string) ([]model.BookingRow, error) {
	return nil, nil
}
func (m *bookingRepoMock) ListByOwner(ctx context.Context, ownerID string) ([]model.BookingRow, error) {
	return nil, nil
}
func (m *bookingRepoMock) UpdateStatusOwned(ctx context.Context, bookingID, ownerID string, status model.BookingStatus) (bool, error) {
	return false, nil
}

func TestCreate_RequiresCompletedBooking(t *testing.T) {
	svc := New(&reviewRepoMock{}, &bookingRepoMock{
		hasCompletedFn: func(ctx context.Context, userID, itemID string) (bool, error) {
			return false, nil
		},
	})

	_, err := svc.Create(context.Background(), "u-1", "item-1", 5, "great tent, clean")
	require.Error(t, err)
	require.Equal(t, ErrNotEligible, Code(err))
}

func TestCreate_Success(t *testing.T) {
	inserted := false
	svc := New(
		&reviewRepoMock{
			insertFn: func(ctx context.Context, rev *model.Review) error {
				inserted = true
				require.Equal(t, "u-1", rev.UserID)
				require.Equal(t, "item-1", rev.ItemID)
				require.Equal(t, 4, rev.Rating)
				require.NotEmpty(t, rev.ID)
				return nil
			},
		},
		&bookingRepoMock{
			hasCompletedFn: func(ctx context.Context, userID, itemID string) (bool, error) {
				return true, nil
			},
		},
	)

	id, err := svc.Create(context.Background(), "u-1", "item-1", 4, "great tent, clean")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.True(t, inserted)
}

func TestCreate_DuplicateRejected(t *testing.T) {
	svc := New(
		&reviewRepoMock{
			existsFn: func(ctx context.Context, userID, itemID string) (bool, error) {
				return true, nil
			},
		},
		&bookingRepoMock{
			hasCompletedFn: func(ctx context.Context, userID, itemID string) (bool, error) {
				return true, nil
			},
		},
	)

	_, err := svc.Create(context.Background(), "u-1", "item-1", 3, "still a great tent")
	require.Error(t, err)
	require.Equal(t, ErrAlreadyReviewed, Code(err))
}
