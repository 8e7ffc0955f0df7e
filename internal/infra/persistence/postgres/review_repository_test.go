package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_CreateReview(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	review := &entity.Review{UserID: 1, RestaurantID: 7, Rating: 5, Text: "Great veal"}
	require.NoError(t, repo.CreateReview(context.Background(), review))

	assert.Equal(t, int64(5), review.ID)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestReviewRepository_CreateReview_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "second review of the same restaurant", code: "23505", wantErr: repository.ErrDuplicateReview},
		{name: "unknown restaurant", code: "23503", wantErr: repository.ErrRestaurantNotFound},
		{name: "rating out of range", code: "23514", wantErr: domainerrors.ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewReviewRepository(db)

			mock.ExpectQuery(`INSERT INTO "reviews"`).
				WillReturnError(&pgconn.PgError{Code: tt.code})

			err := repo.CreateReview(context.Background(), &entity.Review{UserID: 1, RestaurantID: 7, Rating: 4})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewRepository_UpdateReviewForUser_NotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectExec(`UPDATE "reviews" SET .* WHERE id = \$\d AND user_id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateReviewForUser(context.Background(), 5, 2, 3, "meh")
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}

func TestReviewRepository_DeleteReviewForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "reviews" WHERE id = $1 AND user_id = $2`)).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteReviewForUser(context.Background(), 5, 1))
}

func TestReviewRepository_FindReviewsByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM reviews AS rv JOIN restaurants AS r ON r.id = rv.restaurant_id WHERE rv.user_id = $1 ORDER BY rv.created_at DESC`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "restaurant_id", "rating", "review_text", "created_at", "updated_at", "restaurant_name"}).
			AddRow(6, 1, 9, 4, "Fresh oysters", now, now, "Oyster House").
			AddRow(5, 1, 7, 5, "Great veal", now.Add(-time.Hour), now.Add(-time.Hour), "Aldo's"))

	reviews, err := repo.FindReviewsByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, "Oyster House", reviews[0].RestaurantName)
	assert.Equal(t, "Fresh oysters", reviews[0].Text)
	assert.Equal(t, int64(7), reviews[1].RestaurantID)
}

func TestReviewRepository_AverageRatingsByRestaurant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT restaurant_id, CAST\(AVG\(rating\) AS DOUBLE PRECISION\) AS average_rating FROM "reviews" GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "average_rating"}).
			AddRow(7, 4.5).
			AddRow(9, 3.0))

	ratings, err := repo.AverageRatingsByRestaurant(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 4.5, ratings[7], 0.0001)
	assert.InDelta(t, 3.0, ratings[9], 0.0001)
	assert.Len(t, ratings, 2)
}
