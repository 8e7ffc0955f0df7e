package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"smartdine/internal/domain/entity"
	"smartdine/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_AddFavorite_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectExec(`INSERT INTO "favorites"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.AddFavorite(context.Background(), &entity.Favorite{UserID: 1, RestaurantID: 7})
	assert.ErrorIs(t, err, repository.ErrDuplicateFavorite)
}

func TestFavoriteRepository_AddFavorite_UnknownRestaurant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectExec(`INSERT INTO "favorites"`).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.AddFavorite(context.Background(), &entity.Favorite{UserID: 1, RestaurantID: 404})
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestFavoriteRepository_RemoveFavorite_MissingIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE user_id = $1 AND restaurant_id = $2`)).
		WithArgs(int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.RemoveFavorite(context.Background(), 1, 7))
}

func TestFavoriteRepository_FindFavoriteRestaurants(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN favorites AS f ON f.restaurant_id = r.id WHERE f.user_id = $1 ORDER BY f.created_at DESC, r.id ASC`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(restaurantColumns).
			AddRow(9, "Oyster House", "Annapolis", "Seafood", "$$$", "9 Dock St", 6, `{"sat":[["12:00","22:00"]]}`, time.Now()).
			AddRow(7, "Aldo's", "Baltimore", "Italian", "$$$", "306 S High St", 12, "", time.Now()))

	restaurants, err := repo.FindFavoriteRestaurants(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	assert.Equal(t, int64(9), restaurants[0].ID)
	assert.Equal(t, int64(7), restaurants[1].ID)
}

func TestFavoriteRepository_FindFavoriteRestaurantIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "restaurant_id" FROM "favorites" WHERE user_id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id"}).AddRow(7).AddRow(9))

	ids, err := repo.FindFavoriteRestaurantIDs(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, ids)
}
