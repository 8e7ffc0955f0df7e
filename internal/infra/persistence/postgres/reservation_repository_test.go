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

func TestReservationRepository_CountReservationsBySlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "reservations" WHERE restaurant_id = $1 AND date = $2 AND time = $3`)).
		WithArgs(int64(1), "2024-06-01", "18:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountReservationsBySlot(context.Background(), 1, "2024-06-01", "18:00")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestReservationRepository_CreateReservation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	mock.ExpectQuery(`INSERT INTO "reservations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	userID := int64(4)
	reservation := &entity.Reservation{
		RestaurantID: 1,
		UserID:       &userID,
		Name:         "Ada",
		PartySize:    2,
		Date:         "2024-06-01",
		Time:         "18:00",
	}

	require.NoError(t, repo.CreateReservation(context.Background(), reservation))
	assert.Equal(t, int64(11), reservation.ID)
	assert.False(t, reservation.CreatedAt.IsZero())
}

func TestReservationRepository_CreateReservation_UnknownRestaurant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	mock.ExpectQuery(`INSERT INTO "reservations"`).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.CreateReservation(context.Background(), &entity.Reservation{RestaurantID: 404, Name: "Ada", PartySize: 1, Date: "2024-06-01", Time: "18:00"})
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestReservationRepository_FindReservationsByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	createdAt := time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM reservations AS r JOIN restaurants AS s ON s.id = r.restaurant_id WHERE r.user_id = $1 ORDER BY r.date ASC, r.time ASC, r.id ASC`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "restaurant_id", "user_id", "name", "party_size", "date", "time", "created_at",
			"restaurant_name", "restaurant_city", "restaurant_cuisine", "restaurant_address",
		}).
			AddRow(11, 1, 4, "Ada", 2, "2024-06-01", "18:00", createdAt, "Aldo's", "Baltimore", "Italian", "306 S High St").
			AddRow(12, 2, 4, "Ada", 4, "2024-06-02", "12:30", createdAt, "Crab Shack", "Ocean City", "Seafood", "3 Boardwalk"))

	details, err := repo.FindReservationsByUser(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, int64(11), details[0].ID)
	assert.Equal(t, "Aldo's", details[0].RestaurantName)
	assert.Equal(t, "Baltimore", details[0].RestaurantCity)
	require.NotNil(t, details[0].UserID)
	assert.True(t, details[0].OwnedBy(4))
	assert.Equal(t, "12:30", details[1].Time)
	assert.Equal(t, "3 Boardwalk", details[1].RestaurantAddress)
}

func TestReservationRepository_DeleteReservationForUser(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "owned reservation", affected: 1, wantErr: nil},
		{name: "missing or foreign reservation", affected: 0, wantErr: repository.ErrReservationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewReservationRepository(db)

			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "reservations" WHERE id = $1 AND user_id = $2`)).
				WithArgs(int64(11), int64(4)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteReservationForUser(context.Background(), 11, 4)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
