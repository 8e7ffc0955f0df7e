package impl

import (
	"context"
	"sync"
	"testing"

	"smartdine/config"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/domain/service"
	"smartdine/internal/errors"
	mockRepo "smartdine/internal/mocks/repository"
	mockSvc "smartdine/internal/mocks/service"
	"smartdine/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationServiceFixtures struct {
	service         usecase.ReservationUsecase
	txManager       *mockRepo.MockTransactionManager
	factory         *mockRepo.MockRepositoryFactory
	restaurantRepo  *mockRepo.MockRestaurantRepository
	txReservations  *mockRepo.MockReservationRepository
	reservationRepo *mockRepo.MockReservationRepository
	publisher       *mockSvc.MockEventPublisher
	qrCodeService   *mockSvc.MockQRCodeService
}

func createTestReservationService(t *testing.T) reservationServiceFixtures {
	f := reservationServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		factory:         mockRepo.NewMockRepositoryFactory(t),
		restaurantRepo:  mockRepo.NewMockRestaurantRepository(t),
		txReservations:  mockRepo.NewMockReservationRepository(t),
		reservationRepo: mockRepo.NewMockReservationRepository(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
		qrCodeService:   mockSvc.NewMockQRCodeService(t),
	}

	cfg := &config.Config{Restaurants: &config.RestaurantsConfig{DefaultCapacity: 5}}
	f.service = NewReservationService(ReservationServiceParams{
		TxManager:       f.txManager,
		ReservationRepo: f.reservationRepo,
		Publisher:       f.publisher,
		QRCodeService:   f.qrCodeService,
		Config:          cfg,
		Logger:          discardLogger(),
	})

	return f
}

func (f reservationServiceFixtures) expectTx() {
	expectExecute(f.txManager, f.factory)
	f.factory.EXPECT().NewRestaurantRepository().Return(f.restaurantRepo)
	f.factory.EXPECT().NewReservationRepository().Return(f.txReservations)
}

func validReserveInput() usecase.ReserveInput {
	return usecase.ReserveInput{
		RestaurantID: 7,
		Name:         "Ada",
		PartySize:    2,
		Date:         "2025-03-14",
		Time:         "19:45",
		UserID:       int64Ptr(3),
	}
}

func TestReservationService_Reserve_Success(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()
	f.expectTx()

	f.restaurantRepo.EXPECT().LockRestaurantByID(ctx, int64(7)).Return(&entity.Restaurant{ID: 7, Tables: 3}, nil)
	f.txReservations.EXPECT().CountReservationsBySlot(ctx, int64(7), "2025-03-14", "19:30").Return(int64(1), nil)
	f.txReservations.EXPECT().CreateReservation(ctx, mock.AnythingOfType("*entity.Reservation")).
		RunAndReturn(func(_ context.Context, r *entity.Reservation) error {
			r.ID = 42
			return nil
		})
	f.publisher.EXPECT().PublishReservationEvent(ctx, mock.MatchedBy(func(e *service.ReservationEvent) bool {
		return e.EventType == service.EventReservationCreated && e.ReservationID == 42 && e.Time == "19:30"
	})).Return(nil)

	result, err := f.service.Reserve(ctx, validReserveInput())

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.Reservation.ID)
	assert.Equal(t, "19:30", result.Reservation.Time)
	assert.Equal(t, "Ada", result.Reservation.Name)
	assert.Equal(t, int64(3), *result.Reservation.UserID)
	assert.Equal(t, 3, result.Capacity)
	assert.Equal(t, 1, result.TablesRemaining)
}

func TestReservationService_Reserve_DefaultCapacity(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()
	f.expectTx()

	f.restaurantRepo.EXPECT().LockRestaurantByID(ctx, int64(7)).Return(&entity.Restaurant{ID: 7}, nil)
	f.txReservations.EXPECT().CountReservationsBySlot(ctx, int64(7), "2025-03-14", "19:30").Return(int64(4), nil)
	f.txReservations.EXPECT().CreateReservation(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishReservationEvent(ctx, mock.Anything).Return(nil)

	result, err := f.service.Reserve(ctx, validReserveInput())

	require.NoError(t, err)
	assert.Equal(t, 5, result.Capacity)
	assert.Equal(t, 0, result.TablesRemaining)
}

func TestReservationService_Reserve_SlotFull(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()
	f.expectTx()

	f.restaurantRepo.EXPECT().LockRestaurantByID(ctx, int64(7)).Return(&entity.Restaurant{ID: 7, Tables: 2}, nil)
	f.txReservations.EXPECT().CountReservationsBySlot(ctx, int64(7), "2025-03-14", "19:30").Return(int64(2), nil)

	result, err := f.service.Reserve(ctx, validReserveInput())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoTablesAvailable))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "No tables available at this time", appErr.Message())
}

func TestReservationService_Reserve_RestaurantNotFound(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()
	f.expectTx()

	f.restaurantRepo.EXPECT().LockRestaurantByID(ctx, int64(7)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := f.service.Reserve(ctx, validReserveInput())

	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestReservationService_Reserve_PublishFailureIgnored(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()
	f.expectTx()

	f.restaurantRepo.EXPECT().LockRestaurantByID(ctx, int64(7)).Return(&entity.Restaurant{ID: 7, Tables: 1}, nil)
	f.txReservations.EXPECT().CountReservationsBySlot(ctx, int64(7), "2025-03-14", "19:30").Return(int64(0), nil)
	f.txReservations.EXPECT().CreateReservation(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishReservationEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	result, err := f.service.Reserve(ctx, validReserveInput())

	require.NoError(t, err)
	assert.Equal(t, 0, result.TablesRemaining)
}

func TestReservationService_Reserve_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*usecase.ReserveInput)
		want   error
	}{
		{"missing name", func(in *usecase.ReserveInput) { in.Name = "  " }, domainerrors.ErrValidationFailed},
		{"missing restaurant", func(in *usecase.ReserveInput) { in.RestaurantID = 0 }, domainerrors.ErrValidationFailed},
		{"missing date", func(in *usecase.ReserveInput) { in.Date = "" }, domainerrors.ErrValidationFailed},
		{"zero party", func(in *usecase.ReserveInput) { in.PartySize = 0 }, domainerrors.ErrInvalidPartySize},
		{"bad date", func(in *usecase.ReserveInput) { in.Date = "14/03/2025" }, domainerrors.ErrInvalidDate},
		{"bad time", func(in *usecase.ReserveInput) { in.Time = "25:00" }, domainerrors.ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestReservationService(t)
			input := validReserveInput()
			tt.modify(&input)

			_, err := f.service.Reserve(context.Background(), input)

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReservationService_Reserve_ConcurrentBookingsNeverOverbook(t *testing.T) {
	store := newBookingStore(&entity.Restaurant{ID: 1, Tables: 2})
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishReservationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewReservationService(ReservationServiceParams{
		TxManager: store,
		Publisher: publisher,
		Config:    &config.Config{Restaurants: &config.RestaurantsConfig{DefaultCapacity: 5}},
		Logger:    discardLogger(),
	})

	const attempts = 3
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		remaining []int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.Reserve(context.Background(), usecase.ReserveInput{
				RestaurantID: 1,
				Name:         "Guest",
				PartySize:    2,
				Date:         "2025-03-14",
				Time:         "18:10",
			})

			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, domainerrors.ErrNoTablesAvailable) {
				conflicts++
				return
			}
			if assert.NoError(t, err) {
				remaining = append(remaining, result.TablesRemaining)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, conflicts)
	assert.Equal(t, []int{0, 1}, sortedRemaining(remaining))
	assert.Equal(t, 2, store.count(1, "2025-03-14", "18:00"))
}

func TestReservationService_Reserve_LastTableGoesToExactlyOneCaller(t *testing.T) {
	store := newBookingStore(&entity.Restaurant{ID: 9, Tables: 1})
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishReservationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewReservationService(ReservationServiceParams{
		TxManager: store,
		Publisher: publisher,
		Config:    &config.Config{Restaurants: &config.RestaurantsConfig{DefaultCapacity: 5}},
		Logger:    discardLogger(),
	})

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(context.Background(), usecase.ReserveInput{
				RestaurantID: 9,
				Name:         "Guest",
				PartySize:    4,
				Date:         "2025-12-31",
				Time:         "20:30",
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, store.count(9, "2025-12-31", "20:30"))
}

func TestReservationService_Cancel(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()

	reservation := &entity.Reservation{ID: 5, RestaurantID: 7, UserID: int64Ptr(3), Date: "2025-03-14", Time: "19:30", PartySize: 2}
	f.reservationRepo.EXPECT().FindReservationByIDForUser(ctx, int64(5), int64(3)).Return(reservation, nil)
	f.reservationRepo.EXPECT().DeleteReservationForUser(ctx, int64(5), int64(3)).Return(nil)
	f.publisher.EXPECT().PublishReservationEvent(ctx, mock.MatchedBy(func(e *service.ReservationEvent) bool {
		return e.EventType == service.EventReservationCancelled && e.ReservationID == 5
	})).Return(nil)

	require.NoError(t, f.service.Cancel(ctx, 3, 5))
}

func TestReservationService_Cancel_NotOwned(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()

	f.reservationRepo.EXPECT().FindReservationByIDForUser(ctx, int64(5), int64(4)).Return(nil, repository.ErrReservationNotFound)

	err := f.service.Cancel(ctx, 4, 5)

	assert.True(t, errors.Is(err, domainerrors.ErrReservationNotFound))
}

func TestReservationService_ListForUser(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()

	details := []*entity.ReservationDetail{{Reservation: entity.Reservation{ID: 1}, RestaurantName: "Sakura"}}
	f.reservationRepo.EXPECT().FindReservationsByUser(ctx, int64(3)).Return(details, nil)

	got, err := f.service.ListForUser(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, details, got)
}

func TestReservationService_ConfirmationQR(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()

	reservation := &entity.Reservation{ID: 5, RestaurantID: 7, Date: "2025-03-14", Time: "19:30"}
	f.reservationRepo.EXPECT().FindReservationByIDForUser(ctx, int64(5), int64(3)).Return(reservation, nil)
	f.qrCodeService.EXPECT().GenerateReservationQR(service.ReservationQRPayload{
		ReservationID: 5,
		RestaurantID:  7,
		Date:          "2025-03-14",
		Time:          "19:30",
	}).Return([]byte("png"), nil)

	png, err := f.service.ConfirmationQR(ctx, 3, 5)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestReservationService_ConfirmationQR_NotFound(t *testing.T) {
	f := createTestReservationService(t)
	ctx := context.Background()

	f.reservationRepo.EXPECT().FindReservationByIDForUser(ctx, int64(5), int64(3)).Return(nil, repository.ErrReservationNotFound)

	_, err := f.service.ConfirmationQR(ctx, 3, 5)

	assert.True(t, errors.Is(err, domainerrors.ErrReservationNotFound))
}
