package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"smartdine/internal/domain/entity"
	"smartdine/internal/domain/repository"
	mockRepo "smartdine/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectExecute makes txManager run the callback against factory.
func expectExecute(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func int64Ptr(v int64) *int64 {
	return &v
}

// bookingStore is an in-memory stand-in for the database used by the booking engine.
// LockRestaurantByID holds a per-restaurant lock until Execute returns, and rows
// created inside a transaction become visible to others only on commit.
type bookingStore struct {
	mu           sync.Mutex
	restaurants  map[int64]*entity.Restaurant
	reservations []*entity.Reservation
	rowLocks     map[int64]*sync.Mutex
	nextID       int64
}

func newBookingStore(restaurants ...*entity.Restaurant) *bookingStore {
	store := &bookingStore{
		restaurants: make(map[int64]*entity.Restaurant),
		rowLocks:    make(map[int64]*sync.Mutex),
	}
	for _, r := range restaurants {
		store.restaurants[r.ID] = r
		store.rowLocks[r.ID] = &sync.Mutex{}
	}

	return store
}

func (s *bookingStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	tx := &bookingTx{store: s}
	defer func() {
		for _, l := range tx.held {
			l.Unlock()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range tx.pending {
		s.nextID++
		r.ID = s.nextID
		s.reservations = append(s.reservations, r)
	}

	return nil
}

func (s *bookingStore) count(restaurantID int64, date, slot string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.reservations {
		if r.RestaurantID == restaurantID && r.Date == date && r.Time == slot {
			n++
		}
	}

	return n
}

type bookingTx struct {
	store   *bookingStore
	held    []*sync.Mutex
	pending []*entity.Reservation
}

func (tx *bookingTx) NewRestaurantRepository() repository.RestaurantRepository {
	return &bookingRestaurantRepo{tx: tx}
}

func (tx *bookingTx) NewReservationRepository() repository.ReservationRepository {
	return &bookingReservationRepo{tx: tx}
}

type bookingRestaurantRepo struct {
	repository.RestaurantRepository
	tx *bookingTx
}

func (r *bookingRestaurantRepo) LockRestaurantByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	lock, ok := r.tx.store.rowLocks[id]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}
	lock.Lock()
	r.tx.held = append(r.tx.held, lock)

	return r.tx.store.restaurants[id], nil
}

type bookingReservationRepo struct {
	repository.ReservationRepository
	tx *bookingTx
}

func (r *bookingReservationRepo) CountReservationsBySlot(_ context.Context, restaurantID int64, date, slot string) (int64, error) {
	n := r.tx.store.count(restaurantID, date, slot)
	for _, p := range r.tx.pending {
		if p.RestaurantID == restaurantID && p.Date == date && p.Time == slot {
			n++
		}
	}

	return int64(n), nil
}

func (r *bookingReservationRepo) CreateReservation(_ context.Context, reservation *entity.Reservation) error {
	r.tx.pending = append(r.tx.pending, reservation)

	return nil
}

func sortedRemaining(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)

	return out
}
