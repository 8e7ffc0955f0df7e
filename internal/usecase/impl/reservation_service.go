package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smartdine/config"
	deliverycontext "smartdine/internal/delivery/context"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/domain/schedule"
	"smartdine/internal/domain/service"
	"smartdine/internal/errors"
	"smartdine/internal/usecase"

	"go.uber.org/fx"
)

// reservationDateLayout is the wire and storage format of reservation dates.
const reservationDateLayout = "2006-01-02"

type reservationService struct {
	txManager       repository.TransactionManager
	reservationRepo repository.ReservationRepository
	publisher       service.EventPublisher
	qrCodeService   service.QRCodeService
	defaultCapacity int
	now             func() time.Time
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReservationRepo repository.ReservationRepository
	Publisher       service.EventPublisher
	QRCodeService   service.QRCodeService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	defaultCapacity := 0
	if params.Config != nil && params.Config.Restaurants != nil {
		defaultCapacity = params.Config.Restaurants.DefaultCapacity
	}
	if defaultCapacity <= 0 {
		defaultCapacity = 5
	}

	return &reservationService{
		txManager:       params.TxManager,
		reservationRepo: params.ReservationRepo,
		publisher:       params.Publisher,
		qrCodeService:   params.QRCodeService,
		defaultCapacity: defaultCapacity,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reserve checks the slot's remaining capacity and books a table in one transaction.
// The restaurant row stays locked until commit, so concurrent bookings of the same
// restaurant are serialized and the slot can never be overbooked.
func (srv *reservationService) Reserve(ctx context.Context, input usecase.ReserveInput) (*usecase.ReservationResult, error) {
	name := strings.TrimSpace(input.Name)
	if input.RestaurantID <= 0 || name == "" || input.Date == "" || input.Time == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reservation requires restaurant, name, date and time")
	}
	if input.PartySize <= 0 {
		return nil, domainerrors.ErrInvalidPartySize.WrapMessage("reservation party size")
	}
	if _, err := time.Parse(reservationDateLayout, input.Date); err != nil {
		return nil, domainerrors.ErrInvalidDate.WrapMessage(input.Date)
	}
	slot, err := schedule.NormalizeSlot(input.Time)
	if err != nil {
		return nil, domainerrors.ErrInvalidTime.WrapMessage(input.Time)
	}

	var result *usecase.ReservationResult
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()
		reservationRepo := repoFactory.NewReservationRepository()

		restaurant, err := restaurantRepo.LockRestaurantByID(ctx, input.RestaurantID)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrRestaurantNotFound.WrapMessage("reservation restaurant")
			}

			return errors.Wrap(err, "failed to lock restaurant")
		}

		capacity := restaurant.Capacity(srv.defaultCapacity)
		booked, err := reservationRepo.CountReservationsBySlot(ctx, restaurant.ID, input.Date, slot)
		if err != nil {
			return errors.Wrap(err, "failed to count reservations")
		}
		if booked >= int64(capacity) {
			return domainerrors.ErrNoTablesAvailable.WrapMessage("slot " + input.Date + " " + slot)
		}

		reservation := &entity.Reservation{
			RestaurantID: restaurant.ID,
			UserID:       input.UserID,
			Name:         name,
			PartySize:    input.PartySize,
			Date:         input.Date,
			Time:         slot,
		}
		if err := reservationRepo.CreateReservation(ctx, reservation); err != nil {
			return errors.Wrap(err, "failed to create reservation")
		}

		result = &usecase.ReservationResult{
			Reservation:     reservation,
			Capacity:        capacity,
			TablesRemaining: max(0, capacity-int(booked+1)),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Reservation created",
		slog.Int64("reservation_id", result.Reservation.ID),
		slog.Int64("restaurant_id", result.Reservation.RestaurantID),
		slog.String("date", result.Reservation.Date),
		slog.String("time", result.Reservation.Time),
		slog.Int("tables_remaining", result.TablesRemaining),
	)
	srv.publish(ctx, service.EventReservationCreated, result.Reservation)

	return result, nil
}

// Cancel deletes a reservation owned by userID.
func (srv *reservationService) Cancel(ctx context.Context, userID, reservationID int64) error {
	reservation, err := srv.reservationRepo.FindReservationByIDForUser(ctx, reservationID, userID)
	if err != nil {
		return srv.mapReservationError(err, "failed to find reservation")
	}

	if err := srv.reservationRepo.DeleteReservationForUser(ctx, reservationID, userID); err != nil {
		return srv.mapReservationError(err, "failed to delete reservation")
	}

	srv.log(ctx).Info("Reservation cancelled",
		slog.Int64("reservation_id", reservationID),
		slog.Int64("user_id", userID),
	)
	srv.publish(ctx, service.EventReservationCancelled, reservation)

	return nil
}

// ListForUser lists the user's reservations with restaurant details.
func (srv *reservationService) ListForUser(ctx context.Context, userID int64) ([]*entity.ReservationDetail, error) {
	reservations, err := srv.reservationRepo.FindReservationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return reservations, nil
}

// ConfirmationQR renders the confirmation code of a reservation owned by userID.
func (srv *reservationService) ConfirmationQR(ctx context.Context, userID, reservationID int64) ([]byte, error) {
	reservation, err := srv.reservationRepo.FindReservationByIDForUser(ctx, reservationID, userID)
	if err != nil {
		return nil, srv.mapReservationError(err, "failed to find reservation")
	}

	png, err := srv.qrCodeService.GenerateReservationQR(service.ReservationQRPayload{
		ReservationID: reservation.ID,
		RestaurantID:  reservation.RestaurantID,
		Date:          reservation.Date,
		Time:          reservation.Time,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate confirmation code")
	}

	return png, nil
}

func (srv *reservationService) mapReservationError(err error, message string) error {
	if errors.Is(err, repository.ErrReservationNotFound) {
		return domainerrors.ErrReservationNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}

// publish emits a reservation event. Failures are logged and never surface to the caller.
func (srv *reservationService) publish(ctx context.Context, eventType string, reservation *entity.Reservation) {
	if srv.publisher == nil {
		return
	}

	event := &service.ReservationEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     eventType,
		ReservationID: reservation.ID,
		RestaurantID:  reservation.RestaurantID,
		UserID:        reservation.UserID,
		Date:          reservation.Date,
		Time:          reservation.Time,
		PartySize:     reservation.PartySize,
		OccurredAt:    srv.now().UTC(),
	}

	if err := srv.publisher.PublishReservationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish reservation event",
			slog.String("event_type", eventType),
			slog.Int64("reservation_id", reservation.ID),
			slog.Any("error", err),
		)
	}
}
