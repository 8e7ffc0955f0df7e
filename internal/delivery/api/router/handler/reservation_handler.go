package handler

import (
	"log/slog"
	"net/http"

	"smartdine/internal/delivery/api/middleware"
	"smartdine/internal/delivery/api/response"
	"smartdine/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	Logger        *slog.Logger
}

// ReservationHandler holds dependencies for reservation-related handlers
type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
	logger        *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: params.ReservationUC,
		logger:        params.Logger,
	}
}

// CreateReservationRequest represents the request body for booking a table
type CreateReservationRequest struct {
	RestaurantID FlexibleID `json:"restaurantId" validate:"required"`
	Name         string     `json:"name" validate:"required"`
	PartySize    int        `json:"partySize" validate:"required"`
	Date         string     `json:"date" validate:"required"`
	Time         string     `json:"time" validate:"required"`
}

// CreateReservation books a table. Signed-in callers own the reservation; anonymous
// callers make a guest booking.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	input := usecase.ReserveInput{
		RestaurantID: int64(req.RestaurantID),
		Name:         req.Name,
		PartySize:    req.PartySize,
		Date:         req.Date,
		Time:         req.Time,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.UserID = &userID
	}

	result, err := h.reservationUC.Reserve(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ReservationCreatedResponse{
		ReservationResponse: toReservationResponse(result.Reservation),
		Capacity:            result.Capacity,
		TablesRemaining:     result.TablesRemaining,
	})
}

// ListMyReservations lists the caller's reservations.
func (h *ReservationHandler) ListMyReservations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reservations, err := h.reservationUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(reservations, toReservationDetailResponse))
}

// CancelReservation deletes one of the caller's reservations.
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reservationID, ok := parseID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid reservation ID")
	}

	if err := h.reservationUC.Cancel(c.Request().Context(), userID, reservationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OKResponse{OK: true})
}

// GetReservationQR renders the confirmation code of one of the caller's reservations.
func (h *ReservationHandler) GetReservationQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reservationID, ok := parseID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid reservation ID")
	}

	png, err := h.reservationUC.ConfirmationQR(c.Request().Context(), userID, reservationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
