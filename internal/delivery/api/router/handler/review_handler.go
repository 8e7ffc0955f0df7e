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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for reviewing a restaurant
type CreateReviewRequest struct {
	RestaurantID int64  `json:"restaurant_id" validate:"required"`
	Rating       int    `json:"rating" validate:"required"`
	ReviewText   string `json:"review_text"`
}

// UpdateReviewRequest represents the request body for editing a review
type UpdateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required"`
	ReviewText string `json:"review_text"`
}

// CreateReviewResponse is returned after a review is stored
type CreateReviewResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// CreateReview records the caller's review of a restaurant.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
		Text:         req.ReviewText,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateReviewResponse{OK: true, ID: review.ID})
}

// UpdateReview edits one of the caller's reviews.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, ok := parseID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	err := h.reviewUC.UpdateReview(c.Request().Context(), usecase.UpdateReviewInput{
		UserID:   userID,
		ReviewID: reviewID,
		Rating:   req.Rating,
		Text:     req.ReviewText,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OKResponse{OK: true})
}

// DeleteReview removes one of the caller's reviews.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, ok := parseID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OKResponse{OK: true})
}

// ListMyReviews lists the caller's reviews, newest first.
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviews, err := h.reviewUC.ListUserReviews(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(reviews, toReviewResponse))
}
