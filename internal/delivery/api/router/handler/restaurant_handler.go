// Package handler contains the echo handlers of the REST API.
package handler

import (
	"log/slog"
	"net/http"

	"smartdine/internal/delivery/api/response"
	"smartdine/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler serves the public catalog.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// SearchRestaurants lists restaurants filtered by city, cuisine, price and open_now.
func (h *RestaurantHandler) SearchRestaurants(c echo.Context) error {
	var input usecase.SearchRestaurantsInput
	err := echo.QueryParamsBinder(c).
		String("city", &input.City).
		String("cuisine", &input.Cuisine).
		String("price", &input.Price).
		Bool("open_now", &input.OpenNow).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	views, err := h.restaurantUC.Search(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(views, toRestaurantViewResponse))
}

// GetRestaurant returns one restaurant.
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	restaurantID, ok := parseID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	view, err := h.restaurantUC.Get(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRestaurantViewResponse(view))
}
