// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smartdine/internal/delivery/api/middleware"
	"smartdine/internal/delivery/api/router/handler"
	"smartdine/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthPath is the liveness endpoint; it is excluded from access logs.
const HealthPath = "/api/health"

type RouterParams struct {
	fx.In

	RestaurantHandler     *handler.RestaurantHandler
	ReservationHandler    *handler.ReservationHandler
	UserHandler           *handler.UserHandler
	FavoriteHandler       *handler.FavoriteHandler
	ReviewHandler         *handler.ReviewHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	restaurantHandler     *handler.RestaurantHandler
	reservationHandler    *handler.ReservationHandler
	userHandler           *handler.UserHandler
	favoriteHandler       *handler.FavoriteHandler
	reviewHandler         *handler.ReviewHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		restaurantHandler:     params.RestaurantHandler,
		reservationHandler:    params.ReservationHandler,
		userHandler:           params.UserHandler,
		favoriteHandler:       params.FavoriteHandler,
		reviewHandler:         params.ReviewHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(HealthPath, handler.HealthCheck)

	api := e.Group("/api")
	requireAuth := r.authMiddleware.AuthenticateRole(constants.RoleDiner)

	// Public catalog
	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", r.restaurantHandler.SearchRestaurants)
		restaurants.GET("/:id", r.restaurantHandler.GetRestaurant)
	}

	// Booking is open to guests; listing needs an identity
	reservations := api.Group("/reservations")
	{
		reservations.POST("", r.reservationHandler.CreateReservation, r.authMiddleware.OptionalAuthenticate)
		reservations.GET("", r.reservationHandler.ListMyReservations, requireAuth)
	}

	// Profiles
	users := api.Group("/users")
	{
		users.GET("", r.userHandler.ListUsers)
		users.POST("", r.userHandler.CreateUser)
		users.POST("/select", r.userHandler.SelectUser)
		users.GET("/active", r.userHandler.GetActiveUser, requireAuth)
	}

	// Reviews
	reviews := api.Group("/reviews", requireAuth)
	{
		reviews.POST("", r.reviewHandler.CreateReview)
		reviews.PUT("/:id", r.reviewHandler.UpdateReview)
		reviews.DELETE("/:id", r.reviewHandler.DeleteReview)
	}

	// Everything about the signed-in user
	me := api.Group("/user", requireAuth)
	{
		me.GET("/reservations", r.reservationHandler.ListMyReservations)
		me.DELETE("/reservations/:id", r.reservationHandler.CancelReservation)
		me.GET("/reservations/:id/qr", r.reservationHandler.GetReservationQR)

		me.GET("/favorites", r.favoriteHandler.ListFavorites)
		me.POST("/favorites", r.favoriteHandler.AddFavorite)
		me.DELETE("/favorites", r.favoriteHandler.RemoveFavorite)

		me.GET("/reviews", r.reviewHandler.ListMyReviews)
		me.GET("/recommendations", r.recommendationHandler.ListRecommendations)
	}
}
