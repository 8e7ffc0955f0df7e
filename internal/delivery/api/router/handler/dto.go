package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"smartdine/internal/domain/entity"
	"smartdine/internal/domain/recommend"
	"smartdine/internal/usecase"
)

// RestaurantResponse is the JSON shape of a catalog entry.
type RestaurantResponse struct {
	ID      int64              `json:"id"`
	Name    string             `json:"name"`
	City    string             `json:"city"`
	Cuisine string             `json:"cuisine"`
	Price   string             `json:"price"`
	Address string             `json:"address"`
	Tables  int                `json:"tables"`
	Hours   entity.WeeklyHours `json:"hours"`
	OpenNow *bool              `json:"open_now,omitempty"`
}

// ReservationResponse is the JSON shape of a stored reservation.
type ReservationResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	UserID       *int64    `json:"user_id"`
	Name         string    `json:"name"`
	PartySize    int       `json:"party_size"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReservationCreatedResponse adds the slot occupancy to a new reservation.
type ReservationCreatedResponse struct {
	ReservationResponse
	Capacity        int `json:"capacity"`
	TablesRemaining int `json:"tablesRemaining"`
}

// ReservationDetailResponse is a reservation listed with its restaurant.
type ReservationDetailResponse struct {
	ReservationResponse
	RestaurantName    string `json:"restaurant_name"`
	RestaurantCity    string `json:"restaurant_city"`
	RestaurantCuisine string `json:"restaurant_cuisine"`
	RestaurantAddress string `json:"restaurant_address"`
}

// UserResponse is the JSON shape of a diner profile.
type UserResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PreferredCuisine string    `json:"preferred_cuisine"`
	CreatedAt        time.Time `json:"created_at"`
}

// ReviewResponse is the JSON shape of a review.
type ReviewResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	Rating         int       `json:"rating"`
	ReviewText     string    `json:"review_text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RecommendationResponse is a suggested restaurant and its affinity score.
type RecommendationResponse struct {
	RestaurantResponse
	Score         int     `json:"score"`
	AverageRating float64 `json:"average_rating"`
}

// OKResponse acknowledges a state change.
type OKResponse struct {
	OK bool `json:"ok"`
}

func toRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:      r.ID,
		Name:    r.Name,
		City:    r.City,
		Cuisine: r.Cuisine,
		Price:   r.Price,
		Address: r.Address,
		Tables:  r.Tables,
		Hours:   r.Hours,
	}
}

func toRestaurantViewResponse(v *usecase.RestaurantView) RestaurantResponse {
	resp := toRestaurantResponse(v.Restaurant)
	openNow := v.OpenNow
	resp.OpenNow = &openNow

	return resp
}

func toReservationResponse(r *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		UserID:       r.UserID,
		Name:         r.Name,
		PartySize:    r.PartySize,
		Date:         r.Date,
		Time:         r.Time,
		CreatedAt:    r.CreatedAt,
	}
}

func toReservationDetailResponse(d *entity.ReservationDetail) ReservationDetailResponse {
	return ReservationDetailResponse{
		ReservationResponse: toReservationResponse(&d.Reservation),
		RestaurantName:      d.RestaurantName,
		RestaurantCity:      d.RestaurantCity,
		RestaurantCuisine:   d.RestaurantCuisine,
		RestaurantAddress:   d.RestaurantAddress,
	}
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		PreferredCuisine: u.PreferredCuisine,
		CreatedAt:        u.CreatedAt,
	}
}

func toReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		RestaurantID:   r.RestaurantID,
		RestaurantName: r.RestaurantName,
		Rating:         r.Rating,
		ReviewText:     r.Text,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toRecommendationResponse(s recommend.Scored) RecommendationResponse {
	return RecommendationResponse{
		RestaurantResponse: toRestaurantResponse(&s.Restaurant),
		Score:              s.Score,
		AverageRating:      s.AverageRating,
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

// parseID parses a positive integer path parameter.
// FlexibleID decodes an ID sent either as a JSON number or as a numeric string,
// since HTML form values arrive as strings. Empty strings and null decode to zero.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		data = []byte(raw)
		if len(bytes.TrimSpace(data)) == 0 {
			*id = 0

			return nil
		}
	}

	value, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 64)
	if err != nil {
		return err
	}
	*id = FlexibleID(value)

	return nil
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
