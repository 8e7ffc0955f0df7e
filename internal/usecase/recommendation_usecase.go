package usecase

import (
	"context"

	"smartdine/internal/domain/recommend"
)

// RecommendationUsecase defines the interface for personalised restaurant suggestions.
type RecommendationUsecase interface {
	Recommend(ctx context.Context, userID int64) ([]recommend.Scored, error)
}
