// Package recommend scores unseen restaurants by how well their cuisine matches
// what a user already likes.
package recommend

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"smartdine/internal/domain/entity"
)

// Score weights and limits.
const (
	PreferredCuisineWeight = 3
	FavoriteCuisineWeight  = 2
	HighRatedCuisineWeight = 2

	// HighRating is the lowest rating that marks a cuisine as liked.
	HighRating = 4

	// MaxResults caps the number of recommendations, one per cuisine.
	MaxResults = 3
)

// Input is everything the scorer knows about a user and the catalog.
type Input struct {
	PreferredCuisine string
	FavoriteIDs      []int64
	Reviews          []entity.Review
	Catalog          []entity.Restaurant

	// AverageRatings maps restaurant id to its mean review rating across all users.
	AverageRatings map[int64]float64
}

// Scored is a recommended restaurant and the affinity score that selected it.
type Scored struct {
	Restaurant    entity.Restaurant
	Score         int
	AverageRating float64
}

// TieBreaker orders the members of one cuisine group; the first member represents the group.
// Every member of a group has the same score.
type TieBreaker interface {
	Order(group []Scored)
}

// Recommend returns at most MaxResults restaurants, at most one per cuisine, none of
// which the user has favorited or reviewed. Groups are ranked by score, then cuisine name.
func Recommend(in Input, tieBreaker TieBreaker) []Scored {
	byID := make(map[int64]entity.Restaurant, len(in.Catalog))
	for _, r := range in.Catalog {
		byID[r.ID] = r
	}

	seen := make(map[int64]struct{}, len(in.FavoriteIDs)+len(in.Reviews))
	favoriteCuisines := make(map[string]struct{})
	likedCuisines := make(map[string]struct{})

	for _, id := range in.FavoriteIDs {
		seen[id] = struct{}{}
		if r, ok := byID[id]; ok {
			favoriteCuisines[cuisineKey(r.Cuisine)] = struct{}{}
		}
	}

	for _, review := range in.Reviews {
		seen[review.RestaurantID] = struct{}{}
		if review.Rating < HighRating {
			continue
		}
		if r, ok := byID[review.RestaurantID]; ok {
			likedCuisines[cuisineKey(r.Cuisine)] = struct{}{}
		}
	}

	preferred := cuisineKey(in.PreferredCuisine)
	groups := make(map[string][]Scored)

	for _, r := range in.Catalog {
		if _, ok := seen[r.ID]; ok {
			continue
		}

		key := cuisineKey(r.Cuisine)
		if key == "" {
			continue
		}

		score := 0
		if key == preferred {
			score += PreferredCuisineWeight
		}
		if _, ok := favoriteCuisines[key]; ok {
			score += FavoriteCuisineWeight
		}
		if _, ok := likedCuisines[key]; ok {
			score += HighRatedCuisineWeight
		}

		if score == 0 {
			continue
		}

		groups[key] = append(groups[key], Scored{
			Restaurant:    r,
			Score:         score,
			AverageRating: in.AverageRatings[r.ID],
		})
	}

	type ranked struct {
		cuisine string
		pick    Scored
	}

	picks := make([]ranked, 0, len(groups))
	for cuisine, members := range groups {
		tieBreaker.Order(members)
		picks = append(picks, ranked{cuisine: cuisine, pick: members[0]})
	}

	slices.SortFunc(picks, func(a, b ranked) int {
		if c := cmp.Compare(b.pick.Score, a.pick.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.cuisine, b.cuisine)
	})

	result := make([]Scored, 0, min(len(picks), MaxResults))
	for _, p := range picks[:min(len(picks), MaxResults)] {
		result = append(result, p.pick)
	}

	return result
}

// cuisineKey folds case and surrounding spaces so "Seafood " and "seafood" group together.
func cuisineKey(cuisine string) string {
	return strings.ToLower(strings.TrimSpace(cuisine))
}

// StableTieBreaker prefers the best-rated restaurant, then name, then id.
type StableTieBreaker struct{}

// Order implements TieBreaker.
func (StableTieBreaker) Order(group []Scored) {
	slices.SortStableFunc(group, func(a, b Scored) int {
		if c := cmp.Compare(b.AverageRating, a.AverageRating); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Restaurant.Name, b.Restaurant.Name); c != 0 {
			return c
		}

		return cmp.Compare(a.Restaurant.ID, b.Restaurant.ID)
	})
}

// RandomTieBreaker shuffles each group so repeated requests surface different restaurants.
type RandomTieBreaker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomTieBreaker creates a shuffling tie breaker backed by rng.
func NewRandomTieBreaker(rng *rand.Rand) *RandomTieBreaker {
	return &RandomTieBreaker{rng: rng}
}

// Order implements TieBreaker.
func (t *RandomTieBreaker) Order(group []Scored) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rng.Shuffle(len(group), func(i, j int) {
		group[i], group[j] = group[j], group[i]
	})
}
