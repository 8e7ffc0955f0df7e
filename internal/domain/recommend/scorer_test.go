package recommend

import (
	"math/rand/v2"
	"testing"

	"smartdine/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []entity.Restaurant {
	return []entity.Restaurant{
		{ID: 1, Name: "Aldo's", Cuisine: "Italian"},
		{ID: 2, Name: "Sabatino's", Cuisine: "Italian"},
		{ID: 3, Name: "Da Mimmo", Cuisine: "Italian"},
		{ID: 4, Name: "Sushi King", Cuisine: "Japanese"},
		{ID: 5, Name: "Ramen Bar", Cuisine: "Japanese"},
		{ID: 6, Name: "Taqueria", Cuisine: "Mexican"},
		{ID: 7, Name: "Cantina", Cuisine: "Mexican"},
		{ID: 8, Name: "Crab Shack", Cuisine: "Seafood"},
		{ID: 9, Name: "Oyster House", Cuisine: "Seafood"},
		{ID: 10, Name: "Pho 88", Cuisine: "Vietnamese"},
	}
}

func ids(scored []Scored) []int64 {
	out := make([]int64, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Restaurant.ID)
	}

	return out
}

func TestRecommend_ExcludesFavoritedAndReviewed(t *testing.T) {
	t.Parallel()

	in := Input{
		PreferredCuisine: "Italian",
		FavoriteIDs:      []int64{1, 4},
		Reviews: []entity.Review{
			{RestaurantID: 2, Rating: 5},
			{RestaurantID: 6, Rating: 2},
		},
		Catalog: catalog(),
	}

	got := Recommend(in, StableTieBreaker{})

	for _, s := range got {
		assert.NotContains(t, []int64{1, 2, 4, 6}, s.Restaurant.ID)
	}
}

func TestRecommend_OnePerCuisineAndCapped(t *testing.T) {
	t.Parallel()

	in := Input{
		PreferredCuisine: "Seafood",
		FavoriteIDs:      []int64{1, 4},
		Reviews: []entity.Review{
			{RestaurantID: 6, Rating: 4},
		},
		Catalog: catalog(),
	}

	got := Recommend(in, StableTieBreaker{})
	require.Len(t, got, MaxResults)

	cuisines := make(map[string]struct{})
	for _, s := range got {
		_, dup := cuisines[s.Restaurant.Cuisine]
		assert.False(t, dup, "cuisine %s repeated", s.Restaurant.Cuisine)
		cuisines[s.Restaurant.Cuisine] = struct{}{}
	}

	// Seafood (3) first, then Italian, Japanese and Mexican tie at 2 and sort by name.
	assert.Equal(t, "Seafood", got[0].Restaurant.Cuisine)
	assert.Equal(t, PreferredCuisineWeight, got[0].Score)
	assert.Equal(t, "Italian", got[1].Restaurant.Cuisine)
	assert.Equal(t, "Japanese", got[2].Restaurant.Cuisine)
}

func TestRecommend_WeightsAccumulate(t *testing.T) {
	t.Parallel()

	in := Input{
		PreferredCuisine: "japanese",
		FavoriteIDs:      []int64{4},
		Reviews:          []entity.Review{{RestaurantID: 8, Rating: 5}},
		Catalog:          catalog(),
	}

	got := Recommend(in, StableTieBreaker{})
	require.Len(t, got, 2)

	assert.Equal(t, int64(5), got[0].Restaurant.ID)
	assert.Equal(t, PreferredCuisineWeight+FavoriteCuisineWeight, got[0].Score)
	assert.Equal(t, int64(9), got[1].Restaurant.ID)
	assert.Equal(t, HighRatedCuisineWeight, got[1].Score)
}

func TestRecommend_NoSignalsReturnsEmpty(t *testing.T) {
	t.Parallel()

	got := Recommend(Input{Catalog: catalog()}, StableTieBreaker{})
	assert.Empty(t, got)

	got = Recommend(Input{PreferredCuisine: "Ethiopian", Catalog: catalog()}, StableTieBreaker{})
	assert.Empty(t, got)
}

func TestRecommend_LowRatingsDoNotCount(t *testing.T) {
	t.Parallel()

	in := Input{
		Reviews: []entity.Review{{RestaurantID: 1, Rating: 3}},
		Catalog: catalog(),
	}

	assert.Empty(t, Recommend(in, StableTieBreaker{}))
}

func TestStableTieBreaker_RatingThenName(t *testing.T) {
	t.Parallel()

	in := Input{
		PreferredCuisine: "Italian",
		Catalog:          catalog(),
		AverageRatings:   map[int64]float64{3: 4.5, 1: 4.5, 2: 3.0},
	}

	first := Recommend(in, StableTieBreaker{})
	require.Len(t, first, 1)
	assert.Equal(t, int64(1), first[0].Restaurant.ID, "Aldo's sorts before Da Mimmo at equal rating")
	assert.InDelta(t, 4.5, first[0].AverageRating, 0.0001)

	for range 20 {
		assert.Equal(t, ids(first), ids(Recommend(in, StableTieBreaker{})))
	}
}

func TestStableTieBreaker_NameThenID(t *testing.T) {
	t.Parallel()

	group := []Scored{
		{Restaurant: entity.Restaurant{ID: 9, Name: "Same"}},
		{Restaurant: entity.Restaurant{ID: 3, Name: "Same"}},
		{Restaurant: entity.Restaurant{ID: 5, Name: "Alpha"}},
	}

	StableTieBreaker{}.Order(group)

	assert.Equal(t, []int64{5, 3, 9}, ids(group))
}

func TestRandomTieBreaker_SeededIsReproducible(t *testing.T) {
	t.Parallel()

	in := Input{
		PreferredCuisine: "Italian",
		FavoriteIDs:      []int64{4},
		Catalog:          catalog(),
	}

	a := Recommend(in, NewRandomTieBreaker(rand.New(rand.NewPCG(42, 42))))
	b := Recommend(in, NewRandomTieBreaker(rand.New(rand.NewPCG(42, 42))))

	assert.Equal(t, ids(a), ids(b))
	require.Len(t, a, 2)
	assert.Equal(t, "Italian", a[0].Restaurant.Cuisine)
	assert.Equal(t, "Japanese", a[1].Restaurant.Cuisine)
}

func TestRandomTieBreaker_VariesWithinGroup(t *testing.T) {
	t.Parallel()

	in := Input{PreferredCuisine: "Italian", Catalog: catalog()}
	tieBreaker := NewRandomTieBreaker(rand.New(rand.NewPCG(1, 2)))

	picked := make(map[int64]struct{})
	for range 100 {
		got := Recommend(in, tieBreaker)
		require.Len(t, got, 1)
		assert.Contains(t, []int64{1, 2, 3}, got[0].Restaurant.ID)
		picked[got[0].Restaurant.ID] = struct{}{}
	}

	assert.Greater(t, len(picked), 1)
}

func TestRecommend_CuisineMatchIgnoresCaseAndPadding(t *testing.T) {
	t.Parallel()

	in := Input{
		PreferredCuisine: " seafood ",
		FavoriteIDs:      []int64{9},
		Catalog: []entity.Restaurant{
			{ID: 8, Name: "Crab Shack", Cuisine: "SEAFOOD"},
			{ID: 9, Name: "Oyster House", Cuisine: "Seafood "},
			{ID: 11, Name: "Fish Market", Cuisine: "seafood"},
			{ID: 10, Name: "Pho 88", Cuisine: "Vietnamese"},
		},
	}

	got := Recommend(in, StableTieBreaker{})

	require.Len(t, got, 1)
	assert.Equal(t, PreferredCuisineWeight+FavoriteCuisineWeight, got[0].Score)
	assert.Equal(t, int64(8), got[0].Restaurant.ID)
}
