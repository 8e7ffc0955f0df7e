package main

import (
	"context"
	"testing"

	"smartdine/internal/domain/entity"
	"smartdine/internal/domain/repository"
	mockRepo "smartdine/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogTx(t *testing.T) (*mockRepo.MockTransactionManager, *mockRepo.MockRestaurantRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	catalog := mockRepo.NewMockRestaurantRepository(t)

	factory.EXPECT().NewRestaurantRepository().Return(catalog)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager, catalog
}

func TestStoreCatalog_ResetsBeforeInsert(t *testing.T) {
	txManager, catalog := newCatalogTx(t)
	restaurants := []*entity.Restaurant{{Name: "Siam"}}

	var order []string
	catalog.EXPECT().ResetCatalog(mock.Anything).
		Run(func(context.Context) { order = append(order, "reset") }).
		Return(nil)
	catalog.EXPECT().CreateRestaurants(mock.Anything, restaurants).
		Run(func(context.Context, []*entity.Restaurant) { order = append(order, "insert") }).
		Return(nil)

	require.NoError(t, storeCatalog(context.Background(), txManager, restaurants, true))
	assert.Equal(t, []string{"reset", "insert"}, order)
}

func TestStoreCatalog_AppendSkipsReset(t *testing.T) {
	txManager, catalog := newCatalogTx(t)
	restaurants := []*entity.Restaurant{{Name: "Siam"}}

	catalog.EXPECT().CreateRestaurants(mock.Anything, restaurants).Return(nil)

	require.NoError(t, storeCatalog(context.Background(), txManager, restaurants, false))
	catalog.AssertNotCalled(t, "ResetCatalog", mock.Anything)
}

func TestStoreCatalog_ResetFailureStopsInsert(t *testing.T) {
	txManager, catalog := newCatalogTx(t)

	catalog.EXPECT().ResetCatalog(mock.Anything).Return(assert.AnError)

	err := storeCatalog(context.Background(), txManager, nil, true)

	assert.ErrorIs(t, err, assert.AnError)
	catalog.AssertNotCalled(t, "CreateRestaurants", mock.Anything, mock.Anything)
}
