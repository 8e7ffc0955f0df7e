package impl

import (
	"context"
	"testing"

	"smartdine/internal/domain/constants"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/errors"
	mockRepo "smartdine/internal/mocks/repository"
	mockSvc "smartdine/internal/mocks/service"
	"smartdine/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	f.service = NewUserService(UserServiceParams{
		UserRepo:     f.userRepo,
		TokenService: f.tokenService,
		Logger:       discardLogger(),
	})

	return f
}

func TestUserService_CreateUser_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().CreateUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "Grace" && u.Email == "grace@example.com" && u.PreferredCuisine == "Thai"
	})).RunAndReturn(func(_ context.Context, u *entity.User) error {
		u.ID = 11
		return nil
	})
	f.tokenService.EXPECT().GenerateAccessToken(int64(11), []string{constants.RoleDiner}).Return("token-11", nil)

	out, err := f.service.CreateUser(ctx, usecase.CreateUserInput{
		Name:             "  Grace ",
		Email:            "grace@example.com",
		PreferredCuisine: "Thai",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), out.User.ID)
	assert.Equal(t, "token-11", out.AccessToken)
}

func TestUserService_CreateUser_NameRequired(t *testing.T) {
	f := createTestUserService(t)

	_, err := f.service.CreateUser(context.Background(), usecase.CreateUserInput{Name: "   "})

	assert.True(t, errors.Is(err, domainerrors.ErrNameRequired))
}

func TestUserService_SelectUser(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindUserByID(ctx, int64(4)).Return(&entity.User{ID: 4, Name: "Alan"}, nil)
	f.tokenService.EXPECT().GenerateAccessToken(int64(4), []string{constants.RoleDiner}).Return("token-4", nil)

	out, err := f.service.SelectUser(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, "Alan", out.User.Name)
	assert.Equal(t, "token-4", out.AccessToken)
}

func TestUserService_SelectUser_Errors(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	_, err := f.service.SelectUser(ctx, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidID))

	f.userRepo.EXPECT().FindUserByID(ctx, int64(8)).Return(nil, repository.ErrUserNotFound)
	_, err = f.service.SelectUser(ctx, 8)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetUser_RepositoryError(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(nil, errors.New("connection reset"))

	_, err := f.service.GetUser(ctx, 1)

	assert.ErrorContains(t, err, "failed to find user")
}

func TestUserService_ListUsers(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	users := []*entity.User{{ID: 1}, {ID: 2}}
	f.userRepo.EXPECT().ListUsers(ctx).Return(users, nil)

	got, err := f.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
