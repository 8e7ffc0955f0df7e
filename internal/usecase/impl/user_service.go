package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "smartdine/internal/delivery/context"
	"smartdine/internal/domain/constants"
	"smartdine/internal/domain/entity"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/domain/repository"
	"smartdine/internal/domain/service"
	"smartdine/internal/errors"
	"smartdine/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every diner profile.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// CreateUser stores a new profile and signs the caller in as that user.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*usecase.SessionOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrNameRequired.WrapMessage("create user")
	}

	user := &entity.User{
		Name:             name,
		Email:            strings.TrimSpace(input.Email),
		PreferredCuisine: strings.TrimSpace(input.PreferredCuisine),
	}
	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Int64("user_id", user.ID))

	return srv.issueSession(user)
}

// SelectUser signs the caller in as an existing user.
func (srv *userService) SelectUser(ctx context.Context, userID int64) (*usecase.SessionOutput, error) {
	if userID <= 0 {
		return nil, domainerrors.ErrInvalidID.WrapMessage("select user")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User selected", slog.Int64("user_id", user.ID))

	return srv.issueSession(user)
}

// GetUser returns the profile identified by the caller's token.
func (srv *userService) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

func (srv *userService) findUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) issueSession(user *entity.User) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID, []string{constants.RoleDiner})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.SessionOutput{User: user, AccessToken: token}, nil
}
