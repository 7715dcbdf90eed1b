// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/domain/service"
	"hub/internal/errors"
	"hub/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete user registration process.
func (srv *userService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingField.WrapMessage("signup requires name, email and password")
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	// Uniqueness pre-check. This check-then-insert is not atomic against the
	// store; the unique email index is the actual enforcement boundary, and
	// Create maps a duplicate-key insert to the same error.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Signup rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailTaken.WrapMessage("signup pre-check found existing user")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Bookmarks:    []primitive.ObjectID{},
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.String("userID", newUser.ID.Hex()))

	return &usecase.SignupOutput{User: usecase.NewPublicUser(newUser)}, nil
}

// Login orchestrates the user login process.
// An unknown email and a wrong password yield the identical error value, so
// responses never reveal which part failed.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingField.WrapMessage("login requires email and password")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID.Hex()))

	return &usecase.LoginOutput{
		Token: token,
		User:  usecase.NewPublicUser(user),
	}, nil
}

// GetProfile returns the public projection of the given user.
func (srv *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*usecase.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewPublicUser(user), nil
}
