package impl

import (
	"context"
	"log/slog"

	"closecart/internal/domain/entity"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/repository"
	"closecart/internal/domain/service"
	"closecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates the owner account together with its shop and default settings.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering account", "email", input.Email)

	// Password strength is checked before anything touches the database.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var user *entity.User
	var shop *entity.Shop

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		shopRepo := repoFactory.ShopRepo()
		settingsRepo := repoFactory.SettingsRepo()

		// 1. Reject duplicate emails early.
		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		// 2. Create the account.
		user = &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			Phone:        input.Phone,
			PasswordHash: passwordHash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		// 3. Create the shop with the default opening schedule.
		shop = &entity.Shop{
			OwnerID:       user.ID,
			Name:          input.ShopName,
			Email:         input.Email,
			Phone:         input.Phone,
			BusinessHours: entity.DefaultBusinessHours(),
		}
		if err := shopRepo.Create(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to create shop")
		}

		// 4. Link the account to its shop.
		user.ShopID = shop.ID
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to link user to shop")
		}

		// 5. Seed the default notification and chat preferences.
		if err := settingsRepo.Save(ctx, entity.DefaultShopSettings(shop.ID)); err != nil {
			return errors.Wrap(err, "failed to create default settings")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register account")
	}

	return srv.issueTokens(user, shop)
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Logging in", "email", input.Email)

	var user *entity.User
	var shop *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Same error as a wrong password so probing reveals nothing.
				return domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.Password, foundUser.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("wrong password")
		}

		foundShop, err := repoFactory.ShopRepo().FindByID(ctx, foundUser.ShopID)
		if err != nil {
			return errors.Wrap(err, "failed to find shop")
		}

		user = foundUser
		shop = foundShop

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	return srv.issueTokens(user, shop)
}

// ChangePassword verifies the current password and stores a new one.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.logger.Info("Changing password", "userID", userID)

	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch.WrapMessage("confirmation does not match")
	}

	// Strength is validated before the transaction so weak passwords never
	// cause a database round trip.
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password rejected")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("current password is wrong")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		user.PasswordHash = newHash
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	return nil
}

// GetMe returns the authenticated account and its shop.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*usecase.MeOutput, error) {
	var out usecase.MeOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		shop, err := repoFactory.ShopRepo().FindByID(ctx, user.ShopID)
		if err != nil {
			return errors.Wrap(err, "failed to find shop")
		}

		out.User = user
		out.Shop = shop

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return &out, nil
}

// issueTokens builds the auth output with a fresh token pair. The password
// hash is cleared so it never reaches the wire.
func (srv *userService) issueTokens(user *entity.User, shop *entity.Shop) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	user.PasswordHash = ""

	return &usecase.AuthOutput{
		User:         user,
		Shop:         shop,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
