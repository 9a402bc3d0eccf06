package usecases

import (
	"context"

	"go.uber.org/zap"

	"offer-bazar.backend/internal/domain/entities"
	domainerrors "offer-bazar.backend/internal/domain/errors"
	"offer-bazar.backend/internal/domain/repositories"
	"offer-bazar.backend/pkg/crypto"
	"offer-bazar.backend/pkg/jwt"
	"offer-bazar.backend/pkg/logger"
)

// AuthUsecase handles merchant and admin authentication
type AuthUsecase struct {
	merchantRepo repositories.MerchantRepository
	userRepo     repositories.UserRepository
	jwtService   *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	merchantRepo repositories.MerchantRepository,
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
		jwtService:   jwtService,
	}
}

// RegisterMerchant creates a merchant account in the pending review state
func (u *AuthUsecase) RegisterMerchant(ctx context.Context, input *entities.MerchantRegisterInput) (*entities.AuthResponse, error) {
	existing, err := u.merchantRepo.GetByEmail(ctx, input.Email)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("a merchant with this email already exists")
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	merchant := &entities.Merchant{
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   hash,
		ApprovalStatus: entities.ApprovalStatusPending,
	}
	if input.Phone != "" {
		merchant.Phone.SetValid(input.Phone)
	}
	if input.BusinessName != "" {
		merchant.BusinessName.SetValid(input.BusinessName)
	}
	if input.BusinessType != "" {
		merchant.BusinessType.SetValid(input.BusinessType)
	}
	if input.Website != "" {
		merchant.Website.SetValid(input.Website)
	}
	if input.Address != "" {
		merchant.Address.SetValid(input.Address)
	}

	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}

	tokens, err := u.jwtService.GenerateTokenPair(merchant.ID, merchant.Email, entities.RoleMerchant)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "merchant registered",
		zap.String("merchant_id", merchant.ID.String()),
		zap.String("email", merchant.Email))

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Role:         entities.RoleMerchant,
		Profile:      merchant,
	}, nil
}

// LoginMerchant authenticates a merchant by email and password
func (u *AuthUsecase) LoginMerchant(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	merchant, err := u.merchantRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, merchant.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(merchant.ID, merchant.Email, entities.RoleMerchant)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Role:         entities.RoleMerchant,
		Profile:      merchant,
	}, nil
}

// LoginAdmin authenticates an admin panel user
func (u *AuthUsecase) LoginAdmin(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Role != entities.RoleAdmin && user.Role != entities.RoleSubAdmin {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Role:         user.Role,
		Profile:      user,
	}, nil
}

// SeedAdmin creates the configured admin account if it does not exist yet.
// Called once at startup with credentials from the environment.
func (u *AuthUsecase) SeedAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if err != domainerrors.ErrNotFound {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entities.RoleAdmin,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return err
	}

	logger.Info(ctx, "admin account seeded", zap.String("email", email))
	return nil
}
