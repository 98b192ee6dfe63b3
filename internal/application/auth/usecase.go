// Package auth автентифікація та керування користувачами.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/pkg/config"
	"github.com/oz-oblik/assets-backend/pkg/jwt"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

// AuthUseCase логін, створення користувачів, зміна пароля.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase конструює юзкейс.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login перевіряє пароль і видає JWT. Помилка однакова для невідомого email
// і хибного пароля, щоб не розкривати наявність облікового запису.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	u, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", u.ID).Msg("користувач увійшов у систему")
	return &dto.TokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.Expiration) * time.Minute),
		User:      dto.FromUser(u),
	}, nil
}

// Register створює користувача. Викликається адміністратором; email
// унікальний, сховище повертає domain.ErrEmailAlreadyExists при повторі.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	email := strings.ToLower(req.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	resp := dto.FromUser(u)
	return &resp, nil
}

// ChangePassword змінює пароль поточного користувача після перевірки старого.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	if err := dto.Validate(req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, u)
}

// Me профіль поточного користувача.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.FromUser(u)
	return &resp, nil
}
