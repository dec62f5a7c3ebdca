package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/dto"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/repository"
	"github.com/swapnilsborase/blooddonor-service/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrAccountNotFound    = errors.New("account not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AccountResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, email, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context) (*dto.AccountResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		accountRepo: accountRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Register creates the single donor account. The three credential keys are
// written independently; the blood profile is attached in a later step.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AccountResponse, error) {
	account := &entity.Account{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := u.accountRepo.SaveAccount(ctx, account); err != nil {
		u.log.Warnf("Failed to save account: %+v", err)
		return nil, err
	}

	return &dto.AccountResponse{
		FullName: account.FullName,
		Email:    account.Email,
	}, nil
}

// Login authorizes entry iff both submitted values exactly equal the stored
// credentials; the comparison is case- and whitespace-sensitive. A successful
// login clears any previously captured profile image before tokens are
// issued. A rejected login mutates nothing and reports only a generic
// failure, never whether the email or the password was wrong.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	account, ok, err := u.accountRepo.GetAccount(ctx)
	if err != nil {
		u.log.Warnf("Failed to read stored account: %+v", err)
		return nil, err
	}
	if !ok || req.Email != account.Email || req.Password != account.Password {
		return nil, ErrInvalidCredentials
	}

	if err := u.accountRepo.ClearProfileImage(ctx); err != nil {
		u.log.Warnf("Failed to clear profile image on login: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(account.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(account.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", account.Email, accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", account.Email, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes the session tokens and clears the derived image reference.
// The account itself is never deleted.
func (u *authUsecase) Logout(ctx context.Context, email, accessTokenID, refreshTokenID string) error {
	keys := []string{
		fmt.Sprintf("access_token:%s:%s", email, accessTokenID),
	}
	if refreshTokenID != "" {
		keys = append(keys, fmt.Sprintf("refresh_token:%s:%s", email, refreshTokenID))
	}
	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}

	if err := u.accountRepo.ClearProfileImage(ctx); err != nil {
		u.log.Warnf("Failed to clear profile image on logout: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.Email, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKeyNew := fmt.Sprintf("access_token:%s:%s", claims.Email, accessTokenID)
	refreshKeyNew := fmt.Sprintf("refresh_token:%s:%s", claims.Email, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKeyNew, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKeyNew, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.AccountResponse, error) {
	account, ok, err := u.accountRepo.GetAccount(ctx)
	if err != nil {
		u.log.Warnf("Failed to read stored account: %+v", err)
		return nil, err
	}
	if !ok {
		return nil, ErrAccountNotFound
	}

	return &dto.AccountResponse{
		FullName: account.FullName,
		Email:    account.Email,
	}, nil
}
