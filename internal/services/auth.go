package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/models"
	repository "github.com/factura-dev/invoicing-api/internal/repositories"
	"github.com/factura-dev/invoicing-api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *models.ChangePasswordRequest) error
	Logout(ctx context.Context, claims *models.Claims) error
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	jwtKey    []byte
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, jwtKey string, jwtExpiryHours int) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtKey:    []byte(jwtKey),
		jwtExpiry: time.Duration(jwtExpiryHours) * time.Hour,
	}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to check email").WithError(err)
	}

	if exists {
		return nil, takenError("email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("failed to hash password").WithError(err)
	}

	user := &models.User{
		Name:     utils.SanitizeStrict(req.Name),
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if appErr, ok := uniqueViolation(err); ok {
			return nil, appErr
		}

		return nil, appErrors.DatabaseError("failed to create user").WithError(err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{User: user, AccessToken: token}, nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.UnauthorizedError("Invalid Credentials")
		}

		return nil, appErrors.DatabaseError("failed to fetch user").WithError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, appErrors.UnauthorizedError("Invalid Credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{User: user, AccessToken: token}, nil
}

func (s *authService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("User not found")
		}

		return nil, appErrors.DatabaseError("failed to fetch user").WithError(err)
	}

	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *models.ChangePasswordRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("User not found")
		}

		return appErrors.DatabaseError("failed to fetch user").WithError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return appErrors.FieldError("current_password", "The current password is incorrect.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.InternalError("failed to hash password").WithError(err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return appErrors.DatabaseError("failed to update password").WithError(err)
	}

	return nil
}

// Logout revokes the presented token. The denylist entry expires with the
// token itself.
func (s *authService) Logout(ctx context.Context, claims *models.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)

	if err := s.tokenRepo.Revoke(ctx, claims.ID, ttl); err != nil {
		return appErrors.InternalError("failed to revoke token").WithError(err)
	}

	return nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return "", appErrors.InternalError("failed to sign token").WithError(err)
	}

	return token, nil
}
