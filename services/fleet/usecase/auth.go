package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	pkgjwt "github.com/ncastellanos/flotilla/internal/pkg/jwt"

	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/fleet"
)

// AuthUC implements the fleet.AuthUC interface
type AuthUC struct {
	cfg      *models.Config
	userRepo fleet.UserRepo
}

// NewAuthUC creates a new authentication use case
func NewAuthUC(cfg *models.Config, userRepo fleet.UserRepo) fleet.AuthUC {
	return &AuthUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleDriver {
		return nil, fmt.Errorf("invalid role %q", req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role),
	)
	return user, nil
}

// Login verifies credentials and issues a JWT. Lookup and compare
// failures return the same error so usernames cannot be probed.
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, expiresAt, err := pkgjwt.GenerateToken(user.ID, user.Username, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Role:      user.Role,
		FullName:  user.FullName,
	}, nil
}
