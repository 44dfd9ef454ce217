package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/fleet/mocks"
)

func authTestConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "flotilla"
	return cfg
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.NotEqual(t, "secret123", user.PasswordHash)
			assert.True(t, user.IsActive)
			return nil
		})

	uc := NewAuthUC(authTestConfig(), userRepo)

	user, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "conductor1",
		Password: "secret123",
		FullName: "Carlos Mendoza",
		Role:     models.RoleDriver,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, user.Role)

	// Stored hash verifies against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegister_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAuthUC(authTestConfig(), mocks.NewMockUserRepo(ctrl))

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "x", Password: "y", Role: "dispatcher",
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Username:     "conductor1",
		PasswordHash: string(hash),
		FullName:     "Carlos Mendoza",
		Role:         models.RoleDriver,
		IsActive:     true,
	}

	userRepo := mocks.NewMockUserRepo(ctrl)
	userRepo.EXPECT().GetUserByUsername(gomock.Any(), "conductor1").Return(user, nil)

	uc := NewAuthUC(authTestConfig(), userRepo)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "conductor1",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, models.RoleDriver, resp.Role)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{
		ID: uuid.New(), Username: "conductor1", PasswordHash: string(hash), IsActive: true,
	}

	userRepo := mocks.NewMockUserRepo(ctrl)
	userRepo.EXPECT().GetUserByUsername(gomock.Any(), "conductor1").Return(user, nil)

	uc := NewAuthUC(authTestConfig(), userRepo)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "conductor1", Password: "wrong",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	userRepo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, errors.New("user not found"))

	uc := NewAuthUC(authTestConfig(), userRepo)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "ghost", Password: "whatever",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_DisabledAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{
		ID: uuid.New(), Username: "conductor1", PasswordHash: string(hash), IsActive: false,
	}

	userRepo := mocks.NewMockUserRepo(ctrl)
	userRepo.EXPECT().GetUserByUsername(gomock.Any(), "conductor1").Return(user, nil)

	uc := NewAuthUC(authTestConfig(), userRepo)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "conductor1", Password: "secret123",
	})
	assert.Error(t, err)
}
