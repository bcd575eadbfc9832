package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
	"github.com/sothea-dev/shoppos-api/pkg/utils"
)

func setupAuthTest(t *testing.T) *AuthService {
	t.Helper()
	accountRepo := newMockAccountRepo()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, accountRepo.Create(context.Background(), &entity.Account{
		Username:    "admin",
		Password:    string(hashed),
		DisplayName: "Admin",
		Kind:        enum.AccountKindAdmin,
	}))

	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute)
	return NewAuthService(accountRepo, jwtManager)
}

func TestLogin(t *testing.T) {
	svc := setupAuthTest(t)

	result, err := svc.Login(context.Background(), &LoginInput{
		Username: "admin",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "admin", result.Account.Username)
	assert.Equal(t, enum.AccountKindAdmin, result.Account.Kind)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Login(context.Background(), &LoginInput{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := setupAuthTest(t)

	// Same error as a wrong password, no username probing
	_, err := svc.Login(context.Background(), &LoginInput{
		Username: "nobody",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Login(context.Background(), &LoginInput{})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
