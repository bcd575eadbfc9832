package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
	"github.com/sothea-dev/shoppos-api/pkg/utils"
)

// AuthService handles authentication
type AuthService struct {
	accountRepo repository.AccountRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(accountRepo repository.AccountRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtManager:  jwtManager,
	}
}

// LoginInput represents the login request
type LoginInput struct {
	Username string
	Password string
}

// LoginResult represents a successful login
type LoginResult struct {
	AccessToken string          `json:"access_token"`
	Account     *entity.Account `json:"account"`
}

// Login verifies the credentials and issues an access token. Unknown
// usernames and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	account, err := s.accountRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(account.ID, account.Username, account.DisplayName, account.Kind.String())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		Account:     account,
	}, nil
}
