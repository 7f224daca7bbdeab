package service

import (
	"context"
	"errors"
	"time"

	"github.com/libraria/libraria-go/internal/crypto"
	"github.com/libraria/libraria-go/internal/model"
	"github.com/libraria/libraria-go/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles authentication business logic.
type AuthService struct {
	repo      *repository.CustomerRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.CustomerRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		tokenTTL:  ttl,
	}
}

// Login authenticates a customer by email and password and returns a
// bearer token. An unknown email and a wrong password fail with the same
// error so callers cannot enumerate registered accounts.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	customer, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, customer.PasswordHash) {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(customer.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{Token: token}, nil
}

// IssueToken signs a token for the given customer email. Used after
// self-registration so a new customer can call protected endpoints
// without a separate login round trip.
func (s *AuthService) IssueToken(email string) (string, error) {
	return crypto.GenerateToken(email, s.jwtSecret, s.tokenTTL)
}
