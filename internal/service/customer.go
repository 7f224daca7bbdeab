package service

import (
	"context"
	"errors"
	"strings"

	"github.com/libraria/libraria-go/internal/crypto"
	"github.com/libraria/libraria-go/internal/model"
	"github.com/libraria/libraria-go/internal/repository"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrForbidden        = errors.New("customer record belongs to another account")
)

// CustomerService handles customer business logic. Read, update and
// delete are restricted to the record owned by the authenticated subject;
// registration is open.
type CustomerService struct {
	repo *repository.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Register creates a new customer account with a hashed password.
func (s *CustomerService) Register(ctx context.Context, req model.CustomerRequest) (model.CustomerResponse, error) {
	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.CustomerResponse{}, err
	}

	customer := &model.Customer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.CustomerResponse{}, ErrEmailTaken
		}
		return model.CustomerResponse{}, err
	}

	return customerToResponse(customer), nil
}

// GetByID retrieves a customer. The subject must own the record.
func (s *CustomerService) GetByID(ctx context.Context, id int64, subject string) (model.CustomerResponse, error) {
	customer, err := s.ownedCustomer(ctx, id, subject)
	if err != nil {
		return model.CustomerResponse{}, err
	}
	return customerToResponse(customer), nil
}

// Update overwrites a customer's name and email. The password is
// re-hashed and replaced only when a non-blank value is supplied; a blank
// password keeps the stored hash untouched.
func (s *CustomerService) Update(ctx context.Context, id int64, subject string, req model.CustomerRequest) (model.CustomerResponse, error) {
	customer, err := s.ownedCustomer(ctx, id, subject)
	if err != nil {
		return model.CustomerResponse{}, err
	}

	customer.Name = req.Name
	customer.Email = req.Email
	if strings.TrimSpace(req.Password) != "" {
		hash, err := crypto.HashPassword(req.Password)
		if err != nil {
			return model.CustomerResponse{}, err
		}
		customer.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.CustomerResponse{}, ErrEmailTaken
		}
		return model.CustomerResponse{}, err
	}

	return customerToResponse(customer), nil
}

// Delete removes a customer. The subject must own the record.
func (s *CustomerService) Delete(ctx context.Context, id int64, subject string) error {
	if _, err := s.ownedCustomer(ctx, id, subject); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return ErrCustomerNotFound
	}
	return err
}

// ownedCustomer loads the target record and checks that its email matches
// the token subject. The not-found check runs first, so probing for other
// accounts yields 404 for absent ids and 403 for existing ones.
func (s *CustomerService) ownedCustomer(ctx context.Context, id int64, subject string) (*model.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if customer.Email != subject {
		return nil, ErrForbidden
	}
	return customer, nil
}

func customerToResponse(c *model.Customer) model.CustomerResponse {
	return model.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}
