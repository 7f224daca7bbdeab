package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/libraria/libraria-go/internal/model"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateEmail   = errors.New("email already registered")
)

// CustomerRepository handles customer persistence operations.
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer and sets the generated ID on the struct.
func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `INSERT INTO customers (name, email, password_hash) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, customer.Name, customer.Email, customer.PasswordHash)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	customer.ID = id
	return nil
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `SELECT id, name, email, password_hash FROM customers WHERE id = ?`

	customer := &model.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return customer, nil
}

// GetByEmail retrieves a customer by email address.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	query := `SELECT id, name, email, password_hash FROM customers WHERE email = ?`

	customer := &model.Customer{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return customer, nil
}

// Update overwrites a customer's name, email and password hash.
// MySQL reports zero affected rows when the new values equal the old
// ones, so existence is checked by the caller with GetByID, not here.
func (r *CustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	query := `UPDATE customers SET name = ?, email = ?, password_hash = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, customer.Name, customer.Email, customer.PasswordHash, customer.ID)
	if err != nil && isDuplicateEntryError(err) {
		return ErrDuplicateEmail
	}
	return err
}

// Delete removes a customer by ID.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// isDuplicateEntryError checks for a MySQL duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
