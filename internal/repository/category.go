package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/libraria/libraria-go/internal/model"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDuplicateCategoryName = errors.New("category name already exists")
)

// CategoryRepository handles category persistence operations.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category and sets the generated ID on the struct.
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `INSERT INTO categories (name, description) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, category.Name, category.Description)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateCategoryName
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	category.ID = id
	return nil
}

// GetByID retrieves a category by ID together with its current book count.
// The count is computed by the query, never stored.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, int, error) {
	query := `SELECT c.id, c.name, COALESCE(c.description, ''), COUNT(b.id)
		FROM categories c
		LEFT JOIN books b ON b.category_id = c.id
		WHERE c.id = ?
		GROUP BY c.id, c.name, c.description`

	category := &model.Category{}
	var bookCount int
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Description, &bookCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrCategoryNotFound
		}
		return nil, 0, err
	}

	return category, bookCount, nil
}

// GetAll retrieves all categories with their book counts.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.CategoryResponse, error) {
	query := `SELECT c.id, c.name, COALESCE(c.description, ''), COUNT(b.id)
		FROM categories c
		LEFT JOIN books b ON b.category_id = c.id
		GROUP BY c.id, c.name, c.description
		ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.CategoryResponse
	for rows.Next() {
		var c model.CategoryResponse
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.BookCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Update overwrites a category's name and description. Existence is
// checked by the caller; identical values legitimately affect zero rows.
func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	query := `UPDATE categories SET name = ?, description = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, category.Name, category.Description, category.ID)
	if err != nil && isDuplicateEntryError(err) {
		return ErrDuplicateCategoryName
	}
	return err
}

// Delete removes a category by ID. The foreign key on books cascades, so
// every book referencing the category is deleted with it.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
