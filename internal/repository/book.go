package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/libraria/libraria-go/internal/model"
)

var ErrBookNotFound = errors.New("book not found")

// BookRepository handles book persistence operations.
type BookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new BookRepository.
func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Create inserts a new book and sets the generated ID on the struct.
func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `INSERT INTO books (title, author, publisher, publishing_year, category_id)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		book.Title, book.Author, book.Publisher, book.PublishingYear, book.CategoryID,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	book.ID = id
	return nil
}

// GetByID retrieves a book by ID with its category name resolved by the
// query, never stored on the book row.
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*model.Book, string, error) {
	query := `SELECT b.id, b.title, b.author, COALESCE(b.publisher, ''), b.publishing_year, b.category_id, c.name
		FROM books b
		JOIN categories c ON c.id = b.category_id
		WHERE b.id = ?`

	book := &model.Book{}
	var categoryName string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID, &book.Title, &book.Author, &book.Publisher,
		&book.PublishingYear, &book.CategoryID, &categoryName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrBookNotFound
		}
		return nil, "", err
	}

	return book, categoryName, nil
}

// GetAll retrieves all books with category names resolved.
func (r *BookRepository) GetAll(ctx context.Context) ([]model.BookResponse, error) {
	query := `SELECT b.id, b.title, b.author, COALESCE(b.publisher, ''), b.publishing_year, c.name
		FROM books b
		JOIN categories c ON c.id = b.category_id
		ORDER BY b.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []model.BookResponse
	for rows.Next() {
		var b model.BookResponse
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Publisher, &b.PublishingYear, &b.CategoryName); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

// Update overwrites all mutable book fields. Existence is checked by the
// caller; identical values legitimately affect zero rows.
func (r *BookRepository) Update(ctx context.Context, book *model.Book) error {
	query := `UPDATE books SET title = ?, author = ?, publisher = ?, publishing_year = ?, category_id = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		book.Title, book.Author, book.Publisher, book.PublishingYear, book.CategoryID, book.ID,
	)
	return err
}

// Delete removes a book by ID. Deleting a book never touches its category.
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBookNotFound
	}

	return nil
}
