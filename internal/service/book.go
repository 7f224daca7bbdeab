package service

import (
	"context"
	"errors"

	"github.com/libraria/libraria-go/internal/model"
	"github.com/libraria/libraria-go/internal/repository"
)

var ErrBookNotFound = errors.New("book not found")

// BookService handles book business logic, including the referential rule
// that every book points at an existing category.
type BookService struct {
	books      *repository.BookRepository
	categories *repository.CategoryRepository
}

// NewBookService creates a new BookService.
func NewBookService(books *repository.BookRepository, categories *repository.CategoryRepository) *BookService {
	return &BookService{books: books, categories: categories}
}

// Create persists a new book. The category must resolve first; when it
// does not, nothing is written and ErrCategoryNotFound is returned.
func (s *BookService) Create(ctx context.Context, req model.BookRequest) (model.BookResponse, error) {
	category, _, err := s.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return model.BookResponse{}, ErrCategoryNotFound
		}
		return model.BookResponse{}, err
	}

	book := &model.Book{
		Title:          req.Title,
		Author:         req.Author,
		Publisher:      req.Publisher,
		PublishingYear: req.PublishingYear,
		CategoryID:     category.ID,
	}

	if err := s.books.Create(ctx, book); err != nil {
		return model.BookResponse{}, err
	}

	return bookToResponse(book, category.Name), nil
}

// GetAll retrieves all books.
func (s *BookService) GetAll(ctx context.Context) ([]model.BookResponse, error) {
	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.BookResponse{}
	}
	return books, nil
}

// GetByID retrieves a single book.
func (s *BookService) GetByID(ctx context.Context, id int64) (model.BookResponse, error) {
	book, categoryName, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return model.BookResponse{}, ErrBookNotFound
		}
		return model.BookResponse{}, err
	}
	return bookToResponse(book, categoryName), nil
}

// Update overwrites title, author, publisher and publishing year. When a
// category id is supplied it is re-resolved and the book reassigned;
// when omitted the existing category is retained.
func (s *BookService) Update(ctx context.Context, id int64, req model.BookRequest) (model.BookResponse, error) {
	book, categoryName, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return model.BookResponse{}, ErrBookNotFound
		}
		return model.BookResponse{}, err
	}

	book.Title = req.Title
	book.Author = req.Author
	book.Publisher = req.Publisher
	book.PublishingYear = req.PublishingYear

	if req.CategoryID != 0 {
		category, _, err := s.categories.GetByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return model.BookResponse{}, ErrCategoryNotFound
			}
			return model.BookResponse{}, err
		}
		book.CategoryID = category.ID
		categoryName = category.Name
	}

	if err := s.books.Update(ctx, book); err != nil {
		return model.BookResponse{}, err
	}

	return bookToResponse(book, categoryName), nil
}

// Delete removes a book. Its category is never touched.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	err := s.books.Delete(ctx, id)
	if errors.Is(err, repository.ErrBookNotFound) {
		return ErrBookNotFound
	}
	return err
}

func bookToResponse(b *model.Book, categoryName string) model.BookResponse {
	return model.BookResponse{
		ID:             b.ID,
		Title:          b.Title,
		Author:         b.Author,
		Publisher:      b.Publisher,
		PublishingYear: b.PublishingYear,
		CategoryName:   categoryName,
	}
}
