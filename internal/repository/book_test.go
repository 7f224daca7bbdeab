package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/libraria/libraria-go/internal/model"
)

func TestBookCreateSetsID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO books (title, author, publisher, publishing_year, category_id)`)).
		WithArgs("Dune", "Frank Herbert", "Chilton", 1965, int64(4)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	book := &model.Book{Title: "Dune", Author: "Frank Herbert", Publisher: "Chilton", PublishingYear: 1965, CategoryID: 4}
	if err := repo.Create(context.Background(), book); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if book.ID != 11 {
		t.Errorf("Create() ID = %d, want 11", book.ID)
	}
}

func TestBookGetByIDResolvesCategoryName(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "author", "publisher", "publishing_year", "category_id", "name"}).
		AddRow(11, "Dune", "Frank Herbert", "Chilton", 1965, 4, "SciFi")
	mock.ExpectQuery(`JOIN categories c ON c.id = b.category_id`).
		WithArgs(int64(11)).
		WillReturnRows(rows)

	book, categoryName, err := repo.GetByID(context.Background(), 11)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if book.Title != "Dune" || book.CategoryID != 4 {
		t.Errorf("GetByID() book = %+v, want Dune in category 4", book)
	}
	if categoryName != "SciFi" {
		t.Errorf("GetByID() categoryName = %q, want SciFi", categoryName)
	}
}

func TestBookGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery(`FROM books b`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "publisher", "publishing_year", "category_id", "name"}))

	_, _, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("GetByID() error = %v, want ErrBookNotFound", err)
	}
}

func TestBookGetAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "author", "publisher", "publishing_year", "name"}).
		AddRow(11, "Dune", "Frank Herbert", "Chilton", 1965, "SciFi").
		AddRow(12, "Foundation", "Isaac Asimov", "", 1951, "SciFi")
	mock.ExpectQuery(`FROM books b`).WillReturnRows(rows)

	books, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() unexpected error: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("GetAll() returned %d books, want 2", len(books))
	}
	if books[1].CategoryName != "SciFi" {
		t.Errorf("GetAll() categoryName = %q, want SciFi", books[1].CategoryName)
	}
}

func TestBookUpdate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE books SET title = ?, author = ?, publisher = ?, publishing_year = ?, category_id = ?`)).
		WithArgs("Dune Messiah", "Frank Herbert", "Putnam", 1969, int64(4), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	book := &model.Book{ID: 11, Title: "Dune Messiah", Author: "Frank Herbert", Publisher: "Putnam", PublishingYear: 1969, CategoryID: 4}
	if err := repo.Update(context.Background(), book); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestBookDeleteNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookRepository(db)

	mock.ExpectExec(`DELETE FROM books WHERE id`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("Delete() error = %v, want ErrBookNotFound", err)
	}
}
