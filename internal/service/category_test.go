package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/libraria/libraria-go/internal/model"
	"github.com/libraria/libraria-go/internal/repository"
)

func TestCategoryCreateDuplicateNameIsConflict(t *testing.T) {
	db, mock := newMock(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	mock.ExpectExec(`INSERT INTO categories`).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'SciFi' for key 'uq_categories_name'"))

	_, err := svc.Create(context.Background(), model.CategoryRequest{Name: "SciFi"})
	if !errors.Is(err, ErrDuplicateCategoryName) {
		t.Errorf("Create() error = %v, want ErrDuplicateCategoryName", err)
	}
}

func TestCategoryUpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	mock.ExpectQuery(`LEFT JOIN books`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "count"}))

	_, err := svc.Update(context.Background(), 99, model.CategoryRequest{Name: "SciFi"})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Update() error = %v, want ErrCategoryNotFound", err)
	}

	// No UPDATE may run for a missing category.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCategoryUpdateOverwritesFields(t *testing.T) {
	db, mock := newMock(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	mock.ExpectQuery(`LEFT JOIN books`).
		WithArgs(int64(4)).
		WillReturnRows(categoryRows(4, "SciFi", 2))
	mock.ExpectExec(`UPDATE categories SET`).
		WithArgs("Science Fiction", "speculative", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Update(context.Background(), 4, model.CategoryRequest{
		Name:        "Science Fiction",
		Description: "speculative",
	})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if resp.Name != "Science Fiction" || resp.BookCount != 2 {
		t.Errorf("Update() = %+v, want renamed category with bookCount 2", resp)
	}
}

func TestCategoryDeleteNotFoundService(t *testing.T) {
	db, mock := newMock(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	mock.ExpectExec(`DELETE FROM categories`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), 99)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Delete() error = %v, want ErrCategoryNotFound", err)
	}
}
