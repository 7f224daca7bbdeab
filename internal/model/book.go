package model

// Book represents a book row in the database. CategoryID always refers to
// an existing category; the schema enforces it with a foreign key.
type Book struct {
	ID             int64
	Title          string
	Author         string
	Publisher      string
	PublishingYear int
	CategoryID     int64
}

// BookRequest represents a book create or update request. On update, a
// zero CategoryID keeps the book's existing category.
type BookRequest struct {
	Title          string `json:"title"`
	Author         string `json:"author"`
	Publisher      string `json:"publisher"`
	PublishingYear int    `json:"publishingYear"`
	CategoryID     int64  `json:"categoryId"`
}

// BookResponse represents a book in API responses. CategoryName is a
// projection resolved at read time by joining against categories.
type BookResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	Publisher      string `json:"publisher"`
	PublishingYear int    `json:"publishingYear"`
	CategoryName   string `json:"categoryName"`
}
