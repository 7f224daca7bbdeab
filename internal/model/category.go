package model

// Category represents a category row in the database.
type Category struct {
	ID          int64
	Name        string
	Description string
}

// CategoryRequest represents a category create or update request.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse represents a category in API responses. BookCount is a
// projection computed at read time from the books table, not a stored field.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BookCount   int    `json:"bookCount"`
}
