package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations holds the schema DDL, applied in order at startup. Each
// statement is idempotent. The unique keys on customers.email and
// categories.name and the ON DELETE CASCADE foreign key on books are the
// storage-level enforcement of the referential rules: duplicate writes
// fail at the database, and deleting a category removes its books.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_customers_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description TEXT,
		UNIQUE KEY uq_categories_name (name)
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id              BIGINT AUTO_INCREMENT PRIMARY KEY,
		title           VARCHAR(255) NOT NULL,
		author          VARCHAR(255) NOT NULL,
		publisher       VARCHAR(255),
		publishing_year INT NOT NULL DEFAULT 0,
		category_id     BIGINT NOT NULL,
		CONSTRAINT fk_books_category FOREIGN KEY (category_id)
			REFERENCES categories (id) ON DELETE CASCADE
	)`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying migration %d: %w", i+1, err)
		}
	}
	return nil
}
