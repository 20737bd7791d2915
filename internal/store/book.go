package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type BookStore struct {
	db *sqlx.DB
}

func NewBookStore(db *sql.DB) *BookStore {
	return &BookStore{db: sqlx.NewDb(db, "sqlite3")}
}

type Book struct {
	ID       int64  `db:"id" json:"id"`
	AuthorID int64  `db:"author_id" json:"author_id"`
	Title    string `db:"title" json:"title"`
	PubYear  string `db:"pub_year" json:"pub_year"`
	Genre    string `db:"genre" json:"genre"`
}

// BookListing is a catalog row: the author column carries the joined
// display label "name (id: N)" rather than the raw foreign key.
type BookListing struct {
	ID         int64  `db:"id" json:"id"`
	AuthorName string `db:"author_name" json:"author_name"`
	Title      string `db:"title" json:"title"`
	PubYear    string `db:"pub_year" json:"pub_year"`
	Genre      string `db:"genre" json:"genre"`
}

// BookFilter restricts GetAll; zero-value fields apply no predicate.
type BookFilter struct {
	Genre   string
	PubYear string
}

// GetAll returns catalog listings ordered by title, optionally filtered by
// genre and publication year equality.
func (s *BookStore) GetAll(ctx context.Context, filter BookFilter) ([]BookListing, error) {
	query := `
		SELECT books.id,
		       authors.name || ' (id: ' || authors.id || ')' AS author_name,
		       books.title, books.pub_year, books.genre
		FROM books
		INNER JOIN authors ON books.author_id = authors.id
	`
	args := []any{}
	where := ""

	if filter.Genre != "" {
		where = " WHERE books.genre = ?"
		args = append(args, filter.Genre)
	}
	if filter.PubYear != "" {
		if where == "" {
			where = " WHERE books.pub_year = ?"
		} else {
			where += " AND books.pub_year = ?"
		}
		args = append(args, filter.PubYear)
	}

	query += where + " ORDER BY books.title"

	books := []BookListing{}
	if err := s.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch books from DB: %w", err)
	}

	return books, nil
}

func (s *BookStore) ByID(ctx context.Context, id int64) (*Book, error) {
	const query = `SELECT * FROM books WHERE id = ?`

	var book Book
	if err := s.db.GetContext(ctx, &book, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &book, nil
}

func (s *BookStore) ByAuthorID(ctx context.Context, authorID int64) ([]Book, error) {
	const query = `SELECT * FROM books WHERE author_id = ? ORDER BY title`

	books := []Book{}
	if err := s.db.SelectContext(ctx, &books, query, authorID); err != nil {
		return nil, fmt.Errorf("failed to fetch books for author %d: %w", authorID, err)
	}

	return books, nil
}

// CountByAuthorID reports how many books still reference the author; the
// delete-author handler refuses to proceed while this is non-zero.
func (s *BookStore) CountByAuthorID(ctx context.Context, authorID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM books WHERE author_id = ?`

	var count int
	if err := s.db.GetContext(ctx, &count, query, authorID); err != nil {
		return 0, fmt.Errorf("failed to count books for author %d: %w", authorID, err)
	}

	return count, nil
}

func (s *BookStore) Create(ctx context.Context, book Book) (int64, error) {
	const query = `INSERT INTO books (author_id, title, pub_year, genre) VALUES (?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query, book.AuthorID, book.Title, book.PubYear, book.Genre)
	if err != nil {
		return 0, fmt.Errorf("failed to insert book %s: %w", book.Title, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted book id: %w", err)
	}
	return id, nil
}

// Update rewrites the mutable columns; author_id is immutable once set.
func (s *BookStore) Update(ctx context.Context, id int64, title, pubYear, genre string) error {
	const query = `UPDATE books SET title = ?, pub_year = ?, genre = ? WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, title, pubYear, genre, id); err != nil {
		return fmt.Errorf("failed to update book %d: %w", id, err)
	}
	return nil
}

func (s *BookStore) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}
