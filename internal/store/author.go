package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type AuthorStore struct {
	db *sqlx.DB
}

func NewAuthorStore(db *sql.DB) *AuthorStore {
	return &AuthorStore{db: sqlx.NewDb(db, "sqlite3")}
}

type Author struct {
	ID     int64  `db:"id" json:"id"`
	UserID int64  `db:"user_id" json:"user_id"`
	Name   string `db:"name" json:"name"`
	Bio    string `db:"bio" json:"bio"`
}

func (s *AuthorStore) ByID(ctx context.Context, id int64) (*Author, error) {
	const query = `SELECT * FROM authors WHERE id = ?`

	var author Author
	if err := s.db.GetContext(ctx, &author, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &author, nil
}

// ByUserID returns the author record owned by the given user, or
// ErrNotFound. A user owns at most one author record; the pre-insert check
// in the create handler relies on this lookup.
func (s *AuthorStore) ByUserID(ctx context.Context, userID int64) (*Author, error) {
	const query = `SELECT * FROM authors WHERE user_id = ?`

	var author Author
	if err := s.db.GetContext(ctx, &author, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author by user id: %w", err)
	}

	return &author, nil
}

func (s *AuthorStore) GetAll(ctx context.Context) ([]Author, error) {
	const query = `SELECT * FROM authors ORDER BY name`

	authors := []Author{}
	if err := s.db.SelectContext(ctx, &authors, query); err != nil {
		return nil, fmt.Errorf("failed to fetch authors from DB: %w", err)
	}

	return authors, nil
}

func (s *AuthorStore) Create(ctx context.Context, author Author) (int64, error) {
	const query = `INSERT INTO authors (user_id, name, bio) VALUES (?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query, author.UserID, author.Name, author.Bio)
	if err != nil {
		return 0, fmt.Errorf("failed to insert author %s: %w", author.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted author id: %w", err)
	}
	return id, nil
}

func (s *AuthorStore) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM authors WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	return nil
}
