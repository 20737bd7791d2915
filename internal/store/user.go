package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: sqlx.NewDb(db, "sqlite3")}
}

type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"` // bcrypt hash, never serialized
	Role     string `db:"role" json:"role"`
}

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("not found")

// ByUsername returns the user with the given username, or ErrNotFound.
func (s *UserStore) ByUsername(ctx context.Context, username string) (*User, error) {
	const query = `SELECT * FROM users WHERE username = ?`

	var user User
	if err := s.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

func (s *UserStore) ByID(ctx context.Context, id int64) (*User, error) {
	const query = `SELECT * FROM users WHERE id = ?`

	var user User
	if err := s.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (s *UserStore) GetAll(ctx context.Context) ([]User, error) {
	const query = `SELECT * FROM users ORDER BY username`

	users := []User{}
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to fetch users from DB: %w", err)
	}

	return users, nil
}

// Create inserts a user with an already-hashed password and returns its id.
func (s *UserStore) Create(ctx context.Context, username, passwordHash, role string) (int64, error) {
	const query = `INSERT INTO users (username, password, role) VALUES (?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query, username, passwordHash, role)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user %s: %w", username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted user id: %w", err)
	}
	return id, nil
}
