package store

import "database/sql"

type Store struct {
	Users   *UserStore
	Authors *AuthorStore
	Books   *BookStore
}

func New(db *sql.DB) *Store {
	return &Store{
		Users:   NewUserStore(db),
		Authors: NewAuthorStore(db),
		Books:   NewBookStore(db),
	}
}
