package store_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/ryangandev/CST480-Library/db"
	"github.com/ryangandev/CST480-Library/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	conn, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=1")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.RunMigrations(conn))

	return store.New(conn)
}

func seedUser(t *testing.T, s *store.Store, username string) int64 {
	t.Helper()
	id, err := s.Users.Create(context.Background(), username, "not-a-real-hash", "author")
	require.NoError(t, err)
	return id
}

func seedAuthor(t *testing.T, s *store.Store, userID int64, name string) int64 {
	t.Helper()
	id, err := s.Authors.Create(context.Background(), store.Author{UserID: userID, Name: name, Bio: "bio"})
	require.NoError(t, err)
	return id
}

func TestUserByUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := seedUser(t, s, "ryan")

	user, err := s.Users.ByUsername(ctx, "ryan")
	require.NoError(t, err)
	require.Equal(t, id, user.ID)
	require.Equal(t, "author", user.Role)

	_, err = s.Users.ByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuthorByUserID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	userID := seedUser(t, s, "ryan")
	authorID := seedAuthor(t, s, userID, "Ryan")

	author, err := s.Authors.ByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, authorID, author.ID)

	_, err = s.Authors.ByUserID(ctx, userID+1)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuthorsOrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedAuthor(t, s, seedUser(t, s, "u1"), "Zadie")
	seedAuthor(t, s, seedUser(t, s, "u2"), "Abel")
	seedAuthor(t, s, seedUser(t, s, "u3"), "Mira")

	authors, err := s.Authors.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 3)
	require.Equal(t, "Abel", authors[0].Name)
	require.Equal(t, "Mira", authors[1].Name)
	require.Equal(t, "Zadie", authors[2].Name)
}

func TestBookListingJoinsAuthorName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	userID := seedUser(t, s, "ryan")
	authorID := seedAuthor(t, s, userID, "Ryan")

	_, err := s.Books.Create(ctx, store.Book{AuthorID: authorID, Title: "Halo", PubYear: "2020", Genre: "Fiction"})
	require.NoError(t, err)

	books, err := s.Books.GetAll(ctx, store.BookFilter{})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Halo", books[0].Title)
	require.Contains(t, books[0].AuthorName, "Ryan (id: ")
}

func TestBookFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	authorID := seedAuthor(t, s, seedUser(t, s, "ryan"), "Ryan")

	insert := func(title, year, genre string) {
		_, err := s.Books.Create(ctx, store.Book{AuthorID: authorID, Title: title, PubYear: year, Genre: genre})
		require.NoError(t, err)
	}
	insert("A Travelogue of Tales", "1867", "adventure")
	insert("My Fairest Lady", "1866", "romance")
	insert("Smile", "1867", "adventure")

	books, err := s.Books.GetAll(ctx, store.BookFilter{Genre: "adventure"})
	require.NoError(t, err)
	require.Len(t, books, 2)
	// ordered by title
	require.Equal(t, "A Travelogue of Tales", books[0].Title)
	require.Equal(t, "Smile", books[1].Title)

	books, err = s.Books.GetAll(ctx, store.BookFilter{PubYear: "1866"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "My Fairest Lady", books[0].Title)

	books, err = s.Books.GetAll(ctx, store.BookFilter{Genre: "adventure", PubYear: "1866"})
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestBookUpdateLeavesAuthorAlone(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	authorID := seedAuthor(t, s, seedUser(t, s, "ryan"), "Ryan")
	bookID, err := s.Books.Create(ctx, store.Book{AuthorID: authorID, Title: "Halo", PubYear: "2020", Genre: "Fiction"})
	require.NoError(t, err)

	require.NoError(t, s.Books.Update(ctx, bookID, "Halo 2", "2021", "Fiction"))

	book, err := s.Books.ByID(ctx, bookID)
	require.NoError(t, err)
	require.Equal(t, "Halo 2", book.Title)
	require.Equal(t, "2021", book.PubYear)
	require.Equal(t, authorID, book.AuthorID)
}

func TestCountByAuthorID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	authorID := seedAuthor(t, s, seedUser(t, s, "ryan"), "Ryan")

	count, err := s.Books.CountByAuthorID(ctx, authorID)
	require.NoError(t, err)
	require.Zero(t, count)

	bookID, err := s.Books.Create(ctx, store.Book{AuthorID: authorID, Title: "Halo", PubYear: "2020", Genre: "Fiction"})
	require.NoError(t, err)

	count, err = s.Books.CountByAuthorID(ctx, authorID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, s.Books.Delete(ctx, bookID))

	count, err = s.Books.CountByAuthorID(ctx, authorID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestForeignKeyEnforced(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Books.Create(ctx, store.Book{AuthorID: 99, Title: "Orphan", PubYear: "2020", Genre: "Fiction"})
	require.Error(t, err)
}
