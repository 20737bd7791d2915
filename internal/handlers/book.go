package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ryangandev/CST480-Library/internal/apperrors"
	"github.com/ryangandev/CST480-Library/internal/auth"
	"github.com/ryangandev/CST480-Library/internal/messages"
	"github.com/ryangandev/CST480-Library/internal/middlewares"
	"github.com/ryangandev/CST480-Library/internal/store"
	"github.com/ryangandev/CST480-Library/internal/utils"
)

type booksResponse struct {
	Books any `json:"books"`
}

// GetBooks lists the catalog ordered by title, with optional genre and
// pub_year equality filters from the query string.
func (h Handler) GetBooks(w http.ResponseWriter, r *http.Request) {
	filter := store.BookFilter{
		Genre:   r.URL.Query().Get("genre"),
		PubYear: r.URL.Query().Get("pub_year"),
	}

	books, err := h.store.Books.GetAll(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list books", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToFetchBooks))
		return
	}

	utils.SendResponse(w, http.StatusOK, booksResponse{Books: books})
}

func (h Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, apperrors.NotFound(messages.BookNotFound))
		return
	}

	book, err := h.store.Books.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, apperrors.NotFound(messages.BookNotFound))
			return
		}
		h.logger.Error("failed to get book", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToFetchBooks))
		return
	}

	utils.SendResponse(w, http.StatusOK, book)
}

// CreateBook inserts a book after confirming the referenced author exists.
func (h Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, apperrors.Validation(messages.MissingRequiredFields))
		return
	}

	if _, err := h.store.Authors.ByID(r.Context(), req.AuthorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, apperrors.NotFound(messages.AuthorNotFoundCreateIt))
			return
		}
		h.logger.Error("failed to check author", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToInsertBook))
		return
	}

	book := store.Book{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		PubYear:  req.PubYear,
		Genre:    req.Genre,
	}
	if _, err := h.store.Books.Create(r.Context(), book); err != nil {
		h.logger.Error("failed to insert book", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToInsertBook))
		return
	}

	utils.SendResponse(w, http.StatusCreated, utils.MessageResponse{Message: messages.BookCreated})
}

// UpdateBook rewrites a book's title, pub_year and genre. Only the session
// owning the book's author may update it; the existence check runs first so
// a nonexistent book reads as 404 regardless of who asks.
func (h Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, apperrors.NotFound(messages.BookNotFound))
		return
	}

	var req updateBookRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, apperrors.Validation(messages.MissingRequiredFields))
		return
	}

	book, err := h.requireOwnedBook(w, r, id)
	if err != nil {
		return
	}

	if err := h.store.Books.Update(r.Context(), book.ID, req.Title, req.PubYear, req.Genre); err != nil {
		h.logger.Error("failed to update book", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToUpdateBook))
		return
	}

	utils.SendResponse(w, http.StatusOK, utils.MessageResponse{Message: messages.BookUpdated})
}

func (h Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, apperrors.NotFound(messages.BookNotFound))
		return
	}

	book, err := h.requireOwnedBook(w, r, id)
	if err != nil {
		return
	}

	if err := h.store.Books.Delete(r.Context(), book.ID); err != nil {
		h.logger.Error("failed to delete book", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToDeleteBook))
		return
	}

	utils.SendResponse(w, http.StatusOK, utils.MessageResponse{Message: messages.BookDeleted})
}

// requireOwnedBook resolves the book, then its author, then checks the
// session user against the author's owner. On failure it has already
// written the response and returns a non-nil error as the signal to stop.
func (h Handler) requireOwnedBook(w http.ResponseWriter, r *http.Request, id int64) (*store.Book, error) {
	book, err := h.store.Books.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, apperrors.NotFound(messages.BookNotFound))
			return nil, err
		}
		h.logger.Error("failed to get book", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.SomethingWentWrong))
		return nil, err
	}

	author, err := h.store.Authors.ByID(r.Context(), book.AuthorID)
	if err != nil {
		h.logger.Error("failed to resolve book owner", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.SomethingWentWrong))
		return nil, err
	}

	sess, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		err := apperrors.Unauthorized(messages.NotLoggedIn)
		h.respondError(w, err)
		return nil, err
	}

	if auth.Ownership(sess, author.UserID) != auth.Allowed {
		err := apperrors.Forbidden(messages.NotBookOwner)
		h.respondError(w, err)
		return nil, err
	}

	return book, nil
}
