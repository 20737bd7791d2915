package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ryangandev/CST480-Library/internal/apperrors"
	"github.com/ryangandev/CST480-Library/internal/messages"
	"github.com/ryangandev/CST480-Library/internal/middlewares"
	"github.com/ryangandev/CST480-Library/internal/store"
	"github.com/ryangandev/CST480-Library/internal/utils"
)

type authorsResponse struct {
	Authors any `json:"authors"`
}

func (h Handler) GetAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.store.Authors.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list authors", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToFetchAuthors))
		return
	}

	utils.SendResponse(w, http.StatusOK, authorsResponse{Authors: authors})
}

func (h Handler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, apperrors.NotFound(messages.AuthorNotFound))
		return
	}

	author, err := h.store.Authors.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, apperrors.NotFound(messages.AuthorNotFound))
			return
		}
		h.logger.Error("failed to get author", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToFetchAuthors))
		return
	}

	utils.SendResponse(w, http.StatusOK, author)
}

// GetAuthorBooks lists every book referencing the author.
func (h Handler) GetAuthorBooks(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, apperrors.NotFound(messages.BooksNotFoundByAuthor))
		return
	}

	if _, err := h.store.Authors.ByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, apperrors.NotFound(messages.BooksNotFoundByAuthor))
			return
		}
		h.logger.Error("failed to check author", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToFetchBooks))
		return
	}

	books, err := h.store.Books.ByAuthorID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list author books", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToFetchBooks))
		return
	}

	utils.SendResponse(w, http.StatusOK, booksResponse{Books: books})
}

// CreateAuthor inserts an author record owned by the session user. A user
// owns at most one author record, enforced by a pre-insert lookup.
func (h Handler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req createAuthorRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, apperrors.Validation(messages.MissingRequiredFields))
		return
	}

	sess, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		h.respondError(w, apperrors.Unauthorized(messages.NotLoggedIn))
		return
	}

	// The author is always bound to the session user; a mismatched body
	// user id is rejected rather than honored.
	if req.UserID != nil && *req.UserID != sess.UserID {
		h.respondError(w, apperrors.Validation(messages.MissingRequiredFields))
		return
	}

	if _, err := h.store.Authors.ByUserID(r.Context(), sess.UserID); err == nil {
		h.respondError(w, apperrors.Conflict(messages.AuthorAlreadyOwned))
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.logger.Error("failed to check author ownership", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToInsertAuthor))
		return
	}

	author := store.Author{UserID: sess.UserID, Name: req.Name, Bio: req.Bio}
	if _, err := h.store.Authors.Create(r.Context(), author); err != nil {
		h.logger.Error("failed to insert author", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToInsertAuthor))
		return
	}

	utils.SendResponse(w, http.StatusCreated, utils.MessageResponse{Message: messages.AuthorCreated})
}

// DeleteAuthor removes an author once no book references it. The caller
// must delete the author's books first.
func (h Handler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, apperrors.NotFound(messages.AuthorNotFound))
		return
	}

	if _, err := h.store.Authors.ByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, apperrors.NotFound(messages.AuthorNotFound))
			return
		}
		h.logger.Error("failed to get author", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToDeleteAuthor))
		return
	}

	count, err := h.store.Books.CountByAuthorID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to count author books", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToDeleteAuthor))
		return
	}
	if count > 0 {
		h.respondError(w, apperrors.Conflict(messages.AuthorHasBooks))
		return
	}

	if err := h.store.Authors.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete author", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToDeleteAuthor))
		return
	}

	utils.SendResponse(w, http.StatusOK, utils.MessageResponse{Message: messages.AuthorDeleted})
}
