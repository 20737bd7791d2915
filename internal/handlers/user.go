package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ryangandev/CST480-Library/internal/apperrors"
	"github.com/ryangandev/CST480-Library/internal/messages"
	"github.com/ryangandev/CST480-Library/internal/utils"
)

type usersResponse struct {
	Users any `json:"users"`
}

// GetUsers lists user accounts. Password hashes never serialize.
func (h Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Users.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		h.respondError(w, apperrors.Internal(messages.FailedToFetchUsers))
		return
	}

	utils.SendResponse(w, http.StatusOK, usersResponse{Users: users})
}
