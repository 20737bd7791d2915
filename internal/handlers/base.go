package handlers

import (
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/ryangandev/CST480-Library/config"
	"github.com/ryangandev/CST480-Library/internal/apperrors"
	"github.com/ryangandev/CST480-Library/internal/auth"
	"github.com/ryangandev/CST480-Library/internal/messages"
	"github.com/ryangandev/CST480-Library/internal/store"
	"github.com/ryangandev/CST480-Library/internal/utils"
)

type Handler struct {
	config        *config.Config
	logger        *zap.Logger
	store         *store.Store
	authenticator *auth.Authenticator
}

func New(
	config *config.Config,
	logger *zap.Logger,
	store *store.Store,
	authenticator *auth.Authenticator,
) *Handler {
	logger = logger.With(zap.String("package", "handlers"))
	return &Handler{config: config, logger: logger, store: store, authenticator: authenticator}
}

// respondError maps a taxonomy error onto its status and the fixed
// {"error": ...} body. Anything that is not an *apperrors.Error is an
// unexpected data-layer failure: logged in full, surfaced generically.
func (h Handler) respondError(w http.ResponseWriter, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		h.logger.Error("unexpected error", zap.Error(err))
		appErr = apperrors.Internal(messages.SomethingWentWrong)
	}
	utils.SendResponse(w, appErr.Status(), utils.ErrorResponse{Error: appErr.Message})
}

// clientAddr strips the port from RemoteAddr so the rate limiter keys on
// the host alone.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
