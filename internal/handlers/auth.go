package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/ryangandev/CST480-Library/internal/apperrors"
	"github.com/ryangandev/CST480-Library/internal/messages"
	"github.com/ryangandev/CST480-Library/internal/middlewares"
	"github.com/ryangandev/CST480-Library/internal/utils"
)

// Login authenticates the posted credentials and sets the session cookie.
// The body is decoded leniently: a missing or malformed body becomes empty
// credentials so that every attempt, valid or not, is counted by the rate
// limiter.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	_ = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)

	addr := clientAddr(r)
	token, err := h.authenticator.Login(r.Context(), addr, req.Username, req.Password)
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) && appErr.Kind == apperrors.KindRateLimited {
			retry := h.authenticator.RetryAfter(addr)
			w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())))
		}
		h.respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	utils.SendResponse(w, http.StatusOK, utils.MessageResponse{Message: messages.LoginSuccessful})
}

// Logout revokes the cookie's session, if any, and clears the cookie.
// Always answers 200: logging out twice, or with a token that was never
// issued, is not an error.
func (h Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middlewares.CookieName); err == nil && cookie.Value != "" {
		h.authenticator.Logout(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	utils.SendResponse(w, http.StatusOK, utils.MessageResponse{Message: messages.LogoutSuccessful})
}
