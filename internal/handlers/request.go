package handlers

import (
	"net/http"

	"github.com/bytedance/sonic"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ryangandev/CST480-Library/internal/apperrors"
	"github.com/ryangandev/CST480-Library/internal/messages"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type createBookRequest struct {
	AuthorID int64  `json:"author_id"`
	Title    string `json:"title"`
	PubYear  string `json:"pub_year"`
	Genre    string `json:"genre"`
}

func (r createBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.PubYear, validation.Required),
		validation.Field(&r.Genre, validation.Required),
	)
}

type updateBookRequest struct {
	Title   string `json:"title"`
	PubYear string `json:"pub_year"`
	Genre   string `json:"genre"`
}

func (r updateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.PubYear, validation.Required),
		validation.Field(&r.Genre, validation.Required),
	)
}

type createAuthorRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
	// Optional; when present it must match the session user. The created
	// author is always bound to the session user regardless.
	UserID *int64 `json:"userId"`
}

func (r createAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Bio, validation.Required),
	)
}

// decodeBody unmarshals the JSON request body into dst. A malformed body
// fails validation the same way a missing field does.
func decodeBody(r *http.Request, dst any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validation(messages.MissingRequiredFields)
	}
	return nil
}
