package utils

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the single shape every failed request answers with.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the fixed success payload for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

func SendResponse(w http.ResponseWriter, statusCode int, response any) {
	data, _ := sonic.Marshal(response)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}
