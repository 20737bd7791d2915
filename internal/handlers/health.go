package handlers

import (
	"fmt"
	"net/http"

	"github.com/ryangandev/CST480-Library/internal/utils"
)

func (h Handler) Ping(w http.ResponseWriter, r *http.Request) {
	msg := fmt.Sprintf("You have reached the %s API!", h.config.AppName)
	utils.SendResponse(w, http.StatusOK, utils.MessageResponse{Message: msg})
}
