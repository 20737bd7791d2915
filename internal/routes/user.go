package routes

import (
	"github.com/gorilla/mux"
)

func registerUserRoutes(grp *mux.Router) {
	router := grp.PathPrefix("/users").Subrouter()
	router.Use(middleware.RequireSession)

	router.HandleFunc("", handler.GetUsers).Methods("GET")
}
