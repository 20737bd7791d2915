package routes

import (
	"github.com/gorilla/mux"
)

func registerAuthorRoutes(grp *mux.Router) {
	router := grp.PathPrefix("/authors").Subrouter()
	router.Use(middleware.RequireSession)

	router.HandleFunc("", handler.GetAuthors).Methods("GET")
	router.HandleFunc("", handler.CreateAuthor).Methods("POST")
	router.HandleFunc("/{id}", handler.GetAuthor).Methods("GET")
	router.HandleFunc("/{id}", handler.DeleteAuthor).Methods("DELETE")
	router.HandleFunc("/{id}/books", handler.GetAuthorBooks).Methods("GET")
}
