package routes

import (
	"github.com/gorilla/mux"
)

func registerBookRoutes(grp *mux.Router) {
	router := grp.PathPrefix("/books").Subrouter()
	router.Use(middleware.RequireSession)

	router.HandleFunc("", handler.GetBooks).Methods("GET")
	router.HandleFunc("", handler.CreateBook).Methods("POST")
	router.HandleFunc("/{id}", handler.GetBook).Methods("GET")
	router.HandleFunc("/{id}", handler.UpdateBook).Methods("PUT")
	router.HandleFunc("/{id}", handler.DeleteBook).Methods("DELETE")
}
