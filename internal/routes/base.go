package routes

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/ryangandev/CST480-Library/config"
	"github.com/ryangandev/CST480-Library/internal/auth"
	"github.com/ryangandev/CST480-Library/internal/handlers"
	"github.com/ryangandev/CST480-Library/internal/middlewares"
	"github.com/ryangandev/CST480-Library/internal/session"
	"github.com/ryangandev/CST480-Library/internal/store"
)

var (
	handler    *handlers.Handler
	middleware *middlewares.Middleware
)

func RegisterRoutes(
	config *config.Config,
	logger *zap.Logger,
	store *store.Store,
	registry session.Registry,
	authenticator *auth.Authenticator,
) *mux.Router {
	router := mux.NewRouter()

	handler = handlers.New(config, logger, store, authenticator)
	middleware = middlewares.New(config, logger, registry)

	// Swagger endpoint
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// global middlewares
	router.Use(middleware.LoggerMiddleware)
	router.Use(middleware.CORS)

	// session endpoints
	router.HandleFunc("/login", handler.Login).Methods("POST")
	router.HandleFunc("/logout", handler.Logout).Methods("POST")

	// api endpoints
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("", handler.Ping).Methods("GET")

	registerBookRoutes(api)
	registerAuthorRoutes(api)
	registerUserRoutes(api)

	return router
}
