package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ryangandev/CST480-Library/config"
	"github.com/ryangandev/CST480-Library/internal/auth"
	"github.com/ryangandev/CST480-Library/internal/routes"
	"github.com/ryangandev/CST480-Library/internal/session"
	"github.com/ryangandev/CST480-Library/internal/store"
)

type ApiServer struct {
	config        *config.Config
	logger        *zap.Logger
	store         *store.Store
	registry      session.Registry
	authenticator *auth.Authenticator
}

func New(
	config *config.Config,
	logger *zap.Logger,
	store *store.Store,
	registry session.Registry,
	authenticator *auth.Authenticator,
) *ApiServer {
	return &ApiServer{
		config:        config,
		logger:        logger,
		store:         store,
		registry:      registry,
		authenticator: authenticator,
	}
}

func (s *ApiServer) Start(ctx context.Context) error {
	mux := routes.RegisterRoutes(s.config, s.logger, s.store, s.registry, s.authenticator)
	server := &http.Server{
		Addr:    net.JoinHostPort(s.config.GetApiServerHost(), s.config.GetApiServerPort()),
		Handler: mux,
	}

	// handle start up server
	go func() {
		s.logger.Info("apiserver running", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("apiserver failed to listen and serve", zap.Error(err))
		}
	}()

	// handle the shutdown logic
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("failed to shutdown server gracefully", zap.Error(err))
		}
	}()

	wg.Wait()
	return nil
}
