package middlewares

import (
	"github.com/ryangandev/CST480-Library/config"
	"github.com/ryangandev/CST480-Library/internal/session"
	"go.uber.org/zap"
)

type Middleware struct {
	config   *config.Config
	logger   *zap.Logger
	registry session.Registry
}

func New(config *config.Config, logger *zap.Logger, registry session.Registry) *Middleware {
	return &Middleware{config: config, logger: logger, registry: registry}
}
