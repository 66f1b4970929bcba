// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agrimatch/config"
	"agrimatch/internal/delivery/api/middleware"
	"agrimatch/internal/delivery/api/router/handler"
	"agrimatch/internal/domain/entity"
	"agrimatch/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MatchingHandler *handler.MatchingHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Recorder
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	matchingHandler *handler.MatchingHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Recorder
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		matchingHandler: params.MatchingHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	matchingGroup := e.Group("/matching")
	matchingGroup.Use(r.authMiddleware.Authenticate)

	producerGroup := matchingGroup.Group("/producer")
	producerGroup.Use(r.authMiddleware.RequireRole(entity.RoleProducer))
	{
		producerGroup.POST("/generate", r.matchingHandler.GenerateForProducer)
		producerGroup.GET("/matches", r.matchingHandler.ListProducerMatches)
		producerGroup.POST("/respond/:pairingId", r.matchingHandler.ProducerRespond)
	}

	buyerGroup := matchingGroup.Group("/buyer")
	buyerGroup.Use(r.authMiddleware.RequireRole(entity.RoleBuyer))
	{
		buyerGroup.POST("/generate", r.matchingHandler.GenerateForBuyer)
		buyerGroup.GET("/matches", r.matchingHandler.ListBuyerMatches)
		buyerGroup.POST("/respond/:pairingId", r.matchingHandler.BuyerRespond)
	}

	// Either party; ownership is checked per pairing
	partyOnly := r.authMiddleware.RequireAnyRole(entity.RoleProducer, entity.RoleBuyer)
	matchingGroup.GET("/details/:pairingId", r.matchingHandler.GetDetails, partyOnly)
	matchingGroup.GET("/stats", r.matchingHandler.GetStats, partyOnly)

	matchingGroup.DELETE("/cleanup-expired", r.matchingHandler.CleanupExpired, r.authMiddleware.RequireRole(entity.RoleAdmin))
}
