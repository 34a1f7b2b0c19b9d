package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"replane.io/replane/internal/api/handlers"
	"replane.io/replane/internal/api/middleware"
	"replane.io/replane/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server, session middleware.SessionConfig, verifier middleware.BearerVerifier) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg)))

	// Health endpoints are unauthenticated.
	router.GET("/healthz", server.GetLiveness)
	router.GET("/readyz", server.GetReadiness)

	// Management API: session JWT or rpa_ admin key.
	api := router.Group("/api/v1",
		middleware.Authenticate(session, verifier),
		middleware.RequireIdentity(),
	)
	server.RegisterManagement(api)

	// SDK read surface does its own bearer handling.
	server.RegisterSDK(router.Group("/sdk"))

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	if len(cfg.Server.CORSOrigins) == 1 && cfg.Server.CORSOrigins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.Server.CORSOrigins
	}
	return c
}
