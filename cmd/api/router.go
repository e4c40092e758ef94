package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"social-backend/internal/shared/middleware"
	"social-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		// Public auth routes
		c.UserHandler.RegisterRoutes(v1)

		// Everything else requires a valid access token
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			c.ProfileHandler.RegisterRoutes(authed)
			c.PostHandler.RegisterRoutes(authed)
			c.CommentHandler.RegisterRoutes(authed)
		}
	}

	return router
}

// healthCheckHandler reports process liveness plus database and cache
// reachability.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "unreachable"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "unreachable"
			status = http.StatusServiceUnavailable
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
