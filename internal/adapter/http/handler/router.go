package handler

import (
	"serializable-txn/internal/adapter/http/middleware"
	"serializable-txn/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CounterSvc     ports.CounterService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	counters := NewCounterHandler(deps.CounterSvc)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/counters/:name", counters.Get)
		v1.POST("/counters/:name/increment", counters.Increment)
	}

	return r
}
