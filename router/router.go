package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github/itish2003/notes-optimizer/controller"
	"github/itish2003/notes-optimizer/middleware"
)

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(ctrl *controller.OptimizeController, allowedOrigin string, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(allowedOrigin))

	r.GET("/", ctrl.HealthCheck)
	r.POST("/optimize", ctrl.OptimizeNotes)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
