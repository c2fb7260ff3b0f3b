package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github/itish2003/notes-optimizer/models"
	"github/itish2003/notes-optimizer/services"
)

const bearerPrefix = "Bearer "

// OptimizeController handles the HTTP requests for the notes API. It depends
// on the NoteOptimizer to perform the actual work.
type OptimizeController struct {
	optimizer services.NoteOptimizer
	logger    *zap.Logger
}

// NewOptimizeController is called from main.go to inject the service dependency.
func NewOptimizeController(optimizer services.NoteOptimizer, logger *zap.Logger) *OptimizeController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OptimizeController{
		optimizer: optimizer,
		logger:    logger,
	}
}

// OptimizeNotes is the Gin handler for POST /optimize.
func (c *OptimizeController) OptimizeNotes(ctx *gin.Context) {
	apiKey, ok := BearerToken(ctx.GetHeader("Authorization"))
	if !ok {
		ctx.JSON(http.StatusUnauthorized, models.ErrorResponse{Detail: services.ErrMissingAPIKey.Error()})
		return
	}

	var req models.NotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Detail: err.Error()})
		return
	}

	optimized, err := c.optimizer.OptimizeNotes(ctx.Request.Context(), *req.Notes, apiKey)
	if err != nil {
		c.logger.Error("failed to optimize notes", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, models.OptimizationResult{Optimized: optimized})
}

// HealthCheck is the Gin handler for GET /.
func (c *OptimizeController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}

// BearerToken strips the case-sensitive "Bearer " prefix. Nothing else about
// the credential is checked here; the provider decides whether it is valid.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(header, bearerPrefix), true
}
