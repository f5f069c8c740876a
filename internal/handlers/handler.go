package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/logger"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Fixed plain-text bodies per failure kind. Store errors never leak internals.
const (
	msgStoreError  = "error while accessing database"
	msgConflict    = "this user already exists"
	msgInvalidBody = "invalid request body"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	router.POST("/sign-up", h.signUp)
	router.POST("/sign-in", h.signIn)

	// Ledger endpoints (session-gated)
	historic := router.Group("/historic", h.sessionMiddleware)
	{
		historic.POST("", h.appendEntry)
		historic.GET("", h.listEntries)
	}

	// Live ledger feed (HTTP upgrade) — same port, same auth
	router.GET("/ws", h.sessionMiddleware, h.wsLedger)

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeServiceError translates a service error into its status/message pair.
// Every failure is terminal for the request; there are no retries.
func (h *Handler) writeServiceError(c *gin.Context, err error, logKey string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.String(http.StatusUnprocessableEntity, ve.Message)
	case errors.Is(err, service.ErrConflict):
		c.String(http.StatusConflict, msgConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		c.String(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionInvalid), errors.Is(err, service.ErrUserNotFound):
		c.String(http.StatusForbidden, err.Error())
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.String(http.StatusInternalServerError, msgStoreError)
	}
}
