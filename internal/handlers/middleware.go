package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

const userIDCtxKey = "userId"

// sessionMiddleware gates protected routes: it extracts the bearer token,
// resolves the session, then re-resolves the user row so a vanished user is
// rejected before any write.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		h.abortForbidden(c, "missing Authorization header")
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		h.abortForbidden(c, "invalid Authorization header format")
		return
	}

	userID, err := h.services.Sessions.Resolve(c.Request.Context(), parts[1])
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			h.abortForbidden(c, "invalid session token")
			return
		}
		h.abortStoreError(c, err, "session_resolve_failed")
		return
	}

	user, err := h.services.Authorization.UserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.abortForbidden(c, "user not found")
			return
		}
		h.abortStoreError(c, err, "session_user_lookup_failed")
		return
	}

	// store in Gin context
	c.Set(userIDCtxKey, user.ID)
	c.Next()
}

func (h *Handler) abortForbidden(c *gin.Context, msg string) {
	c.String(http.StatusForbidden, msg)
	c.Abort()
}

func (h *Handler) abortStoreError(c *gin.Context, err error, logKey string) {
	if h.log != nil {
		h.log.Errorw(logKey, "err", err)
	}
	c.String(http.StatusInternalServerError, msgStoreError)
	c.Abort()
}
