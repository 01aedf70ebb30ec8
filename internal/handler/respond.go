package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bananahell/kanban-challenge/internal/apperr"
	"github.com/bananahell/kanban-challenge/internal/middleware"

	"github.com/gin-gonic/gin"
)

// sessionUserID pulls the authenticated user id set by the auth middleware.
// Writes the error response itself when the id is missing or malformed.
func sessionUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return 0, false
	}

	userID, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return 0, false
	}
	return userID, true
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps application errors to HTTP statuses. Anything that is
// not an apperr gets a generic 500 with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Kind {
		case apperr.KindNotFound:
			status = http.StatusNotFound
		case apperr.KindForbidden:
			status = http.StatusForbidden
		case apperr.KindValidation:
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
