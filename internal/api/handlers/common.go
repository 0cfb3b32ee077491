package handlers

import (
	"errors"
	"net/http"

	"team-management-backend/internal/auth"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// actorFrom resolves the acting user and connection from the request context.
// Returns false (and writes the response) when auth middleware did not run.
func actorFrom(c *gin.Context) (service.Actor, bool) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated user"})
		return service.Actor{}, false
	}
	return service.Actor{
		UserID:     userID,
		Connection: auth.ConnectionID(c),
	}, true
}

// respondServiceError maps the service error taxonomy onto HTTP status codes.
// Every failure keeps its distinct message so clients can branch on cause.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err), apperrors.IsOperationDenied(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTooManyMembers), errors.Is(err, apperrors.ErrNotConnected):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
