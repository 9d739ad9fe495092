package handler

import (
	"galassia/internal/delivery/http/middleware"
	"galassia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// isAdmin reads the authenticated role set by the auth middleware.
func isAdmin(c echo.Context) bool {
	role, ok := c.Get(middleware.ContextKeyRole).(string)

	return ok && role == string(entity.RoleAdmin)
}
