package middleware

import (
	"deltapi/internal/app/role"

	"github.com/gin-gonic/gin"
)

// Accès aux informations du jeton déposées dans le contexte par WithAuthCheck

func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func UserRoleFromContext(c *gin.Context) (role.Role, bool) {
	v, exists := c.Get("userRole")
	if !exists {
		return 0, false
	}
	r, ok := v.(role.Role)
	return r, ok
}
