package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/models"
	"stayhub-backend/utils"
)

const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "userRole"
)

// RequireAuth recovers the (userId, role) pair from the session cookie and
// aborts with 401 when the token is missing, expired or malformed.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.GetSessionCookie(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			c.Abort()
			return
		}

		userID, role, err := utils.VerifySessionToken(jwtSecret, token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxRoleKey, role)
		c.Next()
	}
}

// RequireRoles gates an operation on an explicit role allow-list. Must run
// after RequireAuth.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, r := range allowed {
			if r == role {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "forbidden")
		c.Abort()
	}
}

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ctxUserIDKey)
	id, _ := v.(uint)
	return id
}

func CurrentRole(c *gin.Context) models.Role {
	v, _ := c.Get(ctxRoleKey)
	role, _ := v.(models.Role)
	return role
}
