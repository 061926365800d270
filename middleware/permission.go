package middleware

import (
	"net/http"
	"strconv"

	"campus/consts"
	"campus/dto"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the listed roles. Runs after JWTAuth
// so the role claim is already on the context.
func RequireRoles(roles ...consts.RoleName) gin.HandlerFunc {
	allowed := make(map[consts.RoleName]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role, exists := GetCurrentRole(c)
		if !exists {
			dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			dto.ErrorResponse(c, http.StatusForbidden, "Forbidden: insufficient role")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelfOrRoles allows the account owner identified by the id path
// parameter, or any of the listed roles.
func RequireSelfOrRoles(idParam string, roles ...consts.RoleName) gin.HandlerFunc {
	allowed := make(map[consts.RoleName]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		userID, exists := GetCurrentUserID(c)
		if !exists {
			dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
			c.Abort()
			return
		}

		if role, ok := GetCurrentRole(c); ok {
			if _, permitted := allowed[role]; permitted {
				c.Next()
				return
			}
		}

		if c.Param(idParam) == strconv.Itoa(userID) {
			c.Next()
			return
		}

		dto.ErrorResponse(c, http.StatusForbidden, "Forbidden: insufficient role")
		c.Abort()
	}
}
