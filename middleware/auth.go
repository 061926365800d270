package middleware

import (
	"net/http"

	"campus/consts"
	"campus/dto"
	"campus/repository"
	"campus/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
	ctxRole     = "role"
)

// JWTAuth is the JWT authentication middleware
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, err := utils.ExtractTokenFromHeader(authHeader)
		if err != nil {
			dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
			c.Abort()
			return
		}

		// Blacklist check catches sessions revoked on logout, password
		// change or deactivation before the token's natural expiry.
		revoked, err := repository.IsUserBlacklisted(c.Request.Context(), claims.UserID)
		if err != nil {
			logrus.Warnf("Token blacklist check failed for user %d: %v", claims.UserID, err)
		} else if revoked {
			dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: session has been revoked")
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

// GetCurrentUserID extracts current user ID from context
func GetCurrentUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	return id, ok
}

// GetCurrentUsername extracts current username from context
func GetCurrentUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ctxUsername)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetCurrentRole extracts the current account role from context
func GetCurrentRole(c *gin.Context) (consts.RoleName, bool) {
	role, exists := c.Get(ctxRole)
	if !exists {
		return "", false
	}

	name, ok := role.(consts.RoleName)
	return name, ok
}
