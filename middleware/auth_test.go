package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"campus/consts"
	"campus/repository"
	"campus/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret-test-secret-test-secret!")

	redisServer, err := miniredis.Run()
	if err != nil {
		panic("Failed to start test redis: " + err.Error())
	}
	viper.Set("redis.host", redisServer.Host())
	viper.Set("redis.port", redisServer.Port())

	code := m.Run()
	redisServer.Close()
	os.Exit(code)
}

func authToken(t *testing.T, userID int, username string, role consts.RoleName) string {
	t.Helper()
	token, _, err := utils.GenerateToken(userID, username, role)
	require.NoError(t, err)
	return token
}

// protectedRouter mounts a probe route behind JWTAuth that echoes the
// identity the middleware put on the context.
func protectedRouter() *gin.Engine {
	router := gin.New()
	router.GET("/probe", JWTAuth(), func(c *gin.Context) {
		userID, _ := GetCurrentUserID(c)
		username, _ := GetCurrentUsername(c)
		role, _ := GetCurrentRole(c)
		c.JSON(http.StatusOK, gin.H{
			"userId":   userID,
			"username": username,
			"role":     role,
		})
	})
	return router
}

func TestJWTAuthRejectsMissingOrBadTokens(t *testing.T) {
	router := protectedRouter()

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	router := protectedRouter()
	token := authToken(t, 42, "alice", consts.RoleLecturer)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestJWTAuthRejectsRevokedSessions(t *testing.T) {
	router := protectedRouter()
	token := authToken(t, 77, "revoked", consts.RoleStudent)

	require.NoError(t, repository.AddUserTokensToBlacklist(
		context.Background(), 77, time.Minute, map[string]any{"reason": "test"}))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}

func TestRequireRoles(t *testing.T) {
	router := gin.New()
	router.GET("/admin", JWTAuth(), RequireRoles(consts.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		role     consts.RoleName
		wantCode int
	}{
		{"admin allowed", consts.RoleAdmin, http.StatusOK},
		{"lecturer forbidden", consts.RoleLecturer, http.StatusForbidden},
		{"student forbidden", consts.RoleStudent, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+authToken(t, 1, "u", tt.role))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequireSelfOrRoles(t *testing.T) {
	router := gin.New()
	router.GET("/users/:id", JWTAuth(), RequireSelfOrRoles("id", consts.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		userID   int
		role     consts.RoleName
		path     string
		wantCode int
	}{
		{"owner allowed", 5, consts.RoleStudent, "/users/5", http.StatusOK},
		{"admin allowed on others", 1, consts.RoleAdmin, "/users/5", http.StatusOK},
		{"stranger forbidden", 6, consts.RoleStudent, "/users/5", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+authToken(t, tt.userID, "u", tt.role))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
