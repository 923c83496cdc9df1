package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/BestJex/incubator-wikift/config"
)

func newAuthTestRouter(t *testing.T, cfg appConfig.JWTConfig, requiredRole string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)

	router := gin.New()
	group := router.Group("/secure", JWTAuthMiddleware(cfg, logger))
	if requiredRole != "" {
		group.Use(RequireRole(requiredRole))
	}
	group.GET("/whoami", func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID, "username": c.GetString(CtxUsernameKey)})
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := appConfig.JWTConfig{Secret: "test-secret", Issuer: "wikift", ExpireHours: 1}
	router := newAuthTestRouter(t, cfg, "")

	token, err := GenerateToken(cfg, 42, "alice", []string{RoleUser})
	require.NoError(t, err)

	// 有效令牌放行并注入身份
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	// 缺少令牌
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 错误密钥签发的令牌
	badToken, err := GenerateToken(appConfig.JWTConfig{Secret: "other-secret"}, 42, "alice", []string{RoleUser})
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+badToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	cfg := appConfig.JWTConfig{Secret: "test-secret"}
	router := newAuthTestRouter(t, cfg, RoleAdmin)

	// 只有 USER 角色的令牌访问 ADMIN 接口被拒绝
	userToken, err := GenerateToken(cfg, 1, "user", []string{RoleUser})
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 同时持有 USER 与 ADMIN 的令牌放行
	adminToken, err := GenerateToken(cfg, 2, "admin", []string{RoleUser, RoleAdmin})
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
