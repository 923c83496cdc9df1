package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	appConfig "github.com/BestJex/incubator-wikift/config"
)

// Gin 上下文中缓存的身份信息键
const (
	CtxUserIDKey   = "wikift_user_id"
	CtxUsernameKey = "wikift_username"
	CtxRolesKey    = "wikift_roles"
)

// 角色名，对应 roles 表的 r_name 取值
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// UserClaims 是访问令牌的载荷。
type UserClaims struct {
	UserID   uint64   `json:"userId"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateToken 签发携带用户身份的访问令牌。
func GenerateToken(cfg appConfig.JWTConfig, userID uint64, username string, roles []string) (string, error) {
	expireHours := cfg.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}

	claims := UserClaims{
		UserID:   userID,
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// JWTAuthMiddleware 校验 Authorization 头中的 Bearer 令牌，
// 并把用户身份写入 Gin 上下文供控制器读取。
func JWTAuthMiddleware(cfg appConfig.JWTConfig, logger *core.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少访问令牌")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &UserClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			// 只接受 HMAC 签名，防止算法混淆
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			logger.Warn("访问令牌校验失败", zap.Error(err))
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "访问令牌无效或已过期")
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Set(CtxRolesKey, claims.Roles)
		c.Next()
	}
}

// RequireRole 在 JWTAuthMiddleware 之后使用，要求当前用户持有指定角色。
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesValue, exists := c.Get(CtxRolesKey)
		if !exists {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户角色")
			c.Abort()
			return
		}
		roles, ok := rolesValue.([]string)
		if !ok {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "用户角色格式无效")
			c.Abort()
			return
		}
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "当前用户无权访问该接口")
		c.Abort()
	}
}

// CurrentUserID 读取上下文中的用户 ID，第二个返回值表示是否存在且有效。
func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(CtxUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
