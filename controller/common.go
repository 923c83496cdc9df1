package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/BestJex/incubator-wikift/middleware"
	"github.com/BestJex/incubator-wikift/myErrors"
)

// respondServiceError 把服务层错误映射为统一响应。
// - ErrRepoNotFound -> 404 资源未找到
// - ErrNotArticleOwner -> 403
// - 其余 -> 500
func respondServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+"失败: 资源不存在")
	case errors.Is(err, myErrors.ErrNotArticleOwner):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, action+"失败: 仅作者本人可操作")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+"失败: "+err.Error())
	}
}

// parseUint64Param 解析路径参数中的无符号 ID，非法值返回 false 且已写入 400 响应。
func parseUint64Param(c *gin.Context, name string) (uint64, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的路径参数 "+name)
		return 0, false
	}
	return value, true
}

// mustCurrentUserID 读取上下文中的用户 ID，缺失时写入 401 响应。
func mustCurrentUserID(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息")
		return 0, false
	}
	return userID, true
}
