package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/service"
)

// UserController 定义用户控制器的结构体
type UserController struct {
	userService service.UserService
}

// NewUserController 构造函数，用于创建 UserController 实例
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUserByUsername 按用户名获取用户信息
// @Summary      获取用户信息
// @Description  响应中不包含密码字段。
// @Tags         users (用户)
// @Produce      json
// @Param        username path string true "用户名" maxLength(50)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为用户信息"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/user/info/{username} [get]
func (ctrl *UserController) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "用户名不能为空")
		return
	}

	userVO, err := ctrl.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondServiceError(c, err, "获取用户")
		return
	}
	response.RespondSuccess(c, userVO, "用户获取成功")
}

// Follow 关注用户
// @Summary      关注用户
// @Description  重复关注幂等，不报错也不产生重复关系。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        request body dto.FollowUserParam true "关注参数"
// @Success      200 {object} vo.BaseResponseWrapper "关注成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      404 {object} vo.BaseResponseWrapper "被关注用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/user/follow [post]
func (ctrl *UserController) Follow(c *gin.Context) {
	var param dto.FollowUserParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.userService.Follow(c.Request.Context(), userID, param.FolloweeID); err != nil {
		respondServiceError(c, err, "关注用户")
		return
	}
	response.RespondSuccess[any](c, nil, "关注成功")
}

// Unfollow 取消关注
// @Summary      取消关注
// @Tags         users (用户)
// @Produce      json
// @Param        followeeId path uint64 true "被关注者ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "取消关注成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的路径参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/user/follow/{followeeId} [delete]
func (ctrl *UserController) Unfollow(c *gin.Context) {
	followeeID, ok := parseUint64Param(c, "followeeId")
	if !ok {
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.userService.Unfollow(c.Request.Context(), userID, followeeID); err != nil {
		respondServiceError(c, err, "取消关注")
		return
	}
	response.RespondSuccess[any](c, nil, "取消关注成功")
}

// CheckFollowing 查询是否已关注
// @Summary      查询关注状态
// @Tags         users (用户)
// @Produce      json
// @Param        followeeId path uint64 true "被关注者ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为布尔值"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的路径参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/user/follow/check/{followeeId} [get]
func (ctrl *UserController) CheckFollowing(c *gin.Context) {
	followeeID, ok := parseUint64Param(c, "followeeId")
	if !ok {
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	following, err := ctrl.userService.IsFollowing(c.Request.Context(), userID, followeeID)
	if err != nil {
		respondServiceError(c, err, "查询关注状态")
		return
	}
	response.RespondSuccess(c, following, "关注状态获取成功")
}

// RegisterUserRoutes 注册需要 USER 角色的用户路由
func (ctrl *UserController) RegisterUserRoutes(group *gin.RouterGroup) {
	user := group.Group("/user")
	{
		user.GET("/info/:username", ctrl.GetUserByUsername)
		user.POST("/follow", ctrl.Follow)
		user.DELETE("/follow/:followeeId", ctrl.Unfollow)
		user.GET("/follow/check/:followeeId", ctrl.CheckFollowing)
	}
}
