package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/service"
)

// RemindController 定义通知控制器的结构体
type RemindController struct {
	remindService service.RemindService
}

// NewRemindController 构造函数，用于创建 RemindController 实例
func NewRemindController(remindService service.RemindService) *RemindController {
	return &RemindController{remindService: remindService}
}

// ListAllReminds 获取全部通知
// @Summary      获取全部通知 (管理员)
// @Tags         reminds (通知)
// @Produce      json
// @Success      200 {object} vo.RemindListResponseWrapper "成功响应"
// @Failure      403 {object} vo.BaseResponseWrapper "无管理员权限"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/remind/list [get]
func (ctrl *RemindController) ListAllReminds(c *gin.Context) {
	reminds, err := ctrl.remindService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取通知列表")
		return
	}
	response.RespondSuccess(c, reminds, "通知列表获取成功")
}

// GetRemind 获取单条通知
// @Summary      获取通知详情
// @Tags         reminds (通知)
// @Produce      json
// @Param        id path uint64 true "通知ID" minimum(1)
// @Success      200 {object} vo.RemindResponseWrapper "成功响应"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/remind/info/{id} [get]
func (ctrl *RemindController) GetRemind(c *gin.Context) {
	id, ok := parseUint64Param(c, "id")
	if !ok {
		return
	}

	remindVO, err := ctrl.remindService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取通知")
		return
	}
	response.RespondSuccess(c, remindVO, "通知获取成功")
}

// ReadRemind 标记通知已读
// @Summary      标记通知已读
// @Description  幂等操作，对已读通知重复标记不报错。
// @Tags         reminds (通知)
// @Produce      json
// @Param        id path uint64 true "通知ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "标记成功"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/remind/read/{id} [put]
func (ctrl *RemindController) ReadRemind(c *gin.Context) {
	id, ok := parseUint64Param(c, "id")
	if !ok {
		return
	}

	if err := ctrl.remindService.Read(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "标记通知已读")
		return
	}
	response.RespondSuccess(c, id, "通知已读")
}

// ListUserReminds 获取当前用户的通知列表
// @Summary      获取我的通知列表
// @Description  按已读状态筛选，type 取值 read / unread，未知值回落 unread。
// @Tags         reminds (通知)
// @Produce      json
// @Param        type query string false "通知类型" Enums(read,unread) default(unread)
// @Success      200 {object} vo.RemindListResponseWrapper "成功响应"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/remind/list/user [get]
func (ctrl *RemindController) ListUserReminds(c *gin.Context) {
	var reqDTO dto.ListRemindsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	reminds, err := ctrl.remindService.ListByUser(c.Request.Context(), userID, reqDTO.Type)
	if err != nil {
		respondServiceError(c, err, "获取通知列表")
		return
	}
	response.RespondSuccess(c, reminds, "通知列表获取成功")
}

// RegisterUserRoutes 注册需要 USER 角色的通知路由
func (ctrl *RemindController) RegisterUserRoutes(group *gin.RouterGroup) {
	remind := group.Group("/remind")
	{
		remind.PUT("/read/:id", ctrl.ReadRemind)
		remind.GET("/info/:id", ctrl.GetRemind)
		remind.GET("/list/user", ctrl.ListUserReminds)
	}
}

// RegisterAdminRoutes 注册需要 ADMIN 角色的通知路由
func (ctrl *RemindController) RegisterAdminRoutes(group *gin.RouterGroup) {
	remind := group.Group("/remind")
	{
		remind.GET("/list", ctrl.ListAllReminds)
	}
}
