package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/service"
)

// SpaceController 定义空间控制器的结构体
type SpaceController struct {
	spaceService service.SpaceService
}

// NewSpaceController 构造函数，用于创建 SpaceController 实例
func NewSpaceController(spaceService service.SpaceService) *SpaceController {
	return &SpaceController{spaceService: spaceService}
}

// ListPublicSpaces 分页获取公开空间列表
// @Summary      获取公开空间列表 (公开)
// @Tags         spaces (空间)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" minimum(1) default(1)
// @Param        size query int false "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.SpacePageResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/space/list [get]
func (ctrl *SpaceController) ListPublicSpaces(c *gin.Context) {
	var reqDTO dto.ListSpacesRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.spaceService.GetAllPublicSpaces(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取空间列表")
		return
	}
	response.RespondSuccess(c, pageVO, "空间列表获取成功")
}

// CreateSpace 创建空间
// @Summary      创建空间
// @Tags         spaces (空间)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSpaceRequest true "创建空间请求体"
// @Success      200 {object} vo.BaseResponseWrapper "创建成功，Data 为空间信息"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/space/create [post]
func (ctrl *SpaceController) CreateSpace(c *gin.Context) {
	var reqDTO dto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	spaceVO, err := ctrl.spaceService.CreateSpace(c.Request.Context(), userID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "创建空间")
		return
	}
	response.RespondSuccess(c, spaceVO, "空间创建成功")
}

// GetSpace 按 ID 获取空间
// @Summary      获取空间详情
// @Tags         spaces (空间)
// @Produce      json
// @Param        id path uint64 true "空间ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为空间信息"
// @Failure      404 {object} vo.BaseResponseWrapper "空间不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/space/info/{id} [get]
func (ctrl *SpaceController) GetSpace(c *gin.Context) {
	id, ok := parseUint64Param(c, "id")
	if !ok {
		return
	}

	spaceVO, err := ctrl.spaceService.GetSpaceByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取空间")
		return
	}
	response.RespondSuccess(c, spaceVO, "空间获取成功")
}

// GetSpaceByCode 按编码获取空间
// @Summary      按编码获取空间
// @Tags         spaces (空间)
// @Produce      json
// @Param        code path string true "空间编码"
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为空间信息"
// @Failure      404 {object} vo.BaseResponseWrapper "空间不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/space/code/{code} [get]
func (ctrl *SpaceController) GetSpaceByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "空间编码不能为空")
		return
	}

	spaceVO, err := ctrl.spaceService.GetSpaceByCode(c.Request.Context(), code)
	if err != nil {
		respondServiceError(c, err, "获取空间")
		return
	}
	response.RespondSuccess(c, spaceVO, "空间获取成功")
}

// ListVisibleSpaces 获取当前用户可见的空间
// @Summary      获取可见空间列表
// @Description  返回公开空间与当前用户拥有的私有空间。
// @Tags         spaces (空间)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" minimum(1) default(1)
// @Param        size query int false "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.SpacePageResponseWrapper "成功响应"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/space/visible [get]
func (ctrl *SpaceController) ListVisibleSpaces(c *gin.Context) {
	var reqDTO dto.ListSpacesRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	pageVO, err := ctrl.spaceService.GetVisibleSpacesByUser(c.Request.Context(), userID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取可见空间列表")
		return
	}
	response.RespondSuccess(c, pageVO, "空间列表获取成功")
}

// ListMyPublicSpaces 获取当前用户的公开空间
// @Summary      获取我的公开空间
// @Tags         spaces (空间)
// @Produce      json
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为空间列表"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/space/user/public [get]
func (ctrl *SpaceController) ListMyPublicSpaces(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	spaces, err := ctrl.spaceService.GetPublicSpacesByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取公开空间")
		return
	}
	response.RespondSuccess(c, spaces, "空间列表获取成功")
}

// ListMyPrivateSpaces 获取当前用户的私有空间
// @Summary      获取我的私有空间
// @Tags         spaces (空间)
// @Produce      json
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为空间列表"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/space/user/private [get]
func (ctrl *SpaceController) ListMyPrivateSpaces(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	spaces, err := ctrl.spaceService.GetPrivateSpacesByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取私有空间")
		return
	}
	response.RespondSuccess(c, spaces, "空间列表获取成功")
}

// CountSpaceArticles 统计空间内文章数
// @Summary      统计空间文章数
// @Tags         spaces (空间)
// @Produce      json
// @Param        id path uint64 true "空间ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为文章数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的路径参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/space/count/{id} [get]
func (ctrl *SpaceController) CountSpaceArticles(c *gin.Context) {
	id, ok := parseUint64Param(c, "id")
	if !ok {
		return
	}

	count, err := ctrl.spaceService.ArticleCount(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "统计空间文章数")
		return
	}
	response.RespondSuccess(c, count, "空间文章数获取成功")
}

// RegisterPublicRoutes 注册无需认证的空间路由
func (ctrl *SpaceController) RegisterPublicRoutes(group *gin.RouterGroup) {
	space := group.Group("/space")
	{
		space.GET("/list", ctrl.ListPublicSpaces)
	}
}

// RegisterUserRoutes 注册需要 USER 角色的空间路由
func (ctrl *SpaceController) RegisterUserRoutes(group *gin.RouterGroup) {
	space := group.Group("/space")
	{
		space.POST("/create", ctrl.CreateSpace)
		space.GET("/info/:id", ctrl.GetSpace)
		space.GET("/code/:code", ctrl.GetSpaceByCode)
		space.GET("/visible", ctrl.ListVisibleSpaces)
		space.GET("/user/public", ctrl.ListMyPublicSpaces)
		space.GET("/user/private", ctrl.ListMyPrivateSpaces)
		space.GET("/count/:id", ctrl.CountSpaceArticles)
	}
}
