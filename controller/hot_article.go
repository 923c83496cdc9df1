package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/BestJex/incubator-wikift/service"
)

// HotArticleController 定义热门文章控制器的结构体
type HotArticleController struct {
	hotArticleService service.HotArticleService
}

// NewHotArticleController 构造函数，用于创建 HotArticleController 实例
func NewHotArticleController(hotArticleService service.HotArticleService) *HotArticleController {
	return &HotArticleController{hotArticleService: hotArticleService}
}

// GetHotArticles 获取热门文章列表
// @Summary      获取热门文章列表 (公开)
// @Description  优先读取定时任务预热的 Redis 缓存，未命中时按浏览量回源数据库。
// @Tags         hot-articles (热门文章)
// @Produce      json
// @Param        limit query int false "返回数量上限" minimum(1) maximum(50) default(10)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为文章列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/hot-articles [get]
func (ctrl *HotArticleController) GetHotArticles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 50 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数 limit")
		return
	}

	articles, svcErr := ctrl.hotArticleService.GetHotArticles(c.Request.Context(), limit)
	if svcErr != nil {
		respondServiceError(c, svcErr, "获取热门文章")
		return
	}
	response.RespondSuccess(c, articles, "热门文章获取成功")
}

// RegisterPublicRoutes 注册无需认证的热门文章路由
func (ctrl *HotArticleController) RegisterPublicRoutes(group *gin.RouterGroup) {
	hot := group.Group("/hot-articles")
	{
		hot.GET("", ctrl.GetHotArticles) // GET /hot-articles
	}
}
