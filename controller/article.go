package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/service"
)

// ArticleController 定义文章控制器的结构体
type ArticleController struct {
	articleService service.ArticleService     // 服务层接口，通过依赖注入传入
	listService    service.ArticleListService // 列表类查询
}

// NewArticleController 构造函数，用于创建 ArticleController 实例
func NewArticleController(articleService service.ArticleService, listService service.ArticleListService) *ArticleController {
	return &ArticleController{
		articleService: articleService,
		listService:    listService,
	}
}

// GetArticle 获取文章详情并计数
// @Summary      获取文章详情 (公开)
// @Description  读取指定文章，读取前浏览量原子 +1，同一篇文章被读取 N 次浏览量严格增加 N。
// @Tags         articles (文章)
// @Produce      json
// @Param        id path uint64 true "文章ID" minimum(1)
// @Success      200 {object} vo.ArticleResponseWrapper "成功响应，包含文章详情"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的路径参数"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/info/{id} [get]
func (ctrl *ArticleController) GetArticle(c *gin.Context) {
	id, ok := parseUint64Param(c, "id")
	if !ok {
		return
	}

	articleVO, err := ctrl.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取文章")
		return
	}
	response.RespondSuccess(c, articleVO, "文章获取成功")
}

// ListArticles 分页获取文章列表
// @Summary      获取文章列表 (公开)
// @Description  分页获取全部文章，orderBy 支持 NATIVE_CREATE_TIME / VIEW / FABULOU，未知值回落为按创建时间倒序。
// @Tags         articles (文章)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" minimum(1) default(1)
// @Param        size query int false "每页数量" minimum(1) maximum(100) default(10)
// @Param        orderBy query string false "排序方式" Enums(NATIVE_CREATE_TIME,VIEW,FABULOU)
// @Success      200 {object} vo.ArticlePageResponseWrapper "成功响应，包含文章列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/list [get]
func (ctrl *ArticleController) ListArticles(c *gin.Context) {
	var reqDTO dto.ListArticlesRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.listService.FindAll(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取文章列表")
		return
	}
	response.RespondSuccess(c, pageVO, "文章列表获取成功")
}

// ListArticlesByTag 按标签标题获取文章列表
// @Summary      按标签获取文章列表 (公开)
// @Description  先按标题解析标签，标签不存在时返回 404 而不是空列表。
// @Tags         articles (文章)
// @Produce      json
// @Param        tag path string true "标签标题"
// @Param        page query int false "页码 (从1开始)" minimum(1) default(1)
// @Param        size query int false "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.ArticlePageResponseWrapper "成功响应"
// @Failure      404 {object} vo.BaseResponseWrapper "标签不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/list/tag/{tag} [get]
func (ctrl *ArticleController) ListArticlesByTag(c *gin.Context) {
	tagTitle := c.Param("tag")
	if tagTitle == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "标签标题不能为空")
		return
	}
	page, size := pagingQuery(c)

	pageVO, err := ctrl.listService.FindAllByTagTitle(c.Request.Context(), tagTitle, page, size)
	if err != nil {
		respondServiceError(c, err, "按标签获取文章列表")
		return
	}
	response.RespondSuccess(c, pageVO, "文章列表获取成功")
}

// ListArticlesBySpace 按空间获取文章列表
// @Summary      按空间获取文章列表 (公开)
// @Tags         articles (文章)
// @Produce      json
// @Param        spaceId path uint64 true "空间ID" minimum(1)
// @Param        page query int false "页码 (从1开始)" minimum(1) default(1)
// @Param        size query int false "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.ArticlePageResponseWrapper "成功响应"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/list/space/{spaceId} [get]
func (ctrl *ArticleController) ListArticlesBySpace(c *gin.Context) {
	spaceID, ok := parseUint64Param(c, "spaceId")
	if !ok {
		return
	}
	page, size := pagingQuery(c)

	pageVO, err := ctrl.listService.FindAllBySpace(c.Request.Context(), spaceID, page, size)
	if err != nil {
		respondServiceError(c, err, "按空间获取文章列表")
		return
	}
	response.RespondSuccess(c, pageVO, "文章列表获取成功")
}

// SearchArticles 组合条件搜索文章
// @Summary      搜索文章 (公开)
// @Description  tagId / articleTitle / spaceId / userId 均可选，存在的条件按 AND 组合。
// @Tags         articles (文章)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" minimum(1) default(1)
// @Param        size query int false "每页数量" minimum(1) maximum(100) default(10)
// @Param        tagId query uint64 false "标签ID" minimum(1)
// @Param        articleTitle query string false "标题模糊搜索关键词" maxLength(255)
// @Param        spaceId query uint64 false "空间ID" minimum(1)
// @Param        userId query uint64 false "作者ID" minimum(1)
// @Success      200 {object} vo.ArticlePageResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/search [get]
func (ctrl *ArticleController) SearchArticles(c *gin.Context) {
	var reqDTO dto.SearchArticlesRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.listService.Search(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "搜索文章")
		return
	}
	response.RespondSuccess(c, pageVO, "文章搜索成功")
}

// CreateArticle 发布新文章
// @Summary      发布文章
// @Description  创建新文章，作者为当前登录用户；父文章缺省时写入根哨兵 -1；发布成功后异步为作者的粉丝生成提醒。
// @Tags         articles (文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateArticleRequest true "创建文章请求体"
// @Success      200 {object} vo.ArticleResponseWrapper "成功响应，包含新文章的ID"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/create [post]
func (ctrl *ArticleController) CreateArticle(c *gin.Context) {
	var reqDTO dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	articleVO, err := ctrl.articleService.CreateArticle(c.Request.Context(), userID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "发布文章")
		return
	}
	response.RespondSuccess(c, articleVO, "文章发布成功")
}

// UpdateArticle 更新文章
// @Summary      更新文章
// @Description  更新前旧内容会先快照到历史版本 (版本号为毫秒时间戳字符串)；仅作者本人可更新。
// @Tags         articles (文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateArticleRequest true "更新文章请求体"
// @Success      200 {object} vo.ArticleResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      403 {object} vo.BaseResponseWrapper "非作者本人"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/update [put]
func (ctrl *ArticleController) UpdateArticle(c *gin.Context) {
	var reqDTO dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	articleVO, err := ctrl.articleService.UpdateArticle(c.Request.Context(), userID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "更新文章")
		return
	}
	response.RespondSuccess(c, articleVO, "文章更新成功")
}

// DeleteArticle 删除文章
// @Summary      删除文章
// @Description  物理删除文章及其标签关联、点赞、浏览与提醒记录；历史版本保留；仅作者本人可删除。
// @Tags         articles (文章)
// @Produce      json
// @Param        id path uint64 true "文章ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "非作者本人"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/delete/{id} [delete]
func (ctrl *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := parseUint64Param(c, "id")
	if !ok {
		return
	}
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.articleService.DeleteArticle(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err, "删除文章")
		return
	}
	response.RespondSuccess(c, id, "文章删除成功")
}

// GetMyArticles 获取当前用户的文章列表
// @Summary      获取我的文章列表
// @Tags         articles (文章)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" minimum(1) default(1)
// @Param        size query int false "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.ArticlePageResponseWrapper "成功响应"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/my [get]
func (ctrl *ArticleController) GetMyArticles(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}
	page, size := pagingQuery(c)

	pageVO, err := ctrl.listService.FindMyArticles(c.Request.Context(), userID, page, size)
	if err != nil {
		respondServiceError(c, err, "获取我的文章列表")
		return
	}
	response.RespondSuccess(c, pageVO, "文章列表获取成功")
}

// GetTopArticleByUsername 获取某作者最近的一篇文章
// @Summary      获取作者最近的文章
// @Tags         articles (文章)
// @Produce      json
// @Param        username query string true "作者用户名" maxLength(50)
// @Success      200 {object} vo.ArticleResponseWrapper "成功响应"
// @Failure      404 {object} vo.BaseResponseWrapper "作者或文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/top/by/user [get]
func (ctrl *ArticleController) GetTopArticleByUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "用户名不能为空")
		return
	}

	articleVO, err := ctrl.articleService.FindTopByUsername(c.Request.Context(), username)
	if err != nil {
		respondServiceError(c, err, "获取作者最近文章")
		return
	}
	response.RespondSuccess(c, articleVO, "文章获取成功")
}

// GetArticleHistories 获取文章历史版本列表
// @Summary      获取文章历史版本
// @Description  返回文章更新时留下的内容快照，从新到旧。
// @Tags         articles (文章)
// @Produce      json
// @Param        id path uint64 true "文章ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为历史版本列表"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/history/{id} [get]
func (ctrl *ArticleController) GetArticleHistories(c *gin.Context) {
	id, ok := parseUint64Param(c, "id")
	if !ok {
		return
	}

	histories, err := ctrl.articleService.GetArticleHistories(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取文章历史")
		return
	}
	response.RespondSuccess(c, histories, "文章历史获取成功")
}

// FabulousArticle 点赞文章
// @Summary      点赞文章
// @Description  重复点赞幂等，不报错也不重复计数。
// @Tags         articles (文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.ArticleFabulousParam true "点赞参数"
// @Success      200 {object} vo.BaseResponseWrapper "点赞成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/fabulous [post]
func (ctrl *ArticleController) FabulousArticle(c *gin.Context) {
	var param dto.ArticleFabulousParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	if err := ctrl.articleService.FabulousArticle(c.Request.Context(), &param); err != nil {
		respondServiceError(c, err, "点赞文章")
		return
	}
	response.RespondSuccess[any](c, nil, "点赞成功")
}

// UnFabulousArticle 取消点赞
// @Summary      取消点赞
// @Tags         articles (文章)
// @Produce      json
// @Param        userId path uint64 true "用户ID" minimum(1)
// @Param        articleId path uint64 true "文章ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "取消点赞成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的路径参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/unfabulous/{userId}/{articleId} [delete]
func (ctrl *ArticleController) UnFabulousArticle(c *gin.Context) {
	userID, ok := parseUint64Param(c, "userId")
	if !ok {
		return
	}
	articleID, ok := parseUint64Param(c, "articleId")
	if !ok {
		return
	}

	param := dto.ArticleFabulousParam{UserID: userID, ArticleID: articleID}
	if err := ctrl.articleService.UnFabulousArticle(c.Request.Context(), &param); err != nil {
		respondServiceError(c, err, "取消点赞")
		return
	}
	response.RespondSuccess[any](c, nil, "取消点赞成功")
}

// CheckFabulous 查询是否已点赞
// @Summary      查询是否已点赞
// @Tags         articles (文章)
// @Produce      json
// @Param        userId query uint64 true "用户ID" minimum(1)
// @Param        articleId query uint64 true "文章ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为布尔值"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/fabulous/check [get]
func (ctrl *ArticleController) CheckFabulous(c *gin.Context) {
	var param dto.ArticleFabulousParam
	if err := c.ShouldBindQuery(&param); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	exists, err := ctrl.articleService.FabulousArticleExists(c.Request.Context(), &param)
	if err != nil {
		respondServiceError(c, err, "查询点赞状态")
		return
	}
	response.RespondSuccess(c, exists, "点赞状态获取成功")
}

// CountFabulous 查询文章点赞总数
// @Summary      查询文章点赞总数
// @Tags         articles (文章)
// @Produce      json
// @Param        articleId query uint64 true "文章ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为点赞数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/fabulous/count [get]
func (ctrl *ArticleController) CountFabulous(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Query("articleId"), 10, 64)
	if err != nil || articleID == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数 articleId")
		return
	}

	count, svcErr := ctrl.articleService.FabulousArticleCount(c.Request.Context(), articleID)
	if svcErr != nil {
		respondServiceError(c, svcErr, "查询点赞总数")
		return
	}
	response.RespondSuccess(c, count, "点赞总数获取成功")
}

// ViewArticle 上报设备浏览量
// @Summary      上报浏览量 (公开)
// @Description  按 (用户, 文章, 设备) 维度累计浏览量，同一维度重复上报时与存量相加。
// @Tags         articles (文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.ArticleViewParam true "浏览上报参数"
// @Success      200 {object} vo.BaseResponseWrapper "上报成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/view [post]
func (ctrl *ArticleController) ViewArticle(c *gin.Context) {
	var param dto.ArticleViewParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	if err := ctrl.articleService.ViewArticle(c.Request.Context(), &param); err != nil {
		respondServiceError(c, err, "上报浏览量")
		return
	}
	response.RespondSuccess[any](c, nil, "浏览上报成功")
}

// GetViewTrend 获取文章浏览趋势
// @Summary      获取文章浏览趋势 (公开)
// @Description  返回文章最近最多七天的按天浏览量聚合，从新到旧。
// @Tags         articles (文章)
// @Produce      json
// @Param        id path uint64 true "文章ID" minimum(1)
// @Success      200 {object} vo.CounterListResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的路径参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/view/{id} [get]
func (ctrl *ArticleController) GetViewTrend(c *gin.Context) {
	id, ok := parseUint64Param(c, "id")
	if !ok {
		return
	}

	counters, err := ctrl.articleService.GetArticleViewTop7(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取浏览趋势")
		return
	}
	response.RespondSuccess(c, counters, "浏览趋势获取成功")
}

// CountUserViews 查询某用户对某文章的浏览量
// @Summary      查询用户浏览量
// @Description  返回某用户对某文章跨全部设备的浏览量之和。
// @Tags         articles (文章)
// @Produce      json
// @Param        userId query uint64 true "用户ID" minimum(1)
// @Param        articleId query uint64 true "文章ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，Data 为浏览量"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/wikift/article/view/count [get]
func (ctrl *ArticleController) CountUserViews(c *gin.Context) {
	var param dto.ArticleFabulousParam
	if err := c.ShouldBindQuery(&param); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	total, err := ctrl.articleService.ViewArticleCount(c.Request.Context(), param.UserID, param.ArticleID)
	if err != nil {
		respondServiceError(c, err, "查询用户浏览量")
		return
	}
	response.RespondSuccess(c, total, "浏览量获取成功")
}

// RegisterPublicRoutes 注册无需认证的文章路由
func (ctrl *ArticleController) RegisterPublicRoutes(group *gin.RouterGroup) {
	article := group.Group("/article")
	{
		article.GET("/info/:id", ctrl.GetArticle)               // GET /article/info/{id}
		article.GET("/list", ctrl.ListArticles)                 // GET /article/list
		article.GET("/list/tag/:tag", ctrl.ListArticlesByTag)   // GET /article/list/tag/{tag}
		article.GET("/list/space/:spaceId", ctrl.ListArticlesBySpace)
		article.GET("/search", ctrl.SearchArticles) // GET /article/search
		article.POST("/view", ctrl.ViewArticle)     // POST /article/view
		article.GET("/view/:id", ctrl.GetViewTrend) // GET /article/view/{id}
	}
}

// RegisterUserRoutes 注册需要 USER 角色的文章路由
func (ctrl *ArticleController) RegisterUserRoutes(group *gin.RouterGroup) {
	article := group.Group("/article")
	{
		article.POST("/create", ctrl.CreateArticle)
		article.PUT("/update", ctrl.UpdateArticle)
		article.DELETE("/delete/:id", ctrl.DeleteArticle)
		article.GET("/my", ctrl.GetMyArticles)
		article.GET("/top/by/user", ctrl.GetTopArticleByUsername)
		article.GET("/history/:id", ctrl.GetArticleHistories)
		article.POST("/fabulous", ctrl.FabulousArticle)
		article.DELETE("/unfabulous/:userId/:articleId", ctrl.UnFabulousArticle)
		article.GET("/fabulous/check", ctrl.CheckFabulous)
		article.GET("/fabulous/count", ctrl.CountFabulous)
		article.GET("/view/count", ctrl.CountUserViews)
	}
}

// pagingQuery 解析 page/size 查询参数，非法值回落默认。
func pagingQuery(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return page, size
}
