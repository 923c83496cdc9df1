package dto

// CreateArticleRequest 定义创建文章的请求数据结构
// - 添加了 binding 标签用于输入验证
type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,max=255"`    // 文章标题，必填
	Content string `json:"content" binding:"required"`          // 文章内容，必填
	SpaceID uint64 `json:"spaceId" binding:"required,gte=1"`    // 所属空间，必填
	Parent  *int64 `json:"parent" binding:"omitempty"`          // 父文章ID，缺省时控制器强制为 -1
	TagIDs  []uint64 `json:"tagIds" binding:"omitempty,dive,gte=1"` // 标签ID列表，可选
}

// UpdateArticleRequest 定义更新文章的请求数据结构
// - 更新前服务层会先把旧内容快照到历史表
type UpdateArticleRequest struct {
	ID      uint64   `json:"id" binding:"required,gte=1"`
	Title   string   `json:"title" binding:"required,max=255"`
	Content string   `json:"content" binding:"required"`
	TagIDs  []uint64 `json:"tagIds" binding:"omitempty,dive,gte=1"`
}

// ListArticlesRequest 公共文章列表请求 (页码分页)
type ListArticlesRequest struct {
	Page    int    `form:"page,default=1" binding:"omitempty,gte=1"`
	Size    int    `form:"size,default=10" binding:"omitempty,gte=1,lte=100"`
	OrderBy string `form:"orderBy" binding:"omitempty,max=32"` // NATIVE_CREATE_TIME / VIEW / FABULOU，未知值回落默认
}

// GetOffset 计算分页偏移量
func (r *ListArticlesRequest) GetOffset() int {
	if r.Page <= 1 {
		return 0
	}
	return (r.Page - 1) * r.GetLimit()
}

// GetLimit 获取每页数量
func (r *ListArticlesRequest) GetLimit() int {
	if r.Size <= 0 {
		return 10
	}
	return r.Size
}

// SearchArticlesRequest 多条件组合搜索请求
// - 所有筛选参数均可选，nil 表示不约束该维度，存在的条件按 AND 组合
type SearchArticlesRequest struct {
	Page    int     `form:"page,default=1" binding:"omitempty,gte=1"`
	Size    int     `form:"size,default=10" binding:"omitempty,gte=1,lte=100"`
	TagID   *uint64 `form:"tagId" binding:"omitempty,gte=1"`
	Title   *string `form:"articleTitle" binding:"omitempty,max=255"`
	SpaceID *uint64 `form:"spaceId" binding:"omitempty,gte=1"`
	UserID  *uint64 `form:"userId" binding:"omitempty,gte=1"`
}

// GetOffset 计算分页偏移量
func (r *SearchArticlesRequest) GetOffset() int {
	if r.Page <= 1 {
		return 0
	}
	return (r.Page - 1) * r.GetLimit()
}

// GetLimit 获取每页数量
func (r *SearchArticlesRequest) GetLimit() int {
	if r.Size <= 0 {
		return 10
	}
	return r.Size
}

// ArticleFabulousParam 点赞/取消点赞参数
type ArticleFabulousParam struct {
	UserID    uint64 `json:"userId" form:"userId" binding:"required,gte=1"`
	ArticleID uint64 `json:"articleId" form:"articleId" binding:"required,gte=1"`
}

// ArticleViewParam 设备维度浏览上报参数
// - 同一 (userId, articleId, device) 再次上报时 viewCount 与库中存量相加
type ArticleViewParam struct {
	UserID    uint64 `json:"userId" binding:"required,gte=1"`
	ArticleID uint64 `json:"articleId" binding:"required,gte=1"`
	ViewCount int64  `json:"viewCount" binding:"required,gte=1"`
	Device    string `json:"device" binding:"required,max=64"`
}
