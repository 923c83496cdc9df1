package vo

import (
	"time"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// TagVO 标签视图对象
type TagVO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

// ArticleVO 定义文章的响应数据结构
type ArticleVO struct {
	ID            uint64    `json:"id"`            // 文章ID
	Title         string    `json:"title"`         // 标题
	Content       string    `json:"content"`       // 正文
	UserID        uint64    `json:"userId"`        // 作者ID
	SpaceID       uint64    `json:"spaceId"`       // 所属空间ID
	Parent        int64     `json:"parent"`        // 父文章ID，根文章为 -1
	ViewCount     int64     `json:"viewCount"`     // 浏览量
	FabulousCount int64     `json:"fabulousCount"` // 点赞量
	Tags          []*TagVO  `json:"tags"`          // 标签列表
	CreatedAt     time.Time `json:"createdAt"`     // 创建时间
	UpdatedAt     time.Time `json:"updatedAt"`     // 更新时间
}

// ArticlePageVO 文章分页响应结构
// - 包含当前页的文章列表和符合条件的总记录数
type ArticlePageVO struct {
	Articles []*ArticleVO `json:"articles"`
	Total    int64        `json:"total"`
}

// ArticleHistoryVO 文章历史版本视图对象
type ArticleHistoryVO struct {
	ID        uint64    `json:"id"`
	Version   string    `json:"version"`
	Content   string    `json:"content"`
	ArticleID uint64    `json:"articleId"`
	UserID    uint64    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewArticleVO 将文章实体转换为视图对象
func NewArticleVO(a *entities.Article) *ArticleVO {
	if a == nil {
		return nil
	}
	tags := make([]*TagVO, 0, len(a.Tags))
	for _, t := range a.Tags {
		if t == nil {
			continue
		}
		tags = append(tags, &TagVO{ID: t.ID, Title: t.Title})
	}
	return &ArticleVO{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		UserID:        a.UserID,
		SpaceID:       a.SpaceID,
		Parent:        a.Parent,
		ViewCount:     a.ViewCount,
		FabulousCount: a.FabulousCount,
		Tags:          tags,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// MapArticlesToVOs 将文章实体列表转换为视图对象列表
// - 返回空切片而不是 nil，便于前端处理
func MapArticlesToVOs(articles []*entities.Article) []*ArticleVO {
	if len(articles) == 0 {
		return []*ArticleVO{}
	}
	vos := make([]*ArticleVO, 0, len(articles))
	for _, a := range articles {
		if a == nil {
			continue
		}
		vos = append(vos, NewArticleVO(a))
	}
	return vos
}

// NewArticleHistoryVOs 将历史实体列表转换为视图对象列表
func NewArticleHistoryVOs(histories []*entities.ArticleHistory) []*ArticleHistoryVO {
	vos := make([]*ArticleHistoryVO, 0, len(histories))
	for _, h := range histories {
		if h == nil {
			continue
		}
		vos = append(vos, &ArticleHistoryVO{
			ID:        h.ID,
			Version:   h.Version,
			Content:   h.Content,
			ArticleID: h.ArticleID,
			UserID:    h.UserID,
			CreatedAt: h.CreatedAt,
		})
	}
	return vos
}
