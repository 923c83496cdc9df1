package entities

import "time"

// ArticleFabulous 点赞关联记录
// - 表名: article_fabulous
// - (user_id, article_id) 复合唯一键，重复点赞通过 ON CONFLICT DO NOTHING 幂等吸收
type ArticleFabulous struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"type:bigint;not null;uniqueIndex:ux_fabulous_user_article" json:"userId"`
	ArticleID uint64    `gorm:"type:bigint;not null;uniqueIndex:ux_fabulous_user_article;index" json:"articleId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName 点赞表不使用复数约定
func (ArticleFabulous) TableName() string { return "article_fabulous" }

// ArticleView 按设备维度累计的浏览记录
// - 表名: article_views
// - (user_id, article_id, device) 复合唯一键
// - 冲突时语义是"累加"而不是覆盖: count = count + 新增量，
//   必须用原子 upsert 表达式实现，不能 read-modify-write
type ArticleView struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"type:bigint;not null;uniqueIndex:ux_view_user_article_device" json:"userId"`
	ArticleID uint64    `gorm:"type:bigint;not null;uniqueIndex:ux_view_user_article_device;index" json:"articleId"`
	Device    string    `gorm:"type:varchar(64);not null;uniqueIndex:ux_view_user_article_device" json:"device"`
	ViewCount int64     `gorm:"type:bigint;not null;default:0" json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
