package entities

import "time"

// Remind 通知实体
// - 使用场景: 作者发布文章后，异步为其每个粉丝生成一条未读通知
// - 表名: reminds
// - Read 只有 unread -> read 一个迁移方向，重复标记已读是幂等的
type Remind struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// 通知文案，通常包含作者与文章标题
	Title string `gorm:"type:varchar(255);not null" json:"title"`

	// 关联的文章ID
	ArticleID uint64 `gorm:"type:bigint;not null;index" json:"articleId"`

	// 接收人ID
	UserID uint64 `gorm:"type:bigint;not null;index" json:"userId"`

	// 已读标记
	Read bool `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `json:"createdAt"`
}
