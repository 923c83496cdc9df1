package entities

import (
	"time"
)

// ArticleHistory 文章修改历史实体
// - 使用场景: 每次更新文章前先把旧内容快照到这里，形成只增不改的版本链
// - 表名: article_histories
// - 注意: 服务层从不删除历史记录，文章被删除后历史仍然保留作为审计线索
type ArticleHistory struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// 版本号，取快照时刻的毫秒时间戳字符串
	Version string `gorm:"type:varchar(32);not null;index" json:"version"`

	// 更新前的文章内容快照
	Content string `gorm:"type:text;not null" json:"content"`

	// 所属文章ID
	ArticleID uint64 `gorm:"type:bigint;not null;index" json:"articleId"`

	// 执行本次修改的用户ID
	UserID uint64 `gorm:"type:bigint;not null" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
}
