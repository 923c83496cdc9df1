package entities

import "time"

// Tag 标签实体
// - 表名: tags
// - 与文章多对多，按标题查询文章列表前先用标题解析标签，
//   标题不存在时返回 not-found 类错误而不是空列表
type Tag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}
