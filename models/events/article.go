package events

import "time"

// ArticleCreatedEvent 文章创建事件
// - 由文章服务在创建事务提交成功后发送，通知扇出消费者为作者的
//   粉丝生成未读通知
// - 事件发送失败不影响创建请求本身 (fire-and-forget)
type ArticleCreatedEvent struct {
	EventID   string    `json:"eventId"`   // 事件唯一标识
	Timestamp time.Time `json:"timestamp"` // 事件产生时间
	ArticleID uint64    `json:"articleId"` // 新建文章ID
	Title     string    `json:"title"`     // 文章标题
	AuthorID  uint64    `json:"authorId"`  // 作者ID
}
