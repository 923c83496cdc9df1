package dto

// FollowUserParam 关注/取关参数
type FollowUserParam struct {
	FolloweeID uint64 `json:"followeeId" form:"followeeId" binding:"required,gte=1"`
}

// ListRemindsRequest 按接收人查询通知列表
// - type 取值 read / unread，未知值回落 unread
type ListRemindsRequest struct {
	Type string `form:"type,default=unread" binding:"omitempty,max=16"`
}
