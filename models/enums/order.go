package enums

// ArticleOrder 文章列表排序方式，封闭枚举
// - 列表接口的 orderBy 参数解析为该类型后，仓库层用 switch 分派到
//   三种固定的查询形态，不做字符串散落匹配
type ArticleOrder int

const (
	// OrderByCreateTime 按创建时间倒序 (默认)
	OrderByCreateTime ArticleOrder = iota
	// OrderByView 按浏览量倒序
	OrderByView
	// OrderByFabulous 按点赞数倒序
	OrderByFabulous
)

// ParseArticleOrder 解析排序参数，未知取值一律回落到创建时间排序
func ParseArticleOrder(s string) ArticleOrder {
	switch s {
	case "VIEW":
		return OrderByView
	case "FABULOU":
		return OrderByFabulous
	case "NATIVE_CREATE_TIME":
		return OrderByCreateTime
	default:
		return OrderByCreateTime
	}
}

// String 返回排序方式的外部标识
func (o ArticleOrder) String() string {
	switch o {
	case OrderByView:
		return "VIEW"
	case OrderByFabulous:
		return "FABULOU"
	default:
		return "NATIVE_CREATE_TIME"
	}
}

// RemindQueryType 通知列表查询类型
type RemindQueryType string

const (
	RemindQueryRead   RemindQueryType = "read"
	RemindQueryUnread RemindQueryType = "unread"
)

// ParseRemindQueryType 解析通知查询类型，默认查未读
func ParseRemindQueryType(s string) RemindQueryType {
	if s == string(RemindQueryRead) {
		return RemindQueryRead
	}
	return RemindQueryUnread
}
