package constant

// 服务级常量
const (
	// ServiceName 用于日志与链路追踪中的服务标识
	ServiceName = "wikift-service"

	// ServiceVersion 当前服务版本，上报到链路追踪资源属性
	ServiceVersion = "1.0.0"

	// HotArticlesRefreshSpec 热门文章缓存刷新任务的 cron 表达式（每五分钟）
	HotArticlesRefreshSpec = "*/5 * * * *"

	// DefaultHotArticlesTopN 热榜缓存的默认文章数量
	DefaultHotArticlesTopN = 50

	// DefaultHotArticlesTTLSeconds 热榜 JSON 缓存的默认过期秒数
	DefaultHotArticlesTTLSeconds = 300

	// TrendDays 文章浏览趋势统计的天数窗口
	TrendDays = 7
)
