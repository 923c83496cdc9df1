package constant

// Redis Key 相关常量 (导出)
const (
	// --- Key 前缀 (用于动态生成 Key) ---

	// ArticleViewCountPrefix 是文章浏览量计数器的 Key 前缀。
	// 每篇文章会有一个对应的 String 类型的 Key，用于原子性计数。
	// 示例 Key: "article_view_count:123" (其中 123 是 articleID)
	// Redis 类型: String
	ArticleViewCountPrefix = "article_view_count:"

	// --- 固定 Key 名称 (全局使用的 Key) ---

	// ArticlesRankKey 是全局文章排行榜的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是文章 ID，分数是浏览量。
	// 查看文章时递增对应成员的分数，定时任务据此生成热榜。
	// Redis 类型: Sorted Set
	ArticlesRankKey = "article_rank"

	// HotArticlesCacheKey 是热门文章列表缓存的 Key 名称。
	// 由定时任务从 ArticlesRankKey 截取 Top N 并回表查询后写入的 JSON 列表。
	// Redis 类型: String (JSON 数组)
	HotArticlesCacheKey = "hot_articles"
)
