package vo

// CounterVO 浏览趋势聚合点，(日期, 累计浏览量) 二元组
// - 仅作为只读聚合结果返回，不对应独立的持久化实体
type CounterVO struct {
	Date  string `json:"date"`  // 聚合日期，格式 YYYY-MM-DD
	Count int64  `json:"count"` // 当日累计浏览量
}
