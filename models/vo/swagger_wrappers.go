package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// ArticleResponseWrapper 对应 response.APIResponse[vo.ArticleVO]
type ArticleResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    ArticleVO `json:"data"`
}

// ArticlePageResponseWrapper 对应 response.APIResponse[vo.ArticlePageVO]
type ArticlePageResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    ArticlePageVO `json:"data"`
}

// RemindResponseWrapper 对应 response.APIResponse[vo.RemindVO]
type RemindResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    RemindVO `json:"data"`
}

// RemindListResponseWrapper 对应 response.APIResponse[[]vo.RemindVO]
type RemindListResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    []*RemindVO `json:"data"`
}

// SpacePageResponseWrapper 对应 response.APIResponse[vo.SpacePageVO]
type SpacePageResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    SpacePageVO `json:"data"`
}

// CounterListResponseWrapper 对应 response.APIResponse[[]vo.CounterVO]
type CounterListResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    []CounterVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
