package dto

// CreateSpaceRequest 创建空间请求
type CreateSpaceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Code        string `json:"code" binding:"required,max=64"`
	Avatar      string `json:"avatar" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Private     bool   `json:"private"`
}

// ListSpacesRequest 空间列表请求 (页码分页)
type ListSpacesRequest struct {
	Page int `form:"page,default=1" binding:"omitempty,gte=1"`
	Size int `form:"size,default=10" binding:"omitempty,gte=1,lte=100"`
}

// GetOffset 计算分页偏移量
func (r *ListSpacesRequest) GetOffset() int {
	if r.Page <= 1 {
		return 0
	}
	return (r.Page - 1) * r.GetLimit()
}

// GetLimit 获取每页数量
func (r *ListSpacesRequest) GetLimit() int {
	if r.Size <= 0 {
		return 10
	}
	return r.Size
}
