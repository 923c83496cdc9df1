package vo

import (
	"time"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// SpaceVO 空间视图对象
type SpaceVO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Avatar      string    `json:"avatar"`
	Description string    `json:"description"`
	Private     bool      `json:"private"`
	UserID      uint64    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SpacePageVO 空间分页响应结构
type SpacePageVO struct {
	Spaces []*SpaceVO `json:"spaces"`
	Total  int64      `json:"total"`
}

// NewSpaceVO 将空间实体转换为视图对象
func NewSpaceVO(s *entities.Space) *SpaceVO {
	if s == nil {
		return nil
	}
	return &SpaceVO{
		ID:          s.ID,
		Name:        s.Name,
		Code:        s.Code,
		Avatar:      s.Avatar,
		Description: s.Description,
		Private:     s.Private,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
	}
}

// MapSpacesToVOs 将空间实体列表转换为视图对象列表
func MapSpacesToVOs(spaces []*entities.Space) []*SpaceVO {
	if len(spaces) == 0 {
		return []*SpaceVO{}
	}
	vos := make([]*SpaceVO, 0, len(spaces))
	for _, s := range spaces {
		if s == nil {
			continue
		}
		vos = append(vos, NewSpaceVO(s))
	}
	return vos
}
