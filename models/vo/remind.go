package vo

import (
	"time"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// RemindVO 通知视图对象
type RemindVO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	ArticleID uint64    `json:"articleId"`
	UserID    uint64    `json:"userId"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRemindVO 将通知实体转换为视图对象
func NewRemindVO(r *entities.Remind) *RemindVO {
	if r == nil {
		return nil
	}
	return &RemindVO{
		ID:        r.ID,
		Title:     r.Title,
		ArticleID: r.ArticleID,
		UserID:    r.UserID,
		Read:      r.Read,
		CreatedAt: r.CreatedAt,
	}
}

// MapRemindsToVOs 将通知实体列表转换为视图对象列表
func MapRemindsToVOs(reminds []*entities.Remind) []*RemindVO {
	if len(reminds) == 0 {
		return []*RemindVO{}
	}
	vos := make([]*RemindVO, 0, len(reminds))
	for _, r := range reminds {
		if r == nil {
			continue
		}
		vos = append(vos, NewRemindVO(r))
	}
	return vos
}
