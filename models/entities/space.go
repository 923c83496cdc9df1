package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Space 空间实体，文章的容器
// - 表名: spaces
// - Private 为 true 时仅对空间所有者可见
type Space struct {
	entities.BaseModel

	// 空间名称
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// 空间编码，唯一，可用于 URL 定位
	Code string `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`

	Avatar string `gorm:"type:varchar(255)" json:"avatar"`

	Description string `gorm:"type:varchar(500)" json:"description"`

	// 是否私有空间
	Private bool `gorm:"not null;default:false" json:"private"`

	// 空间所有者ID
	UserID uint64 `gorm:"type:bigint;not null;index" json:"userId"`
}
