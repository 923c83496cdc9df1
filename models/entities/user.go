package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// User 用户实体
// - 表名: users
// - 注意: Password 永远不对外序列化 (json:"-")
type User struct {
	entities.BaseModel

	// 用户名，唯一
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`

	// 密码哈希，禁止出现在任何响应体中
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	// 头像 URL
	Avatar string `gorm:"type:varchar(255)" json:"avatar"`

	// 别名 (展示名)
	AliasName string `gorm:"type:varchar(50)" json:"aliasName"`

	// 个性签名
	Signature string `gorm:"type:varchar(255)" json:"signature"`

	Email string `gorm:"type:varchar(100)" json:"email"`

	// 是否已激活
	Active bool `gorm:"not null;default:false" json:"active"`

	// 是否被锁定
	Locked bool `gorm:"not null;default:false" json:"locked"`

	// 角色集合，多对多，通过 users_role_relation 关联
	Roles []*Role `gorm:"many2many:users_role_relation" json:"roles,omitempty"`
}

// Role 角色实体，r_name 取值如 USER / ADMIN
type Role struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(32);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
}

// UserFollow 用户关注关系 (follower 关注 followee)
// - 表名: users_follow_relation
// - 自引用多对多不做双向对象引用，只维护显式关联表并按索引查询，
//   避免序列化时出现引用环
// - (follower_id, followee_id) 复合唯一键保证重复关注幂等
type UserFollow struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID uint64    `gorm:"type:bigint;not null;index:idx_follow_follower;uniqueIndex:ux_follow_pair" json:"followerId"`
	FolloweeID uint64    `gorm:"type:bigint;not null;index:idx_follow_followee;uniqueIndex:ux_follow_pair" json:"followeeId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName 指定关注关系的表名，沿用最初的库表命名
func (UserFollow) TableName() string { return "users_follow_relation" }
