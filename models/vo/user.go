package vo

import (
	"github.com/BestJex/incubator-wikift/models/entities"
)

// UserVO 用户视图对象
// - 密码和关注关系的反向引用永远不出现在这里
type UserVO struct {
	ID        uint64   `json:"id"`
	Username  string   `json:"username"`
	Avatar    string   `json:"avatar"`
	AliasName string   `json:"aliasName"`
	Signature string   `json:"signature"`
	Email     string   `json:"email"`
	Active    bool     `json:"active"`
	Roles     []string `json:"roles"`
}

// NewUserVO 将用户实体转换为视图对象
func NewUserVO(u *entities.User) *UserVO {
	if u == nil {
		return nil
	}
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		if r == nil {
			continue
		}
		roles = append(roles, r.Name)
	}
	return &UserVO{
		ID:        u.ID,
		Username:  u.Username,
		Avatar:    u.Avatar,
		AliasName: u.AliasName,
		Signature: u.Signature,
		Email:     u.Email,
		Active:    u.Active,
		Roles:     roles,
	}
}
