package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// RootArticleParent 是根文章的父节点哨兵值。
// 没有父文章的文章在创建时统一写入 -1，便于按层级查询时区分根节点。
const RootArticleParent int64 = -1

// Article 文章实体
// - 使用场景: 知识库的核心内容载体，归属于某个空间，由用户创作
// - 表名: articles (GORM 默认使用结构体名复数形式)
type Article struct {
	entities.BaseModel // 嵌入公共 BaseModel，包含 ID, CreatedAt, UpdatedAt, DeletedAt

	// 标题，必填，最大长度255个字符
	Title string `gorm:"type:varchar(255);not null" json:"title"`

	// 正文内容，支持多行文本，存储为 TEXT 类型
	// - 更新文章前，旧内容会先被快照到 article_histories 表
	Content string `gorm:"type:text;not null" json:"content"`

	// 作者ID，关联 users 表
	UserID uint64 `gorm:"type:bigint;not null;index" json:"userId"`

	// 所属空间ID，关联 spaces 表
	SpaceID uint64 `gorm:"type:bigint;not null;index" json:"spaceId"`

	// 父文章ID，根文章为 -1 (RootArticleParent)
	// - 类型: int64，因为 -1 哨兵值需要有符号整数
	Parent int64 `gorm:"type:bigint;not null;default:-1" json:"parent"`

	// 浏览量，每次通过 info 接口读取文章时原子性 +1
	// - 更新必须使用 view_count = view_count + 1 的表达式，避免并发丢失更新
	ViewCount int64 `gorm:"type:bigint;not null;default:0" json:"viewCount"`

	// 点赞数冗余计数，与 article_fabulous 关联表同事务维护
	// - 仅用于列表按点赞排序，权威数值以关联表 COUNT 为准
	FabulousCount int64 `gorm:"type:bigint;not null;default:0" json:"fabulousCount"`

	// 标签集合，多对多关系，通过 article_tag_relation 关联表维护
	Tags []*Tag `gorm:"many2many:article_tag_relation" json:"tags,omitempty"`
}
