package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// ArticleRepository 定义了文章数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type ArticleRepository interface {
	// CreateArticle 持久化一篇新文章及其标签关联。
	// - db 参数允许调用方传入事务对象，在同一事务内完成文章与标签关联的写入。
	CreateArticle(ctx context.Context, db *gorm.DB, article *entities.Article) error

	// GetArticleByID 根据主键检索文章，预加载标签。
	// - 如果未找到文章，返回 commonerrors.ErrRepoNotFound。
	GetArticleByID(ctx context.Context, db *gorm.DB, id uint64) (*entities.Article, error)

	// SaveArticle 保存文章的完整状态（标题、正文等可变字段）。
	// - 用于更新流程：服务层先快照旧内容到历史表，再调用此方法落库新状态。
	SaveArticle(ctx context.Context, db *gorm.DB, article *entities.Article) error

	// ReplaceTags 替换文章的标签关联集合。
	ReplaceTags(ctx context.Context, db *gorm.DB, article *entities.Article, tags []*entities.Tag) error

	// IncrementViewCount 以原子表达式递增文章浏览量，不做读-改-写。
	// - 未命中记录时返回 commonerrors.ErrRepoNotFound。
	IncrementViewCount(ctx context.Context, db *gorm.DB, id uint64) error

	// AdjustFabulousCount 以原子表达式调整文章的冗余点赞计数。
	// - delta 为 +1 / -1，与点赞关联表的写入在同一事务内执行。
	AdjustFabulousCount(ctx context.Context, db *gorm.DB, id uint64, delta int64) error

	// DeleteArticle 物理删除文章本体及其标签关联。
	// - 点赞、浏览、提醒等关联数据由服务层在同一事务内清理。
	DeleteArticle(ctx context.Context, db *gorm.DB, id uint64) error

	// GetLatestArticleByUserID 获取指定作者最近发布的一篇文章。
	GetLatestArticleByUserID(ctx context.Context, userID uint64) (*entities.Article, error)

	// GetArticlesByIDs 根据 ID 列表批量检索文章，用于填充热榜缓存等场景。
	// - 使用 "WHERE id IN (...)" 单次查询，返回结果不保证与入参顺序一致。
	GetArticlesByIDs(ctx context.Context, ids []uint64) ([]*entities.Article, error)
}

// articleRepository 是 ArticleRepository 接口针对 MySQL 的具体实现。
type articleRepository struct {
	db     *gorm.DB        // GORM 数据库实例
	logger *core.ZapLogger // 日志记录器实例
}

// NewArticleRepository 是 articleRepository 的构造函数。
func NewArticleRepository(db *gorm.DB, logger *core.ZapLogger) ArticleRepository {
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateArticle 实现文章的数据库插入操作。
func (r *articleRepository) CreateArticle(ctx context.Context, db *gorm.DB, article *entities.Article) error {
	// GORM 会一并写入 many2many 关联 (article_tag_relation)，
	// 并自动填充 BaseModel 中的 ID 与时间戳。
	if err := db.WithContext(ctx).Create(article).Error; err != nil {
		// 仓库层直接返回数据库错误，由服务层决定如何处理或包装。
		return err
	}
	return nil
}

// GetArticleByID 实现根据单个 ID 获取文章，附带标签。
func (r *articleRepository) GetArticleByID(ctx context.Context, db *gorm.DB, id uint64) (*entities.Article, error) {
	var article entities.Article

	err := db.WithContext(ctx).Preload("Tags").First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取文章未找到", zap.Uint64("articleID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取文章数据库查询失败", zap.Uint64("articleID", id), zap.Error(err))
		return nil, err
	}

	return &article, nil
}

// SaveArticle 保存文章的当前状态。
func (r *articleRepository) SaveArticle(ctx context.Context, db *gorm.DB, article *entities.Article) error {
	// 使用 Updates + map 限定可变列，避免 Save 连带覆盖计数字段。
	result := db.WithContext(ctx).
		Model(&entities.Article{}).
		Where("id = ?", article.ID).
		Updates(map[string]interface{}{
			"title":    article.Title,
			"content":  article.Content,
			"space_id": article.SpaceID,
			"parent":   article.Parent,
		})
	if result.Error != nil {
		r.logger.Error("更新文章数据库操作失败", zap.Uint64("articleID", article.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新文章但未找到记录", zap.Uint64("articleID", article.ID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// ReplaceTags 用新的标签集合整体替换文章当前的标签关联。
func (r *articleRepository) ReplaceTags(ctx context.Context, db *gorm.DB, article *entities.Article, tags []*entities.Tag) error {
	if err := db.WithContext(ctx).Model(article).Association("Tags").Replace(tags); err != nil {
		r.logger.Error("替换文章标签关联失败", zap.Uint64("articleID", article.ID), zap.Error(err))
		return err
	}
	return nil
}

// IncrementViewCount 以 "view_count = view_count + 1" 的原子表达式递增浏览量。
func (r *articleRepository) IncrementViewCount(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).
		Model(&entities.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		r.logger.Error("递增文章浏览量失败", zap.Uint64("articleID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// AdjustFabulousCount 以 "fabulous_count = fabulous_count + delta" 的原子表达式调整点赞计数。
func (r *articleRepository) AdjustFabulousCount(ctx context.Context, db *gorm.DB, id uint64, delta int64) error {
	result := db.WithContext(ctx).
		Model(&entities.Article{}).
		Where("id = ?", id).
		UpdateColumn("fabulous_count", gorm.Expr("fabulous_count + ?", delta))
	if result.Error != nil {
		r.logger.Error("调整文章点赞计数失败", zap.Uint64("articleID", id), zap.Int64("delta", delta), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteArticle 物理删除文章及其标签关联。
func (r *articleRepository) DeleteArticle(ctx context.Context, db *gorm.DB, id uint64) error {
	article := entities.Article{}
	article.ID = id

	// 先清理 many2many 关联表中的行，再删除文章本体。
	if err := db.WithContext(ctx).Model(&article).Association("Tags").Clear(); err != nil {
		r.logger.Error("清理文章标签关联失败", zap.Uint64("articleID", id), zap.Error(err))
		return err
	}

	// Unscoped 绕过软删除，直接从表中移除该行。
	result := db.WithContext(ctx).Unscoped().Delete(&entities.Article{}, id)
	if result.Error != nil {
		r.logger.Error("删除文章数据库操作失败", zap.Uint64("articleID", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// GetLatestArticleByUserID 获取作者最近的一篇文章，按创建时间与 ID 双重降序。
func (r *articleRepository) GetLatestArticleByUserID(ctx context.Context, userID uint64) (*entities.Article, error) {
	var article entities.Article

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("获取作者最新文章失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}

	return &article, nil
}

// GetArticlesByIDs 批量检索文章。
func (r *articleRepository) GetArticlesByIDs(ctx context.Context, ids []uint64) ([]*entities.Article, error) {
	articles := make([]*entities.Article, 0, len(ids))
	if len(ids) == 0 {
		return articles, nil
	}

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&articles).Error; err != nil {
		r.logger.Error("根据 ID 列表批量获取文章失败", zap.Int("idCount", len(ids)), zap.Error(err))
		return nil, err
	}
	return articles, nil
}
