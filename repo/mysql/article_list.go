package mysql

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
	"github.com/BestJex/incubator-wikift/models/enums"
)

// ArticleListRepository 定义了文章列表类查询的数据库操作接口。
// 与 ArticleRepository 分离，保持单篇文章的生命周期操作与批量检索互不干扰。
type ArticleListRepository interface {
	// ListArticles 分页查询全部文章，按给定排序维度降序。
	// - orderBy 为封闭枚举，未知值回落为按创建时间降序。
	// - 返回文章列表与满足条件的总记录数。
	ListArticles(ctx context.Context, orderBy enums.ArticleOrder, offset, limit int) ([]*entities.Article, int64, error)

	// ListArticlesByTagID 分页查询携带指定标签的文章。
	ListArticlesByTagID(ctx context.Context, tagID uint64, offset, limit int) ([]*entities.Article, int64, error)

	// ListArticlesBySpaceID 分页查询指定空间下的文章。
	ListArticlesBySpaceID(ctx context.Context, spaceID uint64, offset, limit int) ([]*entities.Article, int64, error)

	// ListArticlesByUserID 分页查询指定作者的文章。
	ListArticlesByUserID(ctx context.Context, userID uint64, offset, limit int) ([]*entities.Article, int64, error)

	// SearchArticles 按可选条件的 AND 组合分页检索文章。
	// - tagID / title / spaceID / userID 均为可选，传 nil 表示不参与过滤。
	// - title 为模糊匹配，其余为等值匹配。
	SearchArticles(ctx context.Context, tagID *uint64, title *string, spaceID *uint64, userID *uint64, offset, limit int) ([]*entities.Article, int64, error)

	// CountArticlesBySpaceID 统计空间内的文章数量。
	CountArticlesBySpaceID(ctx context.Context, spaceID uint64) (int64, error)
}

type articleListRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewArticleListRepository 是 articleListRepository 的构造函数。
func NewArticleListRepository(db *gorm.DB, logger *core.ZapLogger) ArticleListRepository {
	return &articleListRepository{
		db:     db,
		logger: logger,
	}
}

// orderClause 将排序枚举映射为 SQL 排序子句。
// 封闭 switch，未知值与默认值一样按创建时间降序。
func orderClause(orderBy enums.ArticleOrder) string {
	switch orderBy {
	case enums.OrderByView:
		return "view_count DESC, id DESC"
	case enums.OrderByFabulous:
		return "fabulous_count DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}

// ListArticles 实现全量文章的分页查询。
func (r *articleListRepository) ListArticles(ctx context.Context, orderBy enums.ArticleOrder, offset, limit int) ([]*entities.Article, int64, error) {
	var articles []*entities.Article
	var totalCount int64

	if err := r.db.WithContext(ctx).Model(&entities.Article{}).Count(&totalCount).Error; err != nil {
		r.logger.Error("文章列表计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数文章失败: %w", err)
	}
	if totalCount == 0 {
		return articles, 0, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Order(orderClause(orderBy)).
		Offset(offset).Limit(limit).
		Find(&articles).Error
	if err != nil {
		r.logger.Error("文章列表查询失败",
			zap.Error(err),
			zap.String("orderBy", orderBy.String()),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询文章列表失败: %w", err)
	}

	return articles, totalCount, nil
}

// ListArticlesByTagID 通过关联表 join 查询带指定标签的文章。
func (r *articleListRepository) ListArticlesByTagID(ctx context.Context, tagID uint64, offset, limit int) ([]*entities.Article, int64, error) {
	var articles []*entities.Article
	var totalCount int64

	base := r.db.WithContext(ctx).
		Model(&entities.Article{}).
		Joins("JOIN article_tag_relation atr ON atr.article_id = articles.id").
		Where("atr.tag_id = ?", tagID)

	if err := base.Count(&totalCount).Error; err != nil {
		r.logger.Error("按标签计数文章失败", zap.Uint64("tagID", tagID), zap.Error(err))
		return nil, 0, fmt.Errorf("按标签计数文章失败: %w", err)
	}
	if totalCount == 0 {
		return articles, 0, nil
	}

	err := base.
		Preload("Tags").
		Order("articles.created_at DESC, articles.id DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	if err != nil {
		r.logger.Error("按标签查询文章列表失败", zap.Uint64("tagID", tagID), zap.Error(err))
		return nil, 0, fmt.Errorf("按标签查询文章列表失败: %w", err)
	}

	return articles, totalCount, nil
}

// ListArticlesBySpaceID 实现按空间的分页查询。
func (r *articleListRepository) ListArticlesBySpaceID(ctx context.Context, spaceID uint64, offset, limit int) ([]*entities.Article, int64, error) {
	return r.listByField(ctx, "space_id", spaceID, offset, limit)
}

// ListArticlesByUserID 实现按作者的分页查询。
func (r *articleListRepository) ListArticlesByUserID(ctx context.Context, userID uint64, offset, limit int) ([]*entities.Article, int64, error) {
	return r.listByField(ctx, "user_id", userID, offset, limit)
}

// listByField 是按单一等值条件分页的公共实现。
func (r *articleListRepository) listByField(ctx context.Context, column string, value uint64, offset, limit int) ([]*entities.Article, int64, error) {
	var articles []*entities.Article
	var totalCount int64

	cond := fmt.Sprintf("%s = ?", column)
	if err := r.db.WithContext(ctx).Model(&entities.Article{}).Where(cond, value).Count(&totalCount).Error; err != nil {
		r.logger.Error("按条件计数文章失败", zap.String("column", column), zap.Uint64("value", value), zap.Error(err))
		return nil, 0, fmt.Errorf("按条件计数文章失败: %w", err)
	}
	if totalCount == 0 {
		return articles, 0, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where(cond, value).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	if err != nil {
		r.logger.Error("按条件查询文章列表失败", zap.String("column", column), zap.Uint64("value", value), zap.Error(err))
		return nil, 0, fmt.Errorf("按条件查询文章列表失败: %w", err)
	}

	return articles, totalCount, nil
}

// SearchArticles 实现可选条件 AND 组合的分页检索。
func (r *articleListRepository) SearchArticles(ctx context.Context, tagID *uint64, title *string, spaceID *uint64, userID *uint64, offset, limit int) ([]*entities.Article, int64, error) {
	var articles []*entities.Article
	var totalCount int64

	// 列表查询与计数查询分开构建，避免共享链式状态。
	buildQuery := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&entities.Article{})
		if tagID != nil {
			query = query.
				Joins("JOIN article_tag_relation atr ON atr.article_id = articles.id").
				Where("atr.tag_id = ?", *tagID)
		}
		if title != nil && *title != "" {
			query = query.Where("articles.title LIKE ?", "%"+*title+"%")
		}
		if spaceID != nil {
			query = query.Where("articles.space_id = ?", *spaceID)
		}
		if userID != nil {
			query = query.Where("articles.user_id = ?", *userID)
		}
		return query
	}

	if err := buildQuery().Count(&totalCount).Error; err != nil {
		r.logger.Error("文章搜索计数失败", zap.Error(err))
		return nil, 0, fmt.Errorf("文章搜索计数失败: %w", err)
	}
	if totalCount == 0 {
		return articles, 0, nil
	}

	err := buildQuery().
		Preload("Tags").
		Order("articles.created_at DESC, articles.id DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	if err != nil {
		r.logger.Error("文章搜索查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("文章搜索查询失败: %w", err)
	}

	return articles, totalCount, nil
}

// CountArticlesBySpaceID 统计空间内文章数。
func (r *articleListRepository) CountArticlesBySpaceID(ctx context.Context, spaceID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Article{}).Where("space_id = ?", spaceID).Count(&count).Error; err != nil {
		r.logger.Error("统计空间文章数失败", zap.Uint64("spaceID", spaceID), zap.Error(err))
		return 0, err
	}
	return count, nil
}
