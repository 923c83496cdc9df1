package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BestJex/incubator-wikift/constant"
	"github.com/BestJex/incubator-wikift/models/entities"
)

// ViewTrendPoint 是按天聚合的浏览量数据点。
type ViewTrendPoint struct {
	Date  string `gorm:"column:date"`
	Count int64  `gorm:"column:count"`
}

// EngagementRepository 定义点赞与浏览记录的持久化操作接口。
// 点赞与浏览都有"并发重复提交"的问题，统一用唯一键加原子 upsert 解决，
// 不在应用层做 read-modify-write。
type EngagementRepository interface {
	// AddFabulous 插入点赞记录。重复点赞被唯一键吸收。
	// - 返回值表示本次调用是否真正产生了一条新记录，
	//   服务层据此决定是否递增文章的冗余点赞计数。
	AddFabulous(ctx context.Context, db *gorm.DB, userID, articleID uint64) (bool, error)

	// RemoveFabulous 删除点赞记录，返回是否真正删除了记录。
	RemoveFabulous(ctx context.Context, db *gorm.DB, userID, articleID uint64) (bool, error)

	// FabulousExists 判断用户是否已点赞该文章。
	FabulousExists(ctx context.Context, userID, articleID uint64) (bool, error)

	// CountFabulousByArticle 统计文章的点赞总数。
	CountFabulousByArticle(ctx context.Context, articleID uint64) (int64, error)

	// UpsertView 按 (用户, 文章, 设备) 累加浏览量。
	// - 记录不存在时插入，存在时 view_count = view_count + delta，
	//   冲突分支必须是原子表达式，并发提交不丢增量。
	UpsertView(ctx context.Context, userID, articleID uint64, device string, delta int64) error

	// SumViewsByUserAndArticle 返回某用户对某文章跨全部设备的浏览量之和。
	SumViewsByUserAndArticle(ctx context.Context, userID, articleID uint64) (int64, error)

	// GetViewTrend 返回文章最近数天的按天浏览量聚合，从新到旧，最多 constant.TrendDays 个点。
	GetViewTrend(ctx context.Context, articleID uint64) ([]*ViewTrendPoint, error)

	// DeleteByArticleID 删除文章的全部点赞与浏览记录，在文章删除事务内调用。
	DeleteByArticleID(ctx context.Context, db *gorm.DB, articleID uint64) error
}

type engagementRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewEngagementRepository 是 engagementRepository 的构造函数。
func NewEngagementRepository(db *gorm.DB, logger *core.ZapLogger) EngagementRepository {
	return &engagementRepository{
		db:     db,
		logger: logger,
	}
}

// AddFabulous 借助 (user_id, article_id) 唯一键与 DO NOTHING 冲突策略实现幂等插入。
func (r *engagementRepository) AddFabulous(ctx context.Context, db *gorm.DB, userID, articleID uint64) (bool, error) {
	fabulous := &entities.ArticleFabulous{
		UserID:    userID,
		ArticleID: articleID,
	}

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fabulous)
	if result.Error != nil {
		r.logger.Error("插入点赞记录失败",
			zap.Uint64("userID", userID),
			zap.Uint64("articleID", articleID),
			zap.Error(result.Error),
		)
		return false, result.Error
	}

	// RowsAffected 为 0 说明冲突吸收，本次没有新增记录。
	return result.RowsAffected > 0, nil
}

func (r *engagementRepository) RemoveFabulous(ctx context.Context, db *gorm.DB, userID, articleID uint64) (bool, error) {
	result := db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&entities.ArticleFabulous{})
	if result.Error != nil {
		r.logger.Error("删除点赞记录失败",
			zap.Uint64("userID", userID),
			zap.Uint64("articleID", articleID),
			zap.Error(result.Error),
		)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *engagementRepository) FabulousExists(ctx context.Context, userID, articleID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.ArticleFabulous{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("查询点赞记录失败",
			zap.Uint64("userID", userID),
			zap.Uint64("articleID", articleID),
			zap.Error(err),
		)
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) CountFabulousByArticle(ctx context.Context, articleID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.ArticleFabulous{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计文章点赞数失败", zap.Uint64("articleID", articleID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// UpsertView 冲突时执行 "view_count = view_count + delta" 的原子累加。
func (r *engagementRepository) UpsertView(ctx context.Context, userID, articleID uint64, device string, delta int64) error {
	view := &entities.ArticleView{
		UserID:    userID,
		ArticleID: articleID,
		Device:    device,
		ViewCount: delta,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "article_id"}, {Name: "device"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"view_count": gorm.Expr("view_count + ?", delta),
			}),
		}).
		Create(view).Error
	if err != nil {
		r.logger.Error("累加浏览记录失败",
			zap.Uint64("userID", userID),
			zap.Uint64("articleID", articleID),
			zap.String("device", device),
			zap.Int64("delta", delta),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *engagementRepository) SumViewsByUserAndArticle(ctx context.Context, userID, articleID uint64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.ArticleView{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	if err != nil {
		r.logger.Error("汇总用户浏览量失败",
			zap.Uint64("userID", userID),
			zap.Uint64("articleID", articleID),
			zap.Error(err),
		)
		return 0, err
	}
	return total, nil
}

// GetViewTrend 按 DATE(created_at) 聚合，该函数在 MySQL 与 SQLite 中行为一致。
func (r *engagementRepository) GetViewTrend(ctx context.Context, articleID uint64) ([]*ViewTrendPoint, error) {
	var points []*ViewTrendPoint
	err := r.db.WithContext(ctx).
		Model(&entities.ArticleView{}).
		Select("DATE(created_at) AS date, SUM(view_count) AS count").
		Where("article_id = ?", articleID).
		Group("DATE(created_at)").
		Order("date DESC").
		Limit(constant.TrendDays).
		Scan(&points).Error
	if err != nil {
		r.logger.Error("查询文章浏览趋势失败", zap.Uint64("articleID", articleID), zap.Error(err))
		return nil, err
	}
	return points, nil
}

func (r *engagementRepository) DeleteByArticleID(ctx context.Context, db *gorm.DB, articleID uint64) error {
	if err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Delete(&entities.ArticleFabulous{}).Error; err != nil {
		r.logger.Error("删除文章点赞记录失败", zap.Uint64("articleID", articleID), zap.Error(err))
		return err
	}
	if err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Delete(&entities.ArticleView{}).Error; err != nil {
		r.logger.Error("删除文章浏览记录失败", zap.Uint64("articleID", articleID), zap.Error(err))
		return err
	}
	return nil
}
