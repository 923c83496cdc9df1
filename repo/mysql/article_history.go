package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// ArticleHistoryRepository 定义文章历史快照的持久化操作接口。
// 历史记录只增不改，文章删除后也会保留，作为内容演变的审计线索。
type ArticleHistoryRepository interface {
	// CreateHistory 插入一条历史快照。与文章更新在同一事务内执行。
	CreateHistory(ctx context.Context, db *gorm.DB, history *entities.ArticleHistory) error

	// GetHistoriesByArticleID 按版本从新到旧返回某篇文章的全部历史。
	GetHistoriesByArticleID(ctx context.Context, articleID uint64) ([]*entities.ArticleHistory, error)
}

type articleHistoryRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewArticleHistoryRepository 是 articleHistoryRepository 的构造函数。
func NewArticleHistoryRepository(db *gorm.DB, logger *core.ZapLogger) ArticleHistoryRepository {
	return &articleHistoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *articleHistoryRepository) CreateHistory(ctx context.Context, db *gorm.DB, history *entities.ArticleHistory) error {
	if err := db.WithContext(ctx).Create(history).Error; err != nil {
		r.logger.Error("写入文章历史快照失败",
			zap.Uint64("articleID", history.ArticleID),
			zap.String("version", history.Version),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *articleHistoryRepository) GetHistoriesByArticleID(ctx context.Context, articleID uint64) ([]*entities.ArticleHistory, error) {
	var histories []*entities.ArticleHistory

	// 版本号是毫秒时间戳字符串，按创建时间降序即为从新到旧。
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC, id DESC").
		Find(&histories).Error
	if err != nil {
		r.logger.Error("查询文章历史列表失败", zap.Uint64("articleID", articleID), zap.Error(err))
		return nil, err
	}

	return histories, nil
}
