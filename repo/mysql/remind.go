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

// RemindRepository 定义通知数据的持久化操作接口。
type RemindRepository interface {
	// CreateRemind 插入一条通知。
	CreateRemind(ctx context.Context, db *gorm.DB, remind *entities.Remind) error

	// GetRemindByID 根据主键检索通知，未找到时返回 commonerrors.ErrRepoNotFound。
	GetRemindByID(ctx context.Context, id uint64) (*entities.Remind, error)

	// ListAllReminds 返回全部通知，按创建时间降序。供管理员视图使用。
	ListAllReminds(ctx context.Context) ([]*entities.Remind, error)

	// ListRemindsByUserAndRead 返回某用户指定已读状态的通知，按创建时间降序。
	ListRemindsByUserAndRead(ctx context.Context, userID uint64, read bool) ([]*entities.Remind, error)

	// MarkRead 将通知标记为已读。重复标记幂等，且不视为错误。
	// - 通知不存在时返回 commonerrors.ErrRepoNotFound。
	MarkRead(ctx context.Context, id uint64) error

	// DeleteRemindsByArticleID 删除引用指定文章的全部通知。
	// - 在文章删除事务内调用，避免悬挂引用。
	DeleteRemindsByArticleID(ctx context.Context, db *gorm.DB, articleID uint64) error
}

type remindRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewRemindRepository 是 remindRepository 的构造函数。
func NewRemindRepository(db *gorm.DB, logger *core.ZapLogger) RemindRepository {
	return &remindRepository{
		db:     db,
		logger: logger,
	}
}

func (r *remindRepository) CreateRemind(ctx context.Context, db *gorm.DB, remind *entities.Remind) error {
	if err := db.WithContext(ctx).Create(remind).Error; err != nil {
		r.logger.Error("创建通知失败",
			zap.Uint64("userID", remind.UserID),
			zap.Uint64("articleID", remind.ArticleID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *remindRepository) GetRemindByID(ctx context.Context, id uint64) (*entities.Remind, error) {
	var remind entities.Remind

	err := r.db.WithContext(ctx).First(&remind, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取通知未找到", zap.Uint64("remindID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取通知失败", zap.Uint64("remindID", id), zap.Error(err))
		return nil, err
	}

	return &remind, nil
}

func (r *remindRepository) ListAllReminds(ctx context.Context) ([]*entities.Remind, error) {
	var reminds []*entities.Remind
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&reminds).Error
	if err != nil {
		r.logger.Error("查询全部通知失败", zap.Error(err))
		return nil, err
	}
	return reminds, nil
}

func (r *remindRepository) ListRemindsByUserAndRead(ctx context.Context, userID uint64, read bool) ([]*entities.Remind, error) {
	var reminds []*entities.Remind
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND `read` = ?", userID, read).
		Order("created_at DESC, id DESC").
		Find(&reminds).Error
	if err != nil {
		r.logger.Error("按用户查询通知失败", zap.Uint64("userID", userID), zap.Bool("read", read), zap.Error(err))
		return nil, err
	}
	return reminds, nil
}

// MarkRead 对已读通知再次标记时 RowsAffected 为 0，
// 需要先确认记录存在再区分"不存在"与"已处于已读"。
func (r *remindRepository) MarkRead(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var remind entities.Remind
		if err := tx.First(&remind, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return commonerrors.ErrRepoNotFound
			}
			return err
		}
		if remind.Read {
			// 幂等: 已读状态保持不变。
			return nil
		}
		return tx.Model(&entities.Remind{}).
			Where("id = ?", id).
			Update("read", true).Error
	})
}

func (r *remindRepository) DeleteRemindsByArticleID(ctx context.Context, db *gorm.DB, articleID uint64) error {
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Delete(&entities.Remind{}).Error
	if err != nil {
		r.logger.Error("删除文章关联通知失败", zap.Uint64("articleID", articleID), zap.Error(err))
		return err
	}
	return nil
}
