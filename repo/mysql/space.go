package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// SpaceRepository 定义空间数据的持久化操作接口。
type SpaceRepository interface {
	// CreateSpace 持久化一个新空间。Code 重复由唯一键拦截。
	CreateSpace(ctx context.Context, space *entities.Space) error

	// GetSpaceByID 根据主键检索空间，未找到时返回 commonerrors.ErrRepoNotFound。
	GetSpaceByID(ctx context.Context, id uint64) (*entities.Space, error)

	// GetSpaceByCode 根据空间编码检索空间。
	GetSpaceByCode(ctx context.Context, code string) (*entities.Space, error)

	// ListPublicSpaces 分页查询全部公开空间。
	ListPublicSpaces(ctx context.Context, offset, limit int) ([]*entities.Space, int64, error)

	// ListVisibleSpacesByUser 分页查询某用户可见的空间: 公开的，或该用户自己拥有的。
	ListVisibleSpacesByUser(ctx context.Context, userID uint64, offset, limit int) ([]*entities.Space, int64, error)

	// ListSpacesByUser 查询某用户拥有的空间，private 参数筛选公开/私有。
	ListSpacesByUser(ctx context.Context, userID uint64, private bool) ([]*entities.Space, error)
}

type spaceRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewSpaceRepository 是 spaceRepository 的构造函数。
func NewSpaceRepository(db *gorm.DB, logger *core.ZapLogger) SpaceRepository {
	return &spaceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *spaceRepository) CreateSpace(ctx context.Context, space *entities.Space) error {
	if err := r.db.WithContext(ctx).Create(space).Error; err != nil {
		r.logger.Error("创建空间失败", zap.String("code", space.Code), zap.Error(err))
		return err
	}
	return nil
}

func (r *spaceRepository) GetSpaceByID(ctx context.Context, id uint64) (*entities.Space, error) {
	var space entities.Space

	err := r.db.WithContext(ctx).First(&space, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取空间未找到", zap.Uint64("spaceID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取空间失败", zap.Uint64("spaceID", id), zap.Error(err))
		return nil, err
	}

	return &space, nil
}

func (r *spaceRepository) GetSpaceByCode(ctx context.Context, code string) (*entities.Space, error) {
	var space entities.Space

	err := r.db.WithContext(ctx).Where("code = ?", code).First(&space).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据编码获取空间未找到", zap.String("code", code))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据编码获取空间失败", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	return &space, nil
}

func (r *spaceRepository) ListPublicSpaces(ctx context.Context, offset, limit int) ([]*entities.Space, int64, error) {
	var spaces []*entities.Space
	var totalCount int64

	base := r.db.WithContext(ctx).Model(&entities.Space{}).Where("private = ?", false)

	if err := base.Count(&totalCount).Error; err != nil {
		r.logger.Error("公开空间计数失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数公开空间失败: %w", err)
	}
	if totalCount == 0 {
		return spaces, 0, nil
	}

	err := base.
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&spaces).Error
	if err != nil {
		r.logger.Error("公开空间列表查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("查询公开空间列表失败: %w", err)
	}

	return spaces, totalCount, nil
}

func (r *spaceRepository) ListVisibleSpacesByUser(ctx context.Context, userID uint64, offset, limit int) ([]*entities.Space, int64, error) {
	var spaces []*entities.Space
	var totalCount int64

	base := r.db.WithContext(ctx).
		Model(&entities.Space{}).
		Where("private = ? OR user_id = ?", false, userID)

	if err := base.Count(&totalCount).Error; err != nil {
		r.logger.Error("可见空间计数失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, 0, fmt.Errorf("计数可见空间失败: %w", err)
	}
	if totalCount == 0 {
		return spaces, 0, nil
	}

	err := base.
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&spaces).Error
	if err != nil {
		r.logger.Error("可见空间列表查询失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, 0, fmt.Errorf("查询可见空间列表失败: %w", err)
	}

	return spaces, totalCount, nil
}

func (r *spaceRepository) ListSpacesByUser(ctx context.Context, userID uint64, private bool) ([]*entities.Space, error) {
	var spaces []*entities.Space
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND private = ?", userID, private).
		Order("created_at DESC, id DESC").
		Find(&spaces).Error
	if err != nil {
		r.logger.Error("按用户查询空间列表失败", zap.Uint64("userID", userID), zap.Bool("private", private), zap.Error(err))
		return nil, err
	}
	return spaces, nil
}
