package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// UserRepository 定义用户及关注关系的持久化操作接口。
type UserRepository interface {
	// CreateUser 持久化一个新用户。
	CreateUser(ctx context.Context, db *gorm.DB, user *entities.User) error

	// GetUserByID 根据主键检索用户，预加载角色。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)

	// GetUserByUsername 根据用户名检索用户，预加载角色。
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)

	// UpdateUser 更新用户的可编辑资料字段 (头像、别名、签名、邮箱)。
	UpdateUser(ctx context.Context, user *entities.User) error

	// FollowUser 建立关注关系。重复关注被唯一键吸收，幂等。
	FollowUser(ctx context.Context, followerID, followeeID uint64) error

	// UnfollowUser 解除关注关系。关系不存在时静默成功。
	UnfollowUser(ctx context.Context, followerID, followeeID uint64) error

	// GetFollowerIDs 返回关注了指定用户的所有用户ID，作为通知扇出的输入。
	GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error)

	// GetFollowingIDs 返回指定用户关注的所有用户ID。
	GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error)

	// IsFollowing 判断 follower 是否已关注 followee。
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
}

type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, db *gorm.DB, user *entities.User) error {
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.Error("创建用户失败", zap.String("username", user.Username), zap.Error(err))
		return err
	}
	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).Preload("Roles").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取用户未找到", zap.Uint64("userID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户失败", zap.Uint64("userID", id), zap.Error(err))
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).Preload("Roles").Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据用户名获取用户未找到", zap.String("username", username))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据用户名获取用户失败", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"avatar":     user.Avatar,
			"alias_name": user.AliasName,
			"signature":  user.Signature,
			"email":      user.Email,
		})
	if result.Error != nil {
		r.logger.Error("更新用户资料失败", zap.Uint64("userID", user.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// FollowUser 通过 ON CONFLICT DO NOTHING 吸收重复关注。
func (r *userRepository) FollowUser(ctx context.Context, followerID, followeeID uint64) error {
	follow := &entities.UserFollow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow).Error
	if err != nil {
		r.logger.Error("建立关注关系失败",
			zap.Uint64("followerID", followerID),
			zap.Uint64("followeeID", followeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *userRepository) UnfollowUser(ctx context.Context, followerID, followeeID uint64) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&entities.UserFollow{}).Error
	if err != nil {
		r.logger.Error("解除关注关系失败",
			zap.Uint64("followerID", followerID),
			zap.Uint64("followeeID", followeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *userRepository) GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&entities.UserFollow{}).
		Where("followee_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		r.logger.Error("查询粉丝ID列表失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return ids, nil
}

func (r *userRepository) GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&entities.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		r.logger.Error("查询关注ID列表失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return ids, nil
}

func (r *userRepository) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.UserFollow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("查询关注关系失败",
			zap.Uint64("followerID", followerID),
			zap.Uint64("followeeID", followeeID),
			zap.Error(err),
		)
		return false, err
	}
	return count > 0, nil
}
