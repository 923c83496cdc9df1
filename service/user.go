package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/BestJex/incubator-wikift/models/vo"
	"github.com/BestJex/incubator-wikift/repo/mysql"
)

// UserService 定义用户与关注关系的业务接口。
type UserService interface {
	// GetByUsername 按用户名查询用户，响应中不含密码。
	GetByUsername(ctx context.Context, username string) (*vo.UserVO, error)

	// Follow 关注用户。重复关注幂等。
	Follow(ctx context.Context, followerID, followeeID uint64) error

	// Unfollow 取消关注。关系不存在时静默成功。
	Unfollow(ctx context.Context, followerID, followeeID uint64) error

	// IsFollowing 查询关注关系是否存在。
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)

	// FollowerIDs 返回关注了某用户的全部用户 ID。
	FollowerIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type userService struct {
	userRepo mysql.UserRepository
	logger   *core.ZapLogger
}

// NewUserService 是 userService 的构造函数。
func NewUserService(userRepo mysql.UserRepository, logger *core.ZapLogger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return vo.NewUserVO(user), nil
}

func (s *userService) Follow(ctx context.Context, followerID, followeeID uint64) error {
	// 先确认被关注者存在，避免对不存在的用户建立关系。
	if _, err := s.userRepo.GetUserByID(ctx, followeeID); err != nil {
		return err
	}

	if err := s.userRepo.FollowUser(ctx, followerID, followeeID); err != nil {
		return err
	}
	s.logger.Info("建立关注关系", zap.Uint64("followerID", followerID), zap.Uint64("followeeID", followeeID))
	return nil
}

func (s *userService) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	return s.userRepo.UnfollowUser(ctx, followerID, followeeID)
}

func (s *userService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return s.userRepo.IsFollowing(ctx, followerID, followeeID)
}

func (s *userService) FollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return s.userRepo.GetFollowerIDs(ctx, userID)
}
