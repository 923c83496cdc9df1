package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/models/entities"
	"github.com/BestJex/incubator-wikift/models/vo"
	"github.com/BestJex/incubator-wikift/repo/mysql"
)

// SpaceService 定义空间相关的业务接口。
type SpaceService interface {
	// CreateSpace 创建空间，所有者为当前用户。
	CreateSpace(ctx context.Context, userID uint64, req *dto.CreateSpaceRequest) (*vo.SpaceVO, error)

	// GetAllPublicSpaces 分页查询公开空间。
	GetAllPublicSpaces(ctx context.Context, req *dto.ListSpacesRequest) (*vo.SpacePageVO, error)

	// GetSpaceByCode 按编码查询空间。
	GetSpaceByCode(ctx context.Context, code string) (*vo.SpaceVO, error)

	// GetSpaceByID 按主键查询空间。
	GetSpaceByID(ctx context.Context, id uint64) (*vo.SpaceVO, error)

	// GetVisibleSpacesByUser 分页查询对某用户可见的空间 (公开的或其本人拥有的)。
	GetVisibleSpacesByUser(ctx context.Context, userID uint64, req *dto.ListSpacesRequest) (*vo.SpacePageVO, error)

	// GetPublicSpacesByUser 查询某用户拥有的公开空间。
	GetPublicSpacesByUser(ctx context.Context, userID uint64) ([]*vo.SpaceVO, error)

	// GetPrivateSpacesByUser 查询某用户拥有的私有空间。
	GetPrivateSpacesByUser(ctx context.Context, userID uint64) ([]*vo.SpaceVO, error)

	// ArticleCount 统计空间内的文章数。
	ArticleCount(ctx context.Context, spaceID uint64) (int64, error)
}

type spaceService struct {
	spaceRepo mysql.SpaceRepository
	listRepo  mysql.ArticleListRepository
	logger    *core.ZapLogger
}

// NewSpaceService 是 spaceService 的构造函数。
func NewSpaceService(spaceRepo mysql.SpaceRepository, listRepo mysql.ArticleListRepository, logger *core.ZapLogger) SpaceService {
	return &spaceService{
		spaceRepo: spaceRepo,
		listRepo:  listRepo,
		logger:    logger,
	}
}

func (s *spaceService) CreateSpace(ctx context.Context, userID uint64, req *dto.CreateSpaceRequest) (*vo.SpaceVO, error) {
	space := &entities.Space{
		Name:        req.Name,
		Code:        req.Code,
		Avatar:      req.Avatar,
		Description: req.Description,
		Private:     req.Private,
		UserID:      userID,
	}

	if err := s.spaceRepo.CreateSpace(ctx, space); err != nil {
		return nil, err
	}

	s.logger.Info("空间创建成功",
		zap.Uint64("spaceID", space.ID),
		zap.String("code", space.Code),
		zap.Uint64("userID", userID),
	)
	return vo.NewSpaceVO(space), nil
}

func (s *spaceService) GetAllPublicSpaces(ctx context.Context, req *dto.ListSpacesRequest) (*vo.SpacePageVO, error) {
	spaces, total, err := s.spaceRepo.ListPublicSpaces(ctx, req.GetOffset(), req.GetLimit())
	if err != nil {
		return nil, err
	}
	return &vo.SpacePageVO{Spaces: vo.MapSpacesToVOs(spaces), Total: total}, nil
}

func (s *spaceService) GetSpaceByCode(ctx context.Context, code string) (*vo.SpaceVO, error) {
	space, err := s.spaceRepo.GetSpaceByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return vo.NewSpaceVO(space), nil
}

func (s *spaceService) GetSpaceByID(ctx context.Context, id uint64) (*vo.SpaceVO, error) {
	space, err := s.spaceRepo.GetSpaceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewSpaceVO(space), nil
}

func (s *spaceService) GetVisibleSpacesByUser(ctx context.Context, userID uint64, req *dto.ListSpacesRequest) (*vo.SpacePageVO, error) {
	spaces, total, err := s.spaceRepo.ListVisibleSpacesByUser(ctx, userID, req.GetOffset(), req.GetLimit())
	if err != nil {
		return nil, err
	}
	return &vo.SpacePageVO{Spaces: vo.MapSpacesToVOs(spaces), Total: total}, nil
}

func (s *spaceService) GetPublicSpacesByUser(ctx context.Context, userID uint64) ([]*vo.SpaceVO, error) {
	spaces, err := s.spaceRepo.ListSpacesByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	return vo.MapSpacesToVOs(spaces), nil
}

func (s *spaceService) GetPrivateSpacesByUser(ctx context.Context, userID uint64) ([]*vo.SpaceVO, error) {
	spaces, err := s.spaceRepo.ListSpacesByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	return vo.MapSpacesToVOs(spaces), nil
}

func (s *spaceService) ArticleCount(ctx context.Context, spaceID uint64) (int64, error) {
	return s.listRepo.CountArticlesBySpaceID(ctx, spaceID)
}
