package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
	"github.com/BestJex/incubator-wikift/models/enums"
	"github.com/BestJex/incubator-wikift/models/vo"
	"github.com/BestJex/incubator-wikift/repo/mysql"
)

// RemindService 定义通知相关的业务接口。
type RemindService interface {
	// FindAll 返回全部通知，管理员视图。
	FindAll(ctx context.Context) ([]*vo.RemindVO, error)

	// GetByID 根据主键查询通知。
	GetByID(ctx context.Context, id uint64) (*vo.RemindVO, error)

	// Read 标记通知已读，幂等。
	Read(ctx context.Context, id uint64) error

	// ListByUser 按接收人与已读状态查询通知。
	// - queryType 取值 read / unread，未知值回落 unread。
	ListByUser(ctx context.Context, userID uint64, queryType string) ([]*vo.RemindVO, error)

	// FanoutArticleCreated 为文章作者的每个粉丝生成一条未读通知。
	// - 单个粉丝写入失败只记日志，不中断其余粉丝。
	// - 由 Kafka 消费端或文章服务的直连协程调用。
	FanoutArticleCreated(ctx context.Context, articleID uint64) error
}

type remindService struct {
	remindRepo  mysql.RemindRepository
	articleRepo mysql.ArticleRepository
	userRepo    mysql.UserRepository
	db          *gorm.DB
	logger      *core.ZapLogger
}

// NewRemindService 是 remindService 的构造函数。
func NewRemindService(
	db *gorm.DB,
	remindRepo mysql.RemindRepository,
	articleRepo mysql.ArticleRepository,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) RemindService {
	return &remindService{
		remindRepo:  remindRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		db:          db,
		logger:      logger,
	}
}

func (s *remindService) FindAll(ctx context.Context) ([]*vo.RemindVO, error) {
	reminds, err := s.remindRepo.ListAllReminds(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapRemindsToVOs(reminds), nil
}

func (s *remindService) GetByID(ctx context.Context, id uint64) (*vo.RemindVO, error) {
	remind, err := s.remindRepo.GetRemindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewRemindVO(remind), nil
}

func (s *remindService) Read(ctx context.Context, id uint64) error {
	return s.remindRepo.MarkRead(ctx, id)
}

func (s *remindService) ListByUser(ctx context.Context, userID uint64, queryType string) ([]*vo.RemindVO, error) {
	read := enums.ParseRemindQueryType(queryType) == enums.RemindQueryRead
	reminds, err := s.remindRepo.ListRemindsByUserAndRead(ctx, userID, read)
	if err != nil {
		return nil, err
	}
	return vo.MapRemindsToVOs(reminds), nil
}

// FanoutArticleCreated 加载文章与作者粉丝，逐个生成未读通知。
func (s *remindService) FanoutArticleCreated(ctx context.Context, articleID uint64) error {
	article, err := s.articleRepo.GetArticleByID(ctx, s.db, articleID)
	if err != nil {
		return err
	}

	author, err := s.userRepo.GetUserByID(ctx, article.UserID)
	if err != nil {
		return err
	}

	followerIDs, err := s.userRepo.GetFollowerIDs(ctx, article.UserID)
	if err != nil {
		return err
	}
	if len(followerIDs) == 0 {
		s.logger.Debug("作者没有粉丝，跳过提醒扇出", zap.Uint64("articleID", articleID))
		return nil
	}

	title := fmt.Sprintf("%s 发布了新文章: %s", author.Username, article.Title)
	var failed int
	for _, followerID := range followerIDs {
		remind := &entities.Remind{
			Title:     title,
			ArticleID: article.ID,
			UserID:    followerID,
		}
		if err := s.remindRepo.CreateRemind(ctx, s.db, remind); err != nil {
			// 单个粉丝失败不影响其余粉丝。
			failed++
			s.logger.Warn("为粉丝生成提醒失败",
				zap.Uint64("articleID", articleID),
				zap.Uint64("followerID", followerID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("提醒扇出完成",
		zap.Uint64("articleID", articleID),
		zap.Int("followers", len(followerIDs)),
		zap.Int("failed", failed),
	)
	return nil
}
