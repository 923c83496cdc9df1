package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/models/entities"
	"github.com/BestJex/incubator-wikift/models/vo"
	"github.com/BestJex/incubator-wikift/mq/producer"
	"github.com/BestJex/incubator-wikift/myErrors"
	"github.com/BestJex/incubator-wikift/repo/mysql"
	"github.com/BestJex/incubator-wikift/repo/redis"
)

// ArticleService 定义了处理文章核心业务逻辑的接口。
type ArticleService interface {
	// CreateArticle 处理用户发布新文章的业务流程。
	// - 文章与标签关联原子性写入，父文章缺省时强制为根哨兵 -1。
	// - 成功创建后异步触发提醒扇出 (配置了 Kafka 时走事件，否则直接起协程)。
	CreateArticle(ctx context.Context, userID uint64, req *dto.CreateArticleRequest) (*vo.ArticleVO, error)

	// UpdateArticle 处理文章更新。
	// - 单事务内: 读当前行，把旧内容快照进历史表 (版本号为毫秒时间戳字符串)，再落库新状态。
	// - 仅作者本人可更新，否则返回 myErrors.ErrNotArticleOwner。
	UpdateArticle(ctx context.Context, userID uint64, req *dto.UpdateArticleRequest) (*vo.ArticleVO, error)

	// GetArticle 读取文章并计数。
	// - 同一事务内先以原子表达式递增浏览量再读取，N 次读取严格 +N。
	GetArticle(ctx context.Context, id uint64) (*vo.ArticleVO, error)

	// GetArticleInfo 纯读取，不递增浏览量。
	GetArticleInfo(ctx context.Context, id uint64) (*vo.ArticleVO, error)

	// GetArticleHistories 返回文章的历史版本，从新到旧。
	GetArticleHistories(ctx context.Context, articleID uint64) ([]*vo.ArticleHistoryVO, error)

	// DeleteArticle 物理删除文章及其标签关联、点赞、浏览与提醒记录，单事务完成。
	// - 历史快照保留，作为审计线索。仅作者本人可删除。
	DeleteArticle(ctx context.Context, userID uint64, id uint64) error

	// FabulousArticle 点赞。重复点赞幂等，冗余计数只在真正插入时 +1。
	FabulousArticle(ctx context.Context, param *dto.ArticleFabulousParam) error

	// UnFabulousArticle 取消点赞。记录不存在时静默成功。
	UnFabulousArticle(ctx context.Context, param *dto.ArticleFabulousParam) error

	// FabulousArticleExists 查询用户是否已点赞。
	FabulousArticleExists(ctx context.Context, param *dto.ArticleFabulousParam) (bool, error)

	// FabulousArticleCount 查询文章点赞总数。
	FabulousArticleCount(ctx context.Context, articleID uint64) (int64, error)

	// ViewArticle 按 (用户, 文章, 设备) 上报浏览量，冲突时原子累加。
	ViewArticle(ctx context.Context, param *dto.ArticleViewParam) error

	// ViewArticleCount 返回某用户对某文章跨设备的浏览量之和。
	ViewArticleCount(ctx context.Context, userID, articleID uint64) (int64, error)

	// GetArticleViewTop7 返回文章最近最多七天的按天浏览量聚合，从新到旧。
	GetArticleViewTop7(ctx context.Context, articleID uint64) ([]*vo.CounterVO, error)

	// FindTopByUsername 返回指定作者最近发布的一篇文章。
	FindTopByUsername(ctx context.Context, username string) (*vo.ArticleVO, error)
}

// articleService 是 ArticleService 接口的具体实现。
type articleService struct {
	articleRepo    mysql.ArticleRepository        // 文章的 MySQL 操作
	historyRepo    mysql.ArticleHistoryRepository // 历史快照的 MySQL 操作
	tagRepo        mysql.TagRepository            // 标签的 MySQL 操作
	engagementRepo mysql.EngagementRepository     // 点赞/浏览记录的 MySQL 操作
	remindRepo     mysql.RemindRepository         // 通知的 MySQL 操作 (删除文章时清理)
	userRepo       mysql.UserRepository           // 用户查询 (FindTopByUsername)
	rankRepo       redis.ArticleRankRepository    // 浏览排行榜的 Redis 操作，可为 nil
	remindService  RemindService                  // 提醒扇出的直连回退路径
	db             *gorm.DB                       // GORM 数据库实例，用于事务管理
	kafkaSvc       *producer.KafkaProducer        // Kafka 生产者，未配置时为 nil
	logger         *core.ZapLogger
}

// NewArticleService 是 articleService 的构造函数，通过依赖注入初始化服务实例。
// - kafkaSvc 与 rankRepo 允许为 nil: 未配置 Kafka 时提醒扇出退化为直连协程，
//   未配置 Redis 时排行榜维护被跳过。
func NewArticleService(
	db *gorm.DB,
	articleRepo mysql.ArticleRepository,
	historyRepo mysql.ArticleHistoryRepository,
	tagRepo mysql.TagRepository,
	engagementRepo mysql.EngagementRepository,
	remindRepo mysql.RemindRepository,
	userRepo mysql.UserRepository,
	rankRepo redis.ArticleRankRepository,
	remindService RemindService,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) ArticleService {
	return &articleService{
		articleRepo:    articleRepo,
		historyRepo:    historyRepo,
		tagRepo:        tagRepo,
		engagementRepo: engagementRepo,
		remindRepo:     remindRepo,
		userRepo:       userRepo,
		rankRepo:       rankRepo,
		remindService:  remindService,
		db:             db,
		kafkaSvc:       kafkaSvc,
		logger:         logger,
	}
}

// CreateArticle 处理用户创建新文章的请求。
func (s *articleService) CreateArticle(ctx context.Context, userID uint64, req *dto.CreateArticleRequest) (*vo.ArticleVO, error) {
	// 1. 解析标签。标签必须已存在，未知 ID 被静默忽略。
	tags, err := s.tagRepo.GetTagsByIDs(ctx, req.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("解析文章标签失败: %w", err)
	}

	// 2. 组装实体。父文章缺省时写入根哨兵 -1。
	parent := entities.RootArticleParent
	if req.Parent != nil && *req.Parent > 0 {
		parent = *req.Parent
	}
	article := &entities.Article{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
		SpaceID: req.SpaceID,
		Parent:  parent,
		Tags:    tags,
	}

	// 3. 事务内写入文章与标签关联。
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.articleRepo.CreateArticle(ctx, tx, article)
	})
	if err != nil {
		s.logger.Error("创建文章事务失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("创建文章失败: %w", err)
	}

	// 4. 提交后异步触发提醒扇出，失败只记日志，不影响创建结果。
	s.fanoutAfterCreate(article)

	s.logger.Info("文章创建成功",
		zap.Uint64("articleID", article.ID),
		zap.Uint64("userID", userID),
		zap.Uint64("spaceID", article.SpaceID),
	)
	return vo.NewArticleVO(article), nil
}

// fanoutAfterCreate 在文章落库后触发粉丝提醒。
// 配置了 Kafka 时发事件由消费端处理，否则直接起协程走服务内路径。
func (s *articleService) fanoutAfterCreate(article *entities.Article) {
	if s.kafkaSvc != nil {
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.kafkaSvc.SendArticleCreatedEvent(sendCtx, article.ID, article.Title, article.UserID); err != nil {
				s.logger.Error("发送文章创建事件失败", zap.Uint64("articleID", article.ID), zap.Error(err))
			}
		}()
		return
	}

	go func() {
		fanoutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.remindService.FanoutArticleCreated(fanoutCtx, article.ID); err != nil {
			s.logger.Error("直连提醒扇出失败", zap.Uint64("articleID", article.ID), zap.Error(err))
		}
	}()
}

// UpdateArticle 单事务完成"快照旧内容 + 落库新状态"。
func (s *articleService) UpdateArticle(ctx context.Context, userID uint64, req *dto.UpdateArticleRequest) (*vo.ArticleVO, error) {
	var updated *entities.Article

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 读当前行。
		current, err := s.articleRepo.GetArticleByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}

		// 2. 权属校验。
		if current.UserID != userID {
			return myErrors.ErrNotArticleOwner
		}

		// 3. 快照旧内容。版本号取当前毫秒时间戳字符串。
		history := &entities.ArticleHistory{
			Version:   strconv.FormatInt(time.Now().UnixMilli(), 10),
			Content:   current.Content,
			ArticleID: current.ID,
			UserID:    userID,
		}
		if err := s.historyRepo.CreateHistory(ctx, tx, history); err != nil {
			return err
		}

		// 4. 落库新状态。
		current.Title = req.Title
		current.Content = req.Content
		if err := s.articleRepo.SaveArticle(ctx, tx, current); err != nil {
			return err
		}

		// 5. 标签集合整体替换 (传了 tagIds 才动)。
		if req.TagIDs != nil {
			tags, err := s.tagRepo.GetTagsByIDs(ctx, req.TagIDs)
			if err != nil {
				return err
			}
			if err := s.articleRepo.ReplaceTags(ctx, tx, current, tags); err != nil {
				return err
			}
			current.Tags = tags
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("文章更新成功", zap.Uint64("articleID", req.ID), zap.Uint64("userID", userID))
	return vo.NewArticleVO(updated), nil
}

// GetArticle 在一个事务内先递增浏览量再读取，保证读到的就是递增后的值。
func (s *articleService) GetArticle(ctx context.Context, id uint64) (*vo.ArticleVO, error) {
	var article *entities.Article

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.articleRepo.IncrementViewCount(ctx, tx, id); err != nil {
			return err
		}
		var err error
		article, err = s.articleRepo.GetArticleByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	// 排行榜是派生数据，失败不影响读取结果。
	if s.rankRepo != nil {
		if rankErr := s.rankRepo.IncrementRankScore(ctx, id, 1); rankErr != nil {
			s.logger.Warn("更新文章排行榜失败", zap.Uint64("articleID", id), zap.Error(rankErr))
		}
	}

	return vo.NewArticleVO(article), nil
}

func (s *articleService) GetArticleInfo(ctx context.Context, id uint64) (*vo.ArticleVO, error) {
	article, err := s.articleRepo.GetArticleByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return vo.NewArticleVO(article), nil
}

func (s *articleService) GetArticleHistories(ctx context.Context, articleID uint64) ([]*vo.ArticleHistoryVO, error) {
	histories, err := s.historyRepo.GetHistoriesByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return vo.NewArticleHistoryVOs(histories), nil
}

// DeleteArticle 单事务清理文章本体与全部关联数据，历史快照保留。
func (s *articleService) DeleteArticle(ctx context.Context, userID uint64, id uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.articleRepo.GetArticleByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if current.UserID != userID {
			return myErrors.ErrNotArticleOwner
		}

		if err := s.engagementRepo.DeleteByArticleID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.remindRepo.DeleteRemindsByArticleID(ctx, tx, id); err != nil {
			return err
		}
		return s.articleRepo.DeleteArticle(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("文章删除成功", zap.Uint64("articleID", id), zap.Uint64("userID", userID))
	return nil
}

// FabulousArticle 点赞。冗余计数只有在关联表真正插入了新行时才递增。
func (s *articleService) FabulousArticle(ctx context.Context, param *dto.ArticleFabulousParam) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inserted, err := s.engagementRepo.AddFabulous(ctx, tx, param.UserID, param.ArticleID)
		if err != nil {
			return err
		}
		if !inserted {
			// 重复点赞，幂等吸收。
			return nil
		}
		return s.articleRepo.AdjustFabulousCount(ctx, tx, param.ArticleID, 1)
	})
}

func (s *articleService) UnFabulousArticle(ctx context.Context, param *dto.ArticleFabulousParam) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := s.engagementRepo.RemoveFabulous(ctx, tx, param.UserID, param.ArticleID)
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}
		return s.articleRepo.AdjustFabulousCount(ctx, tx, param.ArticleID, -1)
	})
}

func (s *articleService) FabulousArticleExists(ctx context.Context, param *dto.ArticleFabulousParam) (bool, error) {
	return s.engagementRepo.FabulousExists(ctx, param.UserID, param.ArticleID)
}

func (s *articleService) FabulousArticleCount(ctx context.Context, articleID uint64) (int64, error) {
	return s.engagementRepo.CountFabulousByArticle(ctx, articleID)
}

// ViewArticle 上报设备浏览量。冲突时的累加在数据库层原子完成。
func (s *articleService) ViewArticle(ctx context.Context, param *dto.ArticleViewParam) error {
	if err := s.engagementRepo.UpsertView(ctx, param.UserID, param.ArticleID, param.Device, param.ViewCount); err != nil {
		return err
	}

	if s.rankRepo != nil {
		if rankErr := s.rankRepo.IncrementRankScore(ctx, param.ArticleID, param.ViewCount); rankErr != nil {
			s.logger.Warn("上报浏览后更新排行榜失败", zap.Uint64("articleID", param.ArticleID), zap.Error(rankErr))
		}
	}
	return nil
}

func (s *articleService) ViewArticleCount(ctx context.Context, userID, articleID uint64) (int64, error) {
	return s.engagementRepo.SumViewsByUserAndArticle(ctx, userID, articleID)
}

func (s *articleService) GetArticleViewTop7(ctx context.Context, articleID uint64) ([]*vo.CounterVO, error) {
	points, err := s.engagementRepo.GetViewTrend(ctx, articleID)
	if err != nil {
		return nil, err
	}

	counters := make([]*vo.CounterVO, 0, len(points))
	for _, p := range points {
		counters = append(counters, &vo.CounterVO{Date: p.Date, Count: p.Count})
	}
	return counters, nil
}

func (s *articleService) FindTopByUsername(ctx context.Context, username string) (*vo.ArticleVO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetLatestArticleByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return vo.NewArticleVO(article), nil
}
