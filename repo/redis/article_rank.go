package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BestJex/incubator-wikift/constant"
)

// ArticleRankRepository 定义了文章浏览排行榜相关的 Redis 操作接口。
// - 排行榜是一个 ZSet (constant.ArticlesRankKey)，成员是文章 ID，分数是浏览量。
// - 查看文章时追加分数，定时任务从榜单截取 Top N 刷新热榜缓存。
type ArticleRankRepository interface {
	// IncrementRankScore 将指定文章在排行榜中的分数增加 delta。
	// - ZINCRBY 本身是原子的，成员不存在时按 0 起算。
	// - 排行榜是派生数据，失败只记日志由调用方决定是否忽略。
	IncrementRankScore(ctx context.Context, articleID uint64, delta int64) error

	// GetTopArticleIDs 返回排行榜中分数最高的前 n 个文章 ID。
	GetTopArticleIDs(ctx context.Context, n int64) ([]uint64, error)

	// GetArticleRank 返回文章在排行榜中的排名 (0-based, 降序)。
	// - 返回 -1 表示文章不在榜单中。
	GetArticleRank(ctx context.Context, articleID uint64) (int64, error)
}

type articleRankRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewArticleRankRepository 是 articleRankRepository 的构造函数。
func NewArticleRankRepository(redisClient *redis.Client, logger *core.ZapLogger) ArticleRankRepository {
	return &articleRankRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

func (r *articleRankRepository) IncrementRankScore(ctx context.Context, articleID uint64, delta int64) error {
	member := strconv.FormatUint(articleID, 10)
	err := r.redisClient.ZIncrBy(ctx, constant.ArticlesRankKey, float64(delta), member).Err()
	if err != nil {
		r.logger.Error("更新文章排行榜分数失败",
			zap.Uint64("articleID", articleID),
			zap.Int64("delta", delta),
			zap.Error(err),
		)
		return fmt.Errorf("更新文章(ID: %d)排行分数失败: %w", articleID, err)
	}
	return nil
}

func (r *articleRankRepository) GetTopArticleIDs(ctx context.Context, n int64) ([]uint64, error) {
	if n <= 0 {
		return []uint64{}, nil
	}

	members, err := r.redisClient.ZRevRange(ctx, constant.ArticlesRankKey, 0, n-1).Result()
	if err != nil {
		r.logger.Error("获取排行榜 Top N 失败", zap.Int64("n", n), zap.Error(err))
		return nil, fmt.Errorf("获取排行榜前 %d 名失败: %w", n, err)
	}

	ids := make([]uint64, 0, len(members))
	for _, member := range members {
		id, parseErr := strconv.ParseUint(member, 10, 64)
		if parseErr != nil {
			// 脏成员跳过，不让单个坏值毁掉整个榜单。
			r.logger.Warn("排行榜中存在无法解析的成员，已跳过",
				zap.String("member", member),
				zap.Error(parseErr),
			)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *articleRankRepository) GetArticleRank(ctx context.Context, articleID uint64) (int64, error) {
	member := strconv.FormatUint(articleID, 10)

	rank, err := r.redisClient.ZRevRank(ctx, constant.ArticlesRankKey, member).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// 文章不在榜单中不是通信错误。
			return -1, nil
		}
		r.logger.Error("获取文章排行榜排名失败", zap.Uint64("articleID", articleID), zap.Error(err))
		return -1, fmt.Errorf("获取文章(ID: %d)排名失败: %w", articleID, err)
	}
	return rank, nil
}
