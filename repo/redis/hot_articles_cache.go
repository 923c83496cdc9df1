package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BestJex/incubator-wikift/constant"
	"github.com/BestJex/incubator-wikift/models/vo"
	"github.com/BestJex/incubator-wikift/myErrors"
	"github.com/BestJex/incubator-wikift/repo/mysql"
)

// HotArticlesCache 定义热门文章列表的缓存操作接口。
// - 目标: 热榜页是读放大最严重的入口，用一份预热的 JSON 列表挡住数据库。
// - 缓存由定时任务刷新，服务层在缓存未命中时回源数据库。
type HotArticlesCache interface {
	// RefreshHotArticles 从排行榜截取 Top N，回表查询文章后整体写入缓存。
	// - 由定时任务周期性调用。
	RefreshHotArticles(ctx context.Context, topN int, ttl time.Duration) error

	// GetHotArticles 读取缓存的热门文章列表。
	// - 缓存未命中时返回 myErrors.ErrCacheMiss，上层服务负责回源。
	GetHotArticles(ctx context.Context) ([]*vo.ArticleVO, error)
}

type hotArticlesCache struct {
	rankRepo    ArticleRankRepository
	articleRepo mysql.ArticleRepository
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewHotArticlesCache 是 hotArticlesCache 的构造函数。
func NewHotArticlesCache(
	rankRepo ArticleRankRepository,
	articleRepo mysql.ArticleRepository,
	redisClient *redis.Client,
	logger *core.ZapLogger,
) HotArticlesCache {
	return &hotArticlesCache{
		rankRepo:    rankRepo,
		articleRepo: articleRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// RefreshHotArticles 实现热榜缓存的整体刷新。
// 榜单为空时写入空列表而不是删除 Key，让读侧保持命中，避免缓存击穿。
func (c *hotArticlesCache) RefreshHotArticles(ctx context.Context, topN int, ttl time.Duration) error {
	ids, err := c.rankRepo.GetTopArticleIDs(ctx, int64(topN))
	if err != nil {
		return fmt.Errorf("获取热榜文章 ID 失败: %w", err)
	}

	articles, err := c.articleRepo.GetArticlesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("回表查询热榜文章失败: %w", err)
	}

	// 回表结果不保证顺序，按榜单顺序重排。
	byID := make(map[uint64]*vo.ArticleVO, len(articles))
	for _, a := range articles {
		byID[a.ID] = vo.NewArticleVO(a)
	}
	ordered := make([]*vo.ArticleVO, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}

	payload, err := json.Marshal(ordered)
	if err != nil {
		c.logger.Error("序列化热榜文章列表失败", zap.Error(err))
		return fmt.Errorf("序列化热榜文章列表失败: %w", err)
	}

	if err := c.redisClient.Set(ctx, constant.HotArticlesCacheKey, payload, ttl).Err(); err != nil {
		c.logger.Error("写入热榜缓存失败", zap.Error(err))
		return fmt.Errorf("写入热榜缓存失败: %w", err)
	}

	c.logger.Info("热榜缓存刷新完成",
		zap.Int("topN", topN),
		zap.Int("cached", len(ordered)),
		zap.Duration("ttl", ttl),
	)
	return nil
}

func (c *hotArticlesCache) GetHotArticles(ctx context.Context) ([]*vo.ArticleVO, error) {
	payload, err := c.redisClient.Get(ctx, constant.HotArticlesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取热榜缓存失败", zap.Error(err))
		return nil, fmt.Errorf("读取热榜缓存失败: %w", err)
	}

	var articles []*vo.ArticleVO
	if err := json.Unmarshal(payload, &articles); err != nil {
		// 缓存内容损坏按未命中处理，下一轮刷新会覆盖。
		c.logger.Warn("热榜缓存内容无法解析，按未命中处理", zap.Error(err))
		return nil, myErrors.ErrCacheMiss
	}
	return articles, nil
}
