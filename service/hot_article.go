package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/models/enums"
	"github.com/BestJex/incubator-wikift/models/vo"
	"github.com/BestJex/incubator-wikift/myErrors"
	"github.com/BestJex/incubator-wikift/repo/mysql"
	"github.com/BestJex/incubator-wikift/repo/redis"
)

// HotArticleService 定义热门文章的业务接口。
// - 热榜数据由定时任务预热到 Redis，服务层优先读缓存，未命中时按浏览量回源数据库。
type HotArticleService interface {
	// GetHotArticles 返回热门文章列表，最多 limit 篇。
	GetHotArticles(ctx context.Context, limit int) ([]*vo.ArticleVO, error)
}

type hotArticleService struct {
	hotCache redis.HotArticlesCache // 可为 nil，未配置 Redis 时总是回源
	listRepo mysql.ArticleListRepository
	logger   *core.ZapLogger
}

// NewHotArticleService 是 hotArticleService 的构造函数。
func NewHotArticleService(hotCache redis.HotArticlesCache, listRepo mysql.ArticleListRepository, logger *core.ZapLogger) HotArticleService {
	return &hotArticleService{
		hotCache: hotCache,
		listRepo: listRepo,
		logger:   logger,
	}
}

func (s *hotArticleService) GetHotArticles(ctx context.Context, limit int) ([]*vo.ArticleVO, error) {
	if limit <= 0 {
		limit = 10
	}

	if s.hotCache != nil {
		articles, err := s.hotCache.GetHotArticles(ctx)
		if err == nil {
			if len(articles) > limit {
				articles = articles[:limit]
			}
			return articles, nil
		}
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			// 非未命中的缓存故障也回源，只记日志。
			s.logger.Warn("读取热榜缓存出错，回源数据库", zap.Error(err))
		}
	}

	// 回源: 按浏览量倒序取前 limit 篇。
	req := &dto.ListArticlesRequest{Page: 1, Size: limit}
	articles, _, err := s.listRepo.ListArticles(ctx, enums.OrderByView, req.GetOffset(), req.GetLimit())
	if err != nil {
		return nil, err
	}
	return vo.MapArticlesToVOs(articles), nil
}
