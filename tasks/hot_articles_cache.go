// File: tasks/hot_articles_cache.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	appConfig "github.com/BestJex/incubator-wikift/config"
	"github.com/BestJex/incubator-wikift/constant"
	"github.com/BestJex/incubator-wikift/repo/redis"
)

// HotArticlesCacheTask 负责定时刷新 Redis 中的热门文章缓存。
// 它从浏览排行榜截取 Top N，回表查询后把完整列表写入缓存。
type HotArticlesCacheTask struct {
	hotCache redis.HotArticlesCache
	cron     *cron.Cron
	logger   *core.ZapLogger
	topN     int
	ttl      time.Duration
}

// NewHotArticlesCacheTask 初始化并启动热门文章缓存的定时任务。
// - hotCache: 实现了 redis.HotArticlesCache 接口的实例。
// - cfg: 热榜缓存配置，无效值回落到 constant 中的默认值。
func NewHotArticlesCacheTask(hotCache redis.HotArticlesCache, cfg appConfig.HotCacheConfig, logger *core.ZapLogger) *HotArticlesCacheTask {
	cronV3 := cron.New() // 默认分钟级精度

	topN := cfg.TopN
	if topN <= 0 {
		topN = constant.DefaultHotArticlesTopN
	}
	ttlSeconds := cfg.TTLSeconds
	if ttlSeconds <= 0 {
		ttlSeconds = constant.DefaultHotArticlesTTLSeconds
	}

	task := &HotArticlesCacheTask{
		hotCache: hotCache,
		cron:     cronV3,
		logger:   logger,
		topN:     topN,
		ttl:      time.Duration(ttlSeconds) * time.Second,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotArticlesCacheTask) startCronJob() {
	schedule := constant.HotArticlesRefreshSpec
	t.logger.Info("准备启动热门文章缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热门文章缓存刷新任务开始执行...")
		startTime := time.Now()
		// 单次执行设置超时，防止任务卡死。
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := t.hotCache.RefreshHotArticles(ctx, t.topN, t.ttl); err != nil {
			t.logger.Error("热门文章缓存刷新失败", zap.Error(err))
		}

		duration := time.Since(startTime)
		t.logger.Info("热门文章缓存刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加热门文章缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门文章缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器。
func (t *HotArticlesCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门文章缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("热门文章缓存刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
