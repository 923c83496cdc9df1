package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// 未接入 Redis 时热榜直接回落到数据库按浏览量排序
func TestHotArticlesFallbackToDatabase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createArticle(t, &entities.Article{
		Title: "冷门", Content: "c", UserID: 1, SpaceID: 1, ViewCount: 2,
	})
	hot := env.createArticle(t, &entities.Article{
		Title: "爆款", Content: "c", UserID: 1, SpaceID: 1, ViewCount: 50,
	})

	articles, err := env.hotService.GetHotArticles(ctx, 10)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, hot.ID, articles[0].ID)
}

func TestHotArticlesLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		env.createArticle(t, &entities.Article{
			Title: "文章", Content: "c", UserID: 1, SpaceID: 1, ViewCount: int64(i),
		})
	}

	articles, err := env.hotService.GetHotArticles(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, articles, 3)

	// 非法 limit 回落到默认条数
	articles, err = env.hotService.GetHotArticles(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, articles, 5)
}
