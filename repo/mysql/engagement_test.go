package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFabulousIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db, newTestLogger(t))
	ctx := context.Background()

	inserted, err := repo.AddFabulous(ctx, db, 1, 100)
	require.NoError(t, err)
	assert.True(t, inserted, "第一次点赞应当真正插入")

	inserted, err = repo.AddFabulous(ctx, db, 1, 100)
	require.NoError(t, err)
	assert.False(t, inserted, "重复点赞应当被幂等吸收")

	exists, err := repo.FabulousExists(ctx, 1, 100)
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := repo.CountFabulousByArticle(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRemoveFabulous(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db, newTestLogger(t))
	ctx := context.Background()

	_, err := repo.AddFabulous(ctx, db, 1, 100)
	require.NoError(t, err)

	removed, err := repo.RemoveFabulous(ctx, db, 1, 100)
	require.NoError(t, err)
	assert.True(t, removed)

	// 记录已不存在，再次取消应当静默成功且报告未删除
	removed, err = repo.RemoveFabulous(ctx, db, 1, 100)
	require.NoError(t, err)
	assert.False(t, removed)

	exists, err := repo.FabulousExists(ctx, 1, 100)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpsertViewAccumulates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db, newTestLogger(t))
	ctx := context.Background()

	// 同一 (用户, 文章, 设备) 的上报是累加语义
	require.NoError(t, repo.UpsertView(ctx, 1, 100, "web", 5))
	require.NoError(t, repo.UpsertView(ctx, 1, 100, "web", 3))

	sum, err := repo.SumViewsByUserAndArticle(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(8), sum)

	// 其他设备单独计数，汇总时跨设备求和
	require.NoError(t, repo.UpsertView(ctx, 1, 100, "ios", 2))
	sum, err = repo.SumViewsByUserAndArticle(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum)

	// 其他用户互不影响
	require.NoError(t, repo.UpsertView(ctx, 2, 100, "web", 7))
	sum, err = repo.SumViewsByUserAndArticle(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum)

	// 没有任何记录时返回 0 而不是错误
	sum, err = repo.SumViewsByUserAndArticle(ctx, 9, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
}

func TestGetViewTrend(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.UpsertView(ctx, 1, 100, "web", 5))
	require.NoError(t, repo.UpsertView(ctx, 2, 100, "ios", 3))
	require.NoError(t, repo.UpsertView(ctx, 3, 200, "web", 9))

	points, err := repo.GetViewTrend(ctx, 100)
	require.NoError(t, err)
	require.Len(t, points, 1, "同一天的上报应当聚合为一个点")
	assert.Equal(t, int64(8), points[0].Count)
	assert.NotEmpty(t, points[0].Date)
}

func TestEngagementDeleteByArticleID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEngagementRepository(db, newTestLogger(t))
	ctx := context.Background()

	_, err := repo.AddFabulous(ctx, db, 1, 100)
	require.NoError(t, err)
	_, err = repo.AddFabulous(ctx, db, 1, 200)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertView(ctx, 1, 100, "web", 5))
	require.NoError(t, repo.UpsertView(ctx, 1, 200, "web", 5))

	require.NoError(t, repo.DeleteByArticleID(ctx, db, 100))

	count, err := repo.CountFabulousByArticle(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	sum, err := repo.SumViewsByUserAndArticle(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)

	// 其他文章的数据不受影响
	count, err = repo.CountFabulousByArticle(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
