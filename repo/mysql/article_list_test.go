package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
	"github.com/BestJex/incubator-wikift/models/enums"
)

func seedListArticles(t *testing.T, db *gorm.DB) (low, mid, high *entities.Article) {
	t.Helper()
	low = mustCreateArticle(t, db, &entities.Article{
		Title: "低热度", Content: "c", UserID: 1, SpaceID: 1,
		Parent: entities.RootArticleParent, ViewCount: 1, FabulousCount: 9,
	})
	mid = mustCreateArticle(t, db, &entities.Article{
		Title: "中热度", Content: "c", UserID: 1, SpaceID: 2,
		Parent: entities.RootArticleParent, ViewCount: 5, FabulousCount: 5,
	})
	high = mustCreateArticle(t, db, &entities.Article{
		Title: "高热度", Content: "c", UserID: 2, SpaceID: 2,
		Parent: entities.RootArticleParent, ViewCount: 9, FabulousCount: 1,
	})
	return low, mid, high
}

func TestListArticlesOrderByView(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleListRepository(db, newTestLogger(t))
	low, _, high := seedListArticles(t, db)

	articles, total, err := repo.ListArticles(context.Background(), enums.OrderByView, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, articles, 3)
	assert.Equal(t, high.ID, articles[0].ID)
	assert.Equal(t, low.ID, articles[2].ID)
}

func TestListArticlesOrderByFabulous(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleListRepository(db, newTestLogger(t))
	low, _, high := seedListArticles(t, db)

	articles, _, err := repo.ListArticles(context.Background(), enums.OrderByFabulous, 0, 10)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, low.ID, articles[0].ID)
	assert.Equal(t, high.ID, articles[2].ID)
}

func TestListArticlesDefaultOrderIsLatest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleListRepository(db, newTestLogger(t))
	_, _, high := seedListArticles(t, db)

	// 默认按创建时间倒序，同时间按 ID 倒序兜底
	articles, _, err := repo.ListArticles(context.Background(), enums.OrderByCreateTime, 0, 10)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, high.ID, articles[0].ID)
}

func TestListArticlesPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleListRepository(db, newTestLogger(t))
	seedListArticles(t, db)

	articles, total, err := repo.ListArticles(context.Background(), enums.OrderByView, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "total 始终是筛选后的总数而不是当前页条数")
	assert.Len(t, articles, 1)
}

func TestListArticlesByTagID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleListRepository(db, newTestLogger(t))
	ctx := context.Background()

	tag := &entities.Tag{Title: "golang"}
	require.NoError(t, db.Create(tag).Error)

	tagged := &entities.Article{
		Title: "打标签的", Content: "c", UserID: 1, SpaceID: 1,
		Parent: entities.RootArticleParent, Tags: []*entities.Tag{tag},
	}
	require.NoError(t, db.Create(tagged).Error)
	mustCreateArticle(t, db, &entities.Article{
		Title: "没标签的", Content: "c", UserID: 1, SpaceID: 1, Parent: entities.RootArticleParent,
	})

	articles, total, err := repo.ListArticlesByTagID(ctx, tag.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, articles, 1)
	assert.Equal(t, tagged.ID, articles[0].ID)
}

func TestListArticlesBySpaceAndUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleListRepository(db, newTestLogger(t))
	ctx := context.Background()
	seedListArticles(t, db)

	articles, total, err := repo.ListArticlesBySpaceID(ctx, 2, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, articles, 2)

	articles, total, err = repo.ListArticlesByUserID(ctx, 1, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, articles, 2)

	count, err := repo.CountArticlesBySpaceID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSearchArticles(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleListRepository(db, newTestLogger(t))
	ctx := context.Background()

	tag := &entities.Tag{Title: "k8s"}
	require.NoError(t, db.Create(tag).Error)
	match := &entities.Article{
		Title: "Kubernetes 入门指南", Content: "c", UserID: 1, SpaceID: 2,
		Parent: entities.RootArticleParent, Tags: []*entities.Tag{tag},
	}
	require.NoError(t, db.Create(match).Error)
	mustCreateArticle(t, db, &entities.Article{
		Title: "无关文章", Content: "c", UserID: 2, SpaceID: 1, Parent: entities.RootArticleParent,
	})

	// 标题模糊匹配
	title := "Kubernetes"
	articles, total, err := repo.SearchArticles(ctx, nil, &title, nil, nil, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, articles, 1)
	assert.Equal(t, match.ID, articles[0].ID)

	// 标签 + 空间 组合过滤
	spaceID := uint64(2)
	articles, total, err = repo.SearchArticles(ctx, &tag.ID, nil, &spaceID, nil, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, articles, 1)

	// 组合条件不满足时为空结果，而不是错误
	otherSpace := uint64(3)
	articles, total, err = repo.SearchArticles(ctx, &tag.ID, nil, &otherSpace, nil, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, articles)

	// 全空条件退化为全量列表
	_, total, err = repo.SearchArticles(ctx, nil, nil, nil, nil, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
