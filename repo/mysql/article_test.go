package mysql

import (
	"context"
	"testing"

	commonerrors "github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestJex/incubator-wikift/models/entities"
)

func TestCreateAndGetArticleWithTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, newTestLogger(t))
	ctx := context.Background()

	tagGo := &entities.Tag{Title: "golang"}
	tagWiki := &entities.Tag{Title: "wiki"}
	require.NoError(t, db.Create(tagGo).Error)
	require.NoError(t, db.Create(tagWiki).Error)

	article := &entities.Article{
		Title:   "第一篇文章",
		Content: "正文内容",
		UserID:  1,
		SpaceID: 1,
		Parent:  entities.RootArticleParent,
		Tags:    []*entities.Tag{tagGo, tagWiki},
	}
	require.NoError(t, repo.CreateArticle(ctx, db, article))
	require.NotZero(t, article.ID)

	got, err := repo.GetArticleByID(ctx, db, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "第一篇文章", got.Title)
	assert.Equal(t, entities.RootArticleParent, got.Parent)
	assert.Len(t, got.Tags, 2)
}

func TestGetArticleByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, newTestLogger(t))

	_, err := repo.GetArticleByID(context.Background(), db, 9999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestSaveArticleAndReplaceTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, newTestLogger(t))
	ctx := context.Background()

	tagOld := &entities.Tag{Title: "old"}
	tagNew := &entities.Tag{Title: "new"}
	require.NoError(t, db.Create(tagOld).Error)
	require.NoError(t, db.Create(tagNew).Error)

	article := &entities.Article{
		Title: "标题", Content: "内容", UserID: 1, SpaceID: 1,
		Parent: entities.RootArticleParent, Tags: []*entities.Tag{tagOld},
	}
	require.NoError(t, repo.CreateArticle(ctx, db, article))

	article.Title = "新标题"
	article.Content = "新内容"
	require.NoError(t, repo.SaveArticle(ctx, db, article))
	require.NoError(t, repo.ReplaceTags(ctx, db, article, []*entities.Tag{tagNew}))

	got, err := repo.GetArticleByID(ctx, db, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "新标题", got.Title)
	assert.Equal(t, "新内容", got.Content)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "new", got.Tags[0].Title)
}

func TestIncrementViewCountAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, newTestLogger(t))
	ctx := context.Background()

	article := mustCreateArticle(t, db, &entities.Article{
		Title: "t", Content: "c", UserID: 1, SpaceID: 1, Parent: entities.RootArticleParent,
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViewCount(ctx, db, article.ID))
	}

	got, err := repo.GetArticleByID(ctx, db, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ViewCount, "读取 N 次浏览量应当严格加 N")
}

func TestAdjustFabulousCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, newTestLogger(t))
	ctx := context.Background()

	article := mustCreateArticle(t, db, &entities.Article{
		Title: "t", Content: "c", UserID: 1, SpaceID: 1, Parent: entities.RootArticleParent,
	})

	require.NoError(t, repo.AdjustFabulousCount(ctx, db, article.ID, 1))
	require.NoError(t, repo.AdjustFabulousCount(ctx, db, article.ID, 1))
	require.NoError(t, repo.AdjustFabulousCount(ctx, db, article.ID, -1))

	got, err := repo.GetArticleByID(ctx, db, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FabulousCount)
}

func TestDeleteArticle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, newTestLogger(t))
	ctx := context.Background()

	tag := &entities.Tag{Title: "tag"}
	require.NoError(t, db.Create(tag).Error)
	article := &entities.Article{
		Title: "t", Content: "c", UserID: 1, SpaceID: 1,
		Parent: entities.RootArticleParent, Tags: []*entities.Tag{tag},
	}
	require.NoError(t, repo.CreateArticle(ctx, db, article))

	require.NoError(t, repo.DeleteArticle(ctx, db, article.ID))

	_, err := repo.GetArticleByID(ctx, db, article.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound, "物理删除后应当查不到")

	// 关联表中的标签链接也被清理
	var linkCount int64
	require.NoError(t, db.Table("article_tag_relation").Where("article_id = ?", article.ID).Count(&linkCount).Error)
	assert.Equal(t, int64(0), linkCount)

	// 标签本身保留
	var tagCount int64
	require.NoError(t, db.Model(&entities.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}

func TestGetLatestArticleByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, newTestLogger(t))
	ctx := context.Background()

	mustCreateArticle(t, db, &entities.Article{
		Title: "旧文章", Content: "c", UserID: 7, SpaceID: 1, Parent: entities.RootArticleParent,
	})
	latest := mustCreateArticle(t, db, &entities.Article{
		Title: "新文章", Content: "c", UserID: 7, SpaceID: 1, Parent: entities.RootArticleParent,
	})
	mustCreateArticle(t, db, &entities.Article{
		Title: "别人的文章", Content: "c", UserID: 8, SpaceID: 1, Parent: entities.RootArticleParent,
	})

	got, err := repo.GetLatestArticleByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)

	_, err = repo.GetLatestArticleByUserID(ctx, 999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestGetArticlesByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, newTestLogger(t))
	ctx := context.Background()

	a1 := mustCreateArticle(t, db, &entities.Article{
		Title: "a1", Content: "c", UserID: 1, SpaceID: 1, Parent: entities.RootArticleParent,
	})
	a2 := mustCreateArticle(t, db, &entities.Article{
		Title: "a2", Content: "c", UserID: 1, SpaceID: 1, Parent: entities.RootArticleParent,
	})

	got, err := repo.GetArticlesByIDs(ctx, []uint64{a1.ID, a2.ID, 9999})
	require.NoError(t, err)
	assert.Len(t, got, 2, "不存在的ID被跳过而不是报错")

	got, err = repo.GetArticlesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
