package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/models/entities"
	"github.com/BestJex/incubator-wikift/myErrors"
)

func TestCreateArticleDefaultsParentToRoot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author")

	created, err := env.articleService.CreateArticle(ctx, author.ID, &dto.CreateArticleRequest{
		Title:   "新文章",
		Content: "内容",
		SpaceID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RootArticleParent, created.Parent, "父文章缺省时写入根哨兵")
	assert.Equal(t, author.ID, created.UserID)

	parent := int64(created.ID)
	child, err := env.articleService.CreateArticle(ctx, author.ID, &dto.CreateArticleRequest{
		Title:   "子文章",
		Content: "内容",
		SpaceID: 1,
		Parent:  &parent,
	})
	require.NoError(t, err)
	assert.Equal(t, parent, child.Parent)
}

func TestCreateArticleWithTags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author")

	tag := &entities.Tag{Title: "golang"}
	require.NoError(t, env.db.Create(tag).Error)

	created, err := env.articleService.CreateArticle(ctx, author.ID, &dto.CreateArticleRequest{
		Title:   "带标签",
		Content: "内容",
		SpaceID: 1,
		TagIDs:  []uint64{tag.ID, 9999},
	})
	require.NoError(t, err)
	require.Len(t, created.Tags, 1, "未知标签ID被静默忽略")
	assert.Equal(t, "golang", created.Tags[0].Title)
}

func TestUpdateArticleSnapshotsHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author")

	article := env.createArticle(t, &entities.Article{
		Title: "V1 标题", Content: "V1 内容", UserID: author.ID, SpaceID: 1,
	})

	updated, err := env.articleService.UpdateArticle(ctx, author.ID, &dto.UpdateArticleRequest{
		ID:      article.ID,
		Title:   "V2 标题",
		Content: "V2 内容",
	})
	require.NoError(t, err)
	assert.Equal(t, "V2 标题", updated.Title)

	histories, err := env.articleService.GetArticleHistories(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, "V1 内容", histories[0].Content, "快照保存的是更新前的旧内容")
	assert.Equal(t, author.ID, histories[0].UserID)

	// 版本号是毫秒时间戳字符串
	_, parseErr := strconv.ParseInt(histories[0].Version, 10, 64)
	assert.NoError(t, parseErr)

	// 第二次更新产生第二条历史，列表从新到旧
	_, err = env.articleService.UpdateArticle(ctx, author.ID, &dto.UpdateArticleRequest{
		ID:      article.ID,
		Title:   "V3 标题",
		Content: "V3 内容",
	})
	require.NoError(t, err)

	histories, err = env.articleService.GetArticleHistories(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, histories, 2)
	assert.Equal(t, "V2 内容", histories[0].Content)
	assert.Equal(t, "V1 内容", histories[1].Content)
}

func TestUpdateArticleRejectsNonOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author")
	intruder := env.createUser(t, "intruder")

	article := env.createArticle(t, &entities.Article{
		Title: "标题", Content: "内容", UserID: author.ID, SpaceID: 1,
	})

	_, err := env.articleService.UpdateArticle(ctx, intruder.ID, &dto.UpdateArticleRequest{
		ID:      article.ID,
		Title:   "篡改",
		Content: "篡改",
	})
	assert.ErrorIs(t, err, myErrors.ErrNotArticleOwner)

	// 拒绝后既不产生历史也不改内容
	histories, err := env.articleService.GetArticleHistories(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, histories)

	got, err := env.articleService.GetArticleInfo(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "标题", got.Title)
}

func TestGetArticleIncrementsViewCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author")

	article := env.createArticle(t, &entities.Article{
		Title: "标题", Content: "内容", UserID: author.ID, SpaceID: 1,
	})

	for i := 1; i <= 3; i++ {
		got, err := env.articleService.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), got.ViewCount, "每次读取都返回递增后的值")
	}

	// 纯读取接口不递增
	got, err := env.articleService.GetArticleInfo(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ViewCount)
}

func TestFabulousArticleIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author")
	fan := env.createUser(t, "fan")

	article := env.createArticle(t, &entities.Article{
		Title: "标题", Content: "内容", UserID: author.ID, SpaceID: 1,
	})
	param := &dto.ArticleFabulousParam{UserID: fan.ID, ArticleID: article.ID}

	require.NoError(t, env.articleService.FabulousArticle(ctx, param))
	require.NoError(t, env.articleService.FabulousArticle(ctx, param))

	count, err := env.articleService.FabulousArticleCount(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "重复点赞不增加计数")

	exists, err := env.articleService.FabulousArticleExists(ctx, param)
	require.NoError(t, err)
	assert.True(t, exists)

	// 冗余计数与关联表同步
	got, err := env.articleService.GetArticleInfo(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FabulousCount)

	require.NoError(t, env.articleService.UnFabulousArticle(ctx, param))
	require.NoError(t, env.articleService.UnFabulousArticle(ctx, param))

	count, err = env.articleService.FabulousArticleCount(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	got, err = env.articleService.GetArticleInfo(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.FabulousCount, "取消后冗余计数回到 0 而不是负数")
}

func TestViewArticleAccumulatesByDevice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author")
	reader := env.createUser(t, "reader")

	article := env.createArticle(t, &entities.Article{
		Title: "标题", Content: "内容", UserID: author.ID, SpaceID: 1,
	})

	require.NoError(t, env.articleService.ViewArticle(ctx, &dto.ArticleViewParam{
		UserID: reader.ID, ArticleID: article.ID, ViewCount: 5, Device: "web",
	}))
	require.NoError(t, env.articleService.ViewArticle(ctx, &dto.ArticleViewParam{
		UserID: reader.ID, ArticleID: article.ID, ViewCount: 3, Device: "web",
	}))

	sum, err := env.articleService.ViewArticleCount(ctx, reader.ID, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), sum, "同设备重复上报是累加而不是覆盖")

	require.NoError(t, env.articleService.ViewArticle(ctx, &dto.ArticleViewParam{
		UserID: reader.ID, ArticleID: article.ID, ViewCount: 2, Device: "ios",
	}))

	sum, err = env.articleService.ViewArticleCount(ctx, reader.ID, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum, "跨设备求和")

	trend, err := env.articleService.GetArticleViewTop7(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.Equal(t, int64(10), trend[0].Count)
}

func TestDeleteArticleCascadeKeepsHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "author")
	fan := env.createUser(t, "fan")

	article := env.createArticle(t, &entities.Article{
		Title: "标题", Content: "V1", UserID: author.ID, SpaceID: 1,
	})

	// 准备关联数据: 历史、点赞、浏览、提醒
	_, err := env.articleService.UpdateArticle(ctx, author.ID, &dto.UpdateArticleRequest{
		ID: article.ID, Title: "标题", Content: "V2",
	})
	require.NoError(t, err)
	require.NoError(t, env.articleService.FabulousArticle(ctx, &dto.ArticleFabulousParam{
		UserID: fan.ID, ArticleID: article.ID,
	}))
	require.NoError(t, env.articleService.ViewArticle(ctx, &dto.ArticleViewParam{
		UserID: fan.ID, ArticleID: article.ID, ViewCount: 4, Device: "web",
	}))
	require.NoError(t, env.remindRepo.CreateRemind(ctx, env.db, &entities.Remind{
		Title: "提醒", ArticleID: article.ID, UserID: fan.ID,
	}))

	// 非作者删除被拒绝
	err = env.articleService.DeleteArticle(ctx, fan.ID, article.ID)
	assert.ErrorIs(t, err, myErrors.ErrNotArticleOwner)

	// 作者删除成功，全部关联数据被清理
	require.NoError(t, env.articleService.DeleteArticle(ctx, author.ID, article.ID))

	_, err = env.articleService.GetArticleInfo(ctx, article.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	count, err := env.articleService.FabulousArticleCount(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	sum, err := env.articleService.ViewArticleCount(ctx, fan.ID, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)

	reminds, err := env.remindRepo.ListRemindsByUserAndRead(ctx, fan.ID, false)
	require.NoError(t, err)
	assert.Empty(t, reminds)

	// 历史快照作为审计线索保留
	histories, err := env.articleService.GetArticleHistories(ctx, article.ID)
	require.NoError(t, err)
	assert.Len(t, histories, 1)
}

func TestFindTopByUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "prolific")

	env.createArticle(t, &entities.Article{
		Title: "旧作", Content: "c", UserID: author.ID, SpaceID: 1,
	})
	latest := env.createArticle(t, &entities.Article{
		Title: "新作", Content: "c", UserID: author.ID, SpaceID: 1,
	})

	got, err := env.articleService.FindTopByUsername(ctx, "prolific")
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)

	_, err = env.articleService.FindTopByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}
