package mysql

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestJex/incubator-wikift/models/entities"
)

func TestMarkReadIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRemindRepository(db, newTestLogger(t))
	ctx := context.Background()

	remind := &entities.Remind{Title: "新文章提醒", ArticleID: 100, UserID: 1}
	require.NoError(t, repo.CreateRemind(ctx, db, remind))

	require.NoError(t, repo.MarkRead(ctx, remind.ID))

	got, err := repo.GetRemindByID(ctx, remind.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	// 重复标记已读不报错，状态保持 read
	require.NoError(t, repo.MarkRead(ctx, remind.ID))
	got, err = repo.GetRemindByID(ctx, remind.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
}

func TestMarkReadNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRemindRepository(db, newTestLogger(t))

	err := repo.MarkRead(context.Background(), 9999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestListRemindsByUserAndRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRemindRepository(db, newTestLogger(t))
	ctx := context.Background()

	unread := &entities.Remind{Title: "未读", ArticleID: 100, UserID: 1}
	read := &entities.Remind{Title: "已读", ArticleID: 101, UserID: 1}
	other := &entities.Remind{Title: "别人的", ArticleID: 100, UserID: 2}
	require.NoError(t, repo.CreateRemind(ctx, db, unread))
	require.NoError(t, repo.CreateRemind(ctx, db, read))
	require.NoError(t, repo.CreateRemind(ctx, db, other))
	require.NoError(t, repo.MarkRead(ctx, read.ID))

	unreads, err := repo.ListRemindsByUserAndRead(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, unreads, 1)
	assert.Equal(t, unread.ID, unreads[0].ID)

	reads, err := repo.ListRemindsByUserAndRead(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, reads, 1)
	assert.Equal(t, read.ID, reads[0].ID)
}

func TestDeleteRemindsByArticleID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRemindRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateRemind(ctx, db, &entities.Remind{Title: "a", ArticleID: 100, UserID: 1}))
	require.NoError(t, repo.CreateRemind(ctx, db, &entities.Remind{Title: "b", ArticleID: 100, UserID: 2}))
	keep := &entities.Remind{Title: "c", ArticleID: 200, UserID: 1}
	require.NoError(t, repo.CreateRemind(ctx, db, keep))

	require.NoError(t, repo.DeleteRemindsByArticleID(ctx, db, 100))

	all, err := repo.ListAllReminds(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}
