package mysql

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestJex/incubator-wikift/models/entities"
)

func TestGetTagByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, db.Create(&entities.Tag{Title: "golang"}).Error)

	tag, err := repo.GetTagByTitle(ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, "golang", tag.Title)

	// 未知标题返回 not-found 错误，而不是空结果
	_, err = repo.GetTagByTitle(ctx, "unknown")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestGetTagsByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db, newTestLogger(t))
	ctx := context.Background()

	t1 := &entities.Tag{Title: "a"}
	t2 := &entities.Tag{Title: "b"}
	require.NoError(t, db.Create(t1).Error)
	require.NoError(t, db.Create(t2).Error)

	tags, err := repo.GetTagsByIDs(ctx, []uint64{t1.ID, t2.ID, 9999})
	require.NoError(t, err)
	assert.Len(t, tags, 2, "不存在的ID被静默忽略")

	tags, err = repo.GetTagsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestFirstOrCreateByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db, newTestLogger(t))
	ctx := context.Background()

	first, err := repo.FirstOrCreateByTitle(ctx, db, "devops")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.FirstOrCreateByTitle(ctx, db, "devops")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "同名标签应当复用已有记录")

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
