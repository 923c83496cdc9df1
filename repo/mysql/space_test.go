package mysql

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestJex/incubator-wikift/models/entities"
)

func seedSpaces(t *testing.T, repo SpaceRepository) (pub1, priv1, pub2 *entities.Space) {
	t.Helper()
	ctx := context.Background()
	pub1 = &entities.Space{Name: "公开空间1", Code: "pub-1", UserID: 1}
	priv1 = &entities.Space{Name: "私有空间1", Code: "priv-1", Private: true, UserID: 1}
	pub2 = &entities.Space{Name: "公开空间2", Code: "pub-2", UserID: 2}
	for _, s := range []*entities.Space{pub1, priv1, pub2} {
		require.NoError(t, repo.CreateSpace(ctx, s))
	}
	return pub1, priv1, pub2
}

func TestGetSpaceByIDAndCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpaceRepository(db, newTestLogger(t))
	ctx := context.Background()
	pub1, _, _ := seedSpaces(t, repo)

	got, err := repo.GetSpaceByID(ctx, pub1.ID)
	require.NoError(t, err)
	assert.Equal(t, "pub-1", got.Code)

	got, err = repo.GetSpaceByCode(ctx, "pub-1")
	require.NoError(t, err)
	assert.Equal(t, pub1.ID, got.ID)

	_, err = repo.GetSpaceByCode(ctx, "missing")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestListPublicSpaces(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpaceRepository(db, newTestLogger(t))

	seedSpaces(t, repo)

	spaces, total, err := repo.ListPublicSpaces(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, s := range spaces {
		assert.False(t, s.Private, "公开列表不得泄露私有空间")
	}
}

func TestListVisibleSpacesByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpaceRepository(db, newTestLogger(t))
	ctx := context.Background()
	seedSpaces(t, repo)

	// 用户 1 能看到: 自己的公开+私有空间，以及他人的公开空间
	_, total, err := repo.ListVisibleSpacesByUser(ctx, 1, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// 用户 2 看不到用户 1 的私有空间
	spaces, total, err := repo.ListVisibleSpacesByUser(ctx, 2, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, s := range spaces {
		assert.NotEqual(t, "priv-1", s.Code)
	}
}

func TestListSpacesByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpaceRepository(db, newTestLogger(t))
	ctx := context.Background()
	pub1, priv1, _ := seedSpaces(t, repo)

	publics, err := repo.ListSpacesByUser(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, publics, 1)
	assert.Equal(t, pub1.ID, publics[0].ID)

	privates, err := repo.ListSpacesByUser(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, privates, 1)
	assert.Equal(t, priv1.ID, privates[0].ID)
}
