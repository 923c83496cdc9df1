package mysql

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestJex/incubator-wikift/models/entities"
)

func TestCreateAndGetUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	role := &entities.Role{Name: "USER", Description: "普通用户"}
	require.NoError(t, db.Create(role).Error)

	user := &entities.User{
		Username: "alice",
		Password: "hashed",
		Email:    "alice@example.com",
		Active:   true,
		Roles:    []*entities.Role{role},
	}
	require.NoError(t, repo.CreateUser(ctx, db, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	require.Len(t, got.Roles, 1)
	assert.Equal(t, "USER", got.Roles[0].Name)

	_, err = repo.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	_, err = repo.GetUserByID(ctx, 9999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestFollowUserIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.FollowUser(ctx, 1, 2))
	// 重复关注被唯一键幂等吸收
	require.NoError(t, repo.FollowUser(ctx, 1, 2))

	following, err := repo.IsFollowing(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	followers, err := repo.GetFollowerIDs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, followers)
}

func TestUnfollowUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.FollowUser(ctx, 1, 2))
	require.NoError(t, repo.UnfollowUser(ctx, 1, 2))

	following, err := repo.IsFollowing(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, following)

	// 不存在的关系取消关注也应当静默成功
	require.NoError(t, repo.UnfollowUser(ctx, 1, 2))
}

func TestFollowerAndFollowingIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	// 2 和 3 关注 1，1 关注 3
	require.NoError(t, repo.FollowUser(ctx, 2, 1))
	require.NoError(t, repo.FollowUser(ctx, 3, 1))
	require.NoError(t, repo.FollowUser(ctx, 1, 3))

	followers, err := repo.GetFollowerIDs(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2, 3}, followers)

	following, err := repo.GetFollowingIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, following)
}
