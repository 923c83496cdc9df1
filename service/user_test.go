package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "carol")

	got, err := env.userService.GetByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", got.Username)

	_, err = env.userService.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestFollowRequiresExistingFollowee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	follower := env.createUser(t, "follower")

	err := env.userService.Follow(ctx, follower.ID, 9999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound, "关注不存在的用户应当失败")
}

func TestFollowUnfollowFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	follower := env.createUser(t, "follower")
	followee := env.createUser(t, "followee")

	require.NoError(t, env.userService.Follow(ctx, follower.ID, followee.ID))
	// 重复关注幂等
	require.NoError(t, env.userService.Follow(ctx, follower.ID, followee.ID))

	following, err := env.userService.IsFollowing(ctx, follower.ID, followee.ID)
	require.NoError(t, err)
	assert.True(t, following)

	ids, err := env.userService.FollowerIDs(ctx, followee.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{follower.ID}, ids)

	require.NoError(t, env.userService.Unfollow(ctx, follower.ID, followee.ID))
	following, err = env.userService.IsFollowing(ctx, follower.ID, followee.ID)
	require.NoError(t, err)
	assert.False(t, following)
}
