package service

import (
	"context"
	"testing"

	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareService_Share_CheckOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "doc", Content: "x"})
	require.NoError(t, err)

	// 1. 笔记不存在优先于其它校验
	_, err = env.shares.Share(ctx, alice.UID, 99999, &dto.ShareCreateRequest{TargetUsername: "ghost"})
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)

	// 2. 非所有者优先于接收者不存在
	_, err = env.shares.Share(ctx, bob.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "ghost"})
	assert.ErrorIs(t, err, code.ErrorShareNotOwner)

	// 3. 接收者不存在
	_, err = env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "ghost"})
	assert.ErrorIs(t, err, code.ErrorShareRecipientNotFound)

	// 4. 成功
	share, err := env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob"})
	require.NoError(t, err)
	assert.Equal(t, note.ID, share.NoteID)
	assert.Equal(t, bob.UID, share.TargetUID)
	assert.Equal(t, "read", share.Permission)
	assert.False(t, share.CanEdit)
}

func TestShareService_DuplicateGrantsPermitted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "doc", Content: "x"})
	require.NoError(t, err)

	// 系统不去重，重复授权都会落库
	first, err := env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob"})
	require.NoError(t, err)
	second, err := env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob", CanEdit: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	grants, err := env.shares.ListGrants(ctx, alice.UID, note.ID)
	require.NoError(t, err)
	assert.Len(t, grants, 2)

	// 但共享视图按笔记去重
	shared, err := env.shares.ListSharedWithMe(ctx, second.TargetUID)
	require.NoError(t, err)
	assert.Len(t, shared, 1)
}

func TestShareService_ListSharedWithMe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "shared doc", Content: "x"})
	require.NoError(t, err)
	_, err = env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob", CanEdit: true})
	require.NoError(t, err)

	shared, err := env.shares.ListSharedWithMe(ctx, bob.UID)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "shared doc", shared[0].Note.Title)
	assert.Equal(t, "read", shared[0].Permission)
	assert.True(t, shared[0].CanEdit)

	// 没有共享时为空列表
	empty, err := env.shares.ListSharedWithMe(ctx, alice.UID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestShareService_ListGrants_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "doc", Content: "x"})
	require.NoError(t, err)
	_, err = env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob"})
	require.NoError(t, err)

	_, err = env.shares.ListGrants(ctx, bob.UID, note.ID)
	assert.ErrorIs(t, err, code.ErrorShareNotOwner)

	_, err = env.shares.ListGrants(ctx, alice.UID, 99999)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestShareService_Unshare(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "doc", Content: "x"})
	require.NoError(t, err)
	share, err := env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob"})
	require.NoError(t, err)

	// 非所有者不能撤销
	err = env.shares.Unshare(ctx, bob.UID, share.ID)
	assert.ErrorIs(t, err, code.ErrorShareNotOwner)

	// 所有者撤销后 bob 失去读取权限
	require.NoError(t, env.shares.Unshare(ctx, alice.UID, share.ID))
	_, err = env.notes.Get(ctx, bob.UID, note.ID)
	assert.ErrorIs(t, err, code.ErrorNoteAccessDenied)

	// 再次撤销返回不存在
	err = env.shares.Unshare(ctx, alice.UID, share.ID)
	assert.ErrorIs(t, err, code.ErrorShareNotFound)
}
