package service

import (
	"context"
	"testing"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string    { return &s }
func boolPtr(b bool) *bool       { return &b }
func tagsPtr(t []string) *[]string { return &t }

func TestNoteService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{
		Title:   "Trip plan",
		Content: "pack bags",
		Tags:    []string{"travel"},
	})
	require.NoError(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, alice.UID, note.UID)
	assert.Equal(t, []string{"travel"}, note.Tags)
}

func TestNoteService_Create_DuplicateTitleGlobal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "Trip plan", Content: "a"})
	require.NoError(t, err)

	// 标题跨用户全局唯一
	_, err = env.notes.Create(ctx, bob.UID, &dto.NoteCreateRequest{Title: "Trip plan", Content: "b"})
	assert.ErrorIs(t, err, code.ErrorNoteTitleExists)
}

func TestNoteService_Create_ForbiddenTitle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	// 黑名单子串不区分大小写
	_, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{
		Title:   "this is FORBIDDEN stuff",
		Content: "x",
	})
	assert.ErrorIs(t, err, code.ErrorNoteForbiddenContent)
}

func TestNoteService_Create_DuplicateWinsOverForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	// 直接通过仓储造一条禁用词标题的存量数据
	_, err := env.noteRepo.Create(ctx, &domain.Note{
		UID:     alice.UID,
		Title:   "forbidden classic",
		Content: "x",
	})
	require.NoError(t, err)

	// 标题既重复又命中禁用词时，冲突优先于禁用词
	_, err = env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{
		Title:   "forbidden classic",
		Content: "y",
	})
	assert.ErrorIs(t, err, code.ErrorNoteTitleExists)

	other, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "plain", Content: "z"})
	require.NoError(t, err)
	_, err = env.notes.Update(ctx, alice.UID, other.ID, &dto.NoteUpdateRequest{
		Title: strPtr("forbidden classic"),
	})
	assert.ErrorIs(t, err, code.ErrorNoteTitleExists)
}

func TestNoteService_Get_AccessPolicy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "private", Content: "x"})
	require.NoError(t, err)

	// 所有者可读
	_, err = env.notes.Get(ctx, alice.UID, note.ID)
	assert.NoError(t, err)

	// 无授权用户被拒绝
	_, err = env.notes.Get(ctx, bob.UID, note.ID)
	assert.ErrorIs(t, err, code.ErrorNoteAccessDenied)

	// 只读授权后可读
	_, err = env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob"})
	require.NoError(t, err)
	_, err = env.notes.Get(ctx, bob.UID, note.ID)
	assert.NoError(t, err)

	// 不存在的笔记
	_, err = env.notes.Get(ctx, alice.UID, 99999)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestNoteService_Update_SetIfPresent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{
		Title:       "draft",
		Content:     "original",
		IsImportant: true,
		Tags:        []string{"a", "b"},
	})
	require.NoError(t, err)

	// 只改 content，其余字段保持原值
	updated, err := env.notes.Update(ctx, alice.UID, note.ID, &dto.NoteUpdateRequest{
		Content: strPtr("revised"),
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", updated.Title)
	assert.Equal(t, "revised", updated.Content)
	assert.True(t, updated.IsImportant)
	assert.ElementsMatch(t, []string{"a", "b"}, updated.Tags)

	// 标签整体替换
	updated, err = env.notes.Update(ctx, alice.UID, note.ID, &dto.NoteUpdateRequest{
		Tags: tagsPtr([]string{"c"}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, updated.Tags)
}

func TestNoteService_Update_EditGrant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "shared doc", Content: "x"})
	require.NoError(t, err)

	// 只读授权：不可写
	_, err = env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob"})
	require.NoError(t, err)
	_, err = env.notes.Update(ctx, bob.UID, note.ID, &dto.NoteUpdateRequest{Content: strPtr("bob edit")})
	assert.ErrorIs(t, err, code.ErrorNoteAccessDenied)

	// 编辑授权：可写
	_, err = env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob", CanEdit: true})
	require.NoError(t, err)
	updated, err := env.notes.Update(ctx, bob.UID, note.ID, &dto.NoteUpdateRequest{Content: strPtr("bob edit")})
	require.NoError(t, err)
	assert.Equal(t, "bob edit", updated.Content)
}

func TestNoteService_Update_LeavesOwnerFlags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "flagged", Content: "x"})
	require.NoError(t, err)
	_, err = env.notes.SetPinned(ctx, alice.UID, note.ID, true)
	require.NoError(t, err)
	_, err = env.notes.SetFavorite(ctx, alice.UID, note.ID, true)
	require.NoError(t, err)

	// 编辑授权者走更新接口改内容，置顶/收藏/归档状态不受影响
	_, err = env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob", CanEdit: true})
	require.NoError(t, err)
	updated, err := env.notes.Update(ctx, bob.UID, note.ID, &dto.NoteUpdateRequest{
		Content:     strPtr("bob edit"),
		IsImportant: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPinned)
	assert.True(t, updated.IsFavorite)
	assert.False(t, updated.IsArchived)
	assert.True(t, updated.IsImportant)

	// 状态切换仍然只归所有者
	_, err = env.notes.SetPinned(ctx, bob.UID, note.ID, false)
	assert.ErrorIs(t, err, code.ErrorNoteNotOwner)
}

func TestNoteService_Update_DuplicateTitle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	_, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "one", Content: "x"})
	require.NoError(t, err)
	second, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "two", Content: "x"})
	require.NoError(t, err)

	// 改成已占用的标题被拒绝
	_, err = env.notes.Update(ctx, alice.UID, second.ID, &dto.NoteUpdateRequest{Title: strPtr("one")})
	assert.ErrorIs(t, err, code.ErrorNoteTitleExists)

	// 保持自己的标题不算冲突
	_, err = env.notes.Update(ctx, alice.UID, second.ID, &dto.NoteUpdateRequest{Title: strPtr("two")})
	assert.NoError(t, err)
}

func TestNoteService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "to delete", Content: "x"})
	require.NoError(t, err)
	share, err := env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob", CanEdit: true})
	require.NoError(t, err)

	// 编辑授权持有者也不能删除，且不暴露笔记存在
	err = env.notes.Delete(ctx, bob.UID, note.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)

	// 所有者删除，共享授权级联清理
	require.NoError(t, env.notes.Delete(ctx, alice.UID, note.ID))

	_, err = env.notes.Get(ctx, alice.UID, note.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)

	err = env.shares.Unshare(ctx, alice.UID, share.ID)
	assert.ErrorIs(t, err, code.ErrorShareNotFound)
}

func TestNoteService_Toggles_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "toggles", Content: "x"})
	require.NoError(t, err)

	// 编辑授权也不允许切换状态位
	_, err = env.shares.Share(ctx, alice.UID, note.ID, &dto.ShareCreateRequest{TargetUsername: "bob", CanEdit: true})
	require.NoError(t, err)
	_, err = env.notes.SetPinned(ctx, bob.UID, note.ID, true)
	assert.ErrorIs(t, err, code.ErrorNoteNotOwner)

	pinned, err := env.notes.SetPinned(ctx, alice.UID, note.ID, true)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	fav, err := env.notes.SetFavorite(ctx, alice.UID, note.ID, true)
	require.NoError(t, err)
	assert.True(t, fav.IsFavorite)

	arch, err := env.notes.SetArchived(ctx, alice.UID, note.ID, true)
	require.NoError(t, err)
	assert.True(t, arch.IsArchived)

	unpinned, err := env.notes.SetPinned(ctx, alice.UID, note.ID, false)
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)
}

func TestNoteService_List_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	// 非法排序列
	_, _, err := env.notes.List(ctx, alice.UID, &dto.NoteListRequest{SortBy: "owner"})
	assert.ErrorIs(t, err, code.ErrorInvalidSortField)

	// 非法排序方向
	_, _, err = env.notes.List(ctx, alice.UID, &dto.NoteListRequest{SortBy: "id", SortOrder: "sideways"})
	assert.ErrorIs(t, err, code.ErrorInvalidSortField)

	// limit 超界不做收敛
	_, _, err = env.notes.List(ctx, alice.UID, &dto.NoteListRequest{Limit: 101})
	assert.ErrorIs(t, err, code.ErrorInvalidPagination)

	_, _, err = env.notes.List(ctx, alice.UID, &dto.NoteListRequest{Offset: -1})
	assert.ErrorIs(t, err, code.ErrorInvalidPagination)
}

func TestNoteService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "alpha", Content: "x", Tags: []string{"work"}})
	require.NoError(t, err)
	_, err = env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "bravo", Content: "x", IsPinned: true})
	require.NoError(t, err)
	_, err = env.notes.Create(ctx, bob.UID, &dto.NoteCreateRequest{Title: "bob note", Content: "x"})
	require.NoError(t, err)

	// 只看到自己的笔记，置顶在前
	notes, count, err := env.notes.List(ctx, alice.UID, &dto.NoteListRequest{SortBy: "title"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, notes, 2)
	assert.Equal(t, "bravo", notes[0].Title)

	// 标签过滤
	notes, count, err = env.notes.List(ctx, alice.UID, &dto.NoteListRequest{Tag: "work"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, notes, 1)
	assert.Equal(t, "alpha", notes[0].Title)

	// 布尔过滤
	notes, _, err = env.notes.List(ctx, alice.UID, &dto.NoteListRequest{Pinned: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "bravo", notes[0].Title)
}

func TestNoteService_List_Scope(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "mine only", Content: "x"})
	require.NoError(t, err)
	_, err = env.notes.Create(ctx, alice.UID, &dto.NoteCreateRequest{Title: "starred", Content: "x", IsFavorite: true})
	require.NoError(t, err)
	bobNote, err := env.notes.Create(ctx, bob.UID, &dto.NoteCreateRequest{Title: "from bob", Content: "x"})
	require.NoError(t, err)
	_, err = env.shares.Share(ctx, bob.UID, bobNote.ID, &dto.ShareCreateRequest{TargetUsername: "alice"})
	require.NoError(t, err)

	// scope=shared 只返回别人共享过来的笔记
	notes, count, err := env.notes.List(ctx, alice.UID, &dto.NoteListRequest{Scope: "shared"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, notes, 1)
	assert.Equal(t, "from bob", notes[0].Title)

	// scope=favorites 等价于 favorite=true 过滤
	notes, _, err = env.notes.List(ctx, alice.UID, &dto.NoteListRequest{Scope: "favorites"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "starred", notes[0].Title)

	// 未知 scope 是参数错误
	_, _, err = env.notes.List(ctx, alice.UID, &dto.NoteListRequest{Scope: "everything"})
	require.Error(t, err)
}
