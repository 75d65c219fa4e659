package dao

import (
	"context"
	"testing"

	"github.com/haierkeys/note-keeper-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	cfg := DatabaseConfig{
		Type:        "sqlite",
		Path:        ":memory:",
		AutoMigrate: true,
	}
	db, err := NewDBEngineWithConfig(cfg, nil)
	require.NoError(t, err)

	return New(db, context.Background(), WithConfig(&cfg))
}

func seedNote(t *testing.T, repo domain.NoteRepository, uid int64, title string, mutate func(*domain.Note)) *domain.Note {
	t.Helper()

	note := &domain.Note{
		UID:     uid,
		Title:   title,
		Content: "content of " + title,
	}
	if mutate != nil {
		mutate(note)
	}
	created, err := repo.Create(context.Background(), note)
	require.NoError(t, err)
	return created
}

func TestNoteRepository_CreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created := seedNote(t, repo, 1, "first note", func(n *domain.Note) {
		n.Tags = []string{"work", "urgent"}
		n.IsImportant = true
	})

	assert.NotZero(t, created.ID)
	assert.True(t, created.IsImportant)
	assert.ElementsMatch(t, []string{"work", "urgent"}, created.Tags)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	byTitle, err := repo.GetByTitle(ctx, "first note")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byTitle.ID)
}

func TestNoteRepository_List_PinnedFloatsToTop(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	seedNote(t, repo, 1, "alpha", nil)
	seedNote(t, repo, 1, "bravo", func(n *domain.Note) { n.IsPinned = true })
	seedNote(t, repo, 1, "charlie", nil)

	notes, err := repo.List(ctx, 1, &domain.NoteFilter{
		Scope:     domain.NoteScopeMine,
		SortBy:    "title",
		SortOrder: domain.SortOrderAsc,
		Limit:     100,
	})
	require.NoError(t, err)
	require.Len(t, notes, 3)

	// 置顶优先，其余按标题升序
	assert.Equal(t, "bravo", notes[0].Title)
	assert.Equal(t, "alpha", notes[1].Title)
	assert.Equal(t, "charlie", notes[2].Title)
}

func TestNoteRepository_List_ExcludesArchivedByDefault(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	seedNote(t, repo, 1, "active", nil)
	seedNote(t, repo, 1, "archived", func(n *domain.Note) { n.IsArchived = true })

	filter := &domain.NoteFilter{
		Scope:     domain.NoteScopeMine,
		SortBy:    "id",
		SortOrder: domain.SortOrderAsc,
		Limit:     100,
	}

	notes, err := repo.List(ctx, 1, filter)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "active", notes[0].Title)

	filter.IncludeArchived = true
	notes, err = repo.List(ctx, 1, filter)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestNoteRepository_List_KeywordCaseInsensitive(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	seedNote(t, repo, 1, "Shopping List", func(n *domain.Note) { n.Content = "Eggs and Milk" })
	seedNote(t, repo, 1, "travel", func(n *domain.Note) { n.Content = "pack bags" })

	notes, err := repo.List(ctx, 1, &domain.NoteFilter{
		Scope:     domain.NoteScopeMine,
		Keyword:   "MILK",
		SortBy:    "id",
		SortOrder: domain.SortOrderAsc,
		Limit:     100,
	})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Shopping List", notes[0].Title)
}

func TestNoteRepository_List_TagFilter(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	seedNote(t, repo, 1, "tagged", func(n *domain.Note) { n.Tags = []string{"work"} })
	seedNote(t, repo, 1, "untagged", nil)

	notes, err := repo.List(ctx, 1, &domain.NoteFilter{
		Scope:     domain.NoteScopeMine,
		Tag:       "work",
		SortBy:    "id",
		SortOrder: domain.SortOrderAsc,
		Limit:     100,
	})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "tagged", notes[0].Title)
}

func TestNoteRepository_List_SharedScope(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	shareRepo := NewNoteShareRepository(d)
	ctx := context.Background()

	owned := seedNote(t, noteRepo, 1, "owner note", nil)
	seedNote(t, noteRepo, 2, "target own note", nil)

	_, err := shareRepo.Create(ctx, &domain.NoteShare{
		NoteID:     owned.ID,
		OwnerUID:   1,
		TargetUID:  2,
		Permission: domain.SharePermissionRead,
	})
	require.NoError(t, err)

	// 共享视图只包含共享给我的，不包含我自己的
	notes, err := noteRepo.List(ctx, 2, &domain.NoteFilter{
		Scope:     domain.NoteScopeShared,
		SortBy:    "id",
		SortOrder: domain.SortOrderAsc,
		Limit:     100,
	})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "owner note", notes[0].Title)

	count, err := noteRepo.ListCount(ctx, 2, &domain.NoteFilter{
		Scope: domain.NoteScopeShared,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNoteRepository_List_Pagination(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	seedNote(t, repo, 1, "n1", nil)
	seedNote(t, repo, 1, "n2", nil)
	seedNote(t, repo, 1, "n3", nil)

	filter := &domain.NoteFilter{
		Scope:     domain.NoteScopeMine,
		SortBy:    "id",
		SortOrder: domain.SortOrderAsc,
		Limit:     2,
		Offset:    1,
	}

	notes, err := repo.List(ctx, 1, filter)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].Title)

	// 总数不受分页影响
	count, err := repo.ListCount(ctx, 1, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNoteRepository_Update_LastWriterWins(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created := seedNote(t, repo, 1, "draft", nil)

	// 两个并发读取同一版本后的顺序写入，无版本校验，后写覆盖
	first := *created
	first.Content = "edit by first writer"
	second := *created
	second.Content = "edit by second writer"

	_, err := repo.Update(ctx, &first)
	require.NoError(t, err)
	_, err = repo.Update(ctx, &second)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "edit by second writer", got.Content)
}

func TestNoteRepository_Update_ReplacesTags(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created := seedNote(t, repo, 1, "tagged note", func(n *domain.Note) {
		n.Tags = []string{"old", "keep"}
	})

	created.Tags = []string{"keep", "new"}
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)

	// 整体替换而不是合并
	assert.ElementsMatch(t, []string{"keep", "new"}, updated.Tags)
}

func TestNoteRepository_Delete_CascadesShares(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	shareRepo := NewNoteShareRepository(d)
	ctx := context.Background()

	note := seedNote(t, noteRepo, 1, "to delete", func(n *domain.Note) { n.Tags = []string{"x"} })
	_, err := shareRepo.Create(ctx, &domain.NoteShare{
		NoteID: note.ID, OwnerUID: 1, TargetUID: 2, Permission: domain.SharePermissionRead,
	})
	require.NoError(t, err)

	require.NoError(t, noteRepo.Delete(ctx, note.ID))

	_, err = noteRepo.GetByID(ctx, note.ID)
	assert.Error(t, err)

	shares, err := shareRepo.ListByNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestTagRepository_GetOrCreate_Converges(t *testing.T) {
	d := newTestDao(t)
	repo := NewTagRepository(d)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "shared-tag")
	require.NoError(t, err)

	second, err := repo.GetOrCreate(ctx, "shared-tag")
	require.NoError(t, err)

	// 同名标签收敛到同一条记录
	assert.Equal(t, first.ID, second.ID)

	tags, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
