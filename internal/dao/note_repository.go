package dao

import (
	"context"
	"strings"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/model"
	"github.com/haierkeys/note-keeper-service/pkg/timex"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	tags := make([]string, 0, len(m.Tags))
	for _, t := range m.Tags {
		tags = append(tags, t.Name)
	}
	return &domain.Note{
		ID:          m.ID,
		UID:         m.UID,
		Title:       m.Title,
		Content:     m.Content,
		IsImportant: m.IsImportant,
		IsArchived:  m.IsArchived,
		IsPinned:    m.IsPinned,
		IsFavorite:  m.IsFavorite,
		Tags:        tags,
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型（不含标签关联）
func (r *noteRepository) toModel(note *domain.Note) *model.Note {
	if note == nil {
		return nil
	}
	return &model.Note{
		ID:          note.ID,
		UID:         note.UID,
		Title:       note.Title,
		Content:     note.Content,
		IsImportant: note.IsImportant,
		IsArchived:  note.IsArchived,
		IsPinned:    note.IsPinned,
		IsFavorite:  note.IsFavorite,
		CreatedAt:   timex.Time(note.CreatedAt),
		UpdatedAt:   timex.Time(note.UpdatedAt),
	}
}

// resolveTags resolves tag names to tag rows inside the transaction,
// creating missing ones. Upsert with DoNothing then reread, so two
// concurrent creators of the same name converge on one row.
// resolveTags 在事务内将标签名解析为标签记录，缺失的先创建
func resolveTags(tx *gorm.DB, names []string) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag := &model.Tag{Name: name, CreatedAt: timex.Time(time.Now())}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(tag).Error
		if err != nil {
			return nil, err
		}

		// 冲突时 ID 未回填，重读取回实际记录
		if tag.ID == 0 {
			if err := tx.Where("name = ?", name).First(tag).Error; err != nil {
				return nil, err
			}
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// replaceTagLinks replaces the note_tag rows for the note
// replaceTagLinks 整体替换笔记的标签关联
func replaceTagLinks(tx *gorm.DB, noteID int64, tags []*model.Tag) error {
	if err := tx.Where("note_id = ?", noteID).Delete(&model.NoteTag{}).Error; err != nil {
		return err
	}
	for _, tag := range tags {
		link := &model.NoteTag{NoteID: noteID, TagID: tag.ID}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID 根据ID获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var m model.Note
	err := r.dao.db.WithContext(ctx).
		Preload("Tags").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByTitle 根据标题获取笔记
func (r *noteRepository) GetByTitle(ctx context.Context, title string) (*domain.Note, error) {
	var m model.Note
	err := r.dao.db.WithContext(ctx).
		Where("title = ?", title).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建笔记并关联标签
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := r.toModel(note)
	m.CreatedAt = timex.Time(time.Now())
	m.UpdatedAt = timex.Time(time.Now())

	err := r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(m).Error; err != nil {
			return err
		}
		tags, err := resolveTags(tx, note.Tags)
		if err != nil {
			return err
		}
		return replaceTagLinks(tx, m.ID, tags)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, m.ID)
}

// Update 更新笔记全量字段，并按给定标签集合替换关联
// 无版本校验，并发更新为后写覆盖
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	err := r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Note{}).
			Where("id = ?", note.ID).
			Updates(map[string]interface{}{
				"title":        note.Title,
				"content":      note.Content,
				"is_important": note.IsImportant,
				"is_archived":  note.IsArchived,
				"is_pinned":    note.IsPinned,
				"is_favorite":  note.IsFavorite,
				"updated_at":   timex.Time(time.Now()),
			}).Error
		if err != nil {
			return err
		}
		tags, err := resolveTags(tx, note.Tags)
		if err != nil {
			return err
		}
		return replaceTagLinks(tx, note.ID, tags)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, note.ID)
}

// UpdateFlags 更新笔记的状态位
func (r *noteRepository) UpdateFlags(ctx context.Context, note *domain.Note) error {
	return r.dao.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", note.ID).
		Updates(map[string]interface{}{
			"is_pinned":   note.IsPinned,
			"is_favorite": note.IsFavorite,
			"is_archived": note.IsArchived,
			"updated_at":  timex.Time(time.Now()),
		}).Error
}

// Delete 物理删除笔记，级联删除共享授权和标签关联
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", id).Delete(&model.NoteShare{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", id).Delete(&model.NoteTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Note{}).Error
	})
}

// sortColumns 排序列到数据库列的映射
var sortColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"content":   "content",
	"important": "is_important",
}

// composeQuery assembles the list predicate in fixed order:
// scope -> archived -> tag -> keyword -> boolean filters
// composeQuery 按固定顺序组装列表查询条件：
// 范围 -> 归档 -> 标签 -> 关键词 -> 布尔过滤
func (r *noteRepository) composeQuery(ctx context.Context, uid int64, filter *domain.NoteFilter) *gorm.DB {
	q := r.dao.db.WithContext(ctx).Model(&model.Note{})

	// 范围：我的 或 共享给我的，两者不混用
	if filter.Scope == domain.NoteScopeShared {
		q = q.Where("id IN (?)",
			r.dao.db.Model(&model.NoteShare{}).Select("note_id").Where("target_uid = ?", uid))
	} else {
		q = q.Where("uid = ?", uid)
	}

	// 归档：默认排除
	if !filter.IncludeArchived {
		q = q.Where("is_archived = ?", false)
	}

	// 标签：精确匹配标签名
	if filter.Tag != "" {
		q = q.Where("id IN (?)",
			r.dao.db.Model(&model.NoteTag{}).Select("note_tag.note_id").
				Joins("JOIN tag ON tag.id = note_tag.tag_id").
				Where("tag.name = ?", filter.Tag))
	}

	// 关键词：标题/内容不区分大小写子串匹配
	if filter.Keyword != "" {
		kw := "%" + strings.ToLower(filter.Keyword) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", kw, kw)
	}

	// 布尔过滤
	if filter.Favorite != nil {
		q = q.Where("is_favorite = ?", *filter.Favorite)
	}
	if filter.Pinned != nil {
		q = q.Where("is_pinned = ?", *filter.Pinned)
	}

	return q
}

// List 按过滤条件分页获取笔记列表
// 排序列必须已通过 domain.IsValidNoteSortField 校验
func (r *noteRepository) List(ctx context.Context, uid int64, filter *domain.NoteFilter) ([]*domain.Note, error) {
	q := r.composeQuery(ctx, uid, filter)

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "id"
	}
	order := "ASC"
	if filter.SortOrder == domain.SortOrderDesc {
		order = "DESC"
	}

	// 置顶笔记始终排在前面，再按用户选择的列排序
	q = q.Order("is_pinned DESC").Order(column + " " + order)

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var ms []*model.Note
	if err := q.Preload("Tags").Find(&ms).Error; err != nil {
		return nil, err
	}

	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// ListCount 按过滤条件获取笔记总数（不受分页影响）
func (r *noteRepository) ListCount(ctx context.Context, uid int64, filter *domain.NoteFilter) (int64, error) {
	var count int64
	err := r.composeQuery(ctx, uid, filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
