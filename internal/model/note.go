package model

import "github.com/haierkeys/note-keeper-service/pkg/timex"

const TableNameNote = "note"

// Note mapped from table <note>
// 标题全局唯一（跨所有用户），由唯一索引保证
type Note struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID         int64      `gorm:"column:uid;not null;index:idx_note_uid" json:"uid" form:"uid"`
	Title       string     `gorm:"column:title;not null;uniqueIndex:idx_note_title" json:"title" form:"title"`
	Content     string     `gorm:"column:content;not null" json:"content" form:"content"`
	IsImportant bool       `gorm:"column:is_important;not null;default:false" json:"isImportant" form:"isImportant"`
	IsArchived  bool       `gorm:"column:is_archived;not null;default:false" json:"isArchived" form:"isArchived"`
	IsPinned    bool       `gorm:"column:is_pinned;not null;default:false" json:"isPinned" form:"isPinned"`
	IsFavorite  bool       `gorm:"column:is_favorite;not null;default:false" json:"isFavorite" form:"isFavorite"`
	CreatedAt   timex.Time `gorm:"column:created_at;type:datetime" json:"createdAt" form:"createdAt"`
	UpdatedAt   timex.Time `gorm:"column:updated_at;type:datetime" json:"updatedAt" form:"updatedAt"`

	Tags []*Tag `gorm:"many2many:note_tag;joinForeignKey:note_id;joinReferences:tag_id" json:"tags"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}
