package model

import "github.com/haierkeys/note-keeper-service/pkg/timex"

const TableNameTag = "tag"

// Tag mapped from table <tag>
// 标签名全局唯一，按名称复用
type Tag struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	Name      string     `gorm:"column:name;not null;uniqueIndex:idx_tag_name" json:"name" form:"name"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime" json:"createdAt" form:"createdAt"`
}

// TableName Tag's table name
func (*Tag) TableName() string {
	return TableNameTag
}

const TableNameNoteTag = "note_tag"

// NoteTag mapped from table <note_tag>
// 笔记与标签的关联表
type NoteTag struct {
	NoteID int64 `gorm:"column:note_id;primaryKey" json:"noteId" form:"noteId"`
	TagID  int64 `gorm:"column:tag_id;primaryKey" json:"tagId" form:"tagId"`
}

// TableName NoteTag's table name
func (*NoteTag) TableName() string {
	return TableNameNoteTag
}
