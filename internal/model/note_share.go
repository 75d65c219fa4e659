package model

import "github.com/haierkeys/note-keeper-service/pkg/timex"

const TableNameNoteShare = "note_share"

// NoteShare mapped from table <note_share>
// 不加 (note_id, target_uid) 唯一约束，允许重复授权
type NoteShare struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	NoteID     int64      `gorm:"column:note_id;not null;index:idx_share_note" json:"noteId" form:"noteId"`
	OwnerUID   int64      `gorm:"column:owner_uid;not null" json:"ownerUid" form:"ownerUid"`
	TargetUID  int64      `gorm:"column:target_uid;not null;index:idx_share_target" json:"targetUid" form:"targetUid"`
	Permission string     `gorm:"column:permission;not null;default:read" json:"permission" form:"permission"`
	CanEdit    bool       `gorm:"column:can_edit;not null;default:false" json:"canEdit" form:"canEdit"`
	CreatedAt  timex.Time `gorm:"column:created_at;type:datetime" json:"createdAt" form:"createdAt"`
}

// TableName NoteShare's table name
func (*NoteShare) TableName() string {
	return TableNameNoteShare
}
