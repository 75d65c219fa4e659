package model

import "github.com/haierkeys/note-keeper-service/pkg/timex"

const TableNameUser = "user"

// User mapped from table <user>
type User struct {
	UID       int64      `gorm:"column:uid;primaryKey;autoIncrement" json:"uid" form:"uid"`
	Username  string     `gorm:"column:username;not null;uniqueIndex:idx_username" json:"username" form:"username"`
	Password  string     `gorm:"column:password;not null" json:"-" form:"-"`
	IsDeleted int64      `gorm:"column:is_deleted;not null;default:0" json:"isDeleted" form:"isDeleted"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime" json:"updatedAt" form:"updatedAt"`
}

// TableName User's table name
func (*User) TableName() string {
	return TableNameUser
}
