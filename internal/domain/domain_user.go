// Package domain 定义领域模型和接口
package domain

import "time"

// User 用户领域模型
type User struct {
	UID       int64
	Username  string
	Password  string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive 判断用户是否活跃（未删除）
func (u *User) IsActive() bool {
	return !u.IsDeleted
}
