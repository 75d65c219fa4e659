package domain

import "time"

// SharePermission 共享权限级别
type SharePermission string

const (
	SharePermissionRead SharePermission = "read"
)

// NoteShare 笔记共享授权领域模型
// 将一条笔记授权给一个非所有者用户，可选携带编辑能力
type NoteShare struct {
	ID         int64
	NoteID     int64
	OwnerUID   int64 // 授权时笔记的所有者
	TargetUID  int64 // 被授权用户
	Permission SharePermission
	CanEdit    bool
	CreatedAt  time.Time
}

// AllowsWrite 判断该授权是否允许写入
func (s *NoteShare) AllowsWrite() bool {
	return s.CanEdit
}
