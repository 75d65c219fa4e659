package domain

import "time"

// Note 笔记领域模型
type Note struct {
	ID          int64
	UID         int64 // 所有者 UID
	Title       string
	Content     string
	IsImportant bool
	IsArchived  bool
	IsPinned    bool
	IsFavorite  bool
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy 判断笔记是否归属于指定用户
func (n *Note) IsOwnedBy(uid int64) bool {
	return n.UID == uid
}
