package domain

import "time"

// Tag 标签领域模型
// 标签全局唯一，按名称复用
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
