// Package domain 定义领域模型和接口
package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByUID 根据UID获取用户
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByUsername 根据用户名获取用户
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)

	// UpdatePassword 更新用户密码
	UpdatePassword(ctx context.Context, password string, uid int64) error
}

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// GetByID 根据ID获取笔记（不做归属过滤，访问控制由策略层判定）
	GetByID(ctx context.Context, id int64) (*Note, error)

	// GetByTitle 根据标题获取笔记（全局唯一标题约束使用）
	GetByTitle(ctx context.Context, title string) (*Note, error)

	// Create 创建笔记并关联标签
	Create(ctx context.Context, note *Note) (*Note, error)

	// Update 更新笔记（全量字段），并按给定标签集合替换关联
	Update(ctx context.Context, note *Note) (*Note, error)

	// UpdateFlags 更新笔记的状态位（置顶/收藏/归档）
	UpdateFlags(ctx context.Context, note *Note) error

	// Delete 物理删除笔记，并级联删除其共享授权和标签关联
	Delete(ctx context.Context, id int64) error

	// List 按过滤条件分页获取笔记列表
	List(ctx context.Context, uid int64, filter *NoteFilter) ([]*Note, error)

	// ListCount 按过滤条件获取笔记总数
	ListCount(ctx context.Context, uid int64, filter *NoteFilter) (int64, error)
}

// TagRepository 标签仓储接口
type TagRepository interface {
	// GetByName 根据名称获取标签
	GetByName(ctx context.Context, name string) (*Tag, error)

	// GetOrCreate 获取或创建标签（并发安全）
	GetOrCreate(ctx context.Context, name string) (*Tag, error)

	// List 获取全部标签
	List(ctx context.Context) ([]*Tag, error)
}

// NoteShareRepository 笔记共享仓储接口
type NoteShareRepository interface {
	// GetByID 根据ID获取共享授权
	GetByID(ctx context.Context, id int64) (*NoteShare, error)

	// Create 创建共享授权
	Create(ctx context.Context, share *NoteShare) (*NoteShare, error)

	// Delete 删除共享授权
	Delete(ctx context.Context, id int64) error

	// ListByNote 获取某笔记的全部授权
	ListByNote(ctx context.Context, noteID int64) ([]*NoteShare, error)

	// ListByTarget 获取授权给某用户的全部记录
	ListByTarget(ctx context.Context, targetUID int64) ([]*NoteShare, error)
}
