// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/note-keeper-service/pkg/timex"

// NoteCreateRequest 创建笔记的请求参数
type NoteCreateRequest struct {
	Title       string   `json:"title" form:"title" binding:"required"`
	Content     string   `json:"content" form:"content" binding:"required"`
	IsImportant bool     `json:"isImportant" form:"isImportant"`
	IsArchived  bool     `json:"isArchived" form:"isArchived"`
	IsPinned    bool     `json:"isPinned" form:"isPinned"`
	IsFavorite  bool     `json:"isFavorite" form:"isFavorite"`
	Tags        []string `json:"tags" form:"tags"`
}

// NoteUpdateRequest 更新笔记的请求参数
// 指针字段表示"有则更新"，未出现的字段保持原值
// 置顶/收藏/归档不走更新接口，只能由所有者通过专用接口切换
type NoteUpdateRequest struct {
	Title       *string   `json:"title" form:"title"`
	Content     *string   `json:"content" form:"content"`
	IsImportant *bool     `json:"isImportant" form:"isImportant"`
	Tags        *[]string `json:"tags" form:"tags"`
}

// NoteListRequest 笔记列表查询参数
type NoteListRequest struct {
	// Scope 取值 mine | shared | pinned | favorites，缺省为 mine
	Scope           string `json:"scope" form:"scope"`
	Keyword         string `json:"q" form:"q"`
	Tag             string `json:"tag" form:"tag"`
	Favorite        *bool  `json:"favorite" form:"favorite"`
	Pinned          *bool  `json:"pinned" form:"pinned"`
	IncludeArchived bool   `json:"includeArchived" form:"includeArchived"`
	SortBy          string `json:"sortBy" form:"sortBy"`
	SortOrder       string `json:"sortOrder" form:"sortOrder"`
	Limit           int    `json:"limit" form:"limit"`
	Offset          int    `json:"offset" form:"offset"`
}

// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID          int64      `json:"id"`
	UID         int64      `json:"uid"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	IsImportant bool       `json:"isImportant"`
	IsArchived  bool       `json:"isArchived"`
	IsPinned    bool       `json:"isPinned"`
	IsFavorite  bool       `json:"isFavorite"`
	Tags        []string   `json:"tags"`
	CreatedAt   timex.Time `json:"createdAt"`
	UpdatedAt   timex.Time `json:"updatedAt"`
}
