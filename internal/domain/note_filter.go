package domain

// NoteListScope 列表的归属范围
// 同一查询中不混用两种范围，"我的" 与 "共享给我的" 是互斥的视图
type NoteListScope string

const (
	// NoteScopeMine 当前用户拥有的笔记
	NoteScopeMine NoteListScope = "mine"
	// NoteScopeShared 共享给当前用户的笔记
	NoteScopeShared NoteListScope = "shared"
)

// 排序方向
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// NoteFilter 笔记列表查询条件
// 组合规则：范围 -> 归档过滤 -> 标签 -> 关键词 -> 布尔过滤 -> 排序（置顶优先）-> 分页
type NoteFilter struct {
	Scope NoteListScope

	// Keyword 标题/内容不区分大小写的子串匹配
	Keyword string

	// Tag 标签名精确匹配
	Tag string

	// 可选布尔过滤，nil 表示不过滤
	Favorite *bool
	Pinned   *bool

	// IncludeArchived 默认排除已归档笔记
	IncludeArchived bool

	// SortBy 排序列，必须属于允许集合
	SortBy string
	// SortOrder asc / desc
	SortOrder string

	// Limit 1-100，Offset >= 0
	Limit  int
	Offset int
}

// noteSortFields 排序列允许集合
var noteSortFields = map[string]struct{}{
	"id":        {},
	"title":     {},
	"content":   {},
	"important": {},
}

// IsValidNoteSortField 判断排序列是否在允许集合内
func IsValidNoteSortField(field string) bool {
	_, ok := noteSortFields[field]
	return ok
}

// IsValidSortOrder 判断排序方向是否合法
func IsValidSortOrder(order string) bool {
	return order == SortOrderAsc || order == SortOrderDesc
}

// IsValidPagination 判断分页参数是否合法
// limit 超界和负 offset 是参数错误，不做静默收敛
func (f *NoteFilter) IsValidPagination() bool {
	return f.Limit >= 1 && f.Limit <= 100 && f.Offset >= 0
}
