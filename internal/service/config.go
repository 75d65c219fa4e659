// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	User UserServiceConfig // User related config // 用户相关配置
	Note NoteServiceConfig // Note related config // 笔记相关配置
}

// UserServiceConfig user service configuration
// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	RegisterIsEnable bool // Whether registration is enabled // 注册是否启用
}

// NoteServiceConfig note service configuration
// NoteServiceConfig 笔记服务配置
type NoteServiceConfig struct {
	// TitleDenylist substrings disallowed in note titles (case-insensitive)
	// TitleDenylist 标题中不允许出现的子串（不区分大小写）
	TitleDenylist []string

	// DefaultListLimit default page size when the request omits limit
	// DefaultListLimit 未指定 limit 时的默认每页数量
	DefaultListLimit int
}
