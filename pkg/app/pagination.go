package app

import (
	"github.com/haierkeys/note-keeper-service/pkg/convert"

	"github.com/gin-gonic/gin"
)

// PaginationConfig pagination configuration // 分页配置
type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPaginationConfig default pagination configuration // 默认分页配置
var DefaultPaginationConfig = PaginationConfig{
	DefaultLimit: 20,
	MaxLimit:     100,
}

// GetLimitWithConfig gets the effective limit (using injected configuration)
// GetLimitWithConfig 获取生效的每页条数（使用注入的配置）
func GetLimitWithConfig(c *gin.Context, cfg PaginationConfig) int {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultPaginationConfig.DefaultLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = DefaultPaginationConfig.MaxLimit
	}

	var limit int

	if s, exist := c.GetQuery("limit"); exist {
		limit = convert.StrTo(s).MustInt()
	} else if s := c.PostForm("limit"); s != "" {
		limit = convert.StrTo(s).MustInt()
	}

	if limit <= 0 {
		return cfg.DefaultLimit
	}
	if limit > cfg.MaxLimit {
		return cfg.MaxLimit
	}

	return limit
}

// GetOffset gets the effective offset
// GetOffset 获取生效的偏移量
func GetOffset(c *gin.Context) int {
	var offset int

	if s, exist := c.GetQuery("offset"); exist {
		offset = convert.StrTo(s).MustInt()
	} else if s := c.PostForm("offset"); s != "" {
		offset = convert.StrTo(s).MustInt()
	}

	if offset < 0 {
		return 0
	}

	return offset
}

// NewPagerWithConfig builds pager info echoing the request's limit/offset
// NewPagerWithConfig 根据请求参数构建翻页信息，回显 limit/offset
func NewPagerWithConfig(c *gin.Context, cfg PaginationConfig, totalRows int) *Pager {
	return &Pager{
		Limit:     GetLimitWithConfig(c, cfg),
		Offset:    GetOffset(c),
		TotalRows: totalRows,
	}
}

// NewPager builds pager info from the request query (using default configuration)
// NewPager 根据请求参数构建翻页信息（使用默认配置）
func NewPager(c *gin.Context, totalRows int) *Pager {
	return NewPagerWithConfig(c, DefaultPaginationConfig, totalRows)
}
