// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"strconv"

	"github.com/haierkeys/note-keeper-service/internal/app"

	"github.com/gin-gonic/gin"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// pathID 解析路径参数中的数字 ID
// 解析失败返回 (0, false)
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
