// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/note-keeper-service/pkg/timex"

// TagCreateRequest 创建标签的请求参数
// 同名标签已存在时返回存量记录
type TagCreateRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=100"`
}

// TagDTO 标签数据传输对象
type TagDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt timex.Time `json:"createdAt"`
}
