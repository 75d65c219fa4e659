// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/note-keeper-service/pkg/timex"

// ShareCreateRequest 共享笔记的请求参数
type ShareCreateRequest struct {
	TargetUsername string `json:"targetUsername" form:"targetUsername" binding:"required"`
	CanEdit        bool   `json:"canEdit" form:"canEdit"`
}

// ShareDTO 共享授权数据传输对象
type ShareDTO struct {
	ID         int64      `json:"id"`
	NoteID     int64      `json:"noteId"`
	OwnerUID   int64      `json:"ownerUid"`
	TargetUID  int64      `json:"targetUid"`
	Permission string     `json:"permission"`
	CanEdit    bool       `json:"canEdit"`
	CreatedAt  timex.Time `json:"createdAt"`
}

// SharedNoteDTO 共享给我的笔记视图
type SharedNoteDTO struct {
	Note       NoteDTO `json:"note"`
	Permission string  `json:"permission"`
	CanEdit    bool    `json:"canEdit"`
}
