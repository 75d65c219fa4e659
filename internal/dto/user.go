// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/note-keeper-service/pkg/timex"

// UserRegisterRequest 用户注册请求参数
type UserRegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,username"`
	Password string `json:"password" form:"password" binding:"required,strongpassword"`
}

// UserLoginRequest 用户登录请求参数
type UserLoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// UserChangePasswordRequest 修改密码请求参数
type UserChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" form:"oldPassword" binding:"required"`
	Password    string `json:"password" form:"password" binding:"required,strongpassword"`
}

// UserDTO 用户数据传输对象
type UserDTO struct {
	UID       int64      `json:"uid"`
	Username  string     `json:"username"`
	Token     string     `json:"token,omitempty"`
	UpdatedAt timex.Time `json:"updatedAt"`
	CreatedAt timex.Time `json:"createdAt"`
}
