package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=6,max=50"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
	Nickname string `json:"nickname" validate:"omitempty,max=50"`
}

// CredentialDTO 登录凭据
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 用户信息
type UserDTO struct {
	UserID        uint64     `json:"user_id"`
	Username      *string    `json:"username,omitempty"`
	Nickname      string     `json:"nickname"`
	AvatarURL     string     `json:"avatar_url"`
	Plan          string     `json:"plan"`
	PlanStatus    string     `json:"plan_status"`
	PlanExpiresAt *time.Time `json:"plan_expires_at,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// ProfileUpdateDTO 档案修改
type ProfileUpdateDTO struct {
	Nickname  string `json:"nickname" validate:"omitempty,max=50"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,max=512"`
}

// PushTokenDTO 推送 token 登记
type PushTokenDTO struct {
	Token string `json:"token" binding:"required" validate:"max=128"`
}
