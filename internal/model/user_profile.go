package model

import (
	"Dresscode/internal/pkg/consts"
	"time"
)

type UserProfile struct {
	ID            uint64     `gorm:"primaryKey"`
	UserID        uint64     `gorm:"not null;uniqueIndex:idx_profile_user" json:"user_id"`
	Nickname      string     `gorm:"type:varchar(50)" json:"nickname"`
	AvatarURL     string     `gorm:"type:varchar(512)" json:"avatar_url"`
	Plan          string     `gorm:"type:varchar(20);not null;default:'free'" json:"plan"`
	PlanStatus    string     `gorm:"type:varchar(20);not null;default:'active'" json:"plan_status"`
	PlanExpiresAt *time.Time `json:"plan_expires_at"`
	PushToken     string     `gorm:"type:varchar(128)" json:"push_token"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// HasPremiumAccess 订阅是否允许生成穿搭分析
func (s *UserProfile) HasPremiumAccess() bool {
	if s == nil {
		return false
	}
	if s.Plan == "" || s.Plan == consts.PlanFree {
		return false
	}
	if s.PlanStatus != consts.PlanStatusActive {
		return false
	}
	if s.PlanExpiresAt != nil && s.PlanExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}
