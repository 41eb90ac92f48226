package model

import (
	"time"
)

type Outfit struct {
	ID       uint64 `gorm:"primaryKey"`
	UserID   uint64 `gorm:"not null;index:idx_user_seq,unique;index:idx_user_created" json:"user_id"`
	SeqNo    uint64 `gorm:"not null;index:idx_user_seq,unique" json:"seq_no"` // 用户内自增序号，从 1 开始
	ImageURL string `gorm:"type:varchar(512);not null" json:"image_url"`
	ThumbURL string `gorm:"type:varchar(512)" json:"thumb_url"`
	Score    int    `gorm:"not null" json:"score"` // 0-100
	Location string `gorm:"type:varchar(100)" json:"location"`
	Width    int    `gorm:"not null;default:0" json:"width"`
	Height   int    `gorm:"not null;default:0" json:"height"`
	CreatedAt time.Time `gorm:"index:idx_user_created" json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Outfit) TableName() string {
	return "outfits"
}
