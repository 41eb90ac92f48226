package dto

// OutfitDTO 穿搭记录
type OutfitDTO struct {
	SeqNo     uint64 `json:"seq_no"`
	ImageURL  string `json:"image_url"`
	ThumbURL  string `json:"thumb_url"`
	Score     int    `json:"score"`
	Location  string `json:"location"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt string `json:"created_at"`
}

// OutfitUploadResultDTO 上传评分结果
type OutfitUploadResultDTO struct {
	SeqNo    uint64 `json:"seq_no"`
	ImageURL string `json:"image_url"`
	Score    int    `json:"score"`
}

// OutfitTempMetadata 评分未落库时暂存于 Redis 的对象信息
type OutfitTempMetadata struct {
	Objects   []string `json:"objects"`
	CreatedAt int64    `json:"created_at"`
}
