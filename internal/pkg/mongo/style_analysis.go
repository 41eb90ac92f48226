package mongo

import (
	"time"
)

// StyleCritique 单维度评价
type StyleCritique struct {
	Score    float64 `bson:"score" json:"score"`
	Critique string  `bson:"critique" json:"critique"`
}

// StyleAnalysis MongoDB 穿搭分析文档，每套穿搭至多一份
type StyleAnalysis struct {
	ID              string        `bson:"_id,omitempty" json:"id"`
	UserID          uint64        `bson:"user_id" json:"userId"`
	OutfitSeq       uint64        `bson:"outfit_seq" json:"outfitSeq"` // 关联 MySQL 中该用户的穿搭序号
	TextAnalysis    string        `bson:"text_analysis" json:"textAnalysis"`
	ColorHarmony    StyleCritique `bson:"color_harmony" json:"colorHarmony"`
	FitAndSilhouette StyleCritique `bson:"fit_and_silhouette" json:"fitAndSilhouette"`
	StyleCoherence  StyleCritique `bson:"style_coherence" json:"styleCoherence"`
	Accessorizing   StyleCritique `bson:"accessorizing" json:"accessorizing"`
	OccasionMatch   StyleCritique `bson:"occasion_match" json:"occasionMatch"`
	TrendAwareness  StyleCritique `bson:"trend_awareness" json:"trendAwareness"`
	Suggestions     []string      `bson:"suggestions" json:"suggestions"`
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
}

// Critiques 按固定顺序返回六个维度，供总分计算
func (s *StyleAnalysis) Critiques() []StyleCritique {
	return []StyleCritique{
		s.ColorHarmony,
		s.FitAndSilhouette,
		s.StyleCoherence,
		s.Accessorizing,
		s.OccasionMatch,
		s.TrendAwareness,
	}
}
