package dto

// CritiqueDTO 单维度评价，Color 为前端色阶 token
type CritiqueDTO struct {
	Score    float64 `json:"score"`
	Critique string  `json:"critique"`
	Color    string  `json:"color"`
}

// StyleAnalysisDTO 六维穿搭分析
type StyleAnalysisDTO struct {
	OutfitSeq        uint64      `json:"outfit_seq"`
	TextAnalysis     string      `json:"text_analysis"`
	ColorHarmony     CritiqueDTO `json:"color_harmony"`
	FitAndSilhouette CritiqueDTO `json:"fit_and_silhouette"`
	StyleCoherence   CritiqueDTO `json:"style_coherence"`
	Accessorizing    CritiqueDTO `json:"accessorizing"`
	OccasionMatch    CritiqueDTO `json:"occasion_match"`
	TrendAwareness   CritiqueDTO `json:"trend_awareness"`
	Suggestions      []string    `json:"suggestions"`
	OverallScore     string      `json:"overall_score"`
	OverallColor     string      `json:"overall_color"`
}
