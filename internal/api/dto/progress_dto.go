package dto

import "Dresscode/internal/pkg/chart"

// ProgressDTO 进度页数据：日序列 + 折线图
type ProgressDTO struct {
	Daily []chart.DailyScore `json:"daily"`
	Chart *chart.Chart       `json:"chart"`
}
