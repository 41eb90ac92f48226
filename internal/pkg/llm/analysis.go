package llm

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
)

// ErrAnalysisUnparsable 模型回复不是约定的 JSON 结构
var ErrAnalysisUnparsable = errors.New("analysis response unparsable")

// CritiqueResult 单维度评价
type CritiqueResult struct {
	Score    float64 `json:"score"`
	Critique string  `json:"critique"`
}

// StyleAnalysisResult 模型返回的六维穿搭分析
type StyleAnalysisResult struct {
	TextAnalysis     string         `json:"textAnalysis"`
	ColorHarmony     CritiqueResult `json:"colorHarmony"`
	FitAndSilhouette CritiqueResult `json:"fitAndSilhouette"`
	StyleCoherence   CritiqueResult `json:"styleCoherence"`
	Accessorizing    CritiqueResult `json:"accessorizing"`
	OccasionMatch    CritiqueResult `json:"occasionMatch"`
	TrendAwareness   CritiqueResult `json:"trendAwareness"`
	Suggestions      Suggestions    `json:"suggestions"`
}

// Suggestions 兼容模型返回单个字符串或字符串数组两种形态
type Suggestions []string

func (s *Suggestions) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			*s = []string{single}
		} else {
			*s = nil
		}
		return nil
	}

	return fmt.Errorf("suggestions: unsupported json shape")
}

// ParseStyleAnalysis 清洗并解析模型返回的分析 JSON
func ParseStyleAnalysis(s string) (*StyleAnalysisResult, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	// 模型可能不给 JSON，而是直接回复裸字符串
	if strings.Contains(strings.ToLower(cleaned), "no outfit detected") && !strings.HasPrefix(cleaned, "{") {
		return nil, ErrNoOutfitDetected
	}

	var result StyleAnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, ErrAnalysisUnparsable
	}

	return &result, nil
}

// AnalyzeOutfit 请求视觉模型生成六维穿搭分析
func AnalyzeOutfit(ctx context.Context, imageURL string) (*StyleAnalysisResult, error) {
	content, err := fetchModelByPicURL(ctx, styleAnalysisPrompt, imageURL, 0.2)
	if err != nil {
		log.Error("穿搭分析-AI大模型请求失败", "err", err)
		return nil, err
	}

	result, err := ParseStyleAnalysis(content)
	if err != nil {
		log.Warn("穿搭分析-AI大模型回复无法解析", "content", content, "err", err)
		return nil, err
	}

	log.Info("穿搭分析-AI大模型请求成功")
	return result, nil
}

// StyleModel 以接口形式暴露给 service 层的模型适配器
type StyleModel struct{}

func NewStyleModel() *StyleModel {
	return &StyleModel{}
}

func (s *StyleModel) ScoreOutfit(ctx context.Context, imageURL string) (int, error) {
	return ScoreOutfit(ctx, imageURL)
}

func (s *StyleModel) AnalyzeOutfit(ctx context.Context, imageURL string) (*StyleAnalysisResult, error) {
	return AnalyzeOutfit(ctx, imageURL)
}
