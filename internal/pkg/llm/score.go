package llm

import (
	"context"
	"errors"
	log "log/slog"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNoOutfitDetected 模型判定图片中没有穿搭
	ErrNoOutfitDetected = errors.New("no outfit detected")
	// ErrScoreUnparsable 模型回复中找不到约定的分数格式
	ErrScoreUnparsable = errors.New("score response unparsable")
)

var scoreRegex = regexp.MustCompile(`Final Score:\s*(\d+)`)

// ParseScore 从模型回复中提取 0-100 的整数分
func ParseScore(s string) (int, error) {
	if strings.Contains(strings.ToLower(s), "no outfit detected") {
		return 0, ErrNoOutfitDetected
	}

	matches := scoreRegex.FindStringSubmatch(s)
	if len(matches) < 2 {
		return 0, ErrScoreUnparsable
	}

	score, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, ErrScoreUnparsable
	}
	return score, nil
}

// ScoreOutfit 请求视觉模型为穿搭图打分
func ScoreOutfit(ctx context.Context, imageURL string) (int, error) {
	content, err := fetchModelByPicURL(ctx, outfitScorePrompt, imageURL, 0.1)
	if err != nil {
		log.Error("穿搭评分-AI大模型请求失败", "err", err)
		return 0, err
	}

	score, err := ParseScore(content)
	if err != nil {
		log.Warn("穿搭评分-AI大模型回复无法解析", "content", content, "err", err)
		return 0, err
	}

	log.Info("穿搭评分-AI大模型请求成功", "score", score)
	return score, nil
}
