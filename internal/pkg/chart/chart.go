// Package chart 包含进度页的纯计算：按天聚合得分、生成折线路径与坐标范围。
// 不依赖任何存储，入参即快照。
package chart

import (
	"fmt"
	"strings"
	"time"
)

// Sample 一条已评分的穿搭记录快照
type Sample struct {
	Score     int
	CreatedAt time.Time
}

// DailyScore 单日聚合结果，Score 为 nil 表示当天没有上传
type DailyScore struct {
	Date          string   `json:"date"`
	Score         *float64 `json:"score"`
	IsBeforeChart bool     `json:"-"`
}

// ChartPoint 画布坐标系中的一个顶点
type ChartPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Chart 折线图计算结果
type Chart struct {
	PathD  string       `json:"pathD"`
	DashD  string       `json:"dashD"`
	Points []ChartPoint `json:"points"`
	YMin   float64      `json:"yMin"`
	YMax   float64      `json:"yMax"`
}

// BucketDailyScores 把穿搭记录按自然日聚合成 numDays 天的序列。
// 同一天多条取算术平均，空天 Score 为 nil。日期标签相对 now 计算。
func BucketDailyScores(samples []Sample, windowStart time.Time, numDays int, now time.Time) []DailyScore {
	result := make([]DailyScore, 0, numDays)

	for i := 0; i < numDays; i++ {
		day := windowStart.AddDate(0, 0, i)
		dayStr := day.Format(time.DateOnly)

		var sum float64
		var count int
		for _, sample := range samples {
			// 按日期字符串截断匹配，忽略时分秒
			if sample.CreatedAt.Format(time.DateOnly) == dayStr {
				sum += float64(sample.Score)
				count++
			}
		}

		entry := DailyScore{Date: dayLabel(day, now)}
		if count > 0 {
			avg := sum / float64(count)
			entry.Score = &avg
		}
		result = append(result, entry)
	}

	return result
}

func dayLabel(day time.Time, now time.Time) string {
	today := now.Format(time.DateOnly)
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)

	switch day.Format(time.DateOnly) {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	default:
		return day.Format("2 Jan")
	}
}

// BuildChart 由日序列计算坐标范围与三次贝塞尔路径。
// 带 IsBeforeChart 标记的条目是窗口左侧的锚点，只参与虚线引入段，
// 不进入实线顶点列表。
func BuildChart(daily []DailyScore, width float64, height float64, leftPadding float64) *Chart {
	yMin, yMax := scoreRange(daily)

	visible := make([]DailyScore, 0, len(daily))
	var anchor *DailyScore
	for i := range daily {
		if daily[i].IsBeforeChart {
			anchor = &daily[i]
			continue
		}
		visible = append(visible, daily[i])
	}

	spacing := width
	if len(visible) > 1 {
		spacing = width / float64(len(visible)-1)
	}

	toY := func(score float64) float64 {
		normalized := (score - yMin) / (yMax - yMin)
		return height - normalized*height
	}

	chart := &Chart{YMin: yMin, YMax: yMax}

	var path strings.Builder
	var prev *ChartPoint
	for i, entry := range visible {
		if entry.Score == nil {
			continue
		}
		point := ChartPoint{
			X:     leftPadding + spacing*float64(i),
			Y:     toY(*entry.Score),
			Score: *entry.Score,
			Label: entry.Date,
		}
		chart.Points = append(chart.Points, point)

		if prev == nil {
			path.WriteString(fmt.Sprintf("M %.2f %.2f", point.X, point.Y))
		} else {
			path.WriteString(bezierSegment(*prev, point))
		}
		prev = &chart.Points[len(chart.Points)-1]
	}
	chart.PathD = path.String()

	// 锚点只画一段虚线，接到第一个可见顶点
	if anchor != nil && anchor.Score != nil && len(chart.Points) > 0 {
		anchorPoint := ChartPoint{
			X: leftPadding - spacing,
			Y: toY(*anchor.Score),
		}
		first := chart.Points[0]
		chart.DashD = fmt.Sprintf("M %.2f %.2f", anchorPoint.X, anchorPoint.Y) + bezierSegment(anchorPoint, first)
	}

	return chart
}

// bezierSegment 水平缓入缓出：控制点位于两端点水平跨度的 1/3 和 2/3 处，
// 高度各取自己一侧端点的高度。
func bezierSegment(from ChartPoint, to ChartPoint) string {
	dx := to.X - from.X
	return fmt.Sprintf(" C %.2f %.2f, %.2f %.2f, %.2f %.2f",
		from.X+dx/3, from.Y,
		from.X+dx*2/3, to.Y,
		to.X, to.Y,
	)
}

// scoreRange y 轴范围：上下各留 10 分余量，且不小于 0-100 基线
func scoreRange(daily []DailyScore) (float64, float64) {
	yMin, yMax := 0.0, 100.0

	var lo, hi float64
	var found bool
	for _, entry := range daily {
		if entry.Score == nil {
			continue
		}
		if !found {
			lo, hi = *entry.Score, *entry.Score
			found = true
			continue
		}
		if *entry.Score < lo {
			lo = *entry.Score
		}
		if *entry.Score > hi {
			hi = *entry.Score
		}
	}

	if found {
		if lo-10 > 0 {
			yMin = lo - 10
		}
		if hi+10 > 100 {
			yMax = hi + 10
		}
	}

	return yMin, yMax
}

// OverallScore 六个子分的算术平均，保留一位小数
func OverallScore(scores []float64) string {
	if len(scores) == 0 {
		return "0.0"
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return fmt.Sprintf("%.1f", sum/float64(len(scores)))
}

// 分数色阶
const (
	ColorGood   = "good"
	ColorMedium = "medium"
	ColorLow    = "low"
)

// ScoreColor 三档固定阈值分级
func ScoreColor(score float64) string {
	switch {
	case score >= 8.5:
		return ColorGood
	case score >= 7:
		return ColorMedium
	default:
		return ColorLow
	}
}
