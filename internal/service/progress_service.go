package service

import (
	"Dresscode/internal/api/dto"
	"Dresscode/internal/pkg/chart"
	"Dresscode/internal/pkg/consts"
	"Dresscode/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// 进度折线图画布尺寸，与移动端约定
const (
	chartWidth       = 320.0
	chartHeight      = 180.0
	chartLeftPadding = 30.0
)

type ProgressService interface {
	GetProgress(ctx context.Context, userID uint64) (*dto.ProgressDTO, error)
}

type ProgressServiceImpl struct {
	outfitRepo repository.OutfitRepo
	cache      CacheStore
	now        func() time.Time
}

func NewProgressService(outfitRepo repository.OutfitRepo, cache CacheStore) ProgressService {
	return &ProgressServiceImpl{
		outfitRepo: outfitRepo,
		cache:      cache,
		now:        time.Now,
	}
}

// GetProgress 聚合最近若干天的穿搭得分并生成折线图。
// 结果缓存到当天失效前，上传新穿搭时由上传侧主动清掉。
func (s *ProgressServiceImpl) GetProgress(ctx context.Context, userID uint64) (*dto.ProgressDTO, error) {
	key := consts.ProgressDailyKey + strconv.FormatUint(userID, 10)
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "进度查询-缓存读取失败", "err", err)
	}
	if value != "" {
		var cached dto.ProgressDTO
		if err = json.Unmarshal([]byte(value), &cached); err == nil {
			return &cached, nil
		}
	}

	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowStart := todayStart.AddDate(0, 0, -(consts.ProgressWindowDays - 1))

	outfits, err := s.outfitRepo.GetOutfitsSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}

	samples := make([]chart.Sample, 0, len(outfits))
	for _, outfit := range outfits {
		samples = append(samples, chart.Sample{
			Score:     outfit.Score,
			CreatedAt: outfit.CreatedAt,
		})
	}
	daily := chart.BucketDailyScores(samples, windowStart, consts.ProgressWindowDays, now)

	// 窗口之前最近一条记录作为虚线锚点，让折线有来处
	anchor, err := s.outfitRepo.GetLatestOutfitBefore(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}
	if anchor != nil {
		anchorScore := float64(anchor.Score)
		daily = append([]chart.DailyScore{{
			Date:          anchor.CreatedAt.Format("2 Jan"),
			Score:         &anchorScore,
			IsBeforeChart: true,
		}}, daily...)
	}

	progress := &dto.ProgressDTO{
		Daily: daily,
		Chart: chart.BuildChart(daily, chartWidth, chartHeight, chartLeftPadding),
	}

	s.cacheUntilMidnight(ctx, key, progress, now)
	return progress, nil
}

// cacheUntilMidnight 缓存到午夜前 5 分钟，避免跨天后标签错位
func (s *ProgressServiceImpl) cacheUntilMidnight(ctx context.Context, key string, progress *dto.ProgressDTO, now time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	ttl := midnight.Sub(now) - 5*time.Minute
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return
	}
	if err = s.cache.Set(ctx, key, string(data), ttl); err != nil {
		log.WarnContext(ctx, "进度查询-缓存写入失败", "err", err)
	}
}
