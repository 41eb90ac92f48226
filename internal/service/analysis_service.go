package service

import (
	"Dresscode/internal/api/dto"
	"Dresscode/internal/pkg/chart"
	"Dresscode/internal/pkg/consts"
	"Dresscode/internal/pkg/llm"
	"Dresscode/internal/pkg/mongo"
	"Dresscode/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type AnalysisService interface {
	GetStyleAnalysis(ctx context.Context, userID uint64, seqNo uint64) (*dto.StyleAnalysisDTO, error)
}

type AnalysisServiceImpl struct {
	userRepo     repository.UserRepo
	outfitRepo   repository.OutfitRepo
	analysisRepo mongo.StyleAnalysisRepo
	storage      ObjectStorage
	styleModel   StyleModel
	locker       Locker
}

func NewAnalysisService(
	userRepo repository.UserRepo,
	outfitRepo repository.OutfitRepo,
	analysisRepo mongo.StyleAnalysisRepo,
	storage ObjectStorage,
	styleModel StyleModel,
	locker Locker,
) AnalysisService {
	return &AnalysisServiceImpl{
		userRepo:     userRepo,
		outfitRepo:   outfitRepo,
		analysisRepo: analysisRepo,
		storage:      storage,
		styleModel:   styleModel,
		locker:       locker,
	}
}

// GetStyleAnalysis 懒生成穿搭分析。
// 已有文档直接返回；没有则校验订阅资格后调用模型生成。
// 免费用户返回 nil 而非错误，客户端据此展示付费引导。
func (s *AnalysisServiceImpl) GetStyleAnalysis(ctx context.Context, userID uint64, seqNo uint64) (*dto.StyleAnalysisDTO, error) {
	outfit, err := s.outfitRepo.GetOutfitBySeqNo(ctx, userID, seqNo)
	if err != nil {
		return nil, err
	}
	if outfit == nil {
		return nil, ErrOutfitNotFound
	}

	analysis, err := s.analysisRepo.GetByOutfit(ctx, userID, seqNo)
	if err != nil {
		return nil, err
	}
	if analysis != nil {
		return s.toAnalysisDTO(analysis), nil
	}

	profile, err := s.userRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	expireStaleSubscription(ctx, s.userRepo, profile)
	if !profile.HasPremiumAccess() {
		return nil, nil
	}

	// 同一套穿搭只允许一个生成请求进模型
	lockKey := consts.StyleAnalysisLock + strconv.FormatUint(userID, 10) + ":" + strconv.FormatUint(seqNo, 10)
	lockUUID := uuid.NewString()
	ok, err := s.locker.TryLock(ctx, lockKey, lockUUID, 60*time.Second, 25)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, UnExpectedError
	}
	defer s.locker.Unlock(ctx, lockKey, lockUUID)

	// 等锁期间可能已被别的请求生成
	analysis, err = s.analysisRepo.GetByOutfit(ctx, userID, seqNo)
	if err != nil {
		return nil, err
	}
	if analysis != nil {
		return s.toAnalysisDTO(analysis), nil
	}

	result, err := s.styleModel.AnalyzeOutfit(ctx, s.storage.PublicURL(outfit.ImageURL))
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrNoOutfitDetected):
			return nil, ErrNoOutfitDetected
		case errors.Is(err, llm.ErrAnalysisUnparsable):
			return nil, ErrAnalysisUnparsable
		default:
			return nil, ErrModelCallFailed
		}
	}

	analysis = &mongo.StyleAnalysis{
		UserID:           userID,
		OutfitSeq:        seqNo,
		TextAnalysis:     result.TextAnalysis,
		ColorHarmony:     toCritique(result.ColorHarmony),
		FitAndSilhouette: toCritique(result.FitAndSilhouette),
		StyleCoherence:   toCritique(result.StyleCoherence),
		Accessorizing:    toCritique(result.Accessorizing),
		OccasionMatch:    toCritique(result.OccasionMatch),
		TrendAwareness:   toCritique(result.TrendAwareness),
		Suggestions:      result.Suggestions,
		CreatedAt:        time.Now(),
	}
	if err = s.analysisRepo.Save(ctx, analysis); err != nil {
		log.ErrorContext(ctx, "穿搭分析-文档写入失败", "seq_no", seqNo, "err", err)
		return nil, ErrAnalysisPersist
	}

	log.InfoContext(ctx, "穿搭分析-生成成功", "seq_no", seqNo)
	return s.toAnalysisDTO(analysis), nil
}

func (s *AnalysisServiceImpl) toAnalysisDTO(analysis *mongo.StyleAnalysis) *dto.StyleAnalysisDTO {
	scores := make([]float64, 0, 6)
	for _, critique := range analysis.Critiques() {
		scores = append(scores, critique.Score)
	}
	overall := chart.OverallScore(scores)
	overallValue, _ := strconv.ParseFloat(overall, 64)

	return &dto.StyleAnalysisDTO{
		OutfitSeq:        analysis.OutfitSeq,
		TextAnalysis:     analysis.TextAnalysis,
		ColorHarmony:     toCritiqueDTO(analysis.ColorHarmony),
		FitAndSilhouette: toCritiqueDTO(analysis.FitAndSilhouette),
		StyleCoherence:   toCritiqueDTO(analysis.StyleCoherence),
		Accessorizing:    toCritiqueDTO(analysis.Accessorizing),
		OccasionMatch:    toCritiqueDTO(analysis.OccasionMatch),
		TrendAwareness:   toCritiqueDTO(analysis.TrendAwareness),
		Suggestions:      analysis.Suggestions,
		OverallScore:     overall,
		OverallColor:     chart.ScoreColor(overallValue),
	}
}

func toCritique(result llm.CritiqueResult) mongo.StyleCritique {
	return mongo.StyleCritique{
		Score:    result.Score,
		Critique: result.Critique,
	}
}

func toCritiqueDTO(critique mongo.StyleCritique) dto.CritiqueDTO {
	return dto.CritiqueDTO{
		Score:    critique.Score,
		Critique: critique.Critique,
		Color:    chart.ScoreColor(critique.Score),
	}
}
