package service

import (
	"Dresscode/internal/model"
	"Dresscode/internal/pkg/consts"
	"Dresscode/internal/pkg/llm"
	"Dresscode/internal/pkg/mongo"
	"context"
	"errors"
	"testing"
	"time"
)

func premiumProfile(userID uint64) *model.UserProfile {
	expires := time.Now().Add(30 * 24 * time.Hour)
	return &model.UserProfile{
		UserID:        userID,
		Plan:          consts.PlanMonthly,
		PlanStatus:    consts.PlanStatusActive,
		PlanExpiresAt: &expires,
	}
}

func analysisResultForTest() *llm.StyleAnalysisResult {
	critique := llm.CritiqueResult{Score: 8, Critique: "ok"}
	return &llm.StyleAnalysisResult{
		TextAnalysis:     "A solid look.",
		ColorHarmony:     llm.CritiqueResult{Score: 9, Critique: "great palette"},
		FitAndSilhouette: critique,
		StyleCoherence:   critique,
		Accessorizing:    llm.CritiqueResult{Score: 6, Critique: "needs a belt"},
		OccasionMatch:    critique,
		TrendAwareness:   critique,
		Suggestions:      []string{"Add a belt"},
	}
}

func newAnalysisServiceForTest(
	userRepo *fakeUserRepo,
	outfitRepo *fakeOutfitRepo,
	analysisRepo *fakeAnalysisRepo,
	styleModel *fakeStyleModel,
) AnalysisService {
	return NewAnalysisService(userRepo, outfitRepo, analysisRepo, &fakeStorage{}, styleModel, &fakeLocker{})
}

func TestGetStyleAnalysisGeneratesForPremium(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.profiles[1] = premiumProfile(1)
	outfitRepo := &fakeOutfitRepo{outfits: []*model.Outfit{{UserID: 1, SeqNo: 3, ImageURL: "a.jpg", Score: 80}}}
	analysisRepo := &fakeAnalysisRepo{}
	styleModel := &fakeStyleModel{analysis: analysisResultForTest()}

	svc := newAnalysisServiceForTest(userRepo, outfitRepo, analysisRepo, styleModel)

	result, err := svc.GetStyleAnalysis(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("GetStyleAnalysis() error: %v", err)
	}
	if result == nil {
		t.Fatal("result is nil, want analysis")
	}
	if styleModel.analyzeCalls != 1 {
		t.Errorf("analyzeCalls = %d, want 1", styleModel.analyzeCalls)
	}
	if len(analysisRepo.docs) != 1 {
		t.Errorf("persisted docs = %d, want 1", len(analysisRepo.docs))
	}

	// (9+8+8+6+8+8)/6 = 7.8
	if result.OverallScore != "7.8" {
		t.Errorf("OverallScore = %q, want 7.8", result.OverallScore)
	}
	if result.ColorHarmony.Color != "good" {
		t.Errorf("ColorHarmony.Color = %q, want good", result.ColorHarmony.Color)
	}
	if result.Accessorizing.Color != "low" {
		t.Errorf("Accessorizing.Color = %q, want low", result.Accessorizing.Color)
	}
	if result.OverallColor != "medium" {
		t.Errorf("OverallColor = %q, want medium", result.OverallColor)
	}
}

func TestGetStyleAnalysisReturnsCachedDocument(t *testing.T) {
	userRepo := newFakeUserRepo()
	outfitRepo := &fakeOutfitRepo{outfits: []*model.Outfit{{UserID: 1, SeqNo: 3, ImageURL: "a.jpg"}}}
	analysisRepo := &fakeAnalysisRepo{docs: []*mongo.StyleAnalysis{{
		UserID:    1,
		OutfitSeq: 3,
		ColorHarmony: mongo.StyleCritique{Score: 7, Critique: "ok"},
	}}}
	styleModel := &fakeStyleModel{analysis: analysisResultForTest()}

	svc := newAnalysisServiceForTest(userRepo, outfitRepo, analysisRepo, styleModel)

	result, err := svc.GetStyleAnalysis(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("GetStyleAnalysis() error: %v", err)
	}
	if result == nil {
		t.Fatal("result is nil, want cached analysis")
	}

	// 已有文档时不请求模型，免费用户也能看历史分析
	if styleModel.analyzeCalls != 0 {
		t.Errorf("analyzeCalls = %d, want 0", styleModel.analyzeCalls)
	}
}

func TestGetStyleAnalysisFreeUserGetsNil(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.profiles[1] = &model.UserProfile{
		UserID:     1,
		Plan:       consts.PlanFree,
		PlanStatus: consts.PlanStatusActive,
	}
	outfitRepo := &fakeOutfitRepo{outfits: []*model.Outfit{{UserID: 1, SeqNo: 3, ImageURL: "a.jpg"}}}
	styleModel := &fakeStyleModel{analysis: analysisResultForTest()}

	svc := newAnalysisServiceForTest(userRepo, outfitRepo, &fakeAnalysisRepo{}, styleModel)

	result, err := svc.GetStyleAnalysis(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("GetStyleAnalysis() error: %v", err)
	}
	if result != nil {
		t.Fatal("result is not nil, want nil for free tier")
	}
	if styleModel.analyzeCalls != 0 {
		t.Errorf("analyzeCalls = %d, want 0", styleModel.analyzeCalls)
	}
}

func TestGetStyleAnalysisExpiredSubscription(t *testing.T) {
	userRepo := newFakeUserRepo()
	expired := time.Now().Add(-24 * time.Hour)
	userRepo.profiles[1] = &model.UserProfile{
		UserID:        1,
		Plan:          consts.PlanMonthly,
		PlanStatus:    consts.PlanStatusActive,
		PlanExpiresAt: &expired,
	}
	outfitRepo := &fakeOutfitRepo{outfits: []*model.Outfit{{UserID: 1, SeqNo: 3, ImageURL: "a.jpg"}}}
	styleModel := &fakeStyleModel{analysis: analysisResultForTest()}

	svc := newAnalysisServiceForTest(userRepo, outfitRepo, &fakeAnalysisRepo{}, styleModel)

	result, err := svc.GetStyleAnalysis(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("GetStyleAnalysis() error: %v", err)
	}
	if result != nil {
		t.Fatal("result is not nil, want nil for expired subscription")
	}
	// 过期订阅被顺手改成 expired
	if userRepo.profiles[1].PlanStatus != consts.PlanStatusExpired {
		t.Errorf("PlanStatus = %q, want expired", userRepo.profiles[1].PlanStatus)
	}
}

func TestGetStyleAnalysisOutfitMissing(t *testing.T) {
	svc := newAnalysisServiceForTest(newFakeUserRepo(), &fakeOutfitRepo{}, &fakeAnalysisRepo{}, &fakeStyleModel{})

	_, err := svc.GetStyleAnalysis(context.Background(), 1, 42)
	if !errors.Is(err, ErrOutfitNotFound) {
		t.Fatalf("error = %v, want ErrOutfitNotFound", err)
	}
}

func TestGetStyleAnalysisModelErrors(t *testing.T) {
	tests := []struct {
		name     string
		modelErr error
		wantErr  error
	}{
		{"未检测到穿搭", llm.ErrNoOutfitDetected, ErrNoOutfitDetected},
		{"JSON解析失败", llm.ErrAnalysisUnparsable, ErrAnalysisUnparsable},
		{"模型调用失败", errors.New("timeout"), ErrModelCallFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := newFakeUserRepo()
			userRepo.profiles[1] = premiumProfile(1)
			outfitRepo := &fakeOutfitRepo{outfits: []*model.Outfit{{UserID: 1, SeqNo: 3, ImageURL: "a.jpg"}}}
			analysisRepo := &fakeAnalysisRepo{}

			svc := newAnalysisServiceForTest(userRepo, outfitRepo, analysisRepo, &fakeStyleModel{analyzeErr: tt.modelErr})

			_, err := svc.GetStyleAnalysis(context.Background(), 1, 3)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if len(analysisRepo.docs) != 0 {
				t.Errorf("persisted docs = %d, want 0", len(analysisRepo.docs))
			}
		})
	}
}

func TestGetStyleAnalysisPersistFailure(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.profiles[1] = premiumProfile(1)
	outfitRepo := &fakeOutfitRepo{outfits: []*model.Outfit{{UserID: 1, SeqNo: 3, ImageURL: "a.jpg"}}}
	analysisRepo := &fakeAnalysisRepo{saveErr: errors.New("disk full")}

	svc := newAnalysisServiceForTest(userRepo, outfitRepo, analysisRepo, &fakeStyleModel{analysis: analysisResultForTest()})

	_, err := svc.GetStyleAnalysis(context.Background(), 1, 3)
	if !errors.Is(err, ErrAnalysisPersist) {
		t.Fatalf("error = %v, want ErrAnalysisPersist", err)
	}
}
