package service

import (
	"Dresscode/internal/model"
	"Dresscode/internal/pkg/consts"
	"context"
	"testing"
	"time"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2026-03-10T15:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	return now
}

func TestGetProgressBucketsWindow(t *testing.T) {
	now := fixedNow(t)
	repo := &fakeOutfitRepo{outfits: []*model.Outfit{
		{UserID: 1, SeqNo: 1, Score: 70, CreatedAt: now.Add(-26 * time.Hour)},
		{UserID: 1, SeqNo: 2, Score: 80, CreatedAt: now.Add(-2 * time.Hour)},
		{UserID: 1, SeqNo: 3, Score: 90, CreatedAt: now.Add(-1 * time.Hour)},
	}}
	cache := newFakeCache()
	svc := &ProgressServiceImpl{outfitRepo: repo, cache: cache, now: func() time.Time { return now }}

	progress, err := svc.GetProgress(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProgress() error: %v", err)
	}

	if len(progress.Daily) != consts.ProgressWindowDays {
		t.Fatalf("len(Daily) = %d, want %d", len(progress.Daily), consts.ProgressWindowDays)
	}

	today := progress.Daily[len(progress.Daily)-1]
	if today.Date != "Today" {
		t.Errorf("last label = %q, want Today", today.Date)
	}
	// 今天两条取平均
	if today.Score == nil || *today.Score != 85 {
		t.Errorf("today score = %v, want 85", today.Score)
	}

	yesterday := progress.Daily[len(progress.Daily)-2]
	if yesterday.Score == nil || *yesterday.Score != 70 {
		t.Errorf("yesterday score = %v, want 70", yesterday.Score)
	}

	if progress.Chart == nil || len(progress.Chart.Points) != 2 {
		t.Fatalf("chart points = %v, want 2 vertices", progress.Chart)
	}
}

func TestGetProgressIncludesAnchor(t *testing.T) {
	now := fixedNow(t)
	repo := &fakeOutfitRepo{outfits: []*model.Outfit{
		// 窗口外的历史记录
		{UserID: 1, SeqNo: 1, Score: 55, CreatedAt: now.AddDate(0, 0, -20)},
		{UserID: 1, SeqNo: 2, Score: 75, CreatedAt: now.Add(-1 * time.Hour)},
	}}
	svc := &ProgressServiceImpl{outfitRepo: repo, cache: newFakeCache(), now: func() time.Time { return now }}

	progress, err := svc.GetProgress(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProgress() error: %v", err)
	}

	// 锚点附加在日序列头部
	if len(progress.Daily) != consts.ProgressWindowDays+1 {
		t.Fatalf("len(Daily) = %d, want %d", len(progress.Daily), consts.ProgressWindowDays+1)
	}
	if !progress.Daily[0].IsBeforeChart {
		t.Error("Daily[0].IsBeforeChart = false, want true")
	}
	if progress.Chart.DashD == "" {
		t.Error("DashD is empty, want dashed lead-in from anchor")
	}
	// 锚点不算实线顶点
	if len(progress.Chart.Points) != 1 {
		t.Errorf("chart points = %d, want 1", len(progress.Chart.Points))
	}
}

func TestGetProgressUsesCache(t *testing.T) {
	now := fixedNow(t)
	repo := &fakeOutfitRepo{outfits: []*model.Outfit{
		{UserID: 1, SeqNo: 1, Score: 75, CreatedAt: now.Add(-1 * time.Hour)},
	}}
	cache := newFakeCache()
	svc := &ProgressServiceImpl{outfitRepo: repo, cache: cache, now: func() time.Time { return now }}

	first, err := svc.GetProgress(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	// 第二次命中缓存，数据库里新加的记录不可见
	repo.outfits = append(repo.outfits, &model.Outfit{UserID: 1, SeqNo: 2, Score: 95, CreatedAt: now})
	second, err := svc.GetProgress(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(second.Chart.Points) != len(first.Chart.Points) {
		t.Errorf("cached points = %d, want %d", len(second.Chart.Points), len(first.Chart.Points))
	}

	// 缓存失效后能看到新记录
	if err = cache.Delete(context.Background(), consts.ProgressDailyKey+"1"); err != nil {
		t.Fatal(err)
	}
	third, err := svc.GetProgress(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	today := third.Daily[len(third.Daily)-1]
	if today.Score == nil || *today.Score != 85 {
		t.Errorf("today score after invalidation = %v, want 85", today.Score)
	}
}

func TestGetProgressEmptyHistory(t *testing.T) {
	now := fixedNow(t)
	svc := &ProgressServiceImpl{outfitRepo: &fakeOutfitRepo{}, cache: newFakeCache(), now: func() time.Time { return now }}

	progress, err := svc.GetProgress(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProgress() error: %v", err)
	}
	if len(progress.Daily) != consts.ProgressWindowDays {
		t.Fatalf("len(Daily) = %d, want %d", len(progress.Daily), consts.ProgressWindowDays)
	}
	for _, entry := range progress.Daily {
		if entry.Score != nil {
			t.Errorf("entry %q has score %v, want nil", entry.Date, *entry.Score)
		}
	}
	if progress.Chart.PathD != "" {
		t.Errorf("PathD = %q, want empty", progress.Chart.PathD)
	}
}
