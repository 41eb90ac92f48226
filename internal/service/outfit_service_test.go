package service

import (
	"Dresscode/internal/pkg/consts"
	"Dresscode/internal/pkg/llm"
	"context"
	"errors"
	"testing"
)

func newOutfitServiceForTest(repo *fakeOutfitRepo, storage *fakeStorage, styleModel *fakeStyleModel) (OutfitService, *fakeLocker, *fakeCache) {
	locker := &fakeLocker{}
	cache := newFakeCache()
	svc := NewOutfitService(repo, storage, styleModel, locker, cache)
	return svc, locker, cache
}

func TestUploadOutfitAssignsSequentialSeqNo(t *testing.T) {
	repo := &fakeOutfitRepo{}
	storage := &fakeStorage{}
	styleModel := &fakeStyleModel{score: 78}
	svc, locker, _ := newOutfitServiceForTest(repo, storage, styleModel)

	data := testImagePNG(t)

	first, err := svc.UploadOutfit(context.Background(), 1, data, "image/png", "Berlin")
	if err != nil {
		t.Fatalf("UploadOutfit() error: %v", err)
	}
	if first.SeqNo != 1 {
		t.Errorf("first SeqNo = %d, want 1", first.SeqNo)
	}
	if first.Score != 78 {
		t.Errorf("first Score = %d, want 78", first.Score)
	}

	second, err := svc.UploadOutfit(context.Background(), 1, data, "image/png", "")
	if err != nil {
		t.Fatalf("UploadOutfit() error: %v", err)
	}
	if second.SeqNo != 2 {
		t.Errorf("second SeqNo = %d, want 2", second.SeqNo)
	}

	// 另一个用户从 1 重新计数
	other, err := svc.UploadOutfit(context.Background(), 2, data, "image/png", "")
	if err != nil {
		t.Fatalf("UploadOutfit() error: %v", err)
	}
	if other.SeqNo != 1 {
		t.Errorf("other user SeqNo = %d, want 1", other.SeqNo)
	}

	if locker.locks != locker.unlocks {
		t.Errorf("locks = %d, unlocks = %d, want balanced", locker.locks, locker.unlocks)
	}
}

func TestUploadOutfitContinuesFromExistingMax(t *testing.T) {
	repo := &fakeOutfitRepo{}
	storage := &fakeStorage{}
	styleModel := &fakeStyleModel{score: 60}
	svc, _, _ := newOutfitServiceForTest(repo, storage, styleModel)

	data := testImagePNG(t)
	for i := 0; i < 5; i++ {
		if _, err := svc.UploadOutfit(context.Background(), 7, data, "image/png", ""); err != nil {
			t.Fatal(err)
		}
	}

	result, err := svc.UploadOutfit(context.Background(), 7, data, "image/png", "")
	if err != nil {
		t.Fatal(err)
	}
	if result.SeqNo != 6 {
		t.Errorf("SeqNo = %d, want 6", result.SeqNo)
	}
}

func TestUploadOutfitNoOutfitDetected(t *testing.T) {
	repo := &fakeOutfitRepo{}
	storage := &fakeStorage{}
	styleModel := &fakeStyleModel{scoreErr: llm.ErrNoOutfitDetected}
	svc, _, cache := newOutfitServiceForTest(repo, storage, styleModel)

	_, err := svc.UploadOutfit(context.Background(), 1, testImagePNG(t), "image/png", "")
	if !errors.Is(err, ErrNoOutfitDetected) {
		t.Fatalf("error = %v, want ErrNoOutfitDetected", err)
	}

	// 评分失败不落库
	if len(repo.outfits) != 0 {
		t.Errorf("outfits persisted = %d, want 0", len(repo.outfits))
	}
	// 已上传对象进入待清理登记
	if len(cache.hashes[consts.OutfitUploadTempKey]) == 0 {
		t.Error("orphan objects not stashed for cleanup")
	}
}

func TestUploadOutfitModelFailure(t *testing.T) {
	repo := &fakeOutfitRepo{}
	storage := &fakeStorage{}
	styleModel := &fakeStyleModel{scoreErr: errors.New("connection refused")}
	svc, _, _ := newOutfitServiceForTest(repo, storage, styleModel)

	_, err := svc.UploadOutfit(context.Background(), 1, testImagePNG(t), "image/png", "")
	if !errors.Is(err, ErrModelCallFailed) {
		t.Fatalf("error = %v, want ErrModelCallFailed", err)
	}
	if len(repo.outfits) != 0 {
		t.Errorf("outfits persisted = %d, want 0", len(repo.outfits))
	}
}

func TestUploadOutfitScoreUnparsable(t *testing.T) {
	repo := &fakeOutfitRepo{}
	storage := &fakeStorage{}
	styleModel := &fakeStyleModel{scoreErr: llm.ErrScoreUnparsable}
	svc, _, _ := newOutfitServiceForTest(repo, storage, styleModel)

	_, err := svc.UploadOutfit(context.Background(), 1, testImagePNG(t), "image/png", "")
	if !errors.Is(err, ErrScoreUnparsable) {
		t.Fatalf("error = %v, want ErrScoreUnparsable", err)
	}
}

func TestUploadOutfitRejectsNonImage(t *testing.T) {
	repo := &fakeOutfitRepo{}
	storage := &fakeStorage{}
	styleModel := &fakeStyleModel{score: 50}
	svc, _, _ := newOutfitServiceForTest(repo, storage, styleModel)

	_, err := svc.UploadOutfit(context.Background(), 1, []byte("plain text"), "text/plain", "")
	if !errors.Is(err, ErrFileNotSupported) {
		t.Fatalf("error = %v, want ErrFileNotSupported", err)
	}
	if styleModel.scoreCalls != 0 {
		t.Errorf("scoreCalls = %d, want 0", styleModel.scoreCalls)
	}
	if len(storage.uploaded) != 0 {
		t.Errorf("uploaded = %d, want 0", len(storage.uploaded))
	}
}

func TestUploadOutfitStoresDimensions(t *testing.T) {
	repo := &fakeOutfitRepo{}
	storage := &fakeStorage{}
	styleModel := &fakeStyleModel{score: 88}
	svc, _, _ := newOutfitServiceForTest(repo, storage, styleModel)

	if _, err := svc.UploadOutfit(context.Background(), 1, testImagePNG(t), "image/png", "Paris"); err != nil {
		t.Fatal(err)
	}

	outfit := repo.outfits[0]
	if outfit.Width != 12 || outfit.Height != 16 {
		t.Errorf("dimensions = %dx%d, want 12x16", outfit.Width, outfit.Height)
	}
	if outfit.Location != "Paris" {
		t.Errorf("Location = %q, want Paris", outfit.Location)
	}
	if outfit.ThumbURL == "" {
		t.Error("ThumbURL is empty, want thumbnail object key")
	}
	// 原图 + 缩略图
	if len(storage.uploaded) != 2 {
		t.Errorf("uploaded = %d, want 2", len(storage.uploaded))
	}
}

func TestGetOutfitNotFound(t *testing.T) {
	repo := &fakeOutfitRepo{}
	svc, _, _ := newOutfitServiceForTest(repo, &fakeStorage{}, &fakeStyleModel{})

	_, err := svc.GetOutfit(context.Background(), 1, 99)
	if !errors.Is(err, ErrOutfitNotFound) {
		t.Fatalf("error = %v, want ErrOutfitNotFound", err)
	}
}
