package service

import (
	"Dresscode/internal/model"
	"Dresscode/internal/pkg/llm"
	"Dresscode/internal/pkg/mongo"
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"
	"time"
)

type fakeOutfitRepo struct {
	outfits   []*model.Outfit
	createErr error
}

func (s *fakeOutfitRepo) CreateOutfit(ctx context.Context, outfit *model.Outfit) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.outfits = append(s.outfits, outfit)
	return nil
}

func (s *fakeOutfitRepo) GetMaxSeqNo(ctx context.Context, userID uint64) (uint64, error) {
	var maxSeq uint64
	for _, outfit := range s.outfits {
		if outfit.UserID == userID && outfit.SeqNo > maxSeq {
			maxSeq = outfit.SeqNo
		}
	}
	return maxSeq, nil
}

func (s *fakeOutfitRepo) GetOutfitBySeqNo(ctx context.Context, userID uint64, seqNo uint64) (*model.Outfit, error) {
	for _, outfit := range s.outfits {
		if outfit.UserID == userID && outfit.SeqNo == seqNo {
			return outfit, nil
		}
	}
	return nil, nil
}

func (s *fakeOutfitRepo) GetOutfitsByUserId(ctx context.Context, userID uint64, limit int) ([]*model.Outfit, error) {
	result := make([]*model.Outfit, 0)
	for _, outfit := range s.outfits {
		if outfit.UserID == userID && len(result) < limit {
			result = append(result, outfit)
		}
	}
	return result, nil
}

func (s *fakeOutfitRepo) GetOutfitsSince(ctx context.Context, userID uint64, since time.Time) ([]*model.Outfit, error) {
	result := make([]*model.Outfit, 0)
	for _, outfit := range s.outfits {
		if outfit.UserID == userID && !outfit.CreatedAt.Before(since) {
			result = append(result, outfit)
		}
	}
	return result, nil
}

func (s *fakeOutfitRepo) GetLatestOutfitBefore(ctx context.Context, userID uint64, before time.Time) (*model.Outfit, error) {
	var latest *model.Outfit
	for _, outfit := range s.outfits {
		if outfit.UserID != userID || !outfit.CreatedAt.Before(before) {
			continue
		}
		if latest == nil || outfit.CreatedAt.After(latest.CreatedAt) {
			latest = outfit
		}
	}
	return latest, nil
}

type fakeUserRepo struct {
	users    map[uint64]*model.User
	profiles map[uint64]*model.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[uint64]*model.User),
		profiles: make(map[uint64]*model.UserProfile),
	}
}

func (s *fakeUserRepo) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	return s.users[id], nil
}

func (s *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username != nil && *user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) GetProfileByUserId(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	return s.profiles[userID], nil
}

func (s *fakeUserRepo) CreateUser(ctx context.Context, user *model.User, profile *model.UserProfile) error {
	user.ID = uint64(len(s.users) + 1)
	profile.UserID = user.ID
	s.users[user.ID] = user
	s.profiles[user.ID] = profile
	return nil
}

func (s *fakeUserRepo) UpdateProfile(ctx context.Context, profile *model.UserProfile) error {
	s.profiles[profile.UserID] = profile
	return nil
}

func (s *fakeUserRepo) UpdatePlan(ctx context.Context, userID uint64, plan string, status string, expiresAt *time.Time) error {
	profile, ok := s.profiles[userID]
	if !ok {
		profile = &model.UserProfile{UserID: userID}
		s.profiles[userID] = profile
	}
	profile.Plan = plan
	profile.PlanStatus = status
	profile.PlanExpiresAt = expiresAt
	return nil
}

func (s *fakeUserRepo) UpdatePushToken(ctx context.Context, userID uint64, token string) error {
	if profile, ok := s.profiles[userID]; ok {
		profile.PushToken = token
	}
	return nil
}

func (s *fakeUserRepo) GetUsersWithoutOutfits(ctx context.Context) ([]*model.UserProfile, error) {
	return nil, nil
}

type fakeAnalysisRepo struct {
	docs    []*mongo.StyleAnalysis
	saveErr error
}

func (s *fakeAnalysisRepo) GetByOutfit(ctx context.Context, userID uint64, outfitSeq uint64) (*mongo.StyleAnalysis, error) {
	for _, doc := range s.docs {
		if doc.UserID == userID && doc.OutfitSeq == outfitSeq {
			return doc, nil
		}
	}
	return nil, nil
}

func (s *fakeAnalysisRepo) Save(ctx context.Context, analysis *mongo.StyleAnalysis) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.docs = append(s.docs, analysis)
	return nil
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (s *fakeStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	s.uploaded = append(s.uploaded, objectName)
	return objectName, nil
}

func (s *fakeStorage) Delete(ctx context.Context, objectName string) error {
	s.deleted = append(s.deleted, objectName)
	return nil
}

func (s *fakeStorage) PublicURL(objectName string) string {
	return "https://cdn.test/" + objectName
}

type fakeStyleModel struct {
	score        int
	scoreErr     error
	scoreCalls   int
	analysis     *llm.StyleAnalysisResult
	analyzeErr   error
	analyzeCalls int
}

func (s *fakeStyleModel) ScoreOutfit(ctx context.Context, imageURL string) (int, error) {
	s.scoreCalls++
	if s.scoreErr != nil {
		return 0, s.scoreErr
	}
	return s.score, nil
}

func (s *fakeStyleModel) AnalyzeOutfit(ctx context.Context, imageURL string) (*llm.StyleAnalysisResult, error) {
	s.analyzeCalls++
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	return s.analysis, nil
}

type fakeLocker struct {
	locks   int
	unlocks int
}

func (s *fakeLocker) TryLock(ctx context.Context, key string, value string, expiration time.Duration, retryTimes int) (bool, error) {
	s.locks++
	return true, nil
}

func (s *fakeLocker) Unlock(ctx context.Context, key string, value string) {
	s.unlocks++
}

type fakeCache struct {
	values map[string]string
	hashes map[string]map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		values: make(map[string]string),
		hashes: make(map[string]map[string]string),
	}
}

func (s *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return s.values[key], nil
}

func (s *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	str, _ := value.(string)
	s.values[key] = str
	return nil
}

func (s *fakeCache) Delete(ctx context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func (s *fakeCache) HSet(ctx context.Context, key string, field string, value interface{}) error {
	if s.hashes[key] == nil {
		s.hashes[key] = make(map[string]string)
	}
	str, _ := value.(string)
	s.hashes[key][field] = str
	return nil
}

func (s *fakeCache) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return s.hashes[key], nil
}

func (s *fakeCache) HDel(ctx context.Context, key string, field string) error {
	if s.hashes[key] != nil {
		delete(s.hashes[key], field)
	}
	return nil
}

// testImagePNG 生成一张可被解码的最小图片
func testImagePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 16))
	for x := 0; x < 12; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 180, B: 160, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
