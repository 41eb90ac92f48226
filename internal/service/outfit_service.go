package service

import (
	"Dresscode/internal/api/dto"
	"Dresscode/internal/model"
	"Dresscode/internal/pkg/consts"
	"Dresscode/internal/pkg/llm"
	"Dresscode/internal/pkg/util"
	"Dresscode/internal/repository"
	"bytes"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type OutfitService interface {
	UploadOutfit(ctx context.Context, userID uint64, data []byte, contentType string, location string) (*dto.OutfitUploadResultDTO, error)
	GetOutfits(ctx context.Context, userID uint64, limit int) ([]*dto.OutfitDTO, error)
	GetOutfit(ctx context.Context, userID uint64, seqNo uint64) (*dto.OutfitDTO, error)
}

type OutfitServiceImpl struct {
	outfitRepo repository.OutfitRepo
	storage    ObjectStorage
	styleModel StyleModel
	locker     Locker
	cache      CacheStore
}

func NewOutfitService(outfitRepo repository.OutfitRepo, storage ObjectStorage, styleModel StyleModel, locker Locker, cache CacheStore) OutfitService {
	return &OutfitServiceImpl{
		outfitRepo: outfitRepo,
		storage:    storage,
		styleModel: styleModel,
		locker:     locker,
		cache:      cache,
	}
}

// UploadOutfit 上传穿搭图并评分。
// 评分失败时记录（不落库）已上传的对象，由清理任务兜底删除；
// 评分成功后在用户级锁内分配序号并落库。
func (s *OutfitServiceImpl) UploadOutfit(ctx context.Context, userID uint64, data []byte, contentType string, location string) (*dto.OutfitUploadResultDTO, error) {
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	img, width, height, err := util.DecodeImage(data)
	if err != nil {
		log.WarnContext(ctx, "穿搭上传-图片解码失败", "err", err)
		return nil, ErrFileNotSupported
	}

	objectName := strconv.FormatUint(userID, 10) + "/" + time.Now().Format("2006/01/02/") + uuid.NewString() + extFromContentType(contentType)
	fileKey, err := s.storage.Upload(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		log.ErrorContext(ctx, "穿搭上传-原图上传失败", "err", err)
		return nil, UnExpectedError
	}

	var thumbKey string
	thumb, err := util.MakeThumbnail(img)
	if err != nil {
		log.WarnContext(ctx, "穿搭上传-缩略图生成失败", "err", err)
	} else {
		thumbName := "thumbs/" + strings.TrimSuffix(objectName, extFromContentType(contentType)) + ".jpg"
		thumbKey, err = s.storage.Upload(ctx, thumbName, thumb, int64(thumb.Len()), "image/jpeg")
		if err != nil {
			log.WarnContext(ctx, "穿搭上传-缩略图上传失败", "err", err)
			thumbKey = ""
		}
	}

	score, err := s.styleModel.ScoreOutfit(ctx, s.storage.PublicURL(fileKey))
	if err != nil {
		s.stashOrphanObjects(ctx, fileKey, thumbKey)
		switch {
		case errors.Is(err, llm.ErrNoOutfitDetected):
			return nil, ErrNoOutfitDetected
		case errors.Is(err, llm.ErrScoreUnparsable):
			return nil, ErrScoreUnparsable
		default:
			return nil, ErrModelCallFailed
		}
	}

	outfit := &model.Outfit{
		UserID:   userID,
		ImageURL: fileKey,
		ThumbURL: thumbKey,
		Score:    score,
		Location: location,
		Width:    width,
		Height:   height,
	}
	if err = s.createWithNextSeqNo(ctx, userID, outfit); err != nil {
		log.ErrorContext(ctx, "穿搭上传-记录写入失败", "err", err)
		s.stashOrphanObjects(ctx, fileKey, thumbKey)
		return nil, UnExpectedError
	}

	// 当日数据变了，进度缓存作废
	_ = s.cache.Delete(ctx, consts.ProgressDailyKey+strconv.FormatUint(userID, 10))

	log.InfoContext(ctx, "穿搭上传-评分落库成功", "seq_no", outfit.SeqNo, "score", score)
	return &dto.OutfitUploadResultDTO{
		SeqNo:    outfit.SeqNo,
		ImageURL: s.storage.PublicURL(fileKey),
		Score:    score,
	}, nil
}

// createWithNextSeqNo 在用户级锁内取最大序号加一并写入，
// 唯一索引 (user_id, seq_no) 兜底锁失效时的并发
func (s *OutfitServiceImpl) createWithNextSeqNo(ctx context.Context, userID uint64, outfit *model.Outfit) error {
	lockKey := consts.OutfitSeqLock + strconv.FormatUint(userID, 10)
	lockUUID := uuid.NewString()

	ok, err := s.locker.TryLock(ctx, lockKey, lockUUID, 5*time.Second, 10)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("acquire seq lock timeout")
	}
	defer s.locker.Unlock(ctx, lockKey, lockUUID)

	maxSeq, err := s.outfitRepo.GetMaxSeqNo(ctx, userID)
	if err != nil {
		return err
	}
	outfit.SeqNo = maxSeq + 1

	return s.outfitRepo.CreateOutfit(ctx, outfit)
}

// stashOrphanObjects 把未落库的对象登记到 Redis，等清理任务删除
func (s *OutfitServiceImpl) stashOrphanObjects(ctx context.Context, keys ...string) {
	objects := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != "" {
			objects = append(objects, key)
		}
	}
	if len(objects) == 0 {
		return
	}

	meta := dto.OutfitTempMetadata{
		Objects:   objects,
		CreatedAt: time.Now().Unix(),
	}
	metaBytes, _ := json.Marshal(meta)
	if err := s.cache.HSet(ctx, consts.OutfitUploadTempKey, objects[0], string(metaBytes)); err != nil {
		log.ErrorContext(ctx, "穿搭上传-孤儿对象登记失败", "objects", objects, "err", err)
	}
}

func (s *OutfitServiceImpl) GetOutfits(ctx context.Context, userID uint64, limit int) ([]*dto.OutfitDTO, error) {
	outfits, err := s.outfitRepo.GetOutfitsByUserId(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.OutfitDTO, 0, len(outfits))
	for _, outfit := range outfits {
		result = append(result, s.toOutfitDTO(outfit))
	}
	return result, nil
}

func (s *OutfitServiceImpl) GetOutfit(ctx context.Context, userID uint64, seqNo uint64) (*dto.OutfitDTO, error) {
	outfit, err := s.outfitRepo.GetOutfitBySeqNo(ctx, userID, seqNo)
	if err != nil {
		return nil, err
	}
	if outfit == nil {
		return nil, ErrOutfitNotFound
	}
	return s.toOutfitDTO(outfit), nil
}

func (s *OutfitServiceImpl) toOutfitDTO(outfit *model.Outfit) *dto.OutfitDTO {
	outfitDTO := &dto.OutfitDTO{
		SeqNo:     outfit.SeqNo,
		ImageURL:  s.storage.PublicURL(outfit.ImageURL),
		Score:     outfit.Score,
		Location:  outfit.Location,
		Width:     outfit.Width,
		Height:    outfit.Height,
		CreatedAt: outfit.CreatedAt.Format(time.RFC3339),
	}
	if outfit.ThumbURL != "" {
		outfitDTO.ThumbURL = s.storage.PublicURL(outfit.ThumbURL)
	}
	return outfitDTO
}

func extFromContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
