package job

import (
	"Dresscode/internal/api/dto"
	"Dresscode/internal/pkg/consts"
	"Dresscode/internal/pkg/minio"
	"Dresscode/internal/pkg/redis"
	"context"
	"encoding/json"
	log "log/slog"
	"time"
)

// OutfitCleanupJob 清理评分失败后留在对象存储里的孤儿图片
type OutfitCleanupJob struct{}

func NewOutfitCleanupJob() *OutfitCleanupJob {
	return &OutfitCleanupJob{}
}

func (s *OutfitCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start outfit cleanup job")

	allOrphans, err := redis.HGetAll(ctx, consts.OutfitUploadTempKey)
	if err != nil {
		log.Error("failed to get outfit temp hash", "err", err)
		return
	}

	now := time.Now().Unix()
	expiration := int64(24 * 60 * 60)
	count := 0

	for field, val := range allOrphans {
		var meta dto.OutfitTempMetadata
		if err := json.Unmarshal([]byte(val), &meta); err != nil {
			log.Warn("invalid outfit meta format", "field", field)
			continue
		}

		if now-meta.CreatedAt <= expiration {
			continue
		}

		failed := false
		for _, objectName := range meta.Objects {
			if err = minio.DeleteFile(ctx, objectName); err != nil {
				log.Error("failed to delete orphan object from minio", "object", objectName, "err", err)
				failed = true
			}
		}
		if failed {
			continue
		}

		if err = redis.HDel(ctx, consts.OutfitUploadTempKey, field); err != nil {
			log.Error("failed to remove outfit temp entry from redis", "field", field, "err", err)
		}

		count++
		log.Info("cleanup orphan outfit objects", "objects", meta.Objects)
	}

	if count > 0 {
		log.Info("outfit cleanup job finished", "cleaned_count", count)
	}
}
