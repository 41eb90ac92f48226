package repository

import (
	"Dresscode/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type OutfitRepo interface {
	CreateOutfit(ctx context.Context, outfit *model.Outfit) error
	GetMaxSeqNo(ctx context.Context, userID uint64) (uint64, error)
	GetOutfitBySeqNo(ctx context.Context, userID uint64, seqNo uint64) (*model.Outfit, error)
	GetOutfitsByUserId(ctx context.Context, userID uint64, limit int) ([]*model.Outfit, error)
	GetOutfitsSince(ctx context.Context, userID uint64, since time.Time) ([]*model.Outfit, error)
	GetLatestOutfitBefore(ctx context.Context, userID uint64, before time.Time) (*model.Outfit, error)
}

type outfitRepoImpl struct {
	db *gorm.DB
}

func NewOutfitRepo(db *gorm.DB) OutfitRepo {
	return &outfitRepoImpl{db: db}
}

func (s *outfitRepoImpl) CreateOutfit(ctx context.Context, outfit *model.Outfit) error {
	return s.db.WithContext(ctx).Create(outfit).Error
}

// GetMaxSeqNo 查询该用户已有的最大序号，无记录时返回 0
func (s *outfitRepoImpl) GetMaxSeqNo(ctx context.Context, userID uint64) (uint64, error) {
	var maxSeq uint64
	err := s.db.WithContext(ctx).
		Model(&model.Outfit{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(seq_no), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq, nil
}

func (s *outfitRepoImpl) GetOutfitBySeqNo(ctx context.Context, userID uint64, seqNo uint64) (*model.Outfit, error) {
	var outfit model.Outfit
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND seq_no = ?", userID, seqNo).
		First(&outfit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &outfit, nil
}

func (s *outfitRepoImpl) GetOutfitsByUserId(ctx context.Context, userID uint64, limit int) ([]*model.Outfit, error) {
	outfits := make([]*model.Outfit, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("seq_no DESC").
		Limit(limit).
		Find(&outfits)
	if result.Error != nil {
		return nil, result.Error
	}
	return outfits, nil
}

func (s *outfitRepoImpl) GetOutfitsSince(ctx context.Context, userID uint64, since time.Time) ([]*model.Outfit, error) {
	outfits := make([]*model.Outfit, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&outfits)
	if result.Error != nil {
		return nil, result.Error
	}
	return outfits, nil
}

// GetLatestOutfitBefore 窗口之前最近的一条记录，作图表左侧锚点
func (s *outfitRepoImpl) GetLatestOutfitBefore(ctx context.Context, userID uint64, before time.Time) (*model.Outfit, error) {
	var outfit model.Outfit
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at < ?", userID, before).
		Order("created_at DESC").
		First(&outfit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &outfit, nil
}
