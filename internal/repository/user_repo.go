package repository

import (
	"Dresscode/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetProfileByUserId(ctx context.Context, userID uint64) (*model.UserProfile, error)
	CreateUser(ctx context.Context, user *model.User, profile *model.UserProfile) error
	UpdateProfile(ctx context.Context, profile *model.UserProfile) error
	UpdatePlan(ctx context.Context, userID uint64, plan string, status string, expiresAt *time.Time) error
	UpdatePushToken(ctx context.Context, userID uint64, token string) error
	GetUsersWithoutOutfits(ctx context.Context) ([]*model.UserProfile, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Profile").
		First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Where("username = ?", username).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetProfileByUserId(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	profile := &model.UserProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(profile)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return profile, nil
}

// CreateUser 同事务写入用户与档案
func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User, profile *model.UserProfile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (s *UserRepoImpl) UpdateProfile(ctx context.Context, profile *model.UserProfile) error {
	return s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"nickname":   profile.Nickname,
			"avatar_url": profile.AvatarURL,
		}).Error
}

func (s *UserRepoImpl) UpdatePlan(ctx context.Context, userID uint64, plan string, status string, expiresAt *time.Time) error {
	return s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"plan":            plan,
			"plan_status":     status,
			"plan_expires_at": expiresAt,
		}).Error
}

func (s *UserRepoImpl) UpdatePushToken(ctx context.Context, userID uint64, token string) error {
	return s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Update("push_token", token).Error
}

// GetUsersWithoutOutfits 找出还没有任何穿搭记录且登记过推送 token 的用户
func (s *UserRepoImpl) GetUsersWithoutOutfits(ctx context.Context) ([]*model.UserProfile, error) {
	profiles := make([]*model.UserProfile, 0)
	result := s.db.WithContext(ctx).
		Where("push_token <> ''").
		Where("user_id NOT IN (?)",
			s.db.Model(&model.Outfit{}).Select("user_id"),
		).
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}
