package service

import (
	"Dresscode/internal/api/dto"
	"Dresscode/internal/model"
	"Dresscode/internal/pkg/consts"
	"Dresscode/internal/pkg/push"
	"Dresscode/internal/pkg/redis"
	"Dresscode/internal/pkg/security"
	"Dresscode/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) error
	Login(ctx context.Context, dto *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, dto *dto.ProfileUpdateDTO) error
	UpdatePushToken(ctx context.Context, id uint64, token string) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: &regDTO.Username,
		Password: &passwordHash,
	}

	nickname := regDTO.Nickname
	if nickname == "" {
		nickname = regDTO.Username
	}
	profile := &model.UserProfile{
		Nickname:   nickname,
		AvatarURL:  consts.DefaultAvatarURL,
		Plan:       consts.PlanFree,
		PlanStatus: consts.PlanStatusActive,
	}

	err = s.userRepo.CreateUser(ctx, user, profile)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil || user.IsDelete {
		return "", ErrUserNotFound
	}
	if user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	err = security.CheckPasswordHash(credDTO.Password, *user.Password)
	if err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout 把 token 签名拉黑到过期为止
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	err = redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
	if err != nil {
		return err
	}
	return nil
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	err = copier.Copy(userDTO, &user.Profile)
	if err != nil {
		return nil, err
	}
	userDTO.UserID = user.ID
	userDTO.Username = user.Username
	userDTO.CreatedAt = &user.CreatedAt
	return userDTO, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, updateDTO *dto.ProfileUpdateDTO) error {
	profile, err := s.userRepo.GetProfileByUserId(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUserNotFound
	}

	if updateDTO.Nickname != "" {
		profile.Nickname = updateDTO.Nickname
	}
	if updateDTO.AvatarURL != "" {
		profile.AvatarURL = updateDTO.AvatarURL
	}
	return s.userRepo.UpdateProfile(ctx, profile)
}

// UpdatePushToken 登记设备推送 token，格式不合法直接拒绝
func (s *UserServiceImpl) UpdatePushToken(ctx context.Context, id uint64, token string) error {
	if !push.IsValidToken(token) {
		return ErrParamInvalid
	}
	return s.userRepo.UpdatePushToken(ctx, id, token)
}

// expireStaleSubscription 把已过期但状态仍为 active 的订阅改为 expired
func expireStaleSubscription(ctx context.Context, userRepo repository.UserRepo, profile *model.UserProfile) {
	if profile == nil || profile.PlanStatus != consts.PlanStatusActive {
		return
	}
	if profile.PlanExpiresAt == nil || profile.PlanExpiresAt.After(time.Now()) {
		return
	}
	profile.PlanStatus = consts.PlanStatusExpired
	_ = userRepo.UpdatePlan(ctx, profile.UserID, profile.Plan, consts.PlanStatusExpired, profile.PlanExpiresAt)
}
