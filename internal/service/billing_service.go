package service

import (
	"Dresscode/internal/api/config"
	"Dresscode/internal/api/dto"
	"Dresscode/internal/pkg/consts"
	"Dresscode/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type BillingService interface {
	CreateIntent(ctx context.Context, userID uint64, intentDTO *dto.BillingIntentDTO) (*dto.BillingIntentResultDTO, error)
	ActivateSubscription(ctx context.Context, userID uint64, subDTO *dto.SubscriptionDTO) error
	GetSubscription(ctx context.Context, userID uint64) (*dto.SubscriptionDTO, error)
}

type BillingServiceImpl struct {
	userRepo repository.UserRepo
	provider BillingProvider
}

func NewBillingService(userRepo repository.UserRepo, provider BillingProvider) BillingService {
	return &BillingServiceImpl{
		userRepo: userRepo,
		provider: provider,
	}
}

// CreateIntent 向支付服务商创建支付意向，返回 client secret 给移动端确认
func (s *BillingServiceImpl) CreateIntent(ctx context.Context, userID uint64, intentDTO *dto.BillingIntentDTO) (*dto.BillingIntentResultDTO, error) {
	amount, ok := config.Cfg.Billing.PlanPrices[intentDTO.Plan]
	if !ok {
		return nil, ErrPlanInvalid
	}

	intent, err := s.provider.CreatePaymentIntent(ctx, userID, intentDTO.Plan, amount, config.Cfg.Billing.Currency)
	if err != nil {
		log.ErrorContext(ctx, "订阅支付-创建支付意向失败", "plan", intentDTO.Plan, "err", err)
		return nil, UnExpectedError
	}

	log.InfoContext(ctx, "订阅支付-支付意向已创建", "plan", intentDTO.Plan, "intent_id", intent.ID)
	return &dto.BillingIntentResultDTO{ClientSecret: intent.ClientSecret}, nil
}

// ActivateSubscription 支付完成后回写订阅状态。
// 客户端不传到期时间时按计划周期推算。
func (s *BillingServiceImpl) ActivateSubscription(ctx context.Context, userID uint64, subDTO *dto.SubscriptionDTO) error {
	if subDTO.Plan != consts.PlanMonthly && subDTO.Plan != consts.PlanYearly {
		return ErrPlanInvalid
	}
	if subDTO.Status != consts.PlanStatusActive && subDTO.Status != consts.PlanStatusCanceled {
		return ErrParamInvalid
	}

	var expiresAt time.Time
	if subDTO.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, subDTO.ExpiresAt)
		if err != nil {
			return ErrParamInvalid
		}
		expiresAt = parsed
	} else if subDTO.Plan == consts.PlanMonthly {
		expiresAt = time.Now().AddDate(0, 1, 0)
	} else {
		expiresAt = time.Now().AddDate(1, 0, 0)
	}

	err := s.userRepo.UpdatePlan(ctx, userID, subDTO.Plan, subDTO.Status, &expiresAt)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "订阅支付-订阅状态已更新", "plan", subDTO.Plan, "status", subDTO.Status)
	return nil
}

func (s *BillingServiceImpl) GetSubscription(ctx context.Context, userID uint64) (*dto.SubscriptionDTO, error) {
	profile, err := s.userRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	expireStaleSubscription(ctx, s.userRepo, profile)

	subDTO := &dto.SubscriptionDTO{
		Plan:   profile.Plan,
		Status: profile.PlanStatus,
	}
	if profile.PlanExpiresAt != nil {
		subDTO.ExpiresAt = profile.PlanExpiresAt.Format(time.RFC3339)
	}
	return subDTO, nil
}
