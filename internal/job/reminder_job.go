package job

import (
	"Dresscode/internal/pkg/logger"
	"Dresscode/internal/pkg/push"
	"Dresscode/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

const (
	reminderTitle = "Your style journey awaits"
	reminderBody  = "Upload your first outfit and see how it scores!"
)

// ReminderJob 给登记了推送 token 但还没上传过穿搭的用户发提醒
type ReminderJob struct {
	userRepo   repository.UserRepo
	pushClient *push.Client
}

func NewReminderJob(userRepo repository.UserRepo, pushClient *push.Client) *ReminderJob {
	return &ReminderJob{
		userRepo:   userRepo,
		pushClient: pushClient,
	}
}

func (s *ReminderJob) Run() {
	traceID := "job-reminder-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	profiles, err := s.userRepo.GetUsersWithoutOutfits(ctx)
	if err != nil {
		log.ErrorContext(ctx, "get users without outfits error", "err", err)
		return
	}

	log.InfoContext(ctx, "start sending upload reminders", "count", len(profiles))

	successCount := 0
	for _, profile := range profiles {
		if !push.IsValidToken(profile.PushToken) {
			log.WarnContext(ctx, "skip invalid push token", "user_id", profile.UserID)
			continue
		}

		if err = s.pushClient.Send(ctx, profile.PushToken, reminderTitle, reminderBody); err != nil {
			log.ErrorContext(ctx, "send reminder error", "user_id", profile.UserID, "err", err)
			continue
		}
		successCount++
	}

	log.InfoContext(ctx, "upload reminders finished",
		"total_count", len(profiles),
		"success_count", successCount)
}
