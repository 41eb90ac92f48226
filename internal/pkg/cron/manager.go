package cron

import (
	"Dresscode/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	reminderJob *job.ReminderJob
	cleanupJob  *job.OutfitCleanupJob
}

func NewCronManager(reminderJob *job.ReminderJob, cleanupJob *job.OutfitCleanupJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		reminderJob: reminderJob,
		cleanupJob:  cleanupJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 每天 19 点发上传提醒
	if _, err := s.engine.AddJob("0 0 19 * * *", s.reminderJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@hourly", s.cleanupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
