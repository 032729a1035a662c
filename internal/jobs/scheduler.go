package jobs

import (
	"fmt"
	"log"

	"KasfoMonitor/internal/config"
	"KasfoMonitor/internal/logger"
	"KasfoMonitor/internal/serviceiface"
	"KasfoMonitor/internal/session"

	"github.com/robfig/cron/v3"
)

// CronService runs the periodic housekeeping jobs.
type CronService struct {
	config   map[string]interface{}
	sessions *session.Manager
	cron     *cron.Cron
}

func NewCronService(cfg map[string]interface{}, sessions *session.Manager) serviceiface.Service {
	return &CronService{
		config:   cfg,
		sessions: sessions,
	}
}

func (s *CronService) Name() string {
	return "cron"
}

func (s *CronService) Start() error {
	log.Println("Starting cron service...")

	sweepConfig := NewDefaultSweepConfig()
	sweepConfig.Schedule = config.String(s.config, "sweep_schedule", sweepConfig.Schedule)
	sweepConfig.TimeZone = config.String(s.config, "timezone", sweepConfig.TimeZone)

	c, err := RunSessionSweeper(sweepConfig, s.sessions)
	if err != nil {
		return fmt.Errorf("failed to start session sweeper: %w", err)
	}
	s.cron = c

	logger.GlobalLogger.LogAudit("Cron service started with session sweeper")
	return nil
}

// Stop waits for a running sweep to finish.
func (s *CronService) Stop() error {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	return nil
}
