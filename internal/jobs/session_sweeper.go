package jobs

import (
	"fmt"
	"time"

	"KasfoMonitor/internal/config"
	"KasfoMonitor/internal/logger"
	"KasfoMonitor/internal/session"

	"github.com/robfig/cron/v3"
)

// SweepConfig holds configuration for the expired-session sweeper.
type SweepConfig struct {
	Schedule string
	TimeZone string
}

func NewDefaultSweepConfig() *SweepConfig {
	return &SweepConfig{
		Schedule: config.DefaultSweepSchedule,
		TimeZone: config.DefaultTimeZone,
	}
}

// RunSessionSweeper schedules SweepExpiredSessions and starts the scheduler.
// An unknown time zone falls back to UTC.
func RunSessionSweeper(cfg *SweepConfig, sessions *session.Manager) (*cron.Cron, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = config.DefaultSweepSchedule
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = config.DefaultTimeZone
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(cfg.Schedule, func() {
		SweepExpiredSessions(sessions)
	})
	if err != nil {
		return nil, fmt.Errorf("unable to schedule session sweeper: %w", err)
	}

	c.Start()
	logger.GlobalLogger.LogAudit(fmt.Sprintf("Session sweeper scheduled (%s, %s)", cfg.Schedule, loc))
	return c, nil
}

// SweepExpiredSessions drops expired sessions and their uploaded tables.
func SweepExpiredSessions(sessions *session.Manager) int {
	removed := sessions.CleanupExpiredSessions()
	if removed > 0 {
		logger.GlobalLogger.LogAudit(fmt.Sprintf("Session sweeper removed %d expired session(s), %d active", removed, sessions.Len()))
	}
	return removed
}
