package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rl1809/epc-inventory/internal/core/service"
)

// Sweeper periodically evicts scan sessions the mobile client walked
// away from. Sessions are memory-only; without the sweeper every
// abandoned counting screen would pin its records forever.
type Sweeper struct {
	cron     *cron.Cron
	sessions *service.SessionService
	idleTTL  time.Duration
	schedule string
	logger   *zap.Logger
}

func NewSweeper(sessions *service.SessionService, schedule string, idleTTL time.Duration, logger *zap.Logger) *Sweeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sweeper{
		cron:     cron.New(),
		sessions: sessions,
		idleTTL:  idleTTL,
		schedule: schedule,
		logger:   logger,
	}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("session sweeper started",
		zap.String("schedule", s.schedule),
		zap.Duration("idle_ttl", s.idleTTL))
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.logger.Info("session sweeper stopped")
}

func (s *Sweeper) sweep() {
	swept := s.sessions.SweepIdle(s.idleTTL)
	if swept > 0 {
		s.logger.Info("swept idle sessions", zap.Int("count", swept))
	}
}
