package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// checkInterval is how often the trigger re-evaluates whether a run is due.
// Coarse enough to be cheap, fine enough that a run never slips by more than
// a minute.
const checkInterval = time.Minute

// DailyTrigger submits the full housekeeping batch once per day at the
// configured hour. A last-run-date guard makes the check idempotent, so
// restarts within the same day do not cause a second run.
type DailyTrigger struct {
	scheduler *Scheduler
	runHour   int
	logger    *zap.Logger

	mu         sync.Mutex
	lastRunDay string // YYYY-MM-DD of the last completed submission
	lastRunAt  *time.Time
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	isRunning  bool
}

// NewDailyTrigger creates a trigger that fires at runHour (0-23) local time
func NewDailyTrigger(s *Scheduler, runHour int, logger *zap.Logger) *DailyTrigger {
	if runHour < 0 || runHour > 23 {
		runHour = 2
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyTrigger{
		scheduler: s,
		runHour:   runHour,
		logger:    logger,
	}
}

// Start launches the trigger loop
func (t *DailyTrigger) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.isRunning {
		t.mu.Unlock()
		return nil
	}
	t.isRunning = true
	t.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.wg.Add(1)
	go t.loop(ctx)

	t.logger.Info("Daily housekeeping trigger started", zap.Int("run_hour", t.runHour))
	return nil
}

// Stop terminates the trigger loop
func (t *DailyTrigger) Stop() {
	t.mu.Lock()
	if !t.isRunning {
		t.mu.Unlock()
		return
	}
	t.isRunning = false
	t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	t.wg.Wait()
	t.logger.Info("Daily housekeeping trigger stopped")
}

// TriggerNow submits the housekeeping batch immediately, bypassing the
// schedule. Used by the manual cron endpoints.
func (t *DailyTrigger) TriggerNow() error {
	if err := t.scheduler.SubmitAll(); err != nil {
		return err
	}
	t.markRan(time.Now())
	return nil
}

// LastRunAt returns when the batch was last submitted
func (t *DailyTrigger) LastRunAt() *time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastRunAt
}

func (t *DailyTrigger) loop(ctx context.Context) {
	defer t.wg.Done()

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !t.shouldRun(now) {
				continue
			}
			if err := t.scheduler.SubmitAll(); err != nil {
				t.logger.Error("Failed to submit housekeeping batch", zap.Error(err))
				continue
			}
			t.markRan(now)
			t.logger.Info("Daily housekeeping batch submitted")
		}
	}
}

func (t *DailyTrigger) shouldRun(now time.Time) bool {
	if now.Hour() != t.runHour {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastRunDay != now.Format("2006-01-02")
}

func (t *DailyTrigger) markRan(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastRunDay = now.Format("2006-01-02")
	t.lastRunAt = &now
}
