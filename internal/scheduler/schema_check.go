package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/grazy/inventoryapp/internal/config"
	"github.com/grazy/inventoryapp/internal/inspect"
)

// CheckResult is the outcome of the most recent drift check.
type CheckResult struct {
	CheckedAt time.Time `json:"checked_at"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
}

// SchemaCheckScheduler periodically verifies the database against the books
// contract and logs any drift.
type SchemaCheckScheduler struct {
	dbPath string
	cfg    config.SchemaCheck
	verify func(path string) error

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
	last       *CheckResult
}

// NewSchemaCheckScheduler creates a scheduler for the database at dbPath
func NewSchemaCheckScheduler(dbPath string, cfg config.SchemaCheck) *SchemaCheckScheduler {
	return &SchemaCheckScheduler{
		dbPath: dbPath,
		cfg:    cfg,
		verify: inspect.Verify,
		cron:   cron.New(cron.WithParser(newParser())),
	}
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
}

// ValidateCronSchedule checks a standard five-field cron expression
func ValidateCronSchedule(schedule string) error {
	_, err := newParser().Parse(schedule)
	return err
}

// Start begins the scheduler if the check is enabled
func (s *SchemaCheckScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Schema check scheduler: disabled")
		return nil
	}

	if err := ValidateCronSchedule(s.cfg.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.cfg.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		_ = s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule schema check: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Schema check scheduler: started with schedule '%s'", s.cfg.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running check to finish and stops the scheduler
func (s *SchemaCheckScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.cron.Remove(s.entryID)
	s.mu.Unlock()

	// A running check records its result under s.mu, so wait unlocked
	ctx := s.cron.Stop()
	<-ctx.Done()

	if cancel != nil {
		cancel()
	}

	log.Printf("Schema check scheduler: stopped")
}

// RunNow performs a check immediately and records the result
func (s *SchemaCheckScheduler) RunNow() error {
	err := s.verify(s.dbPath)

	result := &CheckResult{CheckedAt: time.Now(), OK: err == nil}
	if err != nil {
		result.Error = err.Error()
		log.Printf("Schema check: %v", err)
	} else {
		log.Printf("Schema check: %s matches the books contract", s.dbPath)
	}

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	return err
}

// IsRunning returns whether the scheduler is active
func (s *SchemaCheckScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// LastResult returns the most recent check, or nil if none has run
func (s *SchemaCheckScheduler) LastResult() *CheckResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil
	}
	r := *s.last
	return &r
}

// GetNextRunTime returns when the next check will occur
func (s *SchemaCheckScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}
