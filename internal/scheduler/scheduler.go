package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// ErrStopped is returned when a job is started after Stop
var ErrStopped = errors.New("scheduler is stopped")

// JobFunc is the body of a scheduled job
type JobFunc func(ctx context.Context) error

// JobStatus describes a registered job
type JobStatus struct {
	Name      string     `json:"name"`
	Schedule  string     `json:"schedule"`
	Running   bool       `json:"running"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	LastError string     `json:"last_error,omitempty"`
	NextRun   *time.Time `json:"next_run,omitempty"`
}

type job struct {
	name     string
	schedule string
	run      JobFunc
	entryID  cron.EntryID
	running  bool
	lastRun  *time.Time
	lastErr  string
}

// Scheduler runs named jobs on cron schedules. A job never overlaps
// itself, whether it was fired by its schedule or by RunNow.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger

	mu      sync.Mutex
	jobs    map[string]*job
	wg      sync.WaitGroup
	stopped bool

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler using the standard five-field cron syntax in UTC
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		log:    logger.ForComponent("scheduler"),
		jobs:   make(map[string]*job),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a job. An empty schedule registers a job that only runs through RunNow.
func (s *Scheduler) Register(name, schedule string, run JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s is already registered", name)
	}

	j := &job{name: name, schedule: schedule, run: run}
	if schedule != "" {
		// execute logs its own failures
		id, err := s.cron.AddFunc(schedule, func() { _ = s.execute(s.ctx, j) })
		if err != nil {
			return fmt.Errorf("invalid schedule %q for job %s: %w", schedule, name, err)
		}
		j.entryID = id
	}
	s.jobs[name] = j
	return nil
}

// Start begins firing scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Infof("Scheduler started with %d jobs", len(s.jobs))
}

// Stop stops firing jobs and waits for running ones until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	cronDone := s.cron.Stop()
	s.cancel()

	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow runs a job synchronously
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return apperrors.ErrTaskNotFound
	}
	return s.execute(ctx, j)
}

// Jobs lists the registered jobs by name
func (s *Scheduler) Jobs() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]JobStatus, 0, len(s.jobs))
	for _, j := range s.jobs {
		status := JobStatus{
			Name:      j.name,
			Schedule:  j.schedule,
			Running:   j.running,
			LastRun:   j.lastRun,
			LastError: j.lastErr,
		}
		if j.entryID != 0 {
			if next := s.cron.Entry(j.entryID).Next; !next.IsZero() {
				status.NextRun = &next
			}
		}
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, k int) bool { return statuses[i].Name < statuses[k].Name })
	return statuses
}

func (s *Scheduler) execute(ctx context.Context, j *job) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrStopped
	}
	if j.running {
		s.mu.Unlock()
		s.log.WithField("job", j.name).Warn("Job is still running, skipping")
		return apperrors.ErrTaskAlreadyRunning
	}
	j.running = true
	s.wg.Add(1)
	s.mu.Unlock()

	started := time.Now().UTC()
	log := s.log.WithField("job", j.name)
	log.Info("Job started")

	err := s.safeRun(ctx, j)

	s.mu.Lock()
	j.running = false
	j.lastRun = &started
	j.lastErr = ""
	if err != nil {
		j.lastErr = err.Error()
	}
	s.mu.Unlock()
	s.wg.Done()

	log = log.WithField("duration", time.Since(started).String())
	if err != nil {
		log.Errorf("Job failed: %v", err)
		return err
	}
	log.Info("Job finished")
	return nil
}

func (s *Scheduler) safeRun(ctx context.Context, j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", j.name, r)
		}
	}()
	return j.run(ctx)
}
