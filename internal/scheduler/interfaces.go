package scheduler

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/scheduler_mocks.go -package=mocks

// TaskRunnerInterface runs and lists maintenance jobs
type TaskRunnerInterface interface {
	RunNow(ctx context.Context, name string) error
	Jobs() []JobStatus
}
