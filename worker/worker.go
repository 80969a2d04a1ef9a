package worker

import (
	"context"
	"sync/atomic"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker long running job
type Worker interface {
	Run(ctx context.Context) error
}

// OnWork one round of a job
type OnWork func(ctx context.Context) error

// BaseJob cron driven job, a round is skipped while the previous one is running
type BaseJob struct {
	Cron   *cron.Cron
	Spec   string
	OnWork OnWork

	running int32
}

// Run start the cron and block until ctx is done
func (job *BaseJob) Run(ctx context.Context) error {
	if _, err := job.Cron.AddFunc(job.Spec, func() { job.Work(ctx) }); err != nil {
		return err
	}

	job.Cron.Start()
	<-ctx.Done()
	<-job.Cron.Stop().Done()
	return nil
}

// Work run one round unless one is already running
func (job *BaseJob) Work(ctx context.Context) bool {
	if !atomic.CompareAndSwapInt32(&job.running, 0, 1) {
		return false
	}
	defer atomic.StoreInt32(&job.running, 0)

	if err := job.OnWork(ctx); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("job round failed")
	}

	return true
}
