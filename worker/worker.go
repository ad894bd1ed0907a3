package worker

import (
	"context"
	"sync/atomic"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// IJob scheduled job
type IJob interface {
	Start() error
	Run()
	Stop() error
}

// OnWork one round of work
type OnWork func(ctx context.Context) error

// BaseJob runs OnWork on a cron schedule, a round is skipped while the previous one is still running
type BaseJob struct {
	Name   string
	Cron   *cron.Cron
	OnWork OnWork

	ctx     context.Context
	running int32
}

// NewBaseJob new job scheduled with spec, e.g. "@every 30s"
func NewBaseJob(ctx context.Context, name, spec string, onWork OnWork) (*BaseJob, error) {
	job := &BaseJob{
		Name:   name,
		Cron:   cron.New(),
		OnWork: onWork,
		ctx:    logger.WithContext(ctx, logger.FromContext(ctx).WithField("worker", name)),
	}

	if _, err := job.Cron.AddJob(spec, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

func (job *BaseJob) Stop() error {
	<-job.Cron.Stop().Done()
	return nil
}

func (job *BaseJob) Run() {
	if !atomic.CompareAndSwapInt32(&job.running, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&job.running, 0)

	if err := job.OnWork(job.ctx); err != nil {
		logger.FromContext(job.ctx).WithError(err).Errorln("onWork")
	}
}

// Serve start the job and stop it once ctx is done
func (job *BaseJob) Serve(ctx context.Context) error {
	if err := job.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	return job.Stop()
}
