package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"vidspark/internal/metrics"
	"vidspark/models"
)

var (
	// ErrQueueFull is returned by SubmitJob when no queue slot is free.
	ErrQueueFull = errors.New("job queue full")
	// ErrStopped is returned by SubmitJob after Stop.
	ErrStopped = errors.New("dispatcher stopped")
)

// Job is a unit of work executed by a worker.
type Job interface {
	ID() string   // Job id, matching video_job_statuses.job_id
	Type() string // One of the models.JobType* constants
	Execute(ctx context.Context) (interface{}, error)
}

// StatusReporter receives job lifecycle updates.
type StatusReporter interface {
	UpdateJobStatus(ctx context.Context, jobID string, status string, outputDetails interface{}, errorMessage string) error
}

// Worker pulls jobs off the shared queue until it is closed.
type Worker struct {
	ID         int
	dispatcher *Dispatcher
}

func (w Worker) start(ctx context.Context) {
	d := w.dispatcher
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for job := range d.jobQueue {
			w.process(ctx, job)
		}
		d.log.WithField("worker", w.ID).Debug("Worker stopping")
	}()
}

func (w Worker) process(ctx context.Context, job Job) {
	d := w.dispatcher
	entry := d.log.WithFields(logrus.Fields{"worker": w.ID, "job_id": job.ID(), "job_type": job.Type()})

	entry.Info("Started job")
	d.report(ctx, entry, job.ID(), models.JobProcessing, nil, "")

	output, err := job.Execute(ctx)
	if err != nil {
		entry.WithError(err).Error("Job failed")
		d.report(ctx, entry, job.ID(), models.JobFailed, nil, err.Error())
		metrics.RecordJob(job.Type(), models.JobFailed)
		return
	}

	entry.Info("Finished job")
	d.report(ctx, entry, job.ID(), models.JobCompleted, output, "")
	metrics.RecordJob(job.Type(), models.JobCompleted)
}

// Dispatcher owns a fixed set of workers fed from a bounded queue.
type Dispatcher struct {
	MaxWorkers int
	Workers    []Worker

	jobQueue chan Job
	reporter StatusReporter
	log      *logrus.Logger

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher. reporter may be nil.
func NewDispatcher(maxWorkers int, jobQueueSize int, reporter StatusReporter, log *logrus.Logger) *Dispatcher {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if jobQueueSize < 0 {
		jobQueueSize = 0
	}
	return &Dispatcher{
		MaxWorkers: maxWorkers,
		Workers:    make([]Worker, 0, maxWorkers),
		jobQueue:   make(chan Job, jobQueueSize),
		reporter:   reporter,
		log:        log,
	}
}

// Run starts the workers. ctx is handed to every job.
func (d *Dispatcher) Run(ctx context.Context) {
	d.log.Infof("Dispatcher starting with %d workers...", d.MaxWorkers)
	for i := 1; i <= d.MaxWorkers; i++ {
		worker := Worker{ID: i, dispatcher: d}
		d.Workers = append(d.Workers, worker)
		worker.start(ctx)
	}
}

// SubmitJob queues a job without blocking.
func (d *Dispatcher) SubmitJob(job Job) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.jobQueue <- job:
		d.log.WithField("job_id", job.ID()).Debug("Job submitted to queue")
		return nil
	default:
		metrics.JobsRejected.Inc()
		d.log.WithField("job_id", job.ID()).Warn("Job queue full, job rejected")
		return ErrQueueFull
	}
}

// Stop refuses new jobs, lets the workers drain the queue and waits for them.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobQueue)
	d.mu.Unlock()

	d.log.Info("Dispatcher: waiting for workers to finish")
	d.wg.Wait()
	d.log.Info("Dispatcher: shutdown complete")
}

func (d *Dispatcher) report(ctx context.Context, entry *logrus.Entry, jobID, status string, output interface{}, errMsg string) {
	if d.reporter == nil {
		return
	}
	// Status updates outlive a canceled run so failures still get recorded.
	if err := d.reporter.UpdateJobStatus(context.WithoutCancel(ctx), jobID, status, output, errMsg); err != nil {
		entry.WithError(err).WithField("status", status).Warn("Failed to record job status")
	}
}
