// Package metrics provides Prometheus metrics for timeline computation and
// the background processor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Timeline sources.
const (
	SourceRequest = "request"
	SourceVideo   = "video"
	SourceJob     = "job"
)

var (
	// TimelinesComputed counts calculator runs by where the scenes came from.
	TimelinesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidspark_timelines_computed_total",
		Help: "Total number of timelines computed, by source.",
	}, []string{"source"})

	// TimelineScenes observes the scene count of computed timelines.
	TimelineScenes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vidspark_timeline_scenes",
		Help:    "Number of scenes per computed timeline.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})

	// TimelineCacheLookups counts timeline cache lookups by result (hit/miss).
	TimelineCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidspark_timeline_cache_lookups_total",
		Help: "Total number of timeline cache lookups, by result.",
	}, []string{"result"})

	// JobsProcessed counts finished processor jobs by type and final status.
	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidspark_jobs_processed_total",
		Help: "Total number of processed jobs, by type and status.",
	}, []string{"job_type", "status"})

	// JobsRejected counts jobs dropped because the worker queue was full.
	JobsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidspark_jobs_rejected_total",
		Help: "Total number of jobs rejected because the worker queue was full.",
	})
)

// RecordTimeline records one calculator run.
func RecordTimeline(source string, scenes int) {
	TimelinesComputed.WithLabelValues(source).Inc()
	TimelineScenes.Observe(float64(scenes))
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	TimelineCacheLookups.WithLabelValues(result).Inc()
}

// RecordJob records a finished job.
func RecordJob(jobType, status string) {
	JobsProcessed.WithLabelValues(jobType, status).Inc()
}
