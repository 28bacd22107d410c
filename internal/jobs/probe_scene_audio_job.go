package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"vidspark/internal/timeline"
	"vidspark/models"
)

const defaultProbeConcurrency = 4

// ProbeSceneAudioJob measures each scene's narration audio next to the
// duration the timeline gives the scene. It reports only; the timeline is
// not changed.
type ProbeSceneAudioJob struct {
	JobID   string
	VideoID uuid.UUID

	store       VideoStore
	resolver    AudioResolver
	prober      DurationProber
	calculator  *timeline.Calculator
	concurrency int
	log         *logrus.Logger
}

// SceneAudio is one row of the probe report.
type SceneAudio struct {
	Index           int      `json:"index"`
	Voice           string   `json:"voice"`
	AudioSeconds    *float64 `json:"audio_seconds,omitempty"`
	TimelineSeconds float64  `json:"timeline_seconds"`
	Captioned       bool     `json:"captioned"`
	Error           string   `json:"error,omitempty"`
}

// ID returns the job id.
func (j *ProbeSceneAudioJob) ID() string { return j.JobID }

// Type returns PROBE_SCENE_AUDIO.
func (j *ProbeSceneAudioJob) Type() string { return models.JobTypeProbeSceneAudio }

// Execute probes every scene that has a voice reference. A scene whose
// audio cannot be probed gets an error in its row; the job itself only
// fails when the video cannot be loaded or the run is canceled.
func (j *ProbeSceneAudioJob) Execute(ctx context.Context) (interface{}, error) {
	video, err := j.store.GetVideo(ctx, j.VideoID)
	if err != nil {
		return nil, fmt.Errorf("load video %s: %w", j.VideoID, err)
	}

	var report []SceneAudio
	for _, idx := range video.Scenes.Indices() {
		scene := video.Scenes[idx]
		if scene.Voice == nil || *scene.Voice == "" {
			continue
		}
		report = append(report, SceneAudio{
			Index:           idx,
			Voice:           *scene.Voice,
			TimelineSeconds: j.calculator.SceneSeconds(scene),
			Captioned:       scene.HasCaptions(),
		})
	}

	limit := j.concurrency
	if limit <= 0 {
		limit = defaultProbeConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range report {
		row := &report[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			url, err := j.resolver.Resolve(gctx, row.Voice)
			if err != nil {
				row.Error = err.Error()
				return nil
			}
			d, err := j.prober.MediaDuration(gctx, url)
			if err != nil {
				row.Error = err.Error()
				return nil
			}
			seconds := d.Seconds()
			row.AudioSeconds = &seconds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("probe scene audio for video %s: %w", j.VideoID, err)
	}

	j.log.WithFields(logrus.Fields{
		"job_id":   j.JobID,
		"video_id": j.VideoID,
		"scenes":   len(report),
	}).Info("Probed scene audio")

	if report == nil {
		report = []SceneAudio{}
	}
	return report, nil
}
