// Package timeline places the scenes of a video on a frame-accurate
// timeline for the preview player.
package timeline

import (
	"math"

	"vidspark/models"
)

const (
	// DefaultFrameRate is the frame rate of the preview player.
	DefaultFrameRate = 30

	// DefaultSceneDuration is the length in seconds given to a scene that
	// carries no caption timing. It is a placeholder, not a derived value.
	DefaultSceneDuration = 5.0
)

// Entry is the placement of one scene on the timeline.
type Entry struct {
	Index            int          `json:"index"`
	StartFrame       int          `json:"start_frame"`
	DurationInFrames int          `json:"duration_in_frames"`
	Scene            models.Scene `json:"scene"`
}

// EndFrame is the first frame after the entry.
func (e Entry) EndFrame() int {
	return e.StartFrame + e.DurationInFrames
}

// Timeline is the ordered scene placement of a whole video.
type Timeline struct {
	FrameRate        int     `json:"frame_rate"`
	Entries          []Entry `json:"entries"`
	DurationInFrames int     `json:"duration_in_frames"`
}

// Calculator converts scene collections into timelines.
// The zero value is not usable; build one with New.
type Calculator struct {
	frameRate       int
	defaultDuration float64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithFrameRate sets the frame rate. Non-positive values keep the default.
func WithFrameRate(fps int) Option {
	return func(c *Calculator) {
		if fps > 0 {
			c.frameRate = fps
		}
	}
}

// WithDefaultSceneDuration overrides the duration, in seconds, of scenes
// without captions. Non-positive values keep the default.
func WithDefaultSceneDuration(seconds float64) Option {
	return func(c *Calculator) {
		if seconds > 0 {
			c.defaultDuration = seconds
		}
	}
}

// New returns a Calculator at DefaultFrameRate and DefaultSceneDuration
// unless overridden.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		frameRate:       DefaultFrameRate,
		defaultDuration: DefaultSceneDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FrameRate returns the frame rate the calculator works at.
func (c *Calculator) FrameRate() int {
	return c.frameRate
}

// Calculate lays the scenes out back to back in increasing index order.
// It never fails: malformed scenes fall back to the default duration and
// caption timings are taken as given.
func (c *Calculator) Calculate(scenes models.SceneCollection) Timeline {
	tl := Timeline{
		FrameRate: c.frameRate,
		Entries:   make([]Entry, 0, len(scenes)),
	}

	start := 0
	for _, idx := range scenes.Indices() {
		scene := scenes[idx]
		frames := c.SceneFrames(scene)
		tl.Entries = append(tl.Entries, Entry{
			Index:            idx,
			StartFrame:       start,
			DurationInFrames: frames,
			Scene:            scene,
		})
		start += frames
	}
	tl.DurationInFrames = start

	return tl
}

// SceneSeconds is the end of the scene's last caption token, or the
// default duration when it has none.
func (c *Calculator) SceneSeconds(s models.Scene) float64 {
	if !s.HasCaptions() {
		return c.defaultDuration
	}
	return s.Captions[len(s.Captions)-1].End
}

// SceneFrames is SceneSeconds converted to whole frames.
func (c *Calculator) SceneFrames(s models.Scene) int {
	return roundHalfUp(c.SceneSeconds(s) * float64(c.frameRate))
}

// Calculate is shorthand for New(WithFrameRate(fps)).Calculate(scenes).
func Calculate(scenes models.SceneCollection, fps int) Timeline {
	return New(WithFrameRate(fps)).Calculate(scenes)
}

// roundHalfUp rounds .5 towards positive infinity, which is how the
// player rounds; math.Round would move -2.5 to -3 instead of -2.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Seconds is the total length of the timeline in seconds.
func (t Timeline) Seconds() float64 {
	if t.FrameRate <= 0 {
		return 0
	}
	return float64(t.DurationInFrames) / float64(t.FrameRate)
}

// EntryAt returns the entry playing at the given frame.
func (t Timeline) EntryAt(frame int) (Entry, bool) {
	if frame < 0 || frame >= t.DurationInFrames {
		return Entry{}, false
	}
	for _, e := range t.Entries {
		if frame >= e.StartFrame && frame < e.EndFrame() {
			return e, true
		}
	}
	return Entry{}, false
}

// Frames strips the scene payload, leaving the placement only.
func (t Timeline) Frames() []models.TimelineFrame {
	out := make([]models.TimelineFrame, 0, len(t.Entries))
	for _, e := range t.Entries {
		out = append(out, models.TimelineFrame{
			Index:            e.Index,
			StartFrame:       e.StartFrame,
			DurationInFrames: e.DurationInFrames,
		})
	}
	return out
}
