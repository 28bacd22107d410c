package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// DefaultProbeTimeout bounds a single ffprobe run when ctx carries no deadline.
const DefaultProbeTimeout = 30 * time.Second

// FFProbeOutput is the part of `ffprobe -show_format` JSON we read.
type FFProbeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

type probeFunc func(input string, timeout time.Duration, kwargs ffmpeg.KwArgs) (string, error)

// Prober measures media durations with ffprobe.
type Prober struct {
	// Timeout applies when ctx has no deadline; zero means DefaultProbeTimeout.
	Timeout time.Duration

	probe probeFunc
}

// MediaDuration returns the duration of a local file or URL.
func (p Prober) MediaDuration(ctx context.Context, input string) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	probe := p.probe
	if probe == nil {
		probe = ffmpeg.ProbeWithTimeout
	}

	// ffprobe -show_format -show_streams -of json -v quiet <input>
	out, err := probe(input, timeout, ffmpeg.KwArgs{"v": "quiet"})
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", input, err)
	}

	return ParseDuration([]byte(out))
}

// ParseDuration extracts format.duration from ffprobe JSON output.
func ParseDuration(output []byte) (time.Duration, error) {
	var probe FFProbeOutput
	if err := json.Unmarshal(output, &probe); err != nil {
		return 0, fmt.Errorf("error unmarshalling ffprobe output: %w\nOutput: %s", err, output)
	}

	if probe.Format.Duration == "" {
		return 0, fmt.Errorf("could not retrieve duration from ffprobe output\nOutput: %s", output)
	}

	seconds, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing duration string '%s': %w", probe.Format.Duration, err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}
