package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vidspark/internal/timeline"
	"vidspark/models"
)

const maxFrameRate = 240

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vidspark",
		Short: "Scene timeline tools for generated videos",
		Long: `vidspark lays the scenes of a generated video out on a frame timeline.
Input files hold either a stored video record or a bare scene collection
keyed by scene index. Use "-" to read from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTimelineCmd())
	root.AddCommand(newCaptionsCmd())
	return root
}

// timelineFlags are shared by every command that computes a timeline.
type timelineFlags struct {
	file           string
	fps            int
	defaultSeconds float64
}

func (f *timelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "video or scene collection JSON file (required)")
	cmd.Flags().IntVar(&f.fps, "fps", timeline.DefaultFrameRate, "frame rate (1-240)")
	cmd.Flags().Float64Var(&f.defaultSeconds, "default-seconds", timeline.DefaultSceneDuration, "duration of scenes without captions")
	_ = cmd.MarkFlagRequired("file")
}

func (f *timelineFlags) calculate(cmd *cobra.Command) (timeline.Timeline, error) {
	if f.fps < 1 || f.fps > maxFrameRate {
		return timeline.Timeline{}, fmt.Errorf("--fps must be between 1 and %d, got %d", maxFrameRate, f.fps)
	}
	if f.defaultSeconds <= 0 {
		return timeline.Timeline{}, fmt.Errorf("--default-seconds must be positive, got %v", f.defaultSeconds)
	}

	data, err := readInput(cmd.InOrStdin(), f.file)
	if err != nil {
		return timeline.Timeline{}, err
	}
	scenes, err := decodeScenes(data)
	if err != nil {
		return timeline.Timeline{}, fmt.Errorf("%s: %w", f.file, err)
	}

	calc := timeline.New(timeline.WithFrameRate(f.fps), timeline.WithDefaultSceneDuration(f.defaultSeconds))
	return calc.Calculate(scenes), nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// decodeScenes accepts a video record ({"scenes": {...}, ...}) or a bare
// scene collection ({"0": {...}}).
func decodeScenes(data []byte) (models.SceneCollection, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	raw := json.RawMessage(data)
	if scenes, ok := fields["scenes"]; ok {
		raw = scenes
	}

	var sc models.SceneCollection
	if err := json.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("decode scenes: %w", err)
	}
	return sc, nil
}
