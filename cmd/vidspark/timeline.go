package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

type timelineOutput struct {
	FrameRate        int     `json:"frame_rate"`
	DurationInFrames int     `json:"duration_in_frames"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Entries          []entry `json:"entries"`
}

type entry struct {
	Index            int `json:"index"`
	StartFrame       int `json:"start_frame"`
	DurationInFrames int `json:"duration_in_frames"`
	EndFrame         int `json:"end_frame"`
}

func newTimelineCmd() *cobra.Command {
	var flags timelineFlags
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the frame placement of every scene as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := flags.calculate(cmd)
			if err != nil {
				return err
			}

			out := timelineOutput{
				FrameRate:        tl.FrameRate,
				DurationInFrames: tl.DurationInFrames,
				DurationSeconds:  tl.Seconds(),
				Entries:          make([]entry, 0, len(tl.Entries)),
			}
			for _, e := range tl.Entries {
				out.Entries = append(out.Entries, entry{
					Index:            e.Index,
					StartFrame:       e.StartFrame,
					DurationInFrames: e.DurationInFrames,
					EndFrame:         e.EndFrame(),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	flags.register(cmd)
	return cmd
}
