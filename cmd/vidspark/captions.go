package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidspark/internal/timeline"
)

func newCaptionsCmd() *cobra.Command {
	var flags timelineFlags
	var maxChars int
	cmd := &cobra.Command{
		Use:   "captions",
		Short: "Print the spoken words of every scene as SubRip captions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxChars < 1 {
				return fmt.Errorf("--max-chars must be positive, got %d", maxChars)
			}
			tl, err := flags.calculate(cmd)
			if err != nil {
				return err
			}

			return timeline.WriteSRT(cmd.OutOrStdout(), timeline.GroupCues(tl.Cues(), maxChars))
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&maxChars, "max-chars", 32, "maximum characters per caption line")
	return cmd
}
