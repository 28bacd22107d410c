package timeline

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Cue is caption text placed on the absolute video timeline.
type Cue struct {
	SceneIndex int     `json:"scene_index"`
	Text       string  `json:"text"`
	Start      float64 `json:"start"` // seconds from the start of the video
	End        float64 `json:"end"`
	StartFrame int     `json:"start_frame"`
	EndFrame   int     `json:"end_frame"`
}

// Cues returns every spoken word of the timeline, shifted by the start of
// its scene. Spacing and audio-event tokens are skipped.
func (t Timeline) Cues() []Cue {
	var cues []Cue
	if t.FrameRate <= 0 {
		return cues
	}
	fps := float64(t.FrameRate)
	for _, e := range t.Entries {
		offset := float64(e.StartFrame) / fps
		for _, tok := range e.Scene.Captions {
			if !tok.IsWord() || strings.TrimSpace(tok.Text) == "" {
				continue
			}
			start := offset + tok.Start
			end := offset + tok.End
			cues = append(cues, Cue{
				SceneIndex: e.Index,
				Text:       strings.TrimSpace(tok.Text),
				Start:      start,
				End:        end,
				StartFrame: roundHalfUp(start * fps),
				EndFrame:   roundHalfUp(end * fps),
			})
		}
	}
	return cues
}

// GroupCues merges consecutive cues of the same scene into lines of at
// most maxChars characters (runes). A word longer than maxChars gets its own line.
// maxChars <= 0 returns the cues unchanged.
func GroupCues(cues []Cue, maxChars int) []Cue {
	if maxChars <= 0 || len(cues) == 0 {
		return cues
	}

	grouped := make([]Cue, 0, len(cues))
	cur := cues[0]
	for _, c := range cues[1:] {
		if c.SceneIndex == cur.SceneIndex && utf8.RuneCountInString(cur.Text)+1+utf8.RuneCountInString(c.Text) <= maxChars {
			cur.Text += " " + c.Text
			cur.End = c.End
			cur.EndFrame = c.EndFrame
			continue
		}
		grouped = append(grouped, cur)
		cur = c
	}
	return append(grouped, cur)
}

// WriteSRT renders cues in SubRip format.
func WriteSRT(w io.Writer, cues []Cue) error {
	for i, c := range cues {
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", i+1, srtTimestamp(c.Start), srtTimestamp(c.End), c.Text); err != nil {
			return fmt.Errorf("write cue %d: %w", i+1, err)
		}
	}
	return nil
}

// srtTimestamp formats seconds as HH:MM:SS,mmm. Negative times clamp to zero.
func srtTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := roundHalfUp(seconds * 1000)
	h := ms / 3_600_000
	ms -= h * 3_600_000
	m := ms / 60_000
	ms -= m * 60_000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
