package timeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidspark/models"
)

func wordsScene(words ...models.CaptionToken) models.Scene {
	return models.Scene{Captions: words}
}

func TestTimeline_Cues(t *testing.T) {
	tl := Calculate(models.SceneCollection{
		0: wordsScene(
			models.CaptionToken{Text: "Once", Start: 0, End: 0.5},
			models.CaptionToken{Text: " ", Start: 0.5, End: 0.6, Type: models.CaptionSpacing},
			models.CaptionToken{Text: "upon", Start: 0.6, End: 2.0, Type: models.CaptionWord},
		),
		1: wordsScene(
			models.CaptionToken{Text: "(laughs)", Start: 0, End: 0.5, Type: models.CaptionAudioEvent},
			models.CaptionToken{Text: "time", Start: 0.5, End: 1.0},
		),
	}, 30)

	cues := tl.Cues()

	require.Len(t, cues, 3)
	assert.Equal(t, "Once", cues[0].Text)
	assert.Equal(t, "upon", cues[1].Text)
	assert.Equal(t, 18, cues[1].StartFrame)
	assert.Equal(t, 60, cues[1].EndFrame)

	assert.Equal(t, 1, cues[2].SceneIndex)
	assert.InDelta(t, 2.5, cues[2].Start, 1e-9)
	assert.InDelta(t, 3.0, cues[2].End, 1e-9)
	assert.Equal(t, 75, cues[2].StartFrame)
	assert.Equal(t, 90, cues[2].EndFrame)
}

func TestTimeline_CuesDefaultDurationScene(t *testing.T) {
	tl := Calculate(models.SceneCollection{
		0: {Text: "silent"},
		1: wordsScene(models.CaptionToken{Text: "hi", Start: 0.1, End: 0.4}),
	}, 30)

	cues := tl.Cues()

	require.Len(t, cues, 1)
	assert.InDelta(t, 5.1, cues[0].Start, 1e-9)
}

func TestGroupCues(t *testing.T) {
	cues := []Cue{
		{SceneIndex: 0, Text: "the", Start: 0, End: 0.2},
		{SceneIndex: 0, Text: "quick", Start: 0.2, End: 0.5},
		{SceneIndex: 0, Text: "brown", Start: 0.5, End: 0.8},
		{SceneIndex: 0, Text: "extraordinarily", Start: 0.8, End: 1.5},
		{SceneIndex: 1, Text: "fox", Start: 5, End: 5.3},
	}

	grouped := GroupCues(cues, 12)

	require.Len(t, grouped, 4)
	assert.Equal(t, "the quick", grouped[0].Text)
	assert.Equal(t, 0.5, grouped[0].End)
	assert.Equal(t, "brown", grouped[1].Text)
	assert.Equal(t, "extraordinarily", grouped[2].Text)
	assert.Equal(t, "fox", grouped[3].Text)

	assert.Equal(t, cues, GroupCues(cues, 0))
	assert.Empty(t, GroupCues(nil, 10))
}

func TestWriteSRT(t *testing.T) {
	cues := []Cue{
		{Text: "Hello there", Start: 0, End: 1.25},
		{Text: "again", Start: 3661.5, End: 3662.0004},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSRT(&buf, cues))

	want := "1\n00:00:00,000 --> 00:00:01,250\nHello there\n\n" +
		"2\n01:01:01,500 --> 01:01:02,000\nagain\n\n"
	assert.Equal(t, want, buf.String())
}

func TestSRTTimestamp_NegativeClamps(t *testing.T) {
	assert.Equal(t, "00:00:00,000", srtTimestamp(-3))
}

func TestGroupCues_CountsCharactersNotBytes(t *testing.T) {
	cues := []Cue{
		{SceneIndex: 0, Text: "café", Start: 0, End: 0.4},
		{SceneIndex: 0, Text: "naïve", Start: 0.4, End: 0.9},
		{SceneIndex: 0, Text: "überall", Start: 0.9, End: 1.5},
	}

	got := GroupCues(cues, 10)

	require.Len(t, got, 2)
	assert.Equal(t, "café naïve", got[0].Text)
	assert.InDelta(t, 0.9, got[0].End, 1e-9)
	assert.Equal(t, "überall", got[1].Text)
}
