package models

// CaptionKind distinguishes spoken words from the filler tokens the
// text-to-speech alignment emits between them.
type CaptionKind string

const (
	CaptionWord       CaptionKind = "word"
	CaptionSpacing    CaptionKind = "spacing"
	CaptionAudioEvent CaptionKind = "audio_event"
)

// CaptionToken is one timed unit of a scene's narration.
// Start and End are seconds relative to the scene's own start.
type CaptionToken struct {
	Text  string      `json:"text"`
	Start float64     `json:"start"`
	End   float64     `json:"end"`
	Type  CaptionKind `json:"type,omitempty"`
}

// IsWord reports whether the token is spoken text. Tokens without a type
// are treated as words.
func (t CaptionToken) IsWord() bool {
	return t.Type == "" || t.Type == CaptionWord
}
