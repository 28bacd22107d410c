package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Scene represents one narrated segment of a generated video.
type Scene struct {
	Text     string         `json:"text"`
	Image    *string        `json:"image,omitempty"`    // Storage path or URL of the scene image
	Voice    *string        `json:"voice,omitempty"`    // Storage path or URL of the narration audio
	Captions []CaptionToken `json:"captions,omitempty"` // Word-level timing, may be absent
}

// HasCaptions reports whether the scene carries at least one caption token.
// A nil slice and an empty slice are the same thing here.
func (s Scene) HasCaptions() bool {
	return len(s.Captions) > 0
}

// SceneCollection maps a scene index to its scene. It is stored as a JSON
// object keyed by the decimal index, e.g. {"0": {...}, "1": {...}}.
type SceneCollection map[int]Scene

// Indices returns the scene indices in increasing numeric order.
func (sc SceneCollection) Indices() []int {
	indices := make([]int, 0, len(sc))
	for i := range sc {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// MarshalJSON writes the collection as an object keyed by index.
func (sc SceneCollection) MarshalJSON() ([]byte, error) {
	raw := make(map[string]Scene, len(sc))
	for i, s := range sc {
		raw[strconv.Itoa(i)] = s
	}
	return json.Marshal(raw)
}

// UnmarshalJSON accepts an object keyed by non-negative decimal indices in
// canonical form ("7", not "07" or "+7"), so no two keys share an index.
func (sc *SceneCollection) UnmarshalJSON(data []byte) error {
	var raw map[string]Scene
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(SceneCollection, len(raw))
	for key, s := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || strconv.Itoa(idx) != key {
			return fmt.Errorf("invalid scene index %q", key)
		}
		out[idx] = s
	}
	*sc = out
	return nil
}
