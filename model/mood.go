package model

import (
	"fmt"
	"strings"
)

// Mood is one of the fixed mood presets selectable in the UI.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodEnergetic Mood = "energetic"
	MoodChill     Mood = "chill"
	MoodParty     Mood = "party"
	MoodFocus     Mood = "focus"
)

// neutralFeatures fills the dimensions a preset does not care about, so every
// preset is a complete query vector.
var neutralFeatures = FeatureVector{
	Danceability:     0.5,
	Energy:           0.5,
	Loudness:         -10,
	Speechiness:      0.1,
	Acousticness:     0.5,
	Instrumentalness: 0.0,
	Liveness:         0.2,
	Valence:          0.5,
	Tempo:            120,
}

// moodPresets maps each mood to its fixed target feature vector. The values
// are design constants, not derived from the catalog.
var moodPresets = map[Mood]FeatureVector{
	MoodHappy: withNeutral(func(f *FeatureVector) {
		f.Valence = 0.8
		f.Energy = 0.7
		f.Danceability = 0.7
	}),
	MoodSad: withNeutral(func(f *FeatureVector) {
		f.Valence = 0.2
		f.Energy = 0.3
		f.Acousticness = 0.6
	}),
	MoodEnergetic: withNeutral(func(f *FeatureVector) {
		f.Energy = 0.9
		f.Tempo = 140
		f.Danceability = 0.7
	}),
	MoodChill: withNeutral(func(f *FeatureVector) {
		f.Energy = 0.3
		f.Acousticness = 0.7
		f.Valence = 0.5
	}),
	MoodParty: withNeutral(func(f *FeatureVector) {
		f.Danceability = 0.9
		f.Energy = 0.8
		f.Valence = 0.7
	}),
	MoodFocus: withNeutral(func(f *FeatureVector) {
		f.Instrumentalness = 0.7
		f.Speechiness = 0.05
		f.Energy = 0.4
	}),
}

// moodOrder keeps listings deterministic.
var moodOrder = []Mood{MoodHappy, MoodSad, MoodEnergetic, MoodChill, MoodParty, MoodFocus}

func withNeutral(set func(*FeatureVector)) FeatureVector {
	f := neutralFeatures
	set(&f)
	return f
}

// Moods returns all mood names in a fixed order.
func Moods() []Mood {
	out := make([]Mood, len(moodOrder))
	copy(out, moodOrder)
	return out
}

// MoodPreset resolves a mood name (case-insensitive) to its target vector.
func MoodPreset(name string) (FeatureVector, error) {
	preset, ok := moodPresets[Mood(strings.ToLower(name))]
	if !ok {
		return FeatureVector{}, fmt.Errorf("%w: %q", ErrUnknownMood, name)
	}
	return preset, nil
}
