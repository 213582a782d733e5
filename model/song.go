package model

import (
	"fmt"
	"math"
)

// NumFeatures is the number of audio feature dimensions per song.
const NumFeatures = 9

// FeatureDimensions lists the audio feature names in dataset column order.
// This order is the vector layout used everywhere in the engine.
var FeatureDimensions = [NumFeatures]string{
	"danceability",
	"energy",
	"loudness",
	"speechiness",
	"acousticness",
	"instrumentalness",
	"liveness",
	"valence",
	"tempo",
}

// FeatureVector holds the 9 audio features of a song. Fixed fields instead
// of a map so a missing dimension is impossible to construct.
type FeatureVector struct {
	Danceability     float64 `json:"danceability"`     // 0.0 to 1.0
	Energy           float64 `json:"energy"`           // 0.0 to 1.0
	Loudness         float64 `json:"loudness"`         // dB, -60 to 0
	Speechiness      float64 `json:"speechiness"`      // 0.0 to 1.0
	Acousticness     float64 `json:"acousticness"`     // 0.0 to 1.0
	Instrumentalness float64 `json:"instrumentalness"` // 0.0 to 1.0
	Liveness         float64 `json:"liveness"`         // 0.0 to 1.0
	Valence          float64 `json:"valence"`          // 0.0 to 1.0
	Tempo            float64 `json:"tempo"`            // BPM, 0 to 250
}

// Values returns the features as an array in FeatureDimensions order.
func (f FeatureVector) Values() [NumFeatures]float64 {
	return [NumFeatures]float64{
		f.Danceability,
		f.Energy,
		f.Loudness,
		f.Speechiness,
		f.Acousticness,
		f.Instrumentalness,
		f.Liveness,
		f.Valence,
		f.Tempo,
	}
}

// FeatureVectorFromValues builds a FeatureVector from an array in
// FeatureDimensions order.
func FeatureVectorFromValues(v [NumFeatures]float64) FeatureVector {
	return FeatureVector{
		Danceability:     v[0],
		Energy:           v[1],
		Loudness:         v[2],
		Speechiness:      v[3],
		Acousticness:     v[4],
		Instrumentalness: v[5],
		Liveness:         v[6],
		Valence:          v[7],
		Tempo:            v[8],
	}
}

// featureRange is the native range a dimension must fall in at load time.
type featureRange struct {
	min, max float64
}

// Native ranges per dimension, FeatureDimensions order. Loudness and tempo
// use the dataset bounds; everything else is a unit interval.
var featureRanges = [NumFeatures]featureRange{
	{0, 1},   // danceability
	{0, 1},   // energy
	{-60, 0}, // loudness
	{0, 1},   // speechiness
	{0, 1},   // acousticness
	{0, 1},   // instrumentalness
	{0, 1},   // liveness
	{0, 1},   // valence
	{0, 250}, // tempo
}

// Validate checks that every dimension is finite and within its native range.
func (f FeatureVector) Validate() error {
	vals := f.Values()
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidRecord, FeatureDimensions[i])
		}
		r := featureRanges[i]
		if v < r.min || v > r.max {
			return fmt.Errorf("%w: %s %.3f outside [%g,%g]", ErrInvalidRecord, FeatureDimensions[i], v, r.min, r.max)
		}
	}
	return nil
}

// Song represents one track in the recommendation catalog.
type Song struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Artist     string        `json:"artist"`
	Album      string        `json:"album"`
	Genre      string        `json:"genre"`
	Popularity int           `json:"popularity"` // 0 to 100
	Features   FeatureVector `json:"features"`
}

// Validate checks the catalog invariants for a single song.
func (s Song) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty song id", ErrInvalidRecord)
	}
	if err := s.Features.Validate(); err != nil {
		return fmt.Errorf("song %s: %w", s.ID, err)
	}
	return nil
}
