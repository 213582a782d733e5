// Package recommend implements the content-based recommendation engine:
// min-max feature normalization, cosine similarity ranking, and the
// song / mood / custom-vector recommendation modes on top of them.
package recommend

import (
	"melodex/catalog"
	"melodex/model"
)

// collapsedValue is the normalized output for a dimension whose observed
// min and max coincide; it keeps the transform total without dividing by
// zero.
const collapsedValue = 0.5

// Profile holds the observed per-dimension (min, max) of a catalog. It is
// computed once after load and never mutated.
type Profile struct {
	Min [model.NumFeatures]float64
	Max [model.NumFeatures]float64
}

// Fit scans the catalog and records each dimension's observed extremes.
// Fitting the same catalog twice yields an identical profile.
func Fit(cat *catalog.Catalog) (*Profile, error) {
	songs := cat.Songs()
	if len(songs) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	p := &Profile{}
	first := songs[0].Features.Values()
	p.Min = first
	p.Max = first
	for _, s := range songs[1:] {
		vals := s.Features.Values()
		for d, v := range vals {
			if v < p.Min[d] {
				p.Min[d] = v
			}
			if v > p.Max[d] {
				p.Max[d] = v
			}
		}
	}
	return p, nil
}

// Transform rescales a feature vector into [0,1] per dimension against the
// profile's observed range. Values outside the range clamp to the bounds;
// a collapsed dimension (min == max) maps to collapsedValue. Pure function
// of (profile, vector).
func (p *Profile) Transform(f model.FeatureVector) [model.NumFeatures]float64 {
	var out [model.NumFeatures]float64
	vals := f.Values()
	for d, v := range vals {
		lo, hi := p.Min[d], p.Max[d]
		if lo == hi {
			out[d] = collapsedValue
			continue
		}
		n := (v - lo) / (hi - lo)
		if n < 0 {
			n = 0
		} else if n > 1 {
			n = 1
		}
		out[d] = n
	}
	return out
}
