package recommend

import (
	"math"
	"sort"

	"melodex/catalog"
	"melodex/model"
)

// DefaultK is the result count used when the caller does not ask for one.
const DefaultK = 10

// Score computes the cosine similarity of two normalized vectors. A
// zero-magnitude operand scores 0.0 instead of producing NaN.
func Score(a, b [model.NumFeatures]float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// Engine ranks catalog songs against query vectors. The normalized matrix
// is computed once per (catalog, profile) pair, so each ranking call is a
// single pass over the catalog.
type Engine struct {
	cat    *catalog.Catalog
	matrix [][model.NumFeatures]float64
}

// NewEngine precomputes the normalized feature matrix for the catalog.
func NewEngine(cat *catalog.Catalog, profile *Profile) *Engine {
	songs := cat.Songs()
	matrix := make([][model.NumFeatures]float64, len(songs))
	for i, s := range songs {
		matrix[i] = profile.Transform(s.Features)
	}
	return &Engine{cat: cat, matrix: matrix}
}

// RankOptions narrows a ranking call.
type RankOptions struct {
	K             int    // result count; <= 0 means DefaultK
	ExcludeID     string // drop this song (the seed in song mode)
	ExcludeArtist string // drop every song by this artist
}

// RankAll scores the query against every catalog song and returns the top K
// as recommendations, descending by score. Ties keep catalog order, so the
// ranking is deterministic for a fixed catalog.
func (e *Engine) RankAll(query [model.NumFeatures]float64, opts RankOptions) []model.Recommendation {
	k := opts.K
	if k <= 0 {
		k = DefaultK
	}

	type candidate struct {
		index int
		score float64
	}
	songs := e.cat.Songs()
	candidates := make([]candidate, 0, len(songs))
	for i, s := range songs {
		if opts.ExcludeID != "" && s.ID == opts.ExcludeID {
			continue
		}
		if opts.ExcludeArtist != "" && s.Artist == opts.ExcludeArtist {
			continue
		}
		candidates = append(candidates, candidate{index: i, score: Score(query, e.matrix[i])})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	results := make([]model.Recommendation, len(candidates))
	for rank, c := range candidates {
		results[rank] = model.Recommendation{
			Song:  songs[c.index],
			Score: c.score,
			Match: math.Round(c.score*1000) / 10,
			Rank:  rank + 1,
		}
	}
	return results
}

// Normalized returns the precomputed normalized vector of the song at the
// given catalog index.
func (e *Engine) Normalized(index int) [model.NumFeatures]float64 {
	return e.matrix[index]
}
