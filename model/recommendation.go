package model

// Recommendation pairs a catalog song with its similarity to the query.
// Lists of recommendations are ordered by descending score; ties keep the
// catalog's insertion order so results are deterministic.
type Recommendation struct {
	Song  Song    `json:"song"`
	Score float64 `json:"score"` // cosine similarity of normalized vectors
	Match float64 `json:"match"` // Score as a percentage, one decimal
	Rank  int     `json:"rank"`  // 1-based position in the result list
}
