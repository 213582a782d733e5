package recommend

import (
	"math"
	"testing"

	"melodex/model"
)

const epsilon = 1e-9

func TestScore_SelfSimilarity(t *testing.T) {
	v := [model.NumFeatures]float64{0.9, 0.8, 0.1, 0.05, 0.1, 0.0, 0.1, 0.9, 0.6}
	if got := Score(v, v); math.Abs(got-1.0) > epsilon {
		t.Errorf("Score(v, v) = %v, want 1.0", got)
	}
}

func TestScore_Symmetry(t *testing.T) {
	a := [model.NumFeatures]float64{0.9, 0.8, 0.1, 0.05, 0.1, 0.0, 0.1, 0.9, 0.6}
	b := [model.NumFeatures]float64{0.2, 0.1, 0.9, 0.5, 0.8, 0.3, 0.4, 0.1, 0.2}
	if Score(a, b) != Score(b, a) {
		t.Errorf("Score(a,b)=%v != Score(b,a)=%v", Score(a, b), Score(b, a))
	}
}

func TestScore_ZeroVector(t *testing.T) {
	var zero [model.NumFeatures]float64
	v := [model.NumFeatures]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	if got := Score(zero, v); got != 0 {
		t.Errorf("Score(zero, v) = %v, want 0", got)
	}
	if got := Score(zero, zero); got != 0 {
		t.Errorf("Score(zero, zero) = %v, want 0", got)
	}
}

func TestScore_Orthogonal(t *testing.T) {
	a := [model.NumFeatures]float64{1, 0}
	b := [model.NumFeatures]float64{0, 1}
	if got := Score(a, b); got != 0 {
		t.Errorf("Score of orthogonal vectors = %v, want 0", got)
	}
}

// Three songs whose normalized vectors are A=(1,0), B=(1,0), C=(0,1) in a
// two-dimensional toy space (remaining dimensions zero, which cosine
// ignores): querying on A must return B at 1.0 and C at 0.0.
func TestRankAll_ToyScenario(t *testing.T) {
	cat := newTestCatalog(t, fixtureSongs()[:3]) // ids t1, t2, t3 stand in for A, B, C
	engine := &Engine{
		cat: cat,
		matrix: [][model.NumFeatures]float64{
			{1, 0},
			{1, 0},
			{0, 1},
		},
	}

	results := engine.RankAll(engine.Normalized(0), RankOptions{K: 2, ExcludeID: "t1"})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Song.ID != "t2" || math.Abs(results[0].Score-1.0) > epsilon {
		t.Errorf("top result = %s score %v, want t2 score 1.0", results[0].Song.ID, results[0].Score)
	}
	if results[1].Song.ID != "t3" || results[1].Score != 0.0 {
		t.Errorf("second result = %s score %v, want t3 score 0.0", results[1].Song.ID, results[1].Score)
	}
}

func TestRankAll_OrderAndLimit(t *testing.T) {
	cat := newTestCatalog(t, fixtureSongs())
	profile, err := Fit(cat)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	engine := NewEngine(cat, profile)

	results := engine.RankAll(engine.Normalized(0), RankOptions{K: 4, ExcludeID: "t1"})
	if len(results) > 4 {
		t.Fatalf("got %d results, want at most 4", len(results))
	}
	for i, rec := range results {
		if rec.Song.ID == "t1" {
			t.Error("excluded seed song appeared in results")
		}
		if rec.Rank != i+1 {
			t.Errorf("result %d has rank %d", i, rec.Rank)
		}
		if i > 0 && results[i-1].Score < rec.Score {
			t.Errorf("scores not non-increasing at %d: %v < %v", i, results[i-1].Score, rec.Score)
		}
		wantMatch := math.Round(rec.Score*1000) / 10
		if rec.Match != wantMatch {
			t.Errorf("match %v, want %v", rec.Match, wantMatch)
		}
	}
}

func TestRankAll_ExcludeArtist(t *testing.T) {
	cat := newTestCatalog(t, fixtureSongs())
	profile, err := Fit(cat)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	engine := NewEngine(cat, profile)

	results := engine.RankAll(engine.Normalized(0), RankOptions{
		K:             len(fixtureSongs()),
		ExcludeID:     "t1",
		ExcludeArtist: "Violet Parade",
	})
	for _, rec := range results {
		if rec.Song.Artist == "Violet Parade" {
			t.Errorf("excluded artist appeared: %s", rec.Song.ID)
		}
	}
	if len(results) != len(fixtureSongs())-2 {
		t.Errorf("got %d results, want %d", len(results), len(fixtureSongs())-2)
	}
}

func TestRankAll_DefaultK(t *testing.T) {
	songs := fixtureSongs()
	// Grow past DefaultK so the default actually truncates.
	extra := fixtureSongs()
	for i := range extra {
		extra[i].ID = extra[i].ID + "x"
	}
	songs = append(songs, extra...)

	cat := newTestCatalog(t, songs)
	profile, err := Fit(cat)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	engine := NewEngine(cat, profile)

	results := engine.RankAll(engine.Normalized(0), RankOptions{})
	if len(results) != DefaultK {
		t.Errorf("got %d results, want DefaultK=%d", len(results), DefaultK)
	}
}

// Identical normalized vectors must keep catalog order, making rankings
// deterministic.
func TestRankAll_StableTieBreak(t *testing.T) {
	songs := fixtureSongs()[:4]
	// t2 and t3 get identical features; both differ from t1 and t4.
	songs[2].Features = songs[1].Features
	cat := newTestCatalog(t, songs)
	profile, err := Fit(cat)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	engine := NewEngine(cat, profile)

	results := engine.RankAll(engine.Normalized(1), RankOptions{K: 4})
	if results[0].Song.ID != "t2" || results[1].Song.ID != "t3" {
		t.Errorf("tied songs out of catalog order: %s, %s", results[0].Song.ID, results[1].Song.ID)
	}
}
