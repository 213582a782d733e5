package recommend

import (
	"testing"

	"melodex/catalog"
	"melodex/model"
)

// testSong builds a valid song around explicit feature values given in
// FeatureDimensions order.
func testSong(id, title, artist, genre string, popularity int, f [model.NumFeatures]float64) model.Song {
	return model.Song{
		ID:         id,
		Title:      title,
		Artist:     artist,
		Album:      title,
		Genre:      genre,
		Popularity: popularity,
		Features:   model.FeatureVectorFromValues(f),
	}
}

// fixtureSongs is a small catalog spanning four genres and artists, with
// danceability observed in [0.1, 0.9] so clamping tests have headroom.
func fixtureSongs() []model.Song {
	return []model.Song{
		testSong("t1", "Neon Nights", "Violet Parade", "pop", 80,
			[model.NumFeatures]float64{0.9, 0.8, -5, 0.05, 0.1, 0.0, 0.1, 0.9, 125}),
		testSong("t2", "Midnight Rain", "Violet Parade", "pop", 65,
			[model.NumFeatures]float64{0.7, 0.6, -7, 0.04, 0.2, 0.0, 0.12, 0.7, 118}),
		testSong("t3", "Granite", "Stone Harbor", "rock", 70,
			[model.NumFeatures]float64{0.4, 0.9, -4, 0.06, 0.05, 0.1, 0.3, 0.5, 140}),
		testSong("t4", "Cold Water", "Stone Harbor", "rock", 55,
			[model.NumFeatures]float64{0.3, 0.7, -6, 0.05, 0.15, 0.2, 0.25, 0.3, 132}),
		testSong("t5", "Lighthouse", "Mira Holt", "folk", 40,
			[model.NumFeatures]float64{0.2, 0.2, -14, 0.03, 0.9, 0.05, 0.1, 0.4, 95}),
		testSong("t6", "Driftwood", "Mira Holt", "folk", 45,
			[model.NumFeatures]float64{0.1, 0.15, -16, 0.03, 0.85, 0.1, 0.15, 0.35, 88}),
		testSong("t7", "Glass Orbit", "Nocturne Fields", "ambient", 30,
			[model.NumFeatures]float64{0.15, 0.1, -20, 0.03, 0.6, 0.9, 0.08, 0.2, 70}),
		testSong("t8", "Slow Motion", "Nocturne Fields", "ambient", 30,
			[model.NumFeatures]float64{0.25, 0.12, -18, 0.04, 0.5, 0.8, 0.09, 0.25, 75}),
	}
}

func newTestCatalog(t *testing.T, songs []model.Song) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(songs)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(newTestCatalog(t, fixtureSongs()))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}
