package recommend

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"melodex/catalog"
	"melodex/model"
)

// Service is the recommendation facade the HTTP layer talks to. It is
// stateless over an immutable catalog snapshot and a profile fitted once,
// so a single instance serves concurrent requests without locking. When the
// catalog is replaced, a new Service is built and swapped in whole.
type Service struct {
	cat     *catalog.Catalog
	profile *Profile
	engine  *Engine
}

// NewService fits a normalization profile to the catalog and precomputes
// the normalized matrix.
func NewService(cat *catalog.Catalog) (*Service, error) {
	profile, err := Fit(cat)
	if err != nil {
		return nil, fmt.Errorf("fit normalization profile: %w", err)
	}
	return &Service{
		cat:     cat,
		profile: profile,
		engine:  NewEngine(cat, profile),
	}, nil
}

// Catalog returns the snapshot this service was built over.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// Profile returns the fitted normalization profile.
func (s *Service) Profile() *Profile {
	return s.profile
}

// RecommendBySong ranks the catalog against a seed song's normalized
// features. The seed never appears in its own results; excludeSameArtist
// additionally drops every song by the seed's artist.
func (s *Service) RecommendBySong(id string, k int, excludeSameArtist bool) ([]model.Recommendation, error) {
	idx, ok := s.cat.IndexOf(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrSongNotFound, id)
	}
	opts := RankOptions{K: k, ExcludeID: id}
	if excludeSameArtist {
		opts.ExcludeArtist = s.cat.Songs()[idx].Artist
	}
	return s.engine.RankAll(s.engine.Normalized(idx), opts), nil
}

// RecommendByMood ranks the catalog against a mood preset's target vector.
// The target is synthetic, so nothing is excluded.
func (s *Service) RecommendByMood(mood string, k int) ([]model.Recommendation, error) {
	preset, err := model.MoodPreset(mood)
	if err != nil {
		return nil, err
	}
	return s.RecommendByFeatures(preset, k), nil
}

// RecommendByFeatures ranks the catalog against a caller-supplied feature
// vector. Values outside the catalog's observed ranges are clamped by the
// normalization transform, never rejected.
func (s *Service) RecommendByFeatures(features model.FeatureVector, k int) []model.Recommendation {
	return s.engine.RankAll(s.profile.Transform(features), RankOptions{K: k})
}

// Search yields songs whose title or artist contains the query,
// case-insensitively, in catalog order. An empty query yields the whole
// catalog. The sequence is lazy and can be ranged over more than once.
func (s *Service) Search(query string) iter.Seq[model.Song] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(yield func(model.Song) bool) {
		for _, song := range s.cat.Songs() {
			if q != "" &&
				!strings.Contains(strings.ToLower(song.Title), q) &&
				!strings.Contains(strings.ToLower(song.Artist), q) {
				continue
			}
			if !yield(song) {
				return
			}
		}
	}
}

// BrowseByGenre returns up to n songs of an observed genre, in catalog
// order. A genre outside the observed set is ErrUnknownGenre; the check is
// an explicit enumeration, not a silent empty result.
func (s *Service) BrowseByGenre(genre string, n int) ([]model.Song, error) {
	if !s.cat.HasGenre(genre) {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownGenre, genre)
	}
	g := strings.ToLower(genre)
	var out []model.Song
	for _, song := range s.cat.Songs() {
		if song.Genre != g {
			continue
		}
		out = append(out, song)
		if n > 0 && len(out) >= n {
			break
		}
	}
	return out, nil
}

// PopularSongs returns the n most popular songs, descending by popularity
// with catalog order breaking ties.
func (s *Service) PopularSongs(n int) []model.Song {
	songs := make([]model.Song, len(s.cat.Songs()))
	copy(songs, s.cat.Songs())
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].Popularity > songs[j].Popularity
	})
	if n > 0 && len(songs) > n {
		songs = songs[:n]
	}
	return songs
}

// SongFeatures returns a song's raw feature vector together with its
// normalized form under the current profile.
func (s *Service) SongFeatures(id string) (model.FeatureVector, [model.NumFeatures]float64, error) {
	idx, ok := s.cat.IndexOf(id)
	if !ok {
		return model.FeatureVector{}, [model.NumFeatures]float64{}, fmt.Errorf("%w: %q", model.ErrSongNotFound, id)
	}
	return s.cat.Songs()[idx].Features, s.engine.Normalized(idx), nil
}

// Genres returns the catalog's observed genre enumeration, sorted.
func (s *Service) Genres() []string {
	return s.cat.Genres()
}

// GenreStat summarizes one genre: how many songs it has and its mean raw
// feature values.
type GenreStat struct {
	Count int                 `json:"count"`
	Mean  model.FeatureVector `json:"mean"`
}

// GenreStats computes per-genre song counts and mean raw features.
func (s *Service) GenreStats() map[string]GenreStat {
	sums := make(map[string]*[model.NumFeatures]float64)
	counts := make(map[string]int)
	for _, song := range s.cat.Songs() {
		vals := song.Features.Values()
		sum, ok := sums[song.Genre]
		if !ok {
			sum = &[model.NumFeatures]float64{}
			sums[song.Genre] = sum
		}
		for d, v := range vals {
			sum[d] += v
		}
		counts[song.Genre]++
	}

	stats := make(map[string]GenreStat, len(sums))
	for genre, sum := range sums {
		n := counts[genre]
		var mean [model.NumFeatures]float64
		for d, v := range sum {
			mean[d] = v / float64(n)
		}
		stats[genre] = GenreStat{Count: n, Mean: model.FeatureVectorFromValues(mean)}
	}
	return stats
}
