// Package catalog holds the immutable in-memory song table the recommender
// serves from, plus the CSV loader and the optional file watcher that swaps
// in a fresh table when the source file changes.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"melodex/model"
)

// Catalog is an ordered, immutable collection of songs, unique by ID.
// It is never mutated after construction, so concurrent reads need no
// synchronization.
type Catalog struct {
	songs    []model.Song
	byID     map[string]int
	genres   []string
	genreSet map[string]struct{}
}

// New builds a catalog from validated songs. It rejects an empty slice and
// duplicate IDs; callers that tolerate duplicates must dedupe first (the CSV
// loader keeps the first occurrence, like the source dataset).
func New(songs []model.Song) (*Catalog, error) {
	if len(songs) == 0 {
		return nil, model.ErrEmptyCatalog
	}
	c := &Catalog{
		songs:    songs,
		byID:     make(map[string]int, len(songs)),
		genreSet: make(map[string]struct{}),
	}
	for i, s := range songs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", model.ErrInvalidRecord, s.ID)
		}
		c.byID[s.ID] = i
		g := strings.ToLower(s.Genre)
		if _, seen := c.genreSet[g]; !seen && g != "" {
			c.genreSet[g] = struct{}{}
			c.genres = append(c.genres, g)
		}
	}
	sort.Strings(c.genres)
	return c, nil
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Songs returns the songs in insertion order. The slice is shared; callers
// must treat it as read-only.
func (c *Catalog) Songs() []model.Song {
	return c.songs
}

// ByID looks up a song by its ID.
func (c *Catalog) ByID(id string) (model.Song, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Song{}, false
	}
	return c.songs[i], true
}

// IndexOf returns the insertion position of a song ID.
func (c *Catalog) IndexOf(id string) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Genres returns the sorted set of genres observed in the catalog.
func (c *Catalog) Genres() []string {
	return c.genres
}

// HasGenre reports whether the (case-folded) genre occurs in the catalog.
func (c *Catalog) HasGenre(genre string) bool {
	_, ok := c.genreSet[strings.ToLower(genre)]
	return ok
}
