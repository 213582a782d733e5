package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"melodex/logger"
	"melodex/model"
)

// Columns the loader requires beyond the feature dimensions.
var requiredColumns = []string{"track_id", "track_name", "artists", "album_name", "popularity", "track_genre"}

// LoadCSV reads a Spotify-style tracks CSV into a Catalog. Rows that fail
// the song invariants are dropped, duplicate track IDs keep the first
// occurrence, and a file that yields no valid rows is an error.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	cat, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

// ReadCSV parses catalog CSV data from any reader.
func ReadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are rejected per-row below

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var (
		songs   []model.Song
		seen    = make(map[string]struct{})
		skipped int
	)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		song, err := parseSong(record, cols)
		if err != nil {
			logger.Warn("Dropping catalog row",
				logger.Int("line", line),
				logger.ErrorField(err))
			skipped++
			continue
		}
		if _, dup := seen[song.ID]; dup {
			skipped++
			continue
		}
		seen[song.ID] = struct{}{}
		songs = append(songs, song)
	}

	if len(songs) == 0 {
		return nil, fmt.Errorf("%w: no valid rows", model.ErrEmptyCatalog)
	}
	if skipped > 0 {
		logger.Info("Catalog rows dropped during load", logger.Int("skipped", skipped))
	}
	return New(songs)
}

// columnIndex maps each required column name to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	need := append([]string{}, requiredColumns...)
	need = append(need, model.FeatureDimensions[:]...)
	for _, name := range need {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", model.ErrInvalidRecord, name)
		}
	}
	return cols, nil
}

func parseSong(record []string, cols map[string]int) (model.Song, error) {
	field := func(name string) (string, error) {
		i := cols[name]
		if i >= len(record) {
			return "", fmt.Errorf("%w: short row", model.ErrInvalidRecord)
		}
		return strings.TrimSpace(record[i]), nil
	}

	id, err := field("track_id")
	if err != nil {
		return model.Song{}, err
	}

	var vals [model.NumFeatures]float64
	for i, dim := range model.FeatureDimensions {
		raw, err := field(dim)
		if err != nil {
			return model.Song{}, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Song{}, fmt.Errorf("%w: %s %q is not numeric", model.ErrInvalidRecord, dim, raw)
		}
		vals[i] = v
	}

	title, _ := field("track_name")
	artist, _ := field("artists")
	album, _ := field("album_name")
	genre, _ := field("track_genre")
	popRaw, _ := field("popularity")

	// Missing text fields get the dataset loader's fallbacks.
	if title == "" {
		title = "Unknown Track"
	}
	if artist == "" {
		artist = "Unknown Artist"
	}
	if album == "" {
		album = "Unknown Album"
	}
	if genre == "" {
		genre = "unknown"
	}
	popularity, err := strconv.Atoi(popRaw)
	if err != nil {
		popularity = 0
	}

	song := model.Song{
		ID:         id,
		Title:      title,
		Artist:     artist,
		Album:      album,
		Genre:      strings.ToLower(genre),
		Popularity: popularity,
		Features:   model.FeatureVectorFromValues(vals),
	}
	if err := song.Validate(); err != nil {
		return model.Song{}, err
	}
	return song, nil
}
