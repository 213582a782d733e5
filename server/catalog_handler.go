package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"melodex/model"
)

// GetSongsHandler lists or searches the catalog.
// GET /api/songs?q=query&limit=50
func (h *APIHandler) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := queryInt(r, "limit", 50)
	if limit < 0 {
		limit = 0
	}

	songs := make([]model.Song, 0, limit)
	for song := range h.service().Search(q) {
		songs = append(songs, song)
		if limit > 0 && len(songs) >= limit {
			break
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"query": q,
		"songs": songs,
	})
}

// GetPopularSongsHandler lists the most popular songs for initial display.
// GET /api/songs/popular?n=50
func (h *APIHandler) GetPopularSongsHandler(w http.ResponseWriter, r *http.Request) {
	n := queryInt(r, "n", 50)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"songs": h.service().PopularSongs(n),
	})
}

// GetSongHandler returns a single song by ID.
// GET /api/songs/{id}
func (h *APIHandler) GetSongHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	song, ok := h.service().Catalog().ByID(id)
	if !ok {
		respondError(w, model.ErrSongNotFound)
		return
	}
	respondJSON(w, http.StatusOK, song)
}

// GetSongFeaturesHandler returns a song's raw and normalized features,
// keyed by dimension name for chart rendering.
// GET /api/songs/{id}/features
func (h *APIHandler) GetSongFeaturesHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	raw, normalized, err := h.service().SongFeatures(id)
	if err != nil {
		respondError(w, err)
		return
	}

	normByName := make(map[string]float64, model.NumFeatures)
	for i, name := range model.FeatureDimensions {
		normByName[name] = normalized[i]
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":         id,
		"features":   raw,
		"normalized": normByName,
	})
}

// GetGenresHandler returns the observed genre enumeration.
// GET /api/genres
func (h *APIHandler) GetGenresHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"genres": h.service().Genres(),
	})
}

// GetGenreStatsHandler returns per-genre counts and mean features.
// GET /api/genres/stats
func (h *APIHandler) GetGenreStatsHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"stats": h.service().GenreStats(),
	})
}

// GetGenreSongsHandler lists songs of one genre.
// GET /api/genres/{genre}/songs?n=20
func (h *APIHandler) GetGenreSongsHandler(w http.ResponseWriter, r *http.Request) {
	genre := mux.Vars(r)["genre"]
	n := queryInt(r, "n", 20)

	songs, err := h.service().BrowseByGenre(genre, n)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"genre": genre,
		"songs": songs,
	})
}

// HealthHandler reports service health and catalog size.
// GET /api/health
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"songs":  h.service().Catalog().Len(),
	})
}
