package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"melodex/model"
)

// RecommendBySongHandler returns songs similar to a seed song.
// GET /api/recommend/song/{id}?k=10&excludeSameArtist=false
func (h *APIHandler) RecommendBySongHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	excludeSameArtist, _ := strconv.ParseBool(r.URL.Query().Get("excludeSameArtist"))

	results, err := h.service().RecommendBySong(id, h.resultCount(r), excludeSameArtist)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"seed":            id,
		"recommendations": results,
	})
}

// RecommendByMoodHandler returns songs matching a mood preset.
// GET /api/recommend/mood/{mood}?k=10
func (h *APIHandler) RecommendByMoodHandler(w http.ResponseWriter, r *http.Request) {
	mood := mux.Vars(r)["mood"]

	results, err := h.service().RecommendByMood(mood, h.resultCount(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"mood":            mood,
		"recommendations": results,
	})
}

// RecommendByFeaturesHandler returns songs matching a caller-supplied
// feature vector. Out-of-range values are clamped during normalization.
// POST /api/recommend/features?k=10 with a FeatureVector JSON body.
func (h *APIHandler) RecommendByFeaturesHandler(w http.ResponseWriter, r *http.Request) {
	var features model.FeatureVector
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid feature vector: %v", err)})
		return
	}

	results := h.service().RecommendByFeatures(features, h.resultCount(r))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"features":        features,
		"recommendations": results,
	})
}

// GetMoodsHandler returns the mood preset table for selector UIs.
// GET /api/moods
func (h *APIHandler) GetMoodsHandler(w http.ResponseWriter, r *http.Request) {
	type moodEntry struct {
		Name   model.Mood          `json:"name"`
		Preset model.FeatureVector `json:"preset"`
	}
	moods := model.Moods()
	entries := make([]moodEntry, 0, len(moods))
	for _, m := range moods {
		preset, err := model.MoodPreset(string(m))
		if err != nil {
			continue
		}
		entries = append(entries, moodEntry{Name: m, Preset: preset})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"moods": entries})
}
