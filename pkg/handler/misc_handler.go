// Handler for miscellaneous endpoints such as health check

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/yumyai/metagame/pkg/model"
)

type HealthResponse struct {
	Health    string    `json:"health"`
	Sessions  int       `json:"sessions"`
	Timestamp time.Time `json:"timestamp"`
}

func (gctx *GameContext) HealthCheck(w http.ResponseWriter, r *http.Request) {

	response := HealthResponse{
		Health:    "ok",
		Sessions:  gctx.Sessions.Len(),
		Timestamp: time.Now(),
	}

	writeJSON(w, http.StatusOK, response)
}

// Reference library, same content as the page's panel.
func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Library())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
