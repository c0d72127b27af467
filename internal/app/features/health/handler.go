package health

import (
	"encoding/json"
	"net/http"

	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Store *ideastore.Store
	Log   *zap.Logger
}

// NewHandler constructs a health Handler with the idea store and logger.
func NewHandler(store *ideastore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Ideas   int    `json:"ideas"`
	Message string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "ideas":31 }
//
// With no catalog loaded: 503 and
//
//	{ "status":"error", "ideas":0, "message":"Catalog unavailable" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.Store == nil {
		h.Log.Error("health-check: no idea store")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "error", Message: "Catalog unavailable"})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Ideas: h.Store.Len()})
}
