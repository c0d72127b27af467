package ideas

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/queries/ideaqueries"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/etag"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/resourcekind"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type listResponse struct {
	Count int           `json:"count"`
	Ideas []models.Idea `json:"ideas"`
}

type ideaResponse struct {
	models.Idea
	Kind        resourcekind.Kind `json:"kind"`
	DisplayTags []string          `json:"display_tags"`
}

type optionsResponse struct {
	Departments []ideaqueries.Choice `json:"departments"`
	AITools     []ideaqueries.Choice `json:"ai_tools"`
	UseCases    []ideaqueries.Choice `json:"use_cases"`
	Tags        []ideaqueries.Choice `json:"tags"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeAPIList handles GET /api/ideas with the same query parameters as the
// list page.
func (h *Handler) ServeAPIList(w http.ResponseWriter, r *http.Request) {
	c := ideaqueries.CriteriaFromQuery(r.URL.Query())
	matches := ideaqueries.Filter(h.Store.All(), c)
	h.writeJSON(w, r, listResponse{Count: len(matches), Ideas: matches})
}

// ServeAPIDetail handles GET /api/ideas/{id}.
func (h *Handler) ServeAPIDetail(w http.ResponseWriter, r *http.Request) {
	idea, ok := h.lookup(r)
	if !ok {
		writeError(w, http.StatusNotFound, "idea not found")
		return
	}
	h.writeJSON(w, r, ideaResponse{
		Idea:        idea,
		Kind:        resourcekind.ForIdea(idea),
		DisplayTags: ideaqueries.DisplayTags(idea),
	})
}

// ServeAPIRelated handles GET /api/ideas/{id}/related?limit=N.
func (h *Handler) ServeAPIRelated(w http.ResponseWriter, r *http.Request) {
	idea, ok := h.lookup(r)
	if !ok {
		writeError(w, http.StatusNotFound, "idea not found")
		return
	}
	limit := h.Cfg.RelatedLimit
	if s := query.Get(r, "limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	related := ideaqueries.Related(h.Store.All(), idea, limit)
	h.writeJSON(w, r, listResponse{Count: len(related), Ideas: related})
}

// ServeAPIOptions handles GET /api/options.
func (h *Handler) ServeAPIOptions(w http.ResponseWriter, r *http.Request) {
	opts := ideaqueries.DeriveOptions(h.Store.All())
	h.writeJSON(w, r, optionsResponse{
		Departments: ideaqueries.Choices(opts.Departments),
		AITools:     ideaqueries.Choices(opts.AITools),
		UseCases:    ideaqueries.Choices(opts.UseCases),
		Tags:        ideaqueries.Choices(opts.Tags),
	})
}

// writeJSON encodes v and sends it with a content ETag.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.Log.Error("api: encode response", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	etag.Write(w, r, body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
