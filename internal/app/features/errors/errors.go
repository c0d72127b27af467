// Package errors renders the site's friendly error pages.
package errors

import (
	"net/http"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/navigation"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No store needed; it just renders templates.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// NotFound renders the "page not found" page with a 404 status.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("not found", zap.String("path", r.URL.Path))

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found", navigation.HomePath),
		Message: "We couldn't find the page you were looking for.",
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}
