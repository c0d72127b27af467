// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/navigation"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	ContactEmail string
}

type Handler struct {
	ContactEmail string
	Log          *zap.Logger
}

func NewHandler(contactEmail string, logger *zap.Logger) *Handler {
	return &Handler{ContactEmail: contactEmail, Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:       viewdata.NewBaseVM(r, "About", navigation.HomePath),
		ContactEmail: h.ContactEmail,
	}
	templates.Render(w, r, "about", data)
}
