package ideas

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/queries/ideaqueries"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/htmlsanitize"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/navigation"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/resourcekind"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/viewdata"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type resourceVM struct {
	resourcekind.Plan
	Href string
}

type detailData struct {
	viewdata.BaseVM

	ID          int
	Title       string
	Author      string
	Department  string
	Date        string
	Description template.HTML
	Tags        []string
	Resource    resourceVM
	ContactHref string
	Related     []cardVM
}

// lookup resolves the {id} URL parameter. ok is false for a malformed or
// unknown id.
func (h *Handler) lookup(r *http.Request) (models.Idea, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return models.Idea{}, false
	}
	return h.Store.ByID(id)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /ideas/{id} – detail                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	idea, ok := h.lookup(r)
	if !ok {
		h.Log.Info("idea not found, redirecting to list", zap.String("id", chi.URLParam(r, "id")))
		http.Redirect(w, r, navigation.IdeasPath, http.StatusSeeOther)
		return
	}
	templates.Render(w, r, "idea_detail", h.buildDetail(r, idea))
}

func (h *Handler) buildDetail(r *http.Request, idea models.Idea) detailData {
	href := navigation.ResourceHref(idea.ResourceURL)
	related := ideaqueries.Related(h.Store.All(), idea, h.Cfg.RelatedLimit)

	data := detailData{
		BaseVM:      viewdata.NewBaseVM(r, idea.Title, navigation.IdeasPath),
		ID:          idea.ID,
		Title:       idea.Title,
		Author:      idea.Author,
		Department:  ideaqueries.Capitalize(idea.Department),
		Date:        formatDate(idea.Date, detailDateLayout),
		Description: htmlsanitize.PrepareForDisplay(idea.Description),
		Tags:        ideaqueries.DisplayTags(idea),
		Resource:    resourceVM{Plan: resourcekind.PlanFor(href), Href: href},
		ContactHref: navigation.ContactHref(idea.Email, h.Cfg.ContactEmail, idea.Title),
		Related:     newCards(related, ""),
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.IdeasBackURL)
	return data
}
