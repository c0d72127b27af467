package home

import (
	"math/rand/v2"
	"net/http"

	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/htmlsanitize"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/navigation"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/viewdata"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// DefaultSpotlightCount is how many ideas the landing page features.
const DefaultSpotlightCount = 4

// SpotlightPreviewLength is the plain-text length of a spotlight slide.
const SpotlightPreviewLength = 300

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Store          *ideastore.Store
	SpotlightCount int
	Log            *zap.Logger
}

func NewHandler(store *ideastore.Store, spotlightCount int, logger *zap.Logger) *Handler {
	if spotlightCount <= 0 {
		spotlightCount = DefaultSpotlightCount
	}
	return &Handler{
		Store:          store,
		SpotlightCount: spotlightCount,
		Log:            logger,
	}
}

type slideVM struct {
	ID      int
	Href    string
	Title   string
	Preview string
}

type homeData struct {
	viewdata.BaseVM
	IdeaCount int
	Spotlight []slideVM
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "home", h.buildHome(r))
}

func (h *Handler) buildHome(r *http.Request) homeData {
	all := h.Store.All()
	picked := spotlight(all, h.SpotlightCount)

	slides := make([]slideVM, 0, len(picked))
	for _, idea := range picked {
		slides = append(slides, slideVM{
			ID:      idea.ID,
			Href:    navigation.IdeaPath(idea.ID),
			Title:   idea.Title,
			Preview: htmlsanitize.Preview(idea.Description, SpotlightPreviewLength),
		})
	}

	return homeData{
		BaseVM:    viewdata.NewBaseVM(r, "Welcome", navigation.HomePath),
		IdeaCount: len(all),
		Spotlight: slides,
	}
}

// spotlight picks up to n distinct ideas uniformly at random.
func spotlight(ideas []models.Idea, n int) []models.Idea {
	if n > len(ideas) {
		n = len(ideas)
	}
	out := make([]models.Idea, 0, n)
	for _, i := range rand.Perm(len(ideas))[:n] {
		out = append(out, ideas[i])
	}
	return out
}
