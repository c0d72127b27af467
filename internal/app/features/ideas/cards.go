package ideas

import (
	"net/url"
	"strings"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/queries/ideaqueries"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/htmlsanitize"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/navigation"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
)

// Date layouts for cards and detail pages.
const (
	cardDateLayout   = "Jan 2, 2006"
	detailDateLayout = "January 2, 2006"
)

// CardPreviewLength is the plain-text length of a card description.
const CardPreviewLength = 150

var departmentClasses = map[string]bool{
	"business":    true,
	"education":   true,
	"engineering": true,
	"humanities":  true,
	"sciences":    true,
	"other":       true,
}

var resourceIcons = map[string]string{
	models.ResourceTypePDF:         "fa-file-pdf",
	models.ResourceTypeDoc:         "fa-file-word",
	models.ResourceTypePPT:         "fa-file-powerpoint",
	models.ResourceTypeSpreadsheet: "fa-file-excel",
	models.ResourceTypeURL:         "fa-link",
	models.ResourceTypeImage:       "fa-image",
	models.ResourceTypeVideo:       "fa-video",
	models.ResourceTypeAudio:       "fa-file-audio",
}

// cardVM is one idea card in a list.
type cardVM struct {
	ID              int
	Href            string
	Title           string
	Author          string
	Department      string
	DepartmentClass string
	Date            string
	Preview         string
	Tags            []string
	ResourceHref    string
	ResourceIcon    string
}

// newCard builds the card for idea. back, when set, is attached as the
// detail page's return URL.
func newCard(idea models.Idea, back string) cardVM {
	href := navigation.IdeaPath(idea.ID)
	if back != "" {
		href += "?return=" + url.QueryEscape(back)
	}
	return cardVM{
		ID:              idea.ID,
		Href:            href,
		Title:           idea.Title,
		Author:          idea.Author,
		Department:      ideaqueries.Capitalize(idea.Department),
		DepartmentClass: departmentClass(idea.Department),
		Date:            formatDate(idea.Date, cardDateLayout),
		Preview:         htmlsanitize.Preview(idea.Description, CardPreviewLength),
		Tags:            ideaqueries.CardTags(idea, ideaqueries.CardTagLimit),
		ResourceHref:    navigation.ResourceHref(idea.ResourceURL),
		ResourceIcon:    resourceIcon(idea.ResourceType),
	}
}

func newCards(ideas []models.Idea, back string) []cardVM {
	out := make([]cardVM, 0, len(ideas))
	for _, idea := range ideas {
		out = append(out, newCard(idea, back))
	}
	return out
}

// formatDate renders an ISO date with layout, or returns s unchanged when
// it does not parse.
func formatDate(s, layout string) string {
	t, ok := ideaqueries.ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(layout)
}

func departmentClass(department string) string {
	c := strings.ToLower(department)
	if departmentClasses[c] {
		return c
	}
	return "other"
}

func resourceIcon(resourceType string) string {
	if icon, ok := resourceIcons[resourceType]; ok {
		return icon
	}
	return "fa-file"
}
