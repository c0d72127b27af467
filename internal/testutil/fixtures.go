package testutil

import (
	"testing"

	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
)

// TwoIdeas returns the two-record catalog used by the basic filter and
// related-idea scenarios: idea 1 (STELAR, BoodleBox) and idea 2 (Biology,
// Claude). They share nothing.
func TwoIdeas() []models.Idea {
	return []models.Idea{
		{
			ID:           1,
			Title:        "Using AI to Grade APA Style",
			Author:       "Glori Hinck",
			Email:        "ghinck@example.edu",
			Department:   "STELAR",
			Date:         "2025-04-17",
			Description:  "<p>Prompt strategies for <strong>APA style</strong>.</p>",
			AITools:      []string{"BoodleBox"},
			UseCases:     []string{"Assessment"},
			Tags:         []string{"APA"},
			ResourceType: models.ResourceTypePDF,
			ResourceURL:  "public/resources/APA-Style-Grading-With-AI.pdf",
		},
		{
			ID:          2,
			Title:       "Clinical Reasoning Coach",
			Author:      "Pat Example",
			Department:  "Biology",
			Date:        "2025-05-09",
			Description: "<p>Case studies for nursing students.</p>",
			AITools:     []string{"Claude"},
			UseCases:    []string{"Content Creation"},
			Tags:        []string{"Nursing"},
		},
	}
}

// SampleIdeas returns a richer catalog with overlapping departments, tools
// and use cases, equal dates, and one malformed date.
func SampleIdeas() []models.Idea {
	return []models.Idea{
		{
			ID:           10,
			Title:        "Water Quality Coach",
			Author:       "Jonathan Keiser",
			Department:   "STELAR",
			Date:         "2025-05-07",
			Description:  "<p>Geology students interpret samples.</p>",
			AITools:      []string{"ChatGPT", "Hugging Face", "Claude"},
			UseCases:     []string{"Collaboration", "Assessment"},
			Tags:         []string{"Geology", "Personalized Learning"},
			ResourceType: models.ResourceTypePDF,
			ResourceURL:  "public/resources/Water-Quality-Coach.pdf",
		},
		{
			ID:          11,
			Title:       "Progress Reports",
			Author:      "Candace Chou",
			Department:  "Education",
			Date:        "2025-05-07",
			Description: "<p>Personalized <em>progress</em> reports.</p>",
			AITools:     []string{"ChatGPT"},
			UseCases:    []string{"Student Feedback"},
			Tags:        []string{"Reports"},
		},
		{
			ID:           12,
			Title:        "Negotiation Role Play",
			Author:       "Matthew Vernon",
			Department:   "Justice and Society Studies and STELAR",
			Date:         "2025-11-11",
			Description:  "<p>AI-mediated role-play.</p>",
			AITools:      []string{"BoodleBox", "ChatGPT", "Claude"},
			UseCases:     []string{"Role Play", "Student Engagement"},
			Tags:         []string{"Simulation"},
			ResourceType: models.ResourceTypeURL,
			ResourceURL:  "https://claude.site/artifacts/abc",
		},
		{
			ID:         13,
			Title:      "Undated Draft",
			Author:     "Anon",
			Department: "Engineering",
			Date:       "sometime in spring",
			AITools:    []string{"Copilot"},
			UseCases:   []string{"content-creation"},
			Tags:       []string{"Draft"},
		},
		{
			ID:           14,
			Title:        "German Interview Practice",
			Author:       "Sabine Example",
			Department:   "Modern and Classical Languages",
			Date:         "2025-10-31",
			Description:  "<p>Voice mode interviews.</p>",
			AITools:      []string{"ChatGPT Voice Mode"},
			UseCases:     []string{"Assessment", "Language Training"},
			Tags:         []string{"German", "Interview Training"},
			ResourceType: models.ResourceTypeAudio,
			ResourceURL:  "public/resources/interview.mp3",
		},
		{
			ID:         15,
			Title:      "Lab Safety Quiz",
			Author:     "Lee Example",
			Department: "STELAR",
			Date:       "2025-04-01",
			AITools:    []string{"Gemini"},
			UseCases:   []string{"Quiz Generation"},
			Tags:       []string{"Safety", "APA"},
		},
	}
}

// NewStore builds an idea store from ideas and fails the test on error.
func NewStore(t *testing.T, ideas []models.Idea) *ideastore.Store {
	t.Helper()
	s, err := ideastore.New(ideas)
	if err != nil {
		t.Fatalf("build idea store: %v", err)
	}
	return s
}

// IDs returns the ids of ideas in order.
func IDs(ideas []models.Idea) []int {
	out := make([]int, len(ideas))
	for i, idea := range ideas {
		out[i] = idea.ID
	}
	return out
}
