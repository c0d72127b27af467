package ideaqueries

import (
	"slices"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
)

// DefaultRelatedLimit is the number of related ideas shown on a detail page.
const DefaultRelatedLimit = 3

// Related returns other ideas that share the department, an AI tool or a use
// case with idea, in catalog order, at most limit of them. Comparison is
// exact string equality as stored. A limit <= 0 means DefaultRelatedLimit.
func Related(ideas []models.Idea, idea models.Idea, limit int) []models.Idea {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	out := make([]models.Idea, 0, limit)
	for _, other := range ideas {
		if len(out) == limit {
			break
		}
		if other.ID == idea.ID {
			continue
		}
		if other.Department == idea.Department ||
			sharesAny(other.AITools, idea.AITools) ||
			sharesAny(other.UseCases, idea.UseCases) {
			out = append(out, other)
		}
	}
	return out
}

func sharesAny(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}
