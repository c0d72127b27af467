package ideaqueries

import (
	"strings"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/normalize"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Options holds the distinct values available to each filter control.
// Each list is trimmed, de-duplicated as stored (case-sensitive) and sorted
// alphabetically with an English collator.
type Options struct {
	Departments []string `json:"departments"`
	AITools     []string `json:"ai_tools"`
	UseCases    []string `json:"use_cases"`
	Tags        []string `json:"tags"`
}

// Choice is one entry of a select control: the normalized key that goes in
// the query string and the label shown to the visitor.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DeriveOptions collects the option sets from ideas.
func DeriveOptions(ideas []models.Idea) Options {
	var deps, tools, uses, tags []string
	for _, idea := range ideas {
		deps = append(deps, idea.Department)
		tools = append(tools, idea.AITools...)
		uses = append(uses, idea.UseCases...)
		tags = append(tags, idea.Tags...)
	}
	return Options{
		Departments: distinctSorted(deps),
		AITools:     distinctSorted(tools),
		UseCases:    distinctSorted(uses),
		Tags:        distinctSorted(tags),
	}
}

// Choices pairs each label with its normalized value.
func Choices(labels []string) []Choice {
	out := make([]Choice, 0, len(labels))
	for _, l := range labels {
		out = append(out, Choice{Value: normalize.Value(l), Label: l})
	}
	return out
}

// LabelFor returns the first label whose normalized form is key, or "" when
// none matches. It maps a query-string key back to display text.
func LabelFor(labels []string, key string) string {
	if key == "" {
		return ""
	}
	for _, l := range labels {
		if normalize.Value(l) == key {
			return l
		}
	}
	return ""
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	// Collator is not safe for concurrent use; build one per call.
	collate.New(language.English).SortStrings(out)
	return out
}
