// internal/app/store/ideas/raw.go
package ideastore

import (
	"fmt"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"gopkg.in/yaml.v3"
)

// rawIdea captures each catalog field as a node so a single malformed field
// degrades to empty instead of failing the whole catalog.
type rawIdea struct {
	ID           yaml.Node `yaml:"id"`
	Title        yaml.Node `yaml:"title"`
	Author       yaml.Node `yaml:"author"`
	Email        yaml.Node `yaml:"email"`
	Department   yaml.Node `yaml:"department"`
	Date         yaml.Node `yaml:"date"`
	Description  yaml.Node `yaml:"description"`
	AITools      yaml.Node `yaml:"ai_tools"`
	UseCases     yaml.Node `yaml:"use_cases"`
	Tags         yaml.Node `yaml:"tags"`
	ResourceType yaml.Node `yaml:"resource_type"`
	ResourceURL  yaml.Node `yaml:"resource_url"`
}

func (r *rawIdea) toIdea(pos int) (models.Idea, []string, error) {
	var id int
	if r.ID.Kind != yaml.ScalarNode || r.ID.Decode(&id) != nil {
		return models.Idea{}, nil, fmt.Errorf("idea at position %d: %w", pos, ErrInvalidID)
	}

	var warnings []string
	str := func(name string, n *yaml.Node) string {
		v, ok := nodeString(n)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("idea %d: field %s is not a string; treated as empty", id, name))
		}
		return v
	}
	list := func(name string, n *yaml.Node) []string {
		v, ok := nodeStrings(n)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("idea %d: field %s is not a list of strings; treated as empty", id, name))
		}
		return v
	}

	idea := models.Idea{
		ID:           id,
		Title:        str("title", &r.Title),
		Author:       str("author", &r.Author),
		Email:        str("email", &r.Email),
		Department:   str("department", &r.Department),
		Date:         str("date", &r.Date),
		Description:  str("description", &r.Description),
		AITools:      list("ai_tools", &r.AITools),
		UseCases:     list("use_cases", &r.UseCases),
		Tags:         list("tags", &r.Tags),
		ResourceType: str("resource_type", &r.ResourceType),
		ResourceURL:  str("resource_url", &r.ResourceURL),
	}
	return idea, warnings, nil
}

// nodeString returns the scalar value of n. Absent and null nodes are empty
// and ok; any other kind is empty and not ok.
func nodeString(n *yaml.Node) (string, bool) {
	switch {
	case n.Kind == 0:
		return "", true
	case n.Kind == yaml.ScalarNode && n.Tag == "!!null":
		return "", true
	case n.Kind == yaml.ScalarNode:
		return n.Value, true
	}
	return "", false
}

// nodeStrings returns the scalar elements of a sequence node. Non-scalar
// elements are skipped and reported as not ok.
func nodeStrings(n *yaml.Node) ([]string, bool) {
	switch {
	case n.Kind == 0:
		return nil, true
	case n.Kind == yaml.ScalarNode && n.Tag == "!!null":
		return nil, true
	case n.Kind != yaml.SequenceNode:
		return nil, false
	}

	out := make([]string, 0, len(n.Content))
	ok := true
	for _, el := range n.Content {
		if el.Kind != yaml.ScalarNode || el.Tag == "!!null" {
			ok = false
			continue
		}
		out = append(out, el.Value)
	}
	return out, ok
}
