package models

// Idea is one submitted teaching practice in the AI Idea Book.
//
// Ideas are loaded once from the catalog and never modified afterwards.
// Description is an HTML fragment and is carried through unchanged; it is
// sanitized only when rendered.
type Idea struct {
	ID         int    `yaml:"id" json:"id"`
	Title      string `yaml:"title" json:"title"`
	Author     string `yaml:"author" json:"author"`
	Email      string `yaml:"email,omitempty" json:"email,omitempty"`
	Department string `yaml:"department" json:"department"`
	Date       string `yaml:"date" json:"date"` // ISO date, e.g. 2025-04-17

	Description string `yaml:"description" json:"description"`

	AITools  []string `yaml:"ai_tools" json:"ai_tools"`
	UseCases []string `yaml:"use_cases" json:"use_cases"`
	Tags     []string `yaml:"tags" json:"tags"`

	ResourceType string `yaml:"resource_type" json:"resource_type"` // advisory; see ResourceTypes
	ResourceURL  string `yaml:"resource_url" json:"resource_url"`   // relative path or absolute URL
}

// HasResource reports whether the idea links to a resource.
func (i Idea) HasResource() bool {
	return i.ResourceURL != ""
}

// Clone returns a copy of the idea that shares no slices with i.
func (i Idea) Clone() Idea {
	c := i
	c.AITools = cloneStrings(i.AITools)
	c.UseCases = cloneStrings(i.UseCases)
	c.Tags = cloneStrings(i.Tags)
	return c
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
