// internal/app/store/ideas/ideastore.go
package ideastore

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/ideas.yaml
var catalogFS embed.FS

// DefaultCatalog is the embedded catalog path inside catalogFS.
const DefaultCatalog = "data/ideas.yaml"

var (
	ErrDuplicateID = errors.New("duplicate idea id")
	ErrInvalidID   = errors.New("idea id must be a positive integer")
)

// Store is the immutable, ordered collection of ideas.
//
// A Store never changes after it is built, so it is safe to share between
// goroutines. Accessors hand out copies; callers may modify what they get.
type Store struct {
	ideas    []models.Idea
	byID     map[int]int
	warnings []string
}

// New validates ideas and builds a Store that keeps them in the given order.
// String fields are trimmed and nil slices become empty.
func New(ideas []models.Idea) (*Store, error) {
	s := &Store{
		ideas: make([]models.Idea, 0, len(ideas)),
		byID:  make(map[int]int, len(ideas)),
	}
	for i, idea := range ideas {
		if idea.ID <= 0 {
			return nil, fmt.Errorf("idea at position %d: %w", i+1, ErrInvalidID)
		}
		if _, dup := s.byID[idea.ID]; dup {
			return nil, fmt.Errorf("idea %d: %w", idea.ID, ErrDuplicateID)
		}
		idea = tidy(idea)
		s.warnings = append(s.warnings, check(idea)...)
		s.byID[idea.ID] = len(s.ideas)
		s.ideas = append(s.ideas, idea)
	}
	return s, nil
}

// Load parses a YAML catalog. Fields that are missing or have an
// unexpected shape are treated as empty and reported through Warnings.
func Load(r io.Reader) (*Store, error) {
	var raw []rawIdea
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	ideas := make([]models.Idea, 0, len(raw))
	var warnings []string
	for i := range raw {
		idea, w, err := raw[i].toIdea(i + 1)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, w...)
		ideas = append(ideas, idea)
	}

	s, err := New(ideas)
	if err != nil {
		return nil, err
	}
	s.warnings = append(warnings, s.warnings...)
	return s, nil
}

// LoadFile loads a catalog from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// LoadDefault loads the catalog embedded in the binary.
func LoadDefault() (*Store, error) {
	data, err := catalogFS.ReadFile(DefaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// All returns every idea in catalog order.
func (s *Store) All() []models.Idea {
	out := make([]models.Idea, len(s.ideas))
	for i, idea := range s.ideas {
		out[i] = idea.Clone()
	}
	return out
}

// ByID looks up an idea. The boolean is false when no idea has that id.
func (s *Store) ByID(id int) (models.Idea, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Idea{}, false
	}
	return s.ideas[i].Clone(), true
}

// Len returns the number of ideas.
func (s *Store) Len() int { return len(s.ideas) }

// Warnings lists non-fatal problems found while loading.
func (s *Store) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

func tidy(idea models.Idea) models.Idea {
	idea.Title = strings.TrimSpace(idea.Title)
	idea.Author = strings.TrimSpace(idea.Author)
	idea.Email = strings.TrimSpace(idea.Email)
	idea.Department = strings.TrimSpace(idea.Department)
	idea.Date = strings.TrimSpace(idea.Date)
	idea.ResourceType = strings.ToLower(strings.TrimSpace(idea.ResourceType))
	idea.ResourceURL = strings.TrimSpace(idea.ResourceURL)
	idea.AITools = tidyList(idea.AITools)
	idea.UseCases = tidyList(idea.UseCases)
	idea.Tags = tidyList(idea.Tags)
	return idea
}

func tidyList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func check(idea models.Idea) []string {
	var w []string
	if !models.IsResourceType(idea.ResourceType) {
		w = append(w, fmt.Sprintf("idea %d: unknown resource_type %q", idea.ID, idea.ResourceType))
	}
	if _, err := time.Parse(time.DateOnly, idea.Date); err != nil {
		w = append(w, fmt.Sprintf("idea %d: date %q is not YYYY-MM-DD", idea.ID, idea.Date))
	}
	return w
}
