package home

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, ideas []models.Idea, n int) *Handler {
	t.Helper()
	return NewHandler(testutil.NewStore(t, ideas), n, zap.NewNop())
}

func TestNewHandler_DefaultCount(t *testing.T) {
	h := newTestHandler(t, testutil.SampleIdeas(), 0)
	if h.SpotlightCount != DefaultSpotlightCount {
		t.Errorf("expected %d, got %d", DefaultSpotlightCount, h.SpotlightCount)
	}
}

func TestSpotlight_DistinctMembers(t *testing.T) {
	ideas := testutil.SampleIdeas()
	known := map[int]bool{}
	for _, idea := range ideas {
		known[idea.ID] = true
	}

	for range 50 {
		picked := spotlight(ideas, 4)
		if len(picked) != 4 {
			t.Fatalf("expected 4 ideas, got %d", len(picked))
		}
		seen := map[int]bool{}
		for _, idea := range picked {
			if !known[idea.ID] {
				t.Fatalf("unknown idea %d", idea.ID)
			}
			if seen[idea.ID] {
				t.Fatalf("idea %d picked twice", idea.ID)
			}
			seen[idea.ID] = true
		}
	}
}

func TestSpotlight_SmallCatalog(t *testing.T) {
	if got := spotlight(testutil.TwoIdeas(), 4); len(got) != 2 {
		t.Errorf("expected both ideas, got %d", len(got))
	}
	if got := spotlight(nil, 4); len(got) != 0 {
		t.Errorf("expected none, got %d", len(got))
	}
}

func TestBuildHome(t *testing.T) {
	long := testutil.TwoIdeas()
	long[0].Description = "<p>" + strings.Repeat("y", 400) + "</p>"

	h := newTestHandler(t, long, 4)
	data := h.buildHome(httptest.NewRequest("GET", "/", nil))

	if data.IdeaCount != 2 || len(data.Spotlight) != 2 {
		t.Fatalf("unexpected home data: count=%d slides=%d", data.IdeaCount, len(data.Spotlight))
	}
	for _, s := range data.Spotlight {
		if strings.Contains(s.Preview, "<") {
			t.Errorf("slide %d: preview has markup: %q", s.ID, s.Preview)
		}
		if s.ID == 1 && len([]rune(s.Preview)) != SpotlightPreviewLength+3 {
			t.Errorf("slide 1: expected truncated preview, got %d chars", len([]rune(s.Preview)))
		}
		if !strings.HasPrefix(s.Href, "/ideas/") {
			t.Errorf("slide %d: unexpected href %q", s.ID, s.Href)
		}
	}
}
