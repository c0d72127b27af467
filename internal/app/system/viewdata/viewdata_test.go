package viewdata

import (
	"testing"
)

func TestNavFor(t *testing.T) {
	tests := []struct {
		path   string
		active string
	}{
		{"/", "Home"},
		{"/ideas", "Idea Book"},
		{"/ideas/12", "Idea Book"},
		{"/ideasx", ""},
		{"/about", "About"},
		{"/health", ""},
	}
	for _, tt := range tests {
		var got string
		for _, item := range navFor(tt.path) {
			if item.Active {
				if got != "" {
					t.Errorf("%s: more than one active item", tt.path)
				}
				got = item.Label
			}
		}
		if got != tt.active {
			t.Errorf("navFor(%q) active = %q, want %q", tt.path, got, tt.active)
		}
	}
}

func TestInit(t *testing.T) {
	old := siteName
	t.Cleanup(func() { siteName = old })

	Init("")
	if SiteName() != old {
		t.Errorf("expected empty name to be ignored, got %q", SiteName())
	}
	Init("Faculty Ideas")
	if SiteName() != "Faculty Ideas" {
		t.Errorf("expected Faculty Ideas, got %q", SiteName())
	}
}
