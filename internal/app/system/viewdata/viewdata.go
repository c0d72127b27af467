// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/navigation"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// NavItem is one entry of the top navigation bar.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string
	Nav      []NavItem

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

var siteName = models.DefaultSiteName

// Init sets the site name shown in page titles and the header.
// Call this once at startup from bootstrap.
func Init(name string) {
	if name != "" {
		siteName = name
	}
}

// SiteName returns the configured site name.
func SiteName() string { return siteName }

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	return BaseVM{
		SiteName:    siteName,
		Nav:         navFor(r.URL.Path),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}

func navFor(path string) []NavItem {
	items := []NavItem{
		{Label: "Home", Href: navigation.HomePath},
		{Label: "Idea Book", Href: navigation.IdeasPath},
		{Label: "About", Href: navigation.AboutPath},
	}
	for i, item := range items {
		if item.Href == navigation.HomePath {
			items[i].Active = path == navigation.HomePath
			continue
		}
		items[i].Active = path == item.Href || strings.HasPrefix(path, item.Href+"/")
	}
	return items
}
