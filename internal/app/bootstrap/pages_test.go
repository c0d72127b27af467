package bootstrap

import (
	"html"
	"net/http"
	"strings"
	"sync"
	"testing"

	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/queries/ideaqueries"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/navigation"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/resourcekind"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

const testContactEmail = "ideas@example.edu"

var (
	pagesOnce    sync.Once
	pagesHandler http.Handler
	pagesStore   *ideastore.Store
	pagesCfg     AppConfig
	pagesErr     error
)

// pageRouter builds the full handler, template engine included, once for
// every test in this file.
func pageRouter(t *testing.T) (http.Handler, *ideastore.Store) {
	t.Helper()
	pagesOnce.Do(func() {
		pagesStore, pagesErr = ideastore.LoadDefault()
		if pagesErr != nil {
			return
		}
		pagesCfg = validConfig()
		pagesCfg.ContactFallbackEmail = testContactEmail
		pagesCfg.StaticDir = t.TempDir()
		pagesCfg.ResourcesDir = t.TempDir()
		pagesHandler, pagesErr = BuildHandler(&config.CoreConfig{Env: "test"}, pagesCfg, DBDeps{Ideas: pagesStore}, zap.NewNop())
	})
	if pagesErr != nil {
		t.Fatalf("build handler: %v", pagesErr)
	}
	return pagesHandler, pagesStore
}

func getPage(t *testing.T, h http.Handler, target string, wantStatus int) string {
	t.Helper()
	rec := testutil.Serve(h, http.MethodGet, target)
	if rec.Code != wantStatus {
		t.Fatalf("%s: status got %d, want %d", target, rec.Code, wantStatus)
	}
	if ct := rec.Header().Get("Content-Type"); wantStatus == http.StatusOK && !strings.HasPrefix(ct, "text/html") {
		t.Errorf("%s: Content-Type got %q, want text/html", target, ct)
	}
	return rec.Body.String()
}

func assertContains(t *testing.T, target, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("%s: expected page to contain %q", target, want)
		}
	}
}

func TestPages_Home(t *testing.T) {
	h, _ := pageRouter(t)
	body := getPage(t, h, "/", http.StatusOK)

	assertContains(t, "/", body, "Idea Spotlight", `id="spotlight-slides"`)
	if n := strings.Count(body, `class="spotlight-slide"`); n != pagesCfg.SpotlightCount {
		t.Errorf("expected %d spotlight slides, got %d", pagesCfg.SpotlightCount, n)
	}
}

func TestPages_About(t *testing.T) {
	h, _ := pageRouter(t)
	body := getPage(t, h, "/about", http.StatusOK)
	assertContains(t, "/about", body, "About the AI Idea Book", `href="mailto:`+testContactEmail+`"`)
}

func TestPages_NotFound(t *testing.T) {
	h, _ := pageRouter(t)
	for _, target := range []string{"/nope", "/about/nope", "/ideas/1/extra"} {
		body := getPage(t, h, target, http.StatusNotFound)
		assertContains(t, target, body, "Page not found", `href="/ideas"`)
	}
}

func TestPages_ListEmptyState(t *testing.T) {
	h, _ := pageRouter(t)
	target := "/ideas?q=zzzz-no-such-idea"
	body := getPage(t, h, target, http.StatusOK)

	assertContains(t, target, body,
		"No ideas found",
		`<span id="idea-count">0</span>`,
		"Clear all filters",
		`value="zzzz-no-such-idea"`,
	)
	if strings.Contains(body, `class="idea-card"`) {
		t.Error("expected no idea cards")
	}
}

func TestPages_ListFiltered(t *testing.T) {
	h, store := pageRouter(t)
	target := "/ideas?department=stelar"
	body := getPage(t, h, target, http.StatusOK)

	want := len(ideaqueries.Filter(store.All(), ideaqueries.Criteria{Department: "stelar"}))
	if want == 0 {
		t.Fatal("expected catalog ideas from STELAR")
	}
	assertContains(t, target, body,
		`<option value="stelar" selected>`,
		"Showing ideas for <strong>STELAR</strong>",
	)
	if n := strings.Count(body, `class="idea-card"`); n != min(want, pagesCfg.PageSize) {
		t.Errorf("expected %d cards, got %d", min(want, pagesCfg.PageSize), n)
	}
}

func TestPages_ListUnfiltered(t *testing.T) {
	h, store := pageRouter(t)
	body := getPage(t, h, "/ideas", http.StatusOK)

	if strings.Contains(body, "Showing ideas for") || strings.Contains(body, "Clear all filters") {
		t.Error("expected no active filters on the unfiltered list")
	}
	if n := strings.Count(body, `class="idea-card"`); n != min(store.Len(), pagesCfg.PageSize) {
		t.Errorf("expected %d cards, got %d", min(store.Len(), pagesCfg.PageSize), n)
	}
}

// viewerMarker is the markup that identifies the inline viewer chosen for p.
func viewerMarker(p resourcekind.Plan) string {
	if !p.Available() {
		return resourcekind.MessageNoResource
	}
	switch p.Embed {
	case resourcekind.EmbedPanopto:
		return `class="video-container"`
	case resourcekind.EmbedFrame:
		return `class="resource-frame"`
	case resourcekind.EmbedVideo:
		return `<video controls`
	case resourcekind.EmbedAudio:
		return `<audio `
	case resourcekind.EmbedImage:
		return `alt="Resource Image" class="resource-media"`
	}
	return html.EscapeString(p.Message)
}

func TestPages_EveryIdeaDetail(t *testing.T) {
	h, store := pageRouter(t)
	all := store.All()

	for _, idea := range all {
		target := navigation.IdeaPath(idea.ID)
		body := getPage(t, h, target, http.StatusOK)

		assertContains(t, target, body,
			`id="idea-title"`,
			`href="mailto:`,
			"subject=Question%20about%20your%20AI%20idea%3A%20",
			`id="related-ideas-container"`,
		)

		plan := resourcekind.PlanFor(navigation.ResourceHref(idea.ResourceURL))
		assertContains(t, target, body, viewerMarker(plan))
		if !plan.ShowDownload && strings.Contains(body, " download>") {
			t.Errorf("%s: expected no download button", target)
		}
		if plan.ShowDownload && !strings.Contains(body, " download>") {
			t.Errorf("%s: expected a download button", target)
		}

		related := ideaqueries.Related(all, idea, pagesCfg.RelatedLimit)
		if len(related) == 0 {
			assertContains(t, target, body, "No related ideas found")
		}
		for _, rel := range related {
			assertContains(t, target, body, `data-href="`+navigation.IdeaPath(rel.ID)+`"`)
		}
	}
}

func TestPages_DetailBadIDRedirects(t *testing.T) {
	h, _ := pageRouter(t)
	for _, target := range []string{"/ideas/abc", "/ideas/99999"} {
		rec := testutil.Serve(h, http.MethodGet, target)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("%s: status got %d, want %d", target, rec.Code, http.StatusSeeOther)
		}
		if loc := rec.Header().Get("Location"); loc != navigation.IdeasPath {
			t.Errorf("%s: Location got %q, want %q", target, loc, navigation.IdeasPath)
		}
	}
}
