package ideas

import (
	"net/http"
	"strconv"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/queries/ideaqueries"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/navigation"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/paging"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// selectOption is one <option> of a filter control.
type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

type listData struct {
	viewdata.BaseVM

	Search      string
	SortOldest  bool
	Departments []selectOption
	AITools     []selectOption
	UseCases    []selectOption
	Tags        []selectOption

	Count         int
	Cards         []cardVM
	Filtered      bool
	ActiveFilters []string // labels of the selected options, then the search text
	ClearURL      string

	Range   paging.Range
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /ideas – filterable list                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := h.buildList(r)
	h.Log.Debug("idea list",
		zap.Int("matches", data.Count),
		zap.Bool("filtered", data.Filtered),
		zap.Int("start", data.Range.Start))
	templates.Render(w, r, "ideas_list", data)
}

func (h *Handler) buildList(r *http.Request) listData {
	all := h.Store.All()
	c := ideaqueries.CriteriaFromQuery(r.URL.Query())
	matches := ideaqueries.Filter(all, c)
	opts := ideaqueries.DeriveOptions(all)

	start := paging.ParseStart(r)
	page, res := paging.Window(matches, start, h.Cfg.PageSize)

	self := pageURL(c, start)

	data := listData{
		BaseVM:      viewdata.NewBaseVM(r, "Idea Book", navigation.HomePath),
		Search:      c.Search,
		SortOldest:  c.Sort == ideaqueries.SortOldest,
		Departments: selectOptions(opts.Departments, c.Department),
		AITools:     selectOptions(opts.AITools, c.AITool),
		UseCases:    selectOptions(opts.UseCases, c.UseCase),
		Tags:        selectOptions(opts.Tags, c.Tag),
		Count:       len(matches),
		Cards:       newCards(page, self),
		Filtered:    c.Active(),
		ClearURL:    navigation.IdeasPath,
		Range:       paging.ComputeRange(start, len(page), h.Cfg.PageSize),
		HasPrev:     res.HasPrev,
		HasNext:     res.HasNext,
	}
	data.ActiveFilters = activeFilters(opts, c)
	if res.HasPrev {
		data.PrevURL = pageURL(c, data.Range.PrevStart)
	}
	if res.HasNext {
		data.NextURL = pageURL(c, data.Range.NextStart)
	}
	return data
}

// activeFilters names the current selections for the results heading.
// Keys that match no option are skipped.
func activeFilters(opts ideaqueries.Options, c ideaqueries.Criteria) []string {
	var out []string
	for _, sel := range []struct {
		labels []string
		key    string
	}{
		{opts.Departments, c.Department},
		{opts.AITools, c.AITool},
		{opts.UseCases, c.UseCase},
		{opts.Tags, c.Tag},
	} {
		if label := ideaqueries.LabelFor(sel.labels, sel.key); label != "" {
			out = append(out, label)
		}
	}
	if c.Search != "" {
		out = append(out, c.Search)
	}
	return out
}

func selectOptions(labels []string, selected string) []selectOption {
	choices := ideaqueries.Choices(labels)
	out := make([]selectOption, 0, len(choices))
	for _, ch := range choices {
		out = append(out, selectOption{
			Value:    ch.Value,
			Label:    ch.Label,
			Selected: selected != "" && ch.Value == selected,
		})
	}
	return out
}

func pageURL(c ideaqueries.Criteria, start int) string {
	q := c.Values()
	if start > 1 {
		q.Set("start", strconv.Itoa(start))
	}
	return navigation.IdeasURL(q)
}
