// Package ideaqueries provides the read-only queries behind the Idea Book:
// filtering and sorting, filter option sets, related ideas and display tags.
//
// Every function here is pure. None of them modify the ideas they are given.
package ideaqueries

import (
	"net/url"
	"strings"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/normalize"
)

// SortOrder selects the date ordering of filter results.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ParseSortOrder maps a raw value to a SortOrder. Anything other than
// "oldest" means newest first.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortOldest)) {
		return SortOldest
	}
	return SortNewest
}

// Query parameter names shared by the list page, the JSON API and ideactl.
const (
	ParamDepartment = "department"
	ParamAITool     = "ai_tool"
	ParamUseCase    = "use_case"
	ParamTag        = "tag"
	ParamSearch     = "q"
	ParamSort       = "sort"
)

// Criteria is the set of active selections for one filter pass.
//
// Department, AITool, UseCase and Tag hold normalized keys (see
// normalize.Value); an empty field means the filter is off. Search is free
// text matched case-insensitively.
type Criteria struct {
	Department string
	AITool     string
	UseCase    string
	Tag        string
	Search     string
	Sort       SortOrder
}

// CriteriaFromQuery builds Criteria from URL query values. Filter values are
// normalized, so both "content-creation" and "Content Creation" select the
// same use case.
func CriteriaFromQuery(q url.Values) Criteria {
	return Criteria{
		Department: normalize.Value(q.Get(ParamDepartment)),
		AITool:     normalize.Value(q.Get(ParamAITool)),
		UseCase:    normalize.Value(q.Get(ParamUseCase)),
		Tag:        normalize.Value(q.Get(ParamTag)),
		Search:     normalize.QueryParam(q.Get(ParamSearch)),
		Sort:       ParseSortOrder(q.Get(ParamSort)),
	}
}

// Active reports whether any filter or search is set. Sort order alone does
// not count.
func (c Criteria) Active() bool {
	return c.Department != "" || c.AITool != "" || c.UseCase != "" || c.Tag != "" || c.Search != ""
}

// Values encodes c back into query values, omitting empty fields and the
// default sort order.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set(ParamDepartment, c.Department)
	set(ParamAITool, c.AITool)
	set(ParamUseCase, c.UseCase)
	set(ParamTag, c.Tag)
	set(ParamSearch, c.Search)
	if c.Sort == SortOldest {
		v.Set(ParamSort, string(SortOldest))
	}
	return v
}
