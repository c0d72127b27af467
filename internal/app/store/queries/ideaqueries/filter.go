package ideaqueries

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/normalize"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
)

// Filter applies c to ideas and returns the matches sorted by date.
//
// The four option filters are ANDed together; a sequence field matches when
// any of its elements normalizes to the selected key. Search keeps ideas
// whose title, raw description, author, tags, tools or use cases contain the
// text, ignoring case. Results are sorted stably by date, newest first unless
// c.Sort is SortOldest. Ideas with an unparsable date sort as the oldest.
//
// The input slice is not modified. The result may be empty but is never nil.
func Filter(ideas []models.Idea, c Criteria) []models.Idea {
	search := strings.ToLower(c.Search)

	out := make([]models.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if c.Department != "" && normalize.Value(idea.Department) != c.Department {
			continue
		}
		if c.AITool != "" && !anyNormalized(idea.AITools, c.AITool) {
			continue
		}
		if c.UseCase != "" && !anyNormalized(idea.UseCases, c.UseCase) {
			continue
		}
		if c.Tag != "" && !anyNormalized(idea.Tags, c.Tag) {
			continue
		}
		if search != "" && !matchesSearch(idea, search) {
			continue
		}
		out = append(out, idea)
	}

	SortByDate(out, c.Sort)
	return out
}

// SortByDate sorts ideas in place by date. Equal dates keep their relative
// order.
func SortByDate(ideas []models.Idea, order SortOrder) {
	slices.SortStableFunc(ideas, func(a, b models.Idea) int {
		da, db := dateKey(a.Date), dateKey(b.Date)
		if order == SortOldest {
			return compareInt64(da, db)
		}
		return compareInt64(db, da)
	})
}

// ParseDate parses an idea date. Both plain dates and RFC 3339 timestamps
// are accepted.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// dateKey orders unparsable dates before every real date.
func dateKey(s string) int64 {
	t, ok := ParseDate(s)
	if !ok {
		return math.MinInt64
	}
	return t.Unix()
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func anyNormalized(values []string, key string) bool {
	for _, v := range values {
		if normalize.Value(v) == key {
			return true
		}
	}
	return false
}

// matchesSearch expects needle to be lowercased already.
func matchesSearch(idea models.Idea, needle string) bool {
	if containsFold(idea.Title, needle) ||
		containsFold(idea.Description, needle) ||
		containsFold(idea.Author, needle) {
		return true
	}
	for _, group := range [][]string{idea.Tags, idea.AITools, idea.UseCases} {
		for _, v := range group {
			if containsFold(v, needle) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
