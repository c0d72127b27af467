package ideaqueries

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
)

// CardTagLimit is how many display tags a list card shows.
const CardTagLimit = 5

// DisplayTags returns the labels shown for an idea: its tags, then its AI
// tools with the first letter capitalized, then its use cases with every
// hyphen- or space-separated word capitalized and joined by spaces.
// Duplicates are kept.
func DisplayTags(idea models.Idea) []string {
	out := make([]string, 0, len(idea.Tags)+len(idea.AITools)+len(idea.UseCases))
	out = append(out, idea.Tags...)
	for _, tool := range idea.AITools {
		out = append(out, Capitalize(tool))
	}
	for _, uc := range idea.UseCases {
		out = append(out, titleWords(uc))
	}
	return out
}

// CardTags is DisplayTags truncated to max entries. A max <= 0 means
// CardTagLimit.
func CardTags(idea models.Idea, max int) []string {
	if max <= 0 {
		max = CardTagLimit
	}
	tags := DisplayTags(idea)
	if len(tags) > max {
		tags = tags[:max]
	}
	return tags
}

// Capitalize upper-cases the first character of s and leaves the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func titleWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}
