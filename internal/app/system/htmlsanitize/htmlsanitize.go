// Package htmlsanitize cleans idea descriptions for display and reduces them
// to plain text for previews.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Ellipsis is appended to truncated previews.
const Ellipsis = "..."

var (
	ugc    = newUGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// newUGCPolicy covers what catalog descriptions use: paragraphs, emphasis,
// lists, blockquotes, line breaks and links. Absolute links open in a new tab.
func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize strips anything from s that is not safe user-generated HTML.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// SanitizeToHTML is Sanitize typed for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no tag-like markup.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// PlainTextToHTML escapes s and wraps it in a paragraph, turning newlines
// into line breaks.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders a description that may be either HTML or plain
// text.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}

// PlainText removes all markup from s, decodes entities and collapses runs
// of whitespace to a single space.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

// Truncate cuts s to at most max characters and appends Ellipsis when
// anything was cut.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + Ellipsis
}

// Preview is the plain-text form of a description cut to max characters.
func Preview(s string, max int) string {
	return Truncate(PlainText(s), max)
}
