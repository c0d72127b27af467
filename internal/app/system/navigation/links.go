package navigation

import (
	"net/url"
	"strconv"
	"strings"
)

// Site paths.
const (
	HomePath  = "/"
	IdeasPath = "/ideas"
	AboutPath = "/about"
)

// ContactSubjectPrefix starts the subject line of the contact-author link.
const ContactSubjectPrefix = "Question about your AI idea: "

// IdeaPath is the detail page of the idea with the given id.
func IdeaPath(id int) string {
	return IdeasPath + "/" + strconv.Itoa(id)
}

// IdeasURL is the idea list with the given query.
func IdeasURL(q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return IdeasPath + "?" + enc
	}
	return IdeasPath
}

// IsExternal reports whether p is an absolute or protocol-relative http(s)
// URL, or a mailto link.
func IsExternal(p string) bool {
	lower := strings.ToLower(p)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") ||
		strings.HasPrefix(lower, "mailto:")
}

// ResourceHref resolves a catalog resource path to a link. External URLs
// pass through; relative paths are rooted at the site.
func ResourceHref(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || IsExternal(p) {
		return p
	}
	return "/" + strings.TrimLeft(p, "/")
}

// ContactHref builds the mailto link used to reach an idea's author. The
// fallback address is used when email is empty.
func ContactHref(email, fallback, title string) string {
	to := strings.TrimSpace(email)
	if to == "" {
		to = fallback
	}
	subject := strings.ReplaceAll(url.QueryEscape(ContactSubjectPrefix+title), "+", "%20")
	return "mailto:" + to + "?subject=" + subject
}
