// Package etag derives strong entity tags from response bodies.
package etag

import (
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/zeebo/blake3"
)

// GzipSuffix is appended to the ETag of gzip-encoded responses by the
// compression middleware, so each representation has its own strong tag.
const GzipSuffix = "-gzip"

// Of returns a quoted strong ETag for body: the first 16 bytes of its BLAKE3
// digest, hex encoded.
func Of(body []byte) string {
	sum := blake3.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// Matches reports whether the request's If-None-Match header names tag or
// its gzip representation. Weak validators compare equal to their strong
// form.
func Matches(r *http.Request, tag string) bool {
	_, ok := match(r, tag)
	return ok
}

// match returns the If-None-Match entry that names tag.
func match(r *http.Request, tag string) (string, bool) {
	header := r.Header.Get("If-None-Match")
	if header == "" {
		return "", false
	}
	opaque := unquote(tag)
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return tag, true
		}
		c := unquote(strings.TrimPrefix(candidate, "W/"))
		if c == opaque || c == opaque+GzipSuffix {
			return candidate, true
		}
	}
	return "", false
}

func unquote(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// Write sends body with its ETag, or 304 Not Modified when the client
// already holds it. A 304 repeats the tag the client sent, so a cached gzip
// representation keeps its suffixed tag. Content-Type must already be set by
// the caller.
func Write(w http.ResponseWriter, r *http.Request, body []byte) {
	tag := Of(body)
	if held, ok := match(r, tag); ok {
		w.Header().Set("ETag", held)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", tag)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
