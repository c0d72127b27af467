// Package resourcekind classifies idea resources by the kind of viewer they need.
package resourcekind

import (
	"strings"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
)

// Kind is the viewer category of a resource.
type Kind string

const (
	PDF    Kind = "pdf"
	Video  Kind = "video"
	Audio  Kind = "audio"
	Image  Kind = "image"
	Office Kind = "office"
	URL    Kind = "url"
	Other  Kind = "other"
)

var extensions = map[string]Kind{
	"mp3": Audio, "wav": Audio, "ogg": Audio, "aac": Audio, "m4a": Audio,
	"pdf": PDF,
	"doc": Office, "docx": Office, "ppt": Office, "pptx": Office, "xls": Office, "xlsx": Office,
	"mp4": Video, "webm": Video, "mov": Video, "avi": Video,
	"png": Image, "jpg": Image, "jpeg": Image, "gif": Image, "bmp": Image, "svg": Image, "webp": Image,
}

// FromURL infers the kind from the extension of u. The fragment and query are
// dropped first; the extension is whatever follows the final ".". Strings with
// no known extension are URL when they start with "http" and Other otherwise.
func FromURL(u string) Kind {
	rest, _, _ := strings.Cut(u, "#")
	rest, _, _ = strings.Cut(rest, "?")

	ext := rest
	if i := strings.LastIndex(rest, "."); i >= 0 {
		ext = rest[i+1:]
	}
	if k, ok := extensions[strings.ToLower(ext)]; ok {
		return k
	}
	if strings.HasPrefix(u, "http") {
		return URL
	}
	return Other
}

// FromType maps the advisory resource_type field of an idea to a Kind.
func FromType(t string) Kind {
	switch t {
	case models.ResourceTypePDF:
		return PDF
	case models.ResourceTypeDoc, models.ResourceTypePPT, models.ResourceTypeSpreadsheet:
		return Office
	case models.ResourceTypeURL:
		return URL
	case models.ResourceTypeImage:
		return Image
	case models.ResourceTypeVideo:
		return Video
	case models.ResourceTypeAudio:
		return Audio
	default:
		return Other
	}
}

// ForIdea classifies the idea's resource. The URL wins; the advisory type is
// only consulted when the URL says nothing.
func ForIdea(idea models.Idea) Kind {
	if k := FromURL(idea.ResourceURL); k != Other {
		return k
	}
	return FromType(idea.ResourceType)
}
