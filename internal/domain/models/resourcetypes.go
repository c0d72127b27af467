// internal/domain/models/resourcetypes.go
package models

// Advisory resource type identifiers stored in Idea.ResourceType.
//
// The detail page re-derives the type from the resource URL where it can,
// so these values only need to be good enough for list icons.
const (
	ResourceTypePDF         = "pdf"
	ResourceTypeDoc         = "doc"
	ResourceTypePPT         = "ppt"
	ResourceTypeSpreadsheet = "spreadsheet"
	ResourceTypeURL         = "url"
	ResourceTypeImage       = "image"
	ResourceTypeVideo       = "video"
	ResourceTypeAudio       = "audio"
	ResourceTypeNone        = ""
)

// ResourceTypes is the full set of recognized resource type identifiers.
var ResourceTypes = []string{
	ResourceTypePDF,
	ResourceTypeDoc,
	ResourceTypePPT,
	ResourceTypeSpreadsheet,
	ResourceTypeURL,
	ResourceTypeImage,
	ResourceTypeVideo,
	ResourceTypeAudio,
	ResourceTypeNone,
}

// IsResourceType reports whether t is one of ResourceTypes.
func IsResourceType(t string) bool {
	for _, v := range ResourceTypes {
		if v == t {
			return true
		}
	}
	return false
}
