package resourcekind

import "strings"

// Embed describes how the detail page shows a resource inline.
type Embed string

const (
	EmbedNone    Embed = ""
	EmbedFrame   Embed = "iframe"
	EmbedPanopto Embed = "panopto"
	EmbedVideo   Embed = "video"
	EmbedAudio   Embed = "audio"
	EmbedImage   Embed = "image"
)

const (
	panoptoHost  = "stthomas.hosted.panopto.com"
	claudePrefix = "claude.site/artifacts"
)

// Messages shown in place of an inline viewer.
const (
	MessageNoResource  = "No resource available"
	MessageRestricted  = "This resource cannot be displayed directly due to security restrictions."
	MessageNotEmbedded = "This resource type cannot be embedded directly in the browser."
)

// Plan is the viewer layout for a resource on the idea detail page.
type Plan struct {
	URL          string
	Kind         Kind
	Embed        Embed
	Message      string
	ShowOpen     bool
	ShowDownload bool
}

// Available reports whether there is a resource to show at all.
func (p Plan) Available() bool { return p.URL != "" }

// PlanFor decides buttons and inline viewer for the resource at u.
func PlanFor(u string) Plan {
	if u == "" {
		return Plan{Kind: Other, Message: MessageNoResource}
	}

	p := Plan{URL: u, Kind: FromURL(u)}
	claude := strings.Contains(u, claudePrefix)

	switch {
	case p.Kind == PDF || p.Kind == Image || p.Kind == Video:
		p.ShowOpen, p.ShowDownload = true, true
	case p.Kind == URL || claude:
		p.ShowOpen = true
	case p.Kind == Office || p.Kind == Audio:
		p.ShowDownload = true
	default:
		p.ShowOpen, p.ShowDownload = true, true
	}

	switch {
	case strings.Contains(u, panoptoHost):
		p.Embed = EmbedPanopto
	case claude:
		p.Message = MessageRestricted
	case p.Kind == PDF || p.Kind == URL:
		p.Embed = EmbedFrame
	case p.Kind == Video:
		p.Embed = EmbedVideo
	case p.Kind == Audio:
		p.Embed = EmbedAudio
	case p.Kind == Image:
		p.Embed = EmbedImage
	default:
		p.Message = MessageNotEmbedded
	}
	return p
}
