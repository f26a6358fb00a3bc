package ads

import "strings"

// PageKind says what kind of page an ad slot lives on.
type PageKind string

const (
	// PageGeneral is any page that is not a video page.
	PageGeneral PageKind = "general"
	// PageVideo is a video watch page.
	PageVideo PageKind = "video"
)

// PageContext describes the page requesting ads.
type PageContext struct {
	Kind    PageKind
	VideoID string
}

// IsVideo reports whether the page is a video page.
func (p PageContext) IsVideo() bool {
	return p.Kind == PageVideo
}

// NewPageContext builds a context from request values. Anything but "video" is a general page.
func NewPageContext(kind, videoID string) PageContext {
	if strings.EqualFold(kind, string(PageVideo)) {
		return PageContext{Kind: PageVideo, VideoID: videoID}
	}

	return PageContext{Kind: PageGeneral}
}
