package ads

import "strings"

// RenderKind is the closed set of ways an ad unit is rendered.
type RenderKind string

const (
	// KindSponsoredMarkup injects the unit's markup as is (AdSense or raw HTML).
	KindSponsoredMarkup RenderKind = "sponsored-markup"
	// KindImage renders an image, linked to the targeting click_url when present.
	KindImage RenderKind = "image"
	// KindLink renders a text link.
	KindLink RenderKind = "link"
	// KindFallback renders the payload as escaped text.
	KindFallback RenderKind = "fallback"
)

// Classify derives the render kind from a format tag.
// Precedence is fixed: adsense or html, then image, then link, then fallback.
func Classify(format string) RenderKind {
	f := strings.ToLower(format)

	switch {
	case strings.Contains(f, "adsense"), strings.Contains(f, "html"):
		return KindSponsoredMarkup
	case strings.Contains(f, "image"):
		return KindImage
	case strings.Contains(f, "link"):
		return KindLink
	default:
		return KindFallback
	}
}

// ParseRenderKind returns the stored kind, or false when it is not one of the known kinds.
func ParseRenderKind(s string) (RenderKind, bool) {
	switch k := RenderKind(s); k {
	case KindSponsoredMarkup, KindImage, KindLink, KindFallback:
		return k, true
	default:
		return "", false
	}
}
