package sitesettings

// Known setting keys. Unknown keys are carried through untouched.
const (
	KeySiteName            = "site_name"
	KeyLogoURL             = "logo_url"
	KeyLogoBackgroundColor = "logo_background_color"
	KeyFaviconURL          = "favicon_url"
	KeySiteTitle           = "site_title"
	KeyMetaDescription     = "meta_description"
	KeyMetaImage           = "meta_image"
	KeyTheme               = "theme"
)

// DefaultSiteTitle is the document title used when no settings could be loaded.
const DefaultSiteTitle = "VidNest - Watch and Share Videos"

// KnownKeys lists the setting keys the site understands, in form order.
func KnownKeys() []string {
	return []string{
		KeySiteName,
		KeySiteTitle,
		KeyMetaDescription,
		KeyMetaImage,
		KeyLogoURL,
		KeyLogoBackgroundColor,
		KeyFaviconURL,
		KeyTheme,
	}
}

// Defaults returns the fixed fallback snapshot.
func Defaults() Snapshot {
	return Snapshot{
		KeySiteName:            "VidNest",
		KeyLogoURL:             "",
		KeyLogoBackgroundColor: "transparent",
		KeyFaviconURL:          "/favicon.ico",
		KeySiteTitle:           DefaultSiteTitle,
		KeyMetaDescription:     "Watch, upload and share videos with the VidNest community.",
		KeyMetaImage:           "",
		KeyTheme:               "dark",
	}
}
