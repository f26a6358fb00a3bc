package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of the JSON api.
	APIPath = RootPath + "api/"

	// AdminPath is the prefix of the admin pages.
	AdminPath = RootPath + "admin/"

	// ErrNilDepsFatalLogMsg is used if app or a required dependency is nil.
	ErrNilDepsFatalLogMsg = "app or a required handler dependency is nil"
)
