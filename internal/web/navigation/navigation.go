// Package navigation holds the admin menu state and breadcrumbs rendered by the base layout.
package navigation

// Section names an entry of the admin menu.
type Section string

// Admin menu entries.
const (
	SectionSettings Section = "settings"
	SectionAds      Section = "ads"
)

// Crumb is a single breadcrumb link. The last crumb is the current page and has no link.
type Crumb struct {
	Title string
	URL   string
}

// Context is passed to the layout as "Navigation".
type Context struct {
	Section   Section
	PageTitle string
	Crumbs    []Crumb
}

// Admin returns the context of an admin page at path, with the Home and Admin crumbs in front.
func Admin(section Section, pageTitle, path string) *Context {
	return &Context{
		Section:   section,
		PageTitle: pageTitle,
		Crumbs: []Crumb{
			{Title: "Home", URL: "/"},
			{Title: "Admin", URL: "/admin/settings"},
			{Title: pageTitle, URL: path},
		},
	}
}

// Push appends a crumb below the current page, which becomes a link.
func (c *Context) Push(title, url string) *Context {
	c.Crumbs = append(c.Crumbs, Crumb{Title: title, URL: url})
	return c
}

// IsCurrent reports whether crumb i is the page being rendered.
func (c *Context) IsCurrent(i int) bool {
	return i == len(c.Crumbs)-1
}

// IsActive reports whether the menu entry named section is the current one.
func (c *Context) IsActive(section string) bool {
	return string(c.Section) == section
}
