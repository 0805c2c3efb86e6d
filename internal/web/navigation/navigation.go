// Package navigation builds the bottom tab bar shared by all pages.
package navigation

import "strconv"

// Tab is one entry of the bottom navigation.
type Tab struct {
	View   string
	Title  string
	URL    string
	Icon   string
	Active bool
	Badge  int
}

// BadgeText renders the badge, capped so it fits the tab.
func (t Tab) BadgeText() string {
	const maxBadge = 99

	switch {
	case t.Badge <= 0:
		return ""
	case t.Badge > maxBadge:
		return strconv.Itoa(maxBadge) + "+"
	default:
		return strconv.Itoa(t.Badge)
	}
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveView string
	PageTitle  string
	Tabs       []Tab
}

var tabs = []Tab{
	{View: "home", Title: "Create", URL: "/home", Icon: "qr"},
	{View: "scan", Title: "Scan", URL: "/scan", Icon: "camera"},
	{View: "history", Title: "History", URL: "/history", Icon: "clock"},
	{View: "settings", Title: "Settings", URL: "/settings", Icon: "gear"},
}

// NewContext creates the navigation context of the page showing view.
func NewContext(pageTitle, view string) *Context {
	c := &Context{
		ActiveView: view,
		PageTitle:  pageTitle,
		Tabs:       make([]Tab, len(tabs)),
	}

	copy(c.Tabs, tabs)

	for i := range c.Tabs {
		c.Tabs[i].Active = c.Tabs[i].View == view
	}

	return c
}

// WithBadge sets the badge counter of a tab.
func (c *Context) WithBadge(view string, n int) *Context {
	for i := range c.Tabs {
		if c.Tabs[i].View == view {
			c.Tabs[i].Badge = n
		}
	}

	return c
}

// IsActive checks if the given view is the current one.
func (c *Context) IsActive(view string) bool {
	return c.ActiveView == view
}
