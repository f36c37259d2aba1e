package models

import "fmt"

// PageType is the closed set of page kinds a tenant blog can render.
// Adding a value requires updating every exhaustive switch over the set;
// the compiler-checked dispatch in the renderer depends on this being a
// closed enum rather than a free-form string.
type PageType string

const (
	PageHomepage   PageType = "homepage"
	PageSinglePost PageType = "singlePost"
	PageArchive    PageType = "archive"
	PageAbout      PageType = "about"
	PageContact    PageType = "contact"
	PageCategory   PageType = "category"
	PageTag        PageType = "tag"
)

// PageTypes lists all supported page types in display order.
func PageTypes() []PageType {
	return []PageType{
		PageHomepage,
		PageSinglePost,
		PageArchive,
		PageAbout,
		PageContact,
		PageCategory,
		PageTag,
	}
}

// ParsePageType validates a raw page-type string from an external caller.
func ParsePageType(s string) (PageType, error) {
	switch pt := PageType(s); pt {
	case PageHomepage, PageSinglePost, PageArchive, PageAbout, PageContact, PageCategory, PageTag:
		return pt, nil
	default:
		return "", fmt.Errorf("unknown page type %q", s)
	}
}
