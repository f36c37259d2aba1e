package renderer

import (
	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
)

// buildPageData derives the content payload for the requested page type.
// The switch is exhaustive over models.PageType; the shared actions are
// passed through untouched on every page.
func buildPageData(req Request) *view.PageData {
	data := &view.PageData{
		Tenant:  req.Tenant,
		Actions: req.Actions,
	}

	switch req.PageType {
	case models.PageHomepage, models.PageArchive, models.PageCategory, models.PageTag:
		data.Posts = req.Data.Posts
		data.Categories = req.Data.Categories
		data.Tags = req.Data.Tags
	case models.PageSinglePost:
		data.Post = req.Data.Post
		data.RelatedPosts = req.Data.RelatedPosts
	case models.PageAbout, models.PageContact:
		data.Post = req.Data.Post
		if data.Post == nil {
			data.Post = stubPost(req.PageType, req.Tenant)
		}
	}

	return data
}

// stubPost synthesizes a placeholder record for the virtual about/contact
// pages when the tenant has not authored one.
func stubPost(pt models.PageType, tenant *models.Tenant) *models.Post {
	site := "this site"
	if tenant != nil && tenant.Name != "" {
		site = tenant.Name
	}

	switch pt {
	case models.PageContact:
		return &models.Post{
			Slug:    "contact",
			Title:   "Contact",
			Content: "<p>Get in touch with " + site + ". This page has not been written yet; check back soon for contact details.</p>",
		}
	default:
		return &models.Post{
			Slug:    "about",
			Title:   "About",
			Content: "<p>Welcome to " + site + ". This page has not been written yet; its author is still deciding what to say.</p>",
		}
	}
}
