package model

import (
	"regexp"
	"strings"
)

// Limits applied to project metadata, matching the persistence collaborator.
const (
	MaxProjectNameLength        = 80
	MaxProjectDescriptionLength = 280
)

// Page owns one root-level node list of the document.
type Page struct {
	ID    string  `json:"id" yaml:"id" validate:"required"`
	Title string  `json:"title" yaml:"title" validate:"required"`
	Path  string  `json:"path" yaml:"path" validate:"required"`
	Nodes []*Node `json:"nodes" yaml:"nodes" validate:"omitempty,dive"`
}

// Project is the unit the engine edits: metadata, pages, and theme tokens.
// Pages and tokens mutate only through the editor; never directly.
type Project struct {
	Name        string       `json:"name" yaml:"name" validate:"required,max=80"`
	Slug        string       `json:"slug,omitempty" yaml:"slug,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" validate:"max=280"`
	Pages       []*Page      `json:"pages" yaml:"pages" validate:"min=1,dive"`
	Tokens      []ThemeToken `json:"tokens,omitempty" yaml:"tokens,omitempty" validate:"dive"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a display name: lowercase, non-alphanumeric
// runs collapse to a single hyphen, leading/trailing hyphens trimmed.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "project"
	}
	return slug
}

// Page returns the page with the given id, or nil.
func (p *Project) Page(id string) *Page {
	if p == nil {
		return nil
	}
	for _, page := range p.Pages {
		if page.ID == id {
			return page
		}
	}
	return nil
}
