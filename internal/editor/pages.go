package editor

import (
	"fmt"
	"strings"

	"github.com/magus-warrior/80-s-webbuilder/internal/blocks"
	"github.com/magus-warrior/80-s-webbuilder/internal/history"
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	"github.com/magus-warrior/80-s-webbuilder/internal/tree"
	builderrors "github.com/magus-warrior/80-s-webbuilder/pkg/errors"
)

// PageUpdate carries the optional fields of a page mutation. Nil means
// "leave unchanged".
type PageUpdate struct {
	Title *string
	Path  *string
	Nodes []*model.Node
}

// AddPage creates a page and makes it active. Title and path are required.
func (e *Editor) AddPage(title, path string) (*model.Page, error) {
	title = strings.TrimSpace(title)
	path = strings.TrimSpace(path)
	if title == "" {
		return nil, builderrors.NewValidationError("title", "page title is required", nil)
	}
	if path == "" {
		return nil, builderrors.NewValidationError("path", "page path is required", nil)
	}

	page := &model.Page{ID: blocks.NewPageID(), Title: title, Path: path}

	e.history.Record(history.Immediate, e.snapshot())
	pages := make([]*model.Page, len(e.project.Pages)+1)
	copy(pages, e.project.Pages)
	pages[len(e.project.Pages)] = page
	e.project.Pages = pages
	e.activePageID = page.ID
	e.selection = model.Selection{}
	return page, nil
}

// UpdatePage applies a page mutation. Unknown page ids are an error at this
// surface: page mutations come from collaborators, not optimistic gestures.
func (e *Editor) UpdatePage(id string, update PageUpdate) error {
	target := e.project.Page(id)
	if target == nil {
		return notFoundPage(id)
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return builderrors.NewValidationError("title", "page title is required", nil)
	}
	if update.Path != nil && strings.TrimSpace(*update.Path) == "" {
		return builderrors.NewValidationError("path", "page path is required", nil)
	}
	if update.Nodes != nil {
		if err := tree.Validate(update.Nodes); err != nil {
			return err
		}
	}

	e.history.Record(history.Immediate, e.snapshot())
	pages := make([]*model.Page, len(e.project.Pages))
	for i, page := range e.project.Pages {
		if page.ID != id {
			pages[i] = page
			continue
		}
		dup := *page
		if update.Title != nil {
			dup.Title = strings.TrimSpace(*update.Title)
		}
		if update.Path != nil {
			dup.Path = strings.TrimSpace(*update.Path)
		}
		if update.Nodes != nil {
			dup.Nodes = update.Nodes
		}
		pages[i] = &dup
	}
	e.project.Pages = pages
	return nil
}

// RemovePage deletes a page. When the active page goes, editing moves to the
// first remaining page.
func (e *Editor) RemovePage(id string) error {
	if e.project.Page(id) == nil {
		return notFoundPage(id)
	}

	e.history.Record(history.Immediate, e.snapshot())
	pages := make([]*model.Page, 0, len(e.project.Pages)-1)
	for _, page := range e.project.Pages {
		if page.ID != id {
			pages = append(pages, page)
		}
	}
	e.project.Pages = pages

	if e.activePageID == id {
		e.activePageID = ""
		e.selection = model.Selection{}
		if len(pages) > 0 {
			e.activePageID = pages[0].ID
		}
	}
	return nil
}

// SetProjectName renames the project and rederives its slug. Metadata lives
// outside snapshots, so this records nothing.
func (e *Editor) SetProjectName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return builderrors.NewValidationError("name", "project name is required", nil)
	}
	if len(name) > model.MaxProjectNameLength {
		return builderrors.NewValidationError("name",
			fmt.Sprintf("project name must be %d characters or fewer", model.MaxProjectNameLength), nil)
	}
	e.project.Name = name
	e.project.Slug = model.Slugify(name)
	return nil
}

// SetProjectDescription updates the project description.
func (e *Editor) SetProjectDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) > model.MaxProjectDescriptionLength {
		return builderrors.NewValidationError("description",
			fmt.Sprintf("project description must be %d characters or fewer", model.MaxProjectDescriptionLength), nil)
	}
	e.project.Description = description
	return nil
}

func notFoundPage(id string) error {
	return builderrors.NewNotFoundError("page", id)
}
