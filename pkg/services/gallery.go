// Package services implements the business operations behind the builder
// API: the gallery, template instantiation, and canvas sessions.
package services

import (
	"fmt"

	"github.com/autoflowai/autoflow/pkg/catalog"
	"github.com/autoflowai/autoflow/pkg/graph"
	"github.com/autoflowai/autoflow/pkg/models"
)

// Gallery serves the template catalog with filtering and sorting.
type Gallery struct {
	source catalog.Source
}

// NewGallery creates a gallery service over the given catalog source.
func NewGallery(source catalog.Source) *Gallery {
	return &Gallery{source: source}
}

// ListTemplatesRequest contains the gallery query options.
type ListTemplatesRequest struct {
	Query string
	Sort  models.SortMode
}

// ListTemplatesResponse contains the visible, ordered gallery subset.
type ListTemplatesResponse struct {
	Templates  []*models.Template `json:"templates"`
	TotalCount int                `json:"total_count"`
	Query      string             `json:"query"`
	Sort       models.SortMode    `json:"sort"`
}

// ListTemplates applies the filter/sort engine to the catalog. The sort mode
// defaults to popular, matching the gallery's initial state; an unknown mode
// is a validation error. No matches is an empty result, not an error.
func (g *Gallery) ListTemplates(req ListTemplatesRequest) (*ListTemplatesResponse, error) {
	if req.Sort == "" {
		req.Sort = models.SortModePopular
	}

	if !models.ValidSortMode(req.Sort) {
		return nil, NewValidationError(
			"ListTemplates",
			"sort",
			fmt.Sprintf("invalid sort mode %q, allowed: popular, recent", req.Sort),
			ErrInvalidSortMode,
		)
	}

	visible := catalog.Apply(g.source.List(), req.Query, req.Sort)

	return &ListTemplatesResponse{
		Templates:  visible,
		TotalCount: len(visible),
		Query:      req.Query,
		Sort:       req.Sort,
	}, nil
}

// FetchByID returns the template with the given id.
func (g *Gallery) FetchByID(id string) (*models.Template, error) {
	t := catalog.FindByID(g.source, id)
	if t == nil {
		return nil, fmt.Errorf("fetch template %s: %w", id, ErrTemplateNotFound)
	}

	return t, nil
}

// TemplatePreview bundles a template with its read-only preview graph.
type TemplatePreview struct {
	Template *models.Template `json:"template"`
	Graph    *graph.Graph     `json:"graph"`
}

// Preview returns the template and the graph rendered in its preview.
func (g *Gallery) Preview(id string) (*TemplatePreview, error) {
	t, err := g.FetchByID(id)
	if err != nil {
		return nil, err
	}

	return &TemplatePreview{
		Template: t,
		Graph:    graph.PreviewGraph(id),
	}, nil
}
