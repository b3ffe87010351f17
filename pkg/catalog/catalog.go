// Package catalog provides the workflow template catalog and the gallery
// filter/sort engine.
package catalog

import (
	"time"

	"github.com/autoflowai/autoflow/pkg/models"
)

// Source is a read-only supplier of gallery templates. In a full system this
// would be backed by a remote fetch; the rest of the service depends only on
// this interface so it stays testable regardless of origin.
type Source interface {
	List() []*models.Template
}

// StaticSource serves a fixed, in-memory template set.
type StaticSource struct {
	templates []*models.Template
}

// NewStaticSource creates a source over the given templates. The slice is
// taken as-is; callers must not mutate it afterwards.
func NewStaticSource(templates []*models.Template) *StaticSource {
	return &StaticSource{templates: templates}
}

// List returns the catalog in stable load order.
func (s *StaticSource) List() []*models.Template {
	return s.templates
}

// DefaultSource returns the built-in gallery catalog.
func DefaultSource() *StaticSource {
	return NewStaticSource(defaultTemplates())
}

func defaultTemplates() []*models.Template {
	return []*models.Template{
		{
			ID:          "1",
			Title:       "Lead Scoring Automation",
			Description: "Automatically score and prioritize incoming leads based on engagement and demographic data",
			Category:    "Sales",
			IsPopular:   true,
			CreatedAt:   time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Email Campaign Workflow",
			Description: "Create personalized email sequences triggered by user behavior and engagement",
			Category:    "Marketing",
			IsPremium:   true,
			CreatedAt:   time.Date(2025, time.January, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Customer Onboarding",
			Description: "Streamline new customer onboarding with automated tasks and notifications",
			Category:    "Customer Success",
			CreatedAt:   time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Title:       "Invoice Processing",
			Description: "Automate invoice generation, approval workflows, and payment tracking",
			Category:    "Finance",
			IsPremium:   true,
			CreatedAt:   time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Title:       "Support Ticket Triage",
			Description: "Automatically categorize and route support tickets to the right team",
			Category:    "Support",
			IsPopular:   true,
			CreatedAt:   time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "6",
			Title:       "Social Media Scheduler",
			Description: "Plan and automatically publish content across multiple social platforms",
			Category:    "Marketing",
			CreatedAt:   time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "7",
			Title:       "Data Backup Automation",
			Description: "Schedule and execute automated backups of critical business data",
			Category:    "IT Operations",
			CreatedAt:   time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "8",
			Title:       "Employee Onboarding",
			Description: "Coordinate tasks across HR, IT, and teams for new employee setup",
			Category:    "HR",
			IsPremium:   true,
			IsPopular:   true,
			CreatedAt:   time.Date(2025, time.January, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "9",
			Title:       "Inventory Management",
			Description: "Track stock levels and trigger reorder workflows automatically",
			Category:    "Operations",
			CreatedAt:   time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

// FindByID returns the template with the given id from src, or nil.
func FindByID(src Source, id string) *models.Template {
	for _, t := range src.List() {
		if t.ID == id {
			return t
		}
	}

	return nil
}
