package web

import (
	"errors"

	"github.com/autoflowai/autoflow/pkg/graph"
	"github.com/autoflowai/autoflow/pkg/services"
	"github.com/autoflowai/autoflow/pkg/session"
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, kind, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType(kind).
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func conflict(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(409).
		WithInstance(c.Path()).
		WithType("conflict").
		WithDetail(detail)

	return c.Status(fiber.StatusConflict).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// handleServiceError maps service and model errors onto problem responses.
// Every 4xx leaves the caller's state intact; nothing here is fatal.
func handleServiceError(c fiber.Ctx, err error) error {
	switch {
	case services.IsValidationError(err):
		return badRequest(c, err.Error())

	case services.IsTemplateNotFound(err):
		return notFound(c, "template_not_found", "template not found")

	case session.IsSessionNotFound(err):
		return notFound(c, "session_not_found", "session not found")

	case errors.Is(err, graph.ErrNodeNotFound):
		return notFound(c, "node_not_found", "node not found")

	case errors.Is(err, graph.ErrDuplicateEdge):
		return conflict(c, err.Error())

	default:
		return internalError(c, err)
	}
}
