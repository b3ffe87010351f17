package web

import (
	"net/url"
	"time"

	"github.com/autoflowai/autoflow/pkg/integrations"
	"github.com/autoflowai/autoflow/pkg/models"
	"github.com/autoflowai/autoflow/pkg/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// APIHandlers exposes the builder flows over HTTP.
type APIHandlers struct {
	gallery   *services.Gallery
	canvas    *services.Canvas
	validator *validator.Validate
}

func NewAPIHandlers(
	gallery *services.Gallery,
	canvas *services.Canvas,
	validator *validator.Validate,
) *APIHandlers {
	return &APIHandlers{
		gallery:   gallery,
		canvas:    canvas,
		validator: validator,
	}
}

// GetTemplates serves the gallery: live search via q, ordering via sort.
func (h *APIHandlers) GetTemplates(c fiber.Ctx) error {
	req := services.ListTemplatesRequest{
		Query: c.Query("q"),
		Sort:  models.SortMode(c.Query("sort")),
	}

	result, err := h.gallery.ListTemplates(req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(result)
}

func (h *APIHandlers) GetTemplate(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Template ID is required")
	}

	template, err := h.gallery.FetchByID(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(template)
}

// GetTemplatePreview serves the read-only preview graph of a template.
func (h *APIHandlers) GetTemplatePreview(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Template ID is required")
	}

	preview, err := h.gallery.Preview(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(preview)
}

// InstantiateTemplate handles the parameter form submit. A blank workflow
// name blocks submission with a field-scoped validation problem and nothing
// is created; success answers with the canvas route to follow.
func (h *APIHandlers) InstantiateTemplate(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Template ID is required")
	}

	var req InstantiateTemplateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	form := &models.ParameterForm{
		WorkflowName:   req.WorkflowName,
		Description:    req.Description,
		TriggerType:    models.TriggerType(req.TriggerType),
		TargetAudience: req.TargetAudience,
	}

	result, err := h.canvas.InstantiateTemplate(c.Context(), id, form)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// StartCanvas handles free-text entry. Blank input is suppressed: the
// response carries no route and no session comes into existence.
func (h *APIHandlers) StartCanvas(c fiber.Ctx) error {
	var req StartCanvasRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.canvas.StartFromQuery(c.Context(), req.Query)
	if err != nil {
		if services.IsEmptySubmission(err) {
			return c.SendStatus(fiber.StatusNoContent)
		}

		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// MountCanvas opens the canvas view for a route. The optional session query
// parameter re-mounts an existing session; the seed guard keeps repeated
// mounts from duplicating transcript entries.
func (h *APIHandlers) MountCanvas(c fiber.Ctx) error {
	templateID := c.Params("id")
	sessionID := c.Query("session")

	params := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		params.Add(string(key), string(value))
	})

	sess, err := h.canvas.Mount(c.Context(), templateID, sessionID, params)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(TransformSessionResponse(sess))
}

func (h *APIHandlers) GetSession(c fiber.Ctx) error {
	sess, err := h.canvas.Session(c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(TransformSessionResponse(sess))
}

// PostChat appends a chat exchange. Blank input is suppressed, answering
// with the unchanged transcript.
func (h *APIHandlers) PostChat(c fiber.Ctx) error {
	var req ChatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	sess, appended, err := h.canvas.SubmitChat(c.Params("id"), req.Content)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"appended":   appended,
		"transcript": sess.Snapshot().Transcript,
	})
}

// PostEdge connects two nodes of the session graph.
func (h *APIHandlers) PostEdge(c fiber.Ctx) error {
	var req ConnectRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	edge, err := h.canvas.Connect(c.Params("id"), req.Source, req.Target)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(edge)
}

// PatchNodes applies node position/selection changes; unknown ids are
// skipped rather than failing the batch.
func (h *APIHandlers) PatchNodes(c fiber.Ctx) error {
	var req UpdateNodesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	sess, err := h.canvas.UpdateNodes(c.Params("id"), req.Changes)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(sess.Snapshot().Graph)
}

// SelectStep highlights the node behind a step log entry.
func (h *APIHandlers) SelectStep(c fiber.Ctx) error {
	sess, err := h.canvas.SelectStep(c.Params("id"), c.Params("stepId"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(sess.Snapshot().Graph)
}

// GetAgentChat serves the chat entry screen content.
func (h *APIHandlers) GetAgentChat(c fiber.Ctx) error {
	return c.JSON(AgentChatResponse{
		Greeting: models.ChatMessage{
			Role:    models.ChatRoleAssistant,
			Content: "Hi! I'll help you build a custom workflow. What would you like to automate?",
		},
		Suggestions: []string{
			"Summarize customer support tickets",
			"Triage GitHub issues automatically",
			"Store and organize inbound leads",
			"Generate social media content",
			"Automate email responses",
		},
		RecentProjects: []RecentProject{
			{ID: "1", Name: "Customer Support Automation", LastModified: "2 hours ago"},
			{ID: "2", Name: "Lead Generation Pipeline", LastModified: "Yesterday"},
			{ID: "3", Name: "Social Media Manager", LastModified: "3 days ago"},
		},
	})
}

// GetToolsIntegrations serves the static integrations catalog.
func (h *APIHandlers) GetToolsIntegrations(c fiber.Ctx) error {
	return c.JSON(integrations.DefaultCatalog())
}

// HealthCheck reports service liveness.
func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"message":   "AutoFlow API is healthy",
		"timestamp": time.Now().UTC(),
	})
}
