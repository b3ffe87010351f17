package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/autoflowai/autoflow/pkg/catalog"
	"github.com/autoflowai/autoflow/pkg/models"
	"github.com/autoflowai/autoflow/pkg/services"
	"github.com/autoflowai/autoflow/pkg/session"
	"github.com/autoflowai/autoflow/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	gallery := services.NewGallery(catalog.DefaultSource())
	store := session.NewStore(time.Minute)
	canvas := services.NewCanvas(gallery, store, nil)
	validate := validator.New(validator.WithRequiredStructEnabled())

	handlers := web.NewAPIHandlers(gallery, canvas, validate)

	app := fiber.New()

	tg := app.Group("/templates")
	tg.Get("/", handlers.GetTemplates)
	tg.Get("/:id", handlers.GetTemplate)
	tg.Get("/:id/preview", handlers.GetTemplatePreview)
	tg.Post("/:id/instantiate", handlers.InstantiateTemplate)

	app.Post("/canvas", handlers.StartCanvas)
	app.Get("/workflow-canvas/:id", handlers.MountCanvas)

	sg := app.Group("/sessions")
	sg.Get("/:id", handlers.GetSession)
	sg.Post("/:id/chat", handlers.PostChat)
	sg.Post("/:id/edges", handlers.PostEdge)
	sg.Patch("/:id/nodes", handlers.PatchNodes)
	sg.Post("/:id/steps/:stepId/select", handlers.SelectStep)

	app.Get("/agent-chat", handlers.GetAgentChat)
	app.Get("/tools-integrations", handlers.GetToolsIntegrations)
	app.Get("/health", handlers.HealthCheck)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, raw
}

func TestGetTemplates(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	t.Run("default gallery", func(t *testing.T) {
		t.Parallel()

		resp, body := doJSON(t, app, http.MethodGet, "/templates/", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result services.ListTemplatesResponse
		require.NoError(t, json.Unmarshal(body, &result))

		assert.Equal(t, 9, result.TotalCount)
		assert.Equal(t, models.SortModePopular, result.Sort)
		require.NotEmpty(t, result.Templates)
		assert.True(t, result.Templates[0].IsPopular)
	})

	t.Run("search query", func(t *testing.T) {
		t.Parallel()

		resp, body := doJSON(t, app, http.MethodGet, "/templates/?q=lead", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result services.ListTemplatesResponse
		require.NoError(t, json.Unmarshal(body, &result))

		require.Equal(t, 1, result.TotalCount)
		assert.Equal(t, "Lead Scoring Automation", result.Templates[0].Title)
	})

	t.Run("invalid sort mode", func(t *testing.T) {
		t.Parallel()

		resp, _ := doJSON(t, app, http.MethodGet, "/templates/?sort=newest", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetTemplate(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/templates/3", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var template models.Template
	require.NoError(t, json.Unmarshal(body, &template))
	assert.Equal(t, "Customer Onboarding", template.Title)

	resp, _ = doJSON(t, app, http.MethodGet, "/templates/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInstantiateTemplate(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	t.Run("successful submit returns the canvas route", func(t *testing.T) {
		t.Parallel()

		resp, body := doJSON(t, app, http.MethodPost, "/templates/1/instantiate", web.InstantiateTemplateRequest{
			WorkflowName: "Test Flow",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result services.NavigationResult
		require.NoError(t, json.Unmarshal(body, &result))

		assert.Equal(t, "1", result.TemplateID)
		assert.Contains(t, result.Route, "/workflow-canvas/1?")
		assert.Contains(t, result.Route, "trigger=manual")
	})

	t.Run("missing workflow name blocks submission", func(t *testing.T) {
		t.Parallel()

		resp, _ := doJSON(t, app, http.MethodPost, "/templates/1/instantiate", web.InstantiateTemplateRequest{
			Description: "no name here",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("whitespace-only name blocks submission", func(t *testing.T) {
		t.Parallel()

		resp, _ := doJSON(t, app, http.MethodPost, "/templates/1/instantiate", web.InstantiateTemplateRequest{
			WorkflowName: "   ",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		resp, _ := doJSON(t, app, http.MethodPost, "/templates/999/instantiate", web.InstantiateTemplateRequest{
			WorkflowName: "Test Flow",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestStartCanvas(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	t.Run("free-text entry", func(t *testing.T) {
		t.Parallel()

		resp, body := doJSON(t, app, http.MethodPost, "/canvas", web.StartCanvasRequest{
			Query: "Summarize tickets",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result services.NavigationResult
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Equal(t, "/workflow-canvas/new?query=Summarize+tickets", result.Route)
	})

	t.Run("blank query suppressed", func(t *testing.T) {
		t.Parallel()

		resp, _ := doJSON(t, app, http.MethodPost, "/canvas", web.StartCanvasRequest{Query: "   "})
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestMountCanvasAndSessionFlow(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	// Mount a canvas from a free-text route.
	resp, body := doJSON(t, app, http.MethodGet, "/workflow-canvas/new?query=Summarize+tickets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view web.SessionResponse
	require.NoError(t, json.Unmarshal(body, &view))

	require.NotEmpty(t, view.ID)
	require.Len(t, view.Transcript, 2)
	assert.Equal(t, models.ChatRoleUser, view.Transcript[0].Role)
	assert.Equal(t, "Summarize tickets", view.Transcript[0].Content)
	assert.Len(t, view.Graph.Nodes, 4)
	assert.Len(t, view.StepLog, 4)
	assert.Len(t, view.Console, 5)

	// Re-mounting the same route with the session id must not re-seed.
	resp, body = doJSON(t, app, http.MethodGet, "/workflow-canvas/new?query=Summarize+tickets&session="+view.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var remounted web.SessionResponse
	require.NoError(t, json.Unmarshal(body, &remounted))
	assert.Equal(t, view.ID, remounted.ID)
	assert.Len(t, remounted.Transcript, 2)

	// Chat appends a pair; blank chat is suppressed.
	resp, body = doJSON(t, app, http.MethodPost, "/sessions/"+view.ID+"/chat", web.ChatRequest{Content: "Add a step"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chat struct {
		Appended   bool                 `json:"appended"`
		Transcript []models.ChatMessage `json:"transcript"`
	}
	require.NoError(t, json.Unmarshal(body, &chat))
	assert.True(t, chat.Appended)
	assert.Len(t, chat.Transcript, 4)

	resp, body = doJSON(t, app, http.MethodPost, "/sessions/"+view.ID+"/chat", web.ChatRequest{Content: "  "})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &chat))
	assert.False(t, chat.Appended)
	assert.Len(t, chat.Transcript, 4)

	// Connect two nodes.
	resp, body = doJSON(t, app, http.MethodPost, "/sessions/"+view.ID+"/edges", web.ConnectRequest{
		Source: "1",
		Target: "4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var edge models.Edge
	require.NoError(t, json.Unmarshal(body, &edge))
	assert.NotEmpty(t, edge.ID)

	// Connecting to a missing node is a 404 problem, not a crash.
	resp, _ = doJSON(t, app, http.MethodPost, "/sessions/"+view.ID+"/edges", web.ConnectRequest{
		Source: "1",
		Target: "ghost",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Step selection highlights exactly one node.
	resp, body = doJSON(t, app, http.MethodPost, "/sessions/"+view.ID+"/steps/3/select", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var g struct {
		Nodes []models.Node `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(body, &g))

	selected := 0
	for _, n := range g.Nodes {
		if n.Selected {
			selected++
			assert.Equal(t, "3", n.ID)
		}
	}
	assert.Equal(t, 1, selected)

	// Unknown session ids are 404s.
	resp, _ = doJSON(t, app, http.MethodGet, "/sessions/no-such-session", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetAgentChat(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/agent-chat", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result web.AgentChatResponse
	require.NoError(t, json.Unmarshal(body, &result))

	assert.Equal(t, models.ChatRoleAssistant, result.Greeting.Role)
	assert.Len(t, result.Suggestions, 5)
	assert.Len(t, result.RecentProjects, 3)
}

func TestGetToolsIntegrations(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/tools-integrations", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		AgentApps    []struct{ Name string } `json:"agent_apps"`
		Integrations []struct{ Name string } `json:"integrations"`
	}
	require.NoError(t, json.Unmarshal(body, &result))

	assert.Len(t, result.AgentApps, 6)
	assert.Len(t, result.Integrations, 4)
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "healthy", health.Status)
}
