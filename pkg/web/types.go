// Package web provides HTTP request and response types for the builder API.
package web

import (
	"github.com/autoflowai/autoflow/pkg/graph"
	"github.com/autoflowai/autoflow/pkg/models"
	"github.com/autoflowai/autoflow/pkg/session"
)

// InstantiateTemplateRequest is the parameter form submitted when a
// template is customized. Only the workflow name is required; the trigger
// defaults to manual.
type InstantiateTemplateRequest struct {
	WorkflowName   string `json:"workflow_name"             validate:"required"`
	Description    string `json:"description"`
	TriggerType    string `json:"trigger_type"              validate:"omitempty,oneof=manual schedule webhook event"`
	TargetAudience string `json:"target_audience"`
}

// StartCanvasRequest is the free-text entry body from the chat entry points.
type StartCanvasRequest struct {
	Query string `json:"query" validate:"max=2000"`
}

// ChatRequest appends one user line to a session transcript.
type ChatRequest struct {
	Content string `json:"content" validate:"max=2000"`
}

// ConnectRequest adds an edge between two canvas nodes.
type ConnectRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// UpdateNodesRequest carries incremental node position/selection changes.
type UpdateNodesRequest struct {
	Changes []graph.NodeChange `json:"changes" validate:"required,dive"`
}

// SessionResponse is the full canvas view: graph, transcript, status badge,
// and the side panel tabs.
type SessionResponse struct {
	ID         string                 `json:"id"`
	TemplateID string                 `json:"template_id"`
	Name       string                 `json:"name"`
	Status     models.ExecutionStatus `json:"status"`
	Graph      *graph.Graph           `json:"graph"`
	Transcript []models.ChatMessage   `json:"transcript"`
	StepLog    []session.StepEntry    `json:"step_log"`
	Console    []session.ConsoleEntry `json:"console"`
}

// TransformSessionResponse builds the canvas view for a session. It works on
// a snapshot so marshaling never races a concurrent mutation of the same
// session.
func TransformSessionResponse(sess *session.Session) SessionResponse {
	view := sess.Snapshot()

	return SessionResponse{
		ID:         view.ID,
		TemplateID: view.TemplateID,
		Name:       view.Name,
		Status:     view.Status,
		Graph:      view.Graph,
		Transcript: view.Transcript,
		StepLog:    sess.StepLog(),
		Console:    sess.Console(),
	}
}

// RecentProject is one card of the agent chat's recent projects strip.
type RecentProject struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LastModified string `json:"last_modified"`
}

// AgentChatResponse is the static content of the chat entry screen.
type AgentChatResponse struct {
	Greeting       models.ChatMessage `json:"greeting"`
	Suggestions    []string           `json:"suggestions"`
	RecentProjects []RecentProject    `json:"recent_projects"`
}
