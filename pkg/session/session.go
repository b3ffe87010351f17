// Package session owns the state of one open canvas: the graph, the chat
// transcript, and the informational execution status. Each session is scoped
// to a single id and discarded when it expires; nothing survives across
// sessions.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/autoflowai/autoflow/pkg/graph"
	"github.com/autoflowai/autoflow/pkg/handoff"
	"github.com/autoflowai/autoflow/pkg/models"
	"github.com/google/uuid"
)

// Canned assistant lines. There is no model behind the chat; these mirror
// the prototype behavior of acknowledging every user line.
const (
	seedAcknowledgement = "Great! I'll help you build this workflow. Let me gather some details to create the best automation for you. What are your target criteria for this automation?"
	chatAcknowledgement = "I understand. I'm processing your requirements and will update the workflow accordingly..."
)

// defaultName labels sessions that were not named through a parameter form.
const defaultName = "Social Media Management Automation"

// Session is one open canvas. The store hands the same *Session to every
// request targeting its id, so concurrent handlers share it; mu serializes
// all mutation and Snapshot gives handlers a detached copy to render.
type Session struct {
	ID         string                 `json:"id"`
	TemplateID string                 `json:"template_id"`
	Name       string                 `json:"name"`
	Status     models.ExecutionStatus `json:"status"`
	Graph      *graph.Graph           `json:"graph"`
	Transcript []models.ChatMessage   `json:"transcript"`
	CreatedAt  time.Time              `json:"created_at"`

	mu sync.Mutex

	// initialized gates Seed: uninitialized -> initialized happens at most
	// once, so re-mounting the same route never duplicates the transcript.
	initialized bool
}

// New creates an unseeded session around the sample canvas graph.
func New(templateID string) *Session {
	return &Session{
		ID:         uuid.New().String(),
		TemplateID: templateID,
		Name:       defaultName,
		Status:     models.ExecutionStatusRunning,
		Graph:      graph.SampleGraph(),
		Transcript: []models.ChatMessage{},
		CreatedAt:  time.Now().UTC(),
	}
}

// Initialized reports whether the one-shot seed has already run.
func (s *Session) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.initialized
}

// Seed consumes an incoming handoff payload exactly once. The first call
// transitions the session to initialized and applies the payload: a query
// seeds the transcript with the user line plus one synthetic assistant
// acknowledgement; a templated payload names the session without touching
// the transcript; nil yields an empty start. Every later call is a no-op.
// It returns whether this call performed the seed.
func (s *Session) Seed(payload *handoff.Payload) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return false
	}

	s.initialized = true

	if payload == nil {
		return true
	}

	switch payload.Kind {
	case handoff.KindQuery:
		if strings.TrimSpace(payload.Query) != "" {
			s.Transcript = append(s.Transcript,
				models.ChatMessage{Role: models.ChatRoleUser, Content: payload.Query},
				models.ChatMessage{Role: models.ChatRoleAssistant, Content: seedAcknowledgement},
			)
		}
	case handoff.KindTemplate:
		if payload.Name != "" {
			s.Name = payload.Name
		}
	}

	return true
}

// SubmitChat appends a user line and a canned assistant reply. Blank or
// whitespace-only input is suppressed without error and without appending.
// It returns whether anything was appended.
func (s *Session) SubmitChat(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Transcript = append(s.Transcript,
		models.ChatMessage{Role: models.ChatRoleUser, Content: text},
		models.ChatMessage{Role: models.ChatRoleAssistant, Content: chatAcknowledgement},
	)

	return true
}

// Connect adds an animated edge between two existing canvas nodes.
func (s *Session) Connect(source, target string) (*models.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	edge, err := s.Graph.AddEdge(source, target, true)
	if err != nil {
		return nil, err
	}

	copied := *edge

	return &copied, nil
}

// ApplyNodeChanges applies incremental node position/selection edits.
func (s *Session) ApplyNodeChanges(changes []graph.NodeChange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Graph.ApplyNodeChanges(changes)
}

// SelectStep highlights one canvas node and clears every other selection.
func (s *Session) SelectStep(stepID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Graph.SelectStep(stepID)
}

// Snapshot is a point-in-time copy of a session, detached from the live
// state so it can be marshaled while other requests keep mutating the
// session.
type Snapshot struct {
	ID         string                 `json:"id"`
	TemplateID string                 `json:"template_id"`
	Name       string                 `json:"name"`
	Status     models.ExecutionStatus `json:"status"`
	Graph      *graph.Graph           `json:"graph"`
	Transcript []models.ChatMessage   `json:"transcript"`
	CreatedAt  time.Time              `json:"created_at"`
}

// Snapshot returns a detached copy of the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := make([]models.ChatMessage, len(s.Transcript))
	copy(transcript, s.Transcript)

	return Snapshot{
		ID:         s.ID,
		TemplateID: s.TemplateID,
		Name:       s.Name,
		Status:     s.Status,
		Graph:      s.Graph.Clone(),
		Transcript: transcript,
		CreatedAt:  s.CreatedAt,
	}
}
