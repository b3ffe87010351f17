package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/autoflowai/autoflow/pkg/eventbus"
	"github.com/autoflowai/autoflow/pkg/events"
	"github.com/autoflowai/autoflow/pkg/graph"
	"github.com/autoflowai/autoflow/pkg/handoff"
	"github.com/autoflowai/autoflow/pkg/models"
	"github.com/autoflowai/autoflow/pkg/session"
)

// Canvas drives canvas sessions: entry handoffs, mounting, chat, and graph
// edits. It owns no state of its own; sessions live in the store.
type Canvas struct {
	gallery   *Gallery
	store     *session.Store
	publisher eventbus.EventPublisher
}

// NewCanvas creates the canvas service.
func NewCanvas(gallery *Gallery, store *session.Store, publisher eventbus.EventPublisher) *Canvas {
	return &Canvas{
		gallery:   gallery,
		store:     store,
		publisher: publisher,
	}
}

// NavigationResult is the outcome of a successful submit: the encoded canvas
// route the client should follow.
type NavigationResult struct {
	Route      string `json:"route"`
	TemplateID string `json:"template_id"`
}

// StartFromQuery handles the free-text entry points. Blank input is
// suppressed with ErrEmptySubmission: no event, no navigation. Otherwise it
// encodes the query into a canvas route and emits a navigation event.
func (c *Canvas) StartFromQuery(ctx context.Context, query string) (*NavigationResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("start from query: %w", ErrEmptySubmission)
	}

	if utf8.RuneCountInString(query) > models.MaxChatMessageLength {
		return nil, NewValidationError("StartFromQuery", "query",
			fmt.Sprintf("query exceeds %d characters", models.MaxChatMessageLength),
			ErrMessageTooLong,
		)
	}

	payload := handoff.FromQuery(query)
	route := handoff.Encode(payload)

	c.publishNavigation(ctx, route, payload)

	return &NavigationResult{Route: route, TemplateID: payload.TemplateID}, nil
}

// InstantiateTemplate is the parameter-capture submit. The workflow name
// must be non-empty after trimming; on failure nothing is created, no event
// is published, and the caller keeps its form state. On success the form is
// encoded into a canvas route for the template and navigation and
// instantiation events are emitted.
func (c *Canvas) InstantiateTemplate(ctx context.Context, templateID string, form *models.ParameterForm) (*NavigationResult, error) {
	if _, err := c.gallery.FetchByID(templateID); err != nil {
		return nil, err
	}

	form.Normalize()

	if form.WorkflowName == "" {
		return nil, NewValidationError("InstantiateTemplate", "workflow_name",
			"workflow name must not be empty", ErrWorkflowNameRequired)
	}

	if !models.ValidTriggerType(form.TriggerType) {
		return nil, NewValidationError("InstantiateTemplate", "trigger_type",
			fmt.Sprintf("invalid trigger type %q", form.TriggerType), ErrInvalidTrigger)
	}

	payload := handoff.FromForm(templateID, form)
	route := handoff.Encode(payload)

	c.publishNavigation(ctx, route, payload)
	c.publish(ctx, templateID, events.TemplateInstantiated{
		BaseEvent:    events.NewBaseEvent(events.TemplateInstantiatedEvent, ""),
		TemplateID:   templateID,
		WorkflowName: form.WorkflowName,
	})

	return &NavigationResult{Route: route, TemplateID: templateID}, nil
}

// Mount opens the canvas for a route. When sessionID names an existing open
// session (a re-mount), that session is returned and the seed guard makes
// the payload a no-op. Otherwise a fresh session is created and seeded
// exactly once from the decoded route parameters.
func (c *Canvas) Mount(ctx context.Context, templateID, sessionID string, params url.Values) (*session.Session, error) {
	if sessionID != "" {
		sess, err := c.store.Get(sessionID)
		if err == nil {
			sess.Seed(nil) // already initialized; guard keeps this inert
			return sess, nil
		}

		if !session.IsSessionNotFound(err) {
			return nil, err
		}
		// expired or unknown session id: fall through to a fresh mount
	}

	payload, err := handoff.Decode(templateID, params)
	if err != nil {
		return nil, NewValidationError("Mount", "trigger", err.Error(), ErrInvalidTrigger)
	}

	// A hand-edited route could carry a query longer than any chat submit
	// may produce; the transcript cap holds on this path too.
	if payload != nil && utf8.RuneCountInString(payload.Query) > models.MaxChatMessageLength {
		return nil, NewValidationError("Mount", "query",
			fmt.Sprintf("query exceeds %d characters", models.MaxChatMessageLength),
			ErrMessageTooLong,
		)
	}

	sess := session.New(defaultString(templateID, handoff.NewWorkflowID))
	sess.Seed(payload)
	c.store.Save(sess)

	c.publish(ctx, sess.ID, events.SessionCreated{
		BaseEvent:  events.NewBaseEvent(events.SessionCreatedEvent, sess.ID),
		TemplateID: sess.TemplateID,
	})

	if payload != nil {
		c.publish(ctx, sess.ID, events.SessionSeeded{
			BaseEvent: events.NewBaseEvent(events.SessionSeededEvent, sess.ID),
			Kind:      string(payload.Kind),
		})
	}

	return sess, nil
}

// Session returns an open session by id.
func (c *Canvas) Session(id string) (*session.Session, error) {
	return c.store.Get(id)
}

// SubmitChat appends a chat exchange to an open session. Blank input is
// suppressed; appended reports whether the transcript grew.
func (c *Canvas) SubmitChat(sessionID, text string) (sess *session.Session, appended bool, err error) {
	if utf8.RuneCountInString(text) > models.MaxChatMessageLength {
		return nil, false, NewValidationError("SubmitChat", "content",
			fmt.Sprintf("message exceeds %d characters", models.MaxChatMessageLength),
			ErrMessageTooLong,
		)
	}

	sess, err = c.store.Get(sessionID)
	if err != nil {
		return nil, false, err
	}

	appended = sess.SubmitChat(text)
	c.store.Save(sess)

	return sess, appended, nil
}

// Connect adds an edge between two existing nodes of the session graph.
// A missing endpoint leaves the graph untouched.
func (c *Canvas) Connect(sessionID, source, target string) (*models.Edge, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	edge, err := sess.Connect(source, target)
	if err != nil {
		return nil, err
	}

	c.store.Save(sess)

	return edge, nil
}

// UpdateNodes applies incremental node position/selection changes. Unknown
// node ids are skipped.
func (c *Canvas) UpdateNodes(sessionID string, changes []graph.NodeChange) (*session.Session, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.ApplyNodeChanges(changes)
	c.store.Save(sess)

	return sess, nil
}

// SelectStep highlights the canvas node behind a step log entry, keeping at
// most one node selected.
func (c *Canvas) SelectStep(sessionID, stepID string) (*session.Session, error) {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.SelectStep(stepID)
	c.store.Save(sess)

	return sess, nil
}

func (c *Canvas) publishNavigation(ctx context.Context, route string, payload *handoff.Payload) {
	c.publish(ctx, payload.TemplateID, events.NavigationRequested{
		BaseEvent: events.NewBaseEvent(events.NavigationRequestedEvent, ""),
		Route:     route,
		Payload:   payload,
	})
}

// publish emits an event, ignoring bus failures: eventing observes the flow
// but never blocks user actions.
func (c *Canvas) publish(ctx context.Context, key string, event eventbus.Event) {
	if c.publisher == nil {
		return
	}

	_ = c.publisher.Publish(ctx, key, event)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
