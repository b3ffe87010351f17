// Package handoff encodes and decodes the state carried across navigation
// into a canvas session: either a free-text query from the chat entry points
// or the parameter form captured for a template.
package handoff

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/autoflowai/autoflow/pkg/models"
)

// NewWorkflowID is the path segment used when a session is not seeded from
// an existing template.
const NewWorkflowID = "new"

// CanvasPathPrefix is the route prefix of the canvas view.
const CanvasPathPrefix = "/workflow-canvas/"

// ErrInvalidTrigger indicates a templated payload carried a trigger value
// outside the supported set.
var ErrInvalidTrigger = errors.New("invalid trigger type")

// Kind discriminates the two entry shapes into a canvas session.
type Kind string

const (
	// KindQuery carries a free-text query that seeds the transcript.
	KindQuery Kind = "query"
	// KindTemplate carries the parameter form of a template instantiation.
	// Its fields are routing metadata; they name the session rather than
	// seed the transcript.
	KindTemplate Kind = "template"
)

// Payload is the serialized form of a handoff. It is read exactly once by
// the destination session and not kept afterwards.
type Payload struct {
	Kind       Kind   `json:"kind"`
	TemplateID string `json:"template_id"`

	// KindQuery
	Query string `json:"query,omitempty"`

	// KindTemplate
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Trigger     models.TriggerType `json:"trigger,omitempty"`
	Audience    string             `json:"audience,omitempty"`
}

// FromQuery builds a free-text payload.
func FromQuery(query string) *Payload {
	return &Payload{
		Kind:       KindQuery,
		TemplateID: NewWorkflowID,
		Query:      query,
	}
}

// FromForm builds a templated payload from a captured parameter form.
func FromForm(templateID string, form *models.ParameterForm) *Payload {
	return &Payload{
		Kind:        KindTemplate,
		TemplateID:  templateID,
		Name:        form.WorkflowName,
		Description: form.Description,
		Trigger:     form.TriggerType,
		Audience:    form.TargetAudience,
	}
}

// Encode serializes the payload into a canvas route with percent-encoded
// query parameters.
func Encode(p *Payload) string {
	values := url.Values{}

	switch p.Kind {
	case KindQuery:
		values.Set("query", p.Query)
	case KindTemplate:
		values.Set("name", p.Name)
		values.Set("description", p.Description)
		values.Set("trigger", string(p.Trigger))
		values.Set("audience", p.Audience)
	}

	templateID := p.TemplateID
	if templateID == "" {
		templateID = NewWorkflowID
	}

	route := CanvasPathPrefix + url.PathEscape(templateID)
	if encoded := values.Encode(); encoded != "" {
		route += "?" + encoded
	}

	return route
}

// Decode reads a handoff payload out of the canvas route's template id and
// query parameters. A route with no payload parameters decodes to nil, which
// the session treats as an empty start. A templated payload with a trigger
// outside the supported set is rejected.
//
// Decode itself is a pure read; running it more than once yields the same
// payload. The seed-once guarantee lives with the session, which consumes a
// payload at most once per mount.
func Decode(templateID string, params url.Values) (*Payload, error) {
	if query := params.Get("query"); strings.TrimSpace(query) != "" {
		return &Payload{
			Kind:       KindQuery,
			TemplateID: defaultTemplateID(templateID),
			Query:      query,
		}, nil
	}

	name := params.Get("name")
	if name == "" && !params.Has("trigger") {
		return nil, nil
	}

	trigger := models.TriggerType(params.Get("trigger"))
	if trigger == "" {
		trigger = models.TriggerTypeManual
	}

	if !models.ValidTriggerType(trigger) {
		return nil, fmt.Errorf("decode %q: %w", trigger, ErrInvalidTrigger)
	}

	return &Payload{
		Kind:        KindTemplate,
		TemplateID:  defaultTemplateID(templateID),
		Name:        name,
		Description: params.Get("description"),
		Trigger:     trigger,
		Audience:    params.Get("audience"),
	}, nil
}

func defaultTemplateID(id string) string {
	if id == "" {
		return NewWorkflowID
	}

	return id
}
