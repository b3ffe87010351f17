// Package events defines the event types published on session and
// navigation lifecycle boundaries.
package events

import (
	"time"

	"github.com/autoflowai/autoflow/pkg/handoff"
	"github.com/google/uuid"
)

type EventType string

// Topic is the single in-process topic all builder events flow through.
const Topic = "autoflow.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	// NavigationRequestedEvent is published when a submit action produces a
	// handoff toward the canvas, before the destination consumes it.
	NavigationRequestedEvent EventType = "navigation.requested"

	// SessionCreatedEvent is published when a canvas session is opened.
	SessionCreatedEvent EventType = "session.created"

	// SessionSeededEvent is published once per session when an incoming
	// payload seeds the transcript or names the workflow.
	SessionSeededEvent EventType = "session.seeded"

	// TemplateInstantiatedEvent is published when a parameter form submit
	// succeeds for a template.
	TemplateInstantiatedEvent EventType = "template.instantiated"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"session_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewBaseEvent stamps a fresh event envelope.
func NewBaseEvent(eventType EventType, sessionID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		SessionID: sessionID,
	}
}

type NavigationRequested struct {
	BaseEvent

	Route   string           `json:"route"`
	Payload *handoff.Payload `json:"payload"`
}

func (e NavigationRequested) GetType() EventType {
	return NavigationRequestedEvent
}

type SessionCreated struct {
	BaseEvent

	TemplateID string `json:"template_id"`
}

func (e SessionCreated) GetType() EventType {
	return SessionCreatedEvent
}

type SessionSeeded struct {
	BaseEvent

	Kind string `json:"kind"`
}

func (e SessionSeeded) GetType() EventType {
	return SessionSeededEvent
}

type TemplateInstantiated struct {
	BaseEvent

	TemplateID   string `json:"template_id"`
	WorkflowName string `json:"workflow_name"`
}

func (e TemplateInstantiated) GetType() EventType {
	return TemplateInstantiatedEvent
}
