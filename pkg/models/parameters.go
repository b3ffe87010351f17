package models

import "strings"

// TriggerType enumerates how an instantiated workflow would be started.
type TriggerType string

const (
	TriggerTypeManual   TriggerType = "manual"
	TriggerTypeSchedule TriggerType = "schedule"
	TriggerTypeWebhook  TriggerType = "webhook"
	TriggerTypeEvent    TriggerType = "event"
)

// ValidTriggerType reports whether t is one of the four supported triggers.
func ValidTriggerType(t TriggerType) bool {
	switch t {
	case TriggerTypeManual, TriggerTypeSchedule, TriggerTypeWebhook, TriggerTypeEvent:
		return true
	}

	return false
}

// ParameterForm captures the fields collected before instantiating a
// template. Only WorkflowName is validated; Description and TargetAudience
// may be empty. A form lives for one modal instance and is discarded on
// submit or cancel.
type ParameterForm struct {
	WorkflowName   string      `json:"workflow_name"   validate:"required"`
	Description    string      `json:"description"`
	TriggerType    TriggerType `json:"trigger_type"    validate:"omitempty,oneof=manual schedule webhook event"`
	TargetAudience string      `json:"target_audience"`
}

// Normalize trims the workflow name and defaults an unset trigger to manual.
func (f *ParameterForm) Normalize() {
	f.WorkflowName = strings.TrimSpace(f.WorkflowName)
	if f.TriggerType == "" {
		f.TriggerType = TriggerTypeManual
	}
}
