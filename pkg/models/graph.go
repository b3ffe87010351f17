package models

// NodeStatus is the display label carried by a canvas node. It is set by
// sample data or a future execution engine, never derived by this service;
// the canvas renders whatever value is present without assuming monotonic
// progression.
type NodeStatus string

const (
	NodeStatusDraft     NodeStatus = "draft"
	NodeStatusReady     NodeStatus = "ready"
	NodeStatusRunning   NodeStatus = "running"
	NodeStatusCompleted NodeStatus = "completed"
	NodeStatusFailed    NodeStatus = "failed"
)

// Node is one vertex on the workflow canvas.
type Node struct {
	ID        string     `json:"id"       validate:"required"`
	Label     string     `json:"label"    validate:"required"`
	Status    NodeStatus `json:"status"`
	Input     string     `json:"input,omitempty"`
	Output    string     `json:"output,omitempty"`
	PositionX int        `json:"position_x"`
	PositionY int        `json:"position_y"`
	Selected  bool       `json:"selected"`
}

// Edge connects two nodes on the canvas. Source and Target must reference
// existing node ids; the graph does not enforce acyclicity or a single root.
type Edge struct {
	ID       string `json:"id"     validate:"required"`
	Source   string `json:"source" validate:"required"`
	Target   string `json:"target" validate:"required"`
	Animated bool   `json:"animated"`
}

// ExecutionStatus is the informational status badge of a whole canvas
// session. Like NodeStatus it is never driven by real execution here.
type ExecutionStatus string

const (
	ExecutionStatusDraft     ExecutionStatus = "draft"
	ExecutionStatusReady     ExecutionStatus = "ready"
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
)
