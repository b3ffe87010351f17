package session

import "github.com/autoflowai/autoflow/pkg/models"

// StepEntry is one row of the step log shown beside the canvas. Entries
// reference canvas nodes by id; selecting a step highlights that node.
type StepEntry struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Status models.NodeStatus `json:"status"`
	Input  string            `json:"input"`
	Output string            `json:"output"`
}

// ConsoleEntry is one line of the console tab.
type ConsoleEntry struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Node    string `json:"node"`
	Message string `json:"message"`
}

// StepLog returns the step log for the session. The entries are static
// sample content in a fixed display order, which differs from node id
// order on purpose.
func (s *Session) StepLog() []StepEntry {
	return []StepEntry{
		{ID: "1", Name: "Product Name", Status: models.NodeStatusCompleted, Input: "5.7k", Output: "Shows"},
		{ID: "4", Name: "Describe Target Audience", Status: models.NodeStatusRunning, Input: "User input", Output: "Pending"},
		{ID: "2", Name: "Research Product", Status: models.NodeStatusCompleted, Input: "Product data", Output: "Analysis"},
		{ID: "3", Name: "Generate Ad Text", Status: models.NodeStatusRunning, Input: "Analysis", Output: "Pending"},
	}
}

// Console returns the console tab contents, static sample content like the
// step log.
func (s *Session) Console() []ConsoleEntry {
	return []ConsoleEntry{
		{Time: "14:30:21", Level: "info", Node: "Product Name", Message: "Processing input: 5.7k records"},
		{Time: "14:30:22", Level: "success", Node: "Product Name", Message: "Completed successfully"},
		{Time: "14:30:23", Level: "info", Node: "Research Product", Message: "Starting analysis..."},
		{Time: "14:30:25", Level: "success", Node: "Research Product", Message: "Analysis complete"},
		{Time: "14:30:26", Level: "warning", Node: "Generate Ad Text", Message: "Waiting for target audience data"},
	}
}
