package graph

import "github.com/autoflowai/autoflow/pkg/models"

// SampleGraph returns the seed canvas shown when a session opens: four
// nodes with static statuses and three animated connections. Statuses are
// sample content; nothing in this service advances them.
func SampleGraph() *Graph {
	return &Graph{
		Nodes: []*models.Node{
			{
				ID:        "1",
				Label:     "Product Name",
				Status:    models.NodeStatusCompleted,
				Input:     "5.7k",
				Output:    "Shows",
				PositionX: 250,
				PositionY: 50,
			},
			{
				ID:        "2",
				Label:     "Research Product",
				Status:    models.NodeStatusCompleted,
				Input:     "Product data",
				Output:    "Analysis",
				PositionX: 250,
				PositionY: 150,
			},
			{
				ID:        "3",
				Label:     "Generate Ad Text",
				Status:    models.NodeStatusRunning,
				Input:     "Analysis",
				Output:    "Pending",
				PositionX: 250,
				PositionY: 250,
			},
			{
				ID:        "4",
				Label:     "Describe Target Audience",
				Status:    models.NodeStatusRunning,
				Input:     "User input",
				Output:    "Pending",
				PositionX: 450,
				PositionY: 150,
			},
		},
		Edges: []*models.Edge{
			{ID: "e1-2", Source: "1", Target: "2", Animated: true},
			{ID: "e2-3", Source: "2", Target: "3", Animated: true},
			{ID: "e4-3", Source: "4", Target: "3", Animated: true},
		},
	}
}

// PreviewGraph returns the read-only graph rendered inside the template
// preview. Every template currently shares the same four-step preview.
func PreviewGraph(templateID string) *Graph {
	_ = templateID // all templates share the default preview for now

	return &Graph{
		Nodes: []*models.Node{
			{ID: "1", Label: "Start Trigger", Status: models.NodeStatusReady, PositionX: 100, PositionY: 50},
			{ID: "2", Label: "Process Data", Status: models.NodeStatusReady, PositionX: 100, PositionY: 150},
			{ID: "3", Label: "Generate Output", Status: models.NodeStatusReady, PositionX: 100, PositionY: 250},
			{ID: "4", Label: "Send Result", Status: models.NodeStatusReady, PositionX: 100, PositionY: 350},
		},
		Edges: []*models.Edge{
			{ID: "e1-2", Source: "1", Target: "2", Animated: true},
			{ID: "e2-3", Source: "2", Target: "3", Animated: true},
			{ID: "e3-4", Source: "3", Target: "4", Animated: true},
		},
	}
}
