// Package graph holds the in-memory node/edge model behind the workflow
// canvas. The rendering capability is external; this model stays testable
// without it.
package graph

import (
	"errors"
	"fmt"

	"github.com/autoflowai/autoflow/pkg/models"
	"github.com/google/uuid"
)

var (
	// ErrNodeNotFound indicates an edge endpoint references a node id that
	// is not in the graph.
	ErrNodeNotFound = errors.New("node not found")

	// ErrDuplicateEdge indicates an edge with the same source and target
	// already exists.
	ErrDuplicateEdge = errors.New("edge already exists")
)

// Graph is the canvas node/edge set for one session. It is owned by that
// session, which serializes all access; the graph itself does no locking.
type Graph struct {
	Nodes []*models.Node `json:"nodes"`
	Edges []*models.Edge `json:"edges"`
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		Nodes: []*models.Node{},
		Edges: []*models.Edge{},
	}
}

// Clone returns a deep copy of the graph. Rendering works on clones so a
// response never aliases nodes a concurrent request may still mutate.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Nodes: make([]*models.Node, len(g.Nodes)),
		Edges: make([]*models.Edge, len(g.Edges)),
	}

	for i, n := range g.Nodes {
		node := *n
		clone.Nodes[i] = &node
	}

	for i, e := range g.Edges {
		edge := *e
		clone.Edges[i] = &edge
	}

	return clone
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *models.Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}

	return nil
}

// Edge returns the edge with the given id, or nil.
func (g *Graph) Edge(id string) *models.Edge {
	for _, e := range g.Edges {
		if e.ID == id {
			return e
		}
	}

	return nil
}

// AddNode appends a node. An id collision replaces the existing node.
func (g *Graph) AddNode(node *models.Node) {
	for i, n := range g.Nodes {
		if n.ID == node.ID {
			g.Nodes[i] = node

			return
		}
	}

	g.Nodes = append(g.Nodes, node)
}

// AddEdge connects two existing nodes with a freshly generated edge id and
// returns the new edge. Both endpoints must exist; a missing endpoint leaves
// the graph untouched and returns ErrNodeNotFound. A second edge between the
// same pair is rejected with ErrDuplicateEdge.
func (g *Graph) AddEdge(source, target string, animated bool) (*models.Edge, error) {
	if g.Node(source) == nil {
		return nil, fmt.Errorf("connect %s -> %s: source: %w", source, target, ErrNodeNotFound)
	}

	if g.Node(target) == nil {
		return nil, fmt.Errorf("connect %s -> %s: target: %w", source, target, ErrNodeNotFound)
	}

	for _, e := range g.Edges {
		if e.Source == source && e.Target == target {
			return nil, fmt.Errorf("connect %s -> %s: %w", source, target, ErrDuplicateEdge)
		}
	}

	edge := &models.Edge{
		ID:       uuid.New().String(),
		Source:   source,
		Target:   target,
		Animated: animated,
	}
	g.Edges = append(g.Edges, edge)

	return edge, nil
}

// NodeChange is an incremental position/selection edit keyed by node id.
// Nil fields leave the corresponding attribute untouched.
type NodeChange struct {
	ID        string `json:"id" validate:"required"`
	PositionX *int   `json:"position_x,omitempty"`
	PositionY *int   `json:"position_y,omitempty"`
	Selected  *bool  `json:"selected,omitempty"`
}

// ApplyNodeChanges applies edits in order, so the latest change for a node
// id wins. Changes referencing unknown ids are skipped, never an error.
func (g *Graph) ApplyNodeChanges(changes []NodeChange) {
	for _, ch := range changes {
		node := g.Node(ch.ID)
		if node == nil {
			continue
		}

		if ch.PositionX != nil {
			node.PositionX = *ch.PositionX
		}

		if ch.PositionY != nil {
			node.PositionY = *ch.PositionY
		}

		if ch.Selected != nil {
			node.Selected = *ch.Selected
		}
	}
}

// EdgeChange is an incremental edit keyed by edge id.
type EdgeChange struct {
	ID       string `json:"id" validate:"required"`
	Animated *bool  `json:"animated,omitempty"`
	Remove   bool   `json:"remove,omitempty"`
}

// ApplyEdgeChanges applies edits in order with last-write-wins semantics.
// Unknown edge ids are skipped.
func (g *Graph) ApplyEdgeChanges(changes []EdgeChange) {
	for _, ch := range changes {
		if ch.Remove {
			g.removeEdge(ch.ID)

			continue
		}

		edge := g.Edge(ch.ID)
		if edge == nil {
			continue
		}

		if ch.Animated != nil {
			edge.Animated = *ch.Animated
		}
	}
}

func (g *Graph) removeEdge(id string) {
	for i, e := range g.Edges {
		if e.ID == id {
			g.Edges = append(g.Edges[:i], g.Edges[i+1:]...)

			return
		}
	}
}

// SelectStep marks the node with the given id selected and clears every
// other node, keeping at most one node selected at any time. An unknown id
// simply clears the selection.
func (g *Graph) SelectStep(stepID string) {
	for _, n := range g.Nodes {
		n.Selected = n.ID == stepID
	}
}

// SelectedNode returns the currently selected node, or nil.
func (g *Graph) SelectedNode() *models.Node {
	for _, n := range g.Nodes {
		if n.Selected {
			return n
		}
	}

	return nil
}
