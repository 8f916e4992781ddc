package graph

import (
	"sort"

	"github.com/agenthands/sentinel/internal/core/model"
)

// Graph is an undirected, typed relationship graph held in memory.
// At most one edge exists per node pair; adding a second replaces the first.
type Graph struct {
	nodes map[string]*model.Node
	order []string
	adj   map[string]map[string]int // node -> neighbor -> index into edges
	edges []model.Edge
}

func New() *Graph {
	return &Graph{
		nodes: make(map[string]*model.Node),
		adj:   make(map[string]map[string]int),
	}
}

func (g *Graph) AddNode(n model.Node) {
	if _, ok := g.nodes[n.ID]; !ok {
		g.order = append(g.order, n.ID)
		g.adj[n.ID] = make(map[string]int)
	}
	node := n
	g.nodes[n.ID] = &node
}

// AddEdge links two existing nodes. Edges referencing an unknown node are
// skipped silently (dangling references never fail the build).
func (g *Graph) AddEdge(e model.Edge) {
	if _, ok := g.nodes[e.Source]; !ok {
		return
	}
	if _, ok := g.nodes[e.Target]; !ok {
		return
	}
	if idx, ok := g.adj[e.Source][e.Target]; ok {
		g.edges[idx] = e
		return
	}
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.adj[e.Source][e.Target] = idx
	g.adj[e.Target][e.Source] = idx
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) Node(id string) (*model.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Neighbors returns the adjacent node IDs in sorted order so traversals
// are deterministic.
func (g *Graph) Neighbors(id string) []string {
	adj, ok := g.adj[id]
	if !ok {
		return nil
	}
	neighbors := make([]string, 0, len(adj))
	for v := range adj {
		neighbors = append(neighbors, v)
	}
	sort.Strings(neighbors)
	return neighbors
}

// EdgeBetween returns the edge linking a and b, if any.
func (g *Graph) EdgeBetween(a, b string) (model.Edge, bool) {
	if idx, ok := g.adj[a][b]; ok {
		return g.edges[idx], true
	}
	return model.Edge{}, false
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*model.Node {
	nodes := make([]*model.Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

func (g *Graph) Edges() []model.Edge {
	edges := make([]model.Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

func (g *Graph) NodeCount() int { return len(g.nodes) }
func (g *Graph) EdgeCount() int { return len(g.edges) }
