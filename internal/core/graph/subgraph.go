package graph

import (
	"fmt"

	"github.com/agenthands/sentinel/internal/core/model"
)

// TenderSubgraph extracts the subgraph within depth hops of a tender.
// An unknown tender ID yields an empty graph.
func TenderSubgraph(g *Graph, tenderID string, depth int) *Graph {
	sub := New()
	if !g.HasNode(tenderID) {
		return sub
	}

	included := map[string]bool{tenderID: true}
	frontier := []string{tenderID}
	for i := 0; i < depth; i++ {
		var next []string
		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				if !included[v] {
					included[v] = true
					next = append(next, v)
				}
			}
		}
		frontier = next
	}

	for _, n := range g.Nodes() {
		if included[n.ID] {
			sub.AddNode(*n)
		}
	}
	for _, e := range g.Edges() {
		if included[e.Source] && included[e.Target] {
			sub.AddEdge(e)
		}
	}
	return sub
}

// ToGraphData projects a graph into the node/edge DTO format served to
// graph-view clients.
func ToGraphData(g *Graph) model.GraphData {
	data := model.GraphData{
		Nodes: make([]model.GraphNode, 0, g.NodeCount()),
		Edges: make([]model.GraphEdge, 0, g.EdgeCount()),
	}

	for _, n := range g.Nodes() {
		data.Nodes = append(data.Nodes, model.GraphNode{
			ID:        n.ID,
			Type:      n.Type,
			Label:     n.Label,
			RiskLevel: n.RiskLevel,
			Metadata:  nodeMetadata(n),
		})
	}

	for idx, e := range g.Edges() {
		data.Edges = append(data.Edges, model.GraphEdge{
			ID:           fmt.Sprintf("edge-%d", idx),
			Source:       e.Source,
			Target:       e.Target,
			Relationship: e.Type,
			Suspicious:   e.Suspicious,
			Label:        string(e.Relation),
		})
	}

	return data
}

func nodeMetadata(n *model.Node) map[string]interface{} {
	meta := make(map[string]interface{})
	switch n.Type {
	case model.NodeCompany:
		meta["address"] = n.Address
		meta["phone"] = n.Phone
		meta["registration_date"] = n.RegistrationDate
	case model.NodeOfficial:
		meta["department"] = n.Department
		meta["position"] = n.Position
	case model.NodeTender:
		meta["full_title"] = n.FullTitle
		meta["procuring_entity"] = n.ProcuringEntity
		meta["value"] = n.Value
		meta["status"] = string(n.Status)
	}
	return meta
}
