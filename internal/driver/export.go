package driver

import (
	"context"
	"fmt"

	"github.com/agenthands/sentinel/internal/core/graph"
)

// Exporter mirrors a built relationship graph into Memgraph for external
// visualization. The in-memory graph stays the source of truth; each
// export is tagged with its snapshot ID so stale mirrors can be purged.
type Exporter struct {
	Driver GraphDriver
}

func NewExporter(d GraphDriver) *Exporter {
	return &Exporter{Driver: d}
}

func (e *Exporter) Export(ctx context.Context, snapshotID string, g *graph.Graph) error {
	for _, n := range g.Nodes() {
		label, ok := nodeLabels[n.Type]
		if !ok {
			continue
		}
		params := map[string]interface{}{
			"id":                n.ID,
			"snapshot_id":       snapshotID,
			"label":             n.Label,
			"risk_level":        string(n.RiskLevel),
			"address":           n.Address,
			"phone":             n.Phone,
			"registration_date": n.RegistrationDate,
			"department":        n.Department,
			"position":          n.Position,
			"full_title":        n.FullTitle,
			"procuring_entity":  n.ProcuringEntity,
			"value":             n.Value,
			"status":            string(n.Status),
		}
		query := fmt.Sprintf(saveNodeQueryTemplate, label)
		if _, err := e.Driver.ExecuteQuery(ctx, query, params); err != nil {
			return fmt.Errorf("failed to export node %s: %w", n.ID, err)
		}
	}

	for _, edge := range g.Edges() {
		relationship, ok := edgeRelationships[edge.Type]
		if !ok {
			continue
		}
		params := map[string]interface{}{
			"source_id":     edge.Source,
			"target_id":     edge.Target,
			"snapshot_id":   snapshotID,
			"suspicious":    edge.Suspicious,
			"amount":        edge.Amount,
			"relation_type": string(edge.Relation),
		}
		query := fmt.Sprintf(saveEdgeQueryTemplate, relationship)
		if _, err := e.Driver.ExecuteQuery(ctx, query, params); err != nil {
			return fmt.Errorf("failed to export edge %s-%s: %w", edge.Source, edge.Target, err)
		}
	}

	return nil
}

// Purge removes an exported snapshot from the mirror.
func (e *Exporter) Purge(ctx context.Context, snapshotID string) error {
	_, err := e.Driver.ExecuteQuery(ctx, purgeSnapshotQuery, map[string]interface{}{
		"snapshot_id": snapshotID,
	})
	if err != nil {
		return fmt.Errorf("failed to purge snapshot %s: %w", snapshotID, err)
	}
	return nil
}
