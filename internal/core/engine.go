// Package core wires the relationship-graph build, cartel detection and
// risk scoring into immutable dataset snapshots.
package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agenthands/sentinel/internal/core/cartel"
	"github.com/agenthands/sentinel/internal/core/graph"
	"github.com/agenthands/sentinel/internal/core/model"
	"github.com/agenthands/sentinel/internal/core/risk"
	"github.com/agenthands/sentinel/internal/dataset"
	"github.com/agenthands/sentinel/internal/driver"
)

// Snapshot is one fully built view of a dataset: the relationship graph,
// the cartel clusters and a risk score per tender. Snapshots are never
// mutated after BuildSnapshot returns; a rebuild produces a new one.
type Snapshot struct {
	ID       string
	Data     *dataset.Dataset
	Graph    *graph.Graph
	Clusters []cartel.Cluster
	Scores   map[string]model.RiskScore
}

type Engine struct {
	Detector *cartel.Detector
	Exporter *driver.Exporter // optional Memgraph mirror
	Workers  int

	UUIDGenerator func() string
}

func NewEngine() *Engine {
	return &Engine{
		Detector:      cartel.NewDetector(),
		Workers:       risk.DefaultWorkers,
		UUIDGenerator: func() string { return uuid.New().String() },
	}
}

// BuildSnapshot builds the graph, detects cartel clusters once, scores
// every tender and annotates tender nodes with their risk category. It
// never fails: dangling references are skipped and missing optional
// fields simply contribute no factors.
func (e *Engine) BuildSnapshot(data *dataset.Dataset) *Snapshot {
	g := graph.Build(data.Companies, data.Directors, data.Officials, data.Tenders, data.Bids)
	clusters := e.Detector.Detect(data.Bids)

	scores := risk.ComputeAll(risk.EvalParams{
		Tenders:   data.Tenders,
		Companies: data.Companies,
		Directors: data.Directors,
		Officials: data.Officials,
		Bids:      data.Bids,
		Graph:     g,
		Clusters:  clusters,
		Workers:   e.Workers,
	})

	for tenderID, score := range scores {
		if node, ok := g.Node(tenderID); ok {
			node.RiskLevel = score.Category
		}
	}

	return &Snapshot{
		ID:       e.UUIDGenerator(),
		Data:     data,
		Graph:    g,
		Clusters: clusters,
		Scores:   scores,
	}
}

// Export mirrors a snapshot's graph into Memgraph. No-op without an
// exporter.
func (e *Engine) Export(ctx context.Context, snap *Snapshot) error {
	if e.Exporter == nil {
		return nil
	}
	if err := e.Exporter.Export(ctx, snap.ID, snap.Graph); err != nil {
		return fmt.Errorf("failed to export snapshot %s: %w", snap.ID, err)
	}
	return nil
}
