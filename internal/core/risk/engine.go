package risk

import (
	"sync"

	"github.com/agenthands/sentinel/internal/core/cartel"
	"github.com/agenthands/sentinel/internal/core/graph"
	"github.com/agenthands/sentinel/internal/core/model"
)

const (
	scoreCap = 100

	highThreshold   = 50
	mediumThreshold = 25

	// DefaultWorkers bounds the per-tender evaluation fan-out when the
	// caller does not configure one.
	DefaultWorkers = 8
)

// ComputeRiskScore evaluates the five detection rules against one tender
// and aggregates the emitted factors into a capped, categorized score.
// All inputs are read-only; a recomputation returns a fresh score.
func ComputeRiskScore(
	tender model.Tender,
	companies map[string]model.Company,
	directors map[string]model.Director,
	officials map[string]model.PublicOfficial,
	bids []model.Bid,
	g *graph.Graph,
	clusters []cartel.Cluster,
	allTenders map[string]model.Tender,
) model.RiskScore {
	var winner *model.Company
	if tender.AwardedTo != "" {
		if company, ok := companies[tender.AwardedTo]; ok {
			winner = &company
		}
	}

	var tenderBids []model.Bid
	for _, bid := range bids {
		if bid.TenderID == tender.ID {
			tenderBids = append(tenderBids, bid)
		}
	}

	var factors []model.RiskFactor
	if factor, ok := CheckConflictOfInterest(tender, winner, directors, officials, g); ok {
		factors = append(factors, factor)
	}
	if factor, ok := CheckCartelPattern(tender, tenderBids, companies, clusters); ok {
		factors = append(factors, factor)
	}
	if factor, ok := CheckShellCompany(tender, winner); ok {
		factors = append(factors, factor)
	}
	if factor, ok := CheckPriceAnomaly(tender, allTenders); ok {
		factors = append(factors, factor)
	}
	if factor, ok := CheckRushedTimeline(tender); ok {
		factors = append(factors, factor)
	}

	overall := 0
	for _, factor := range factors {
		overall += factor.Weight
	}
	if overall > scoreCap {
		overall = scoreCap
	}
	category := Categorize(overall)

	return model.RiskScore{
		Overall:        overall,
		Category:       category,
		Factors:        factors,
		Recommendation: GenerateRecommendation(factors, category),
	}
}

// Categorize maps a capped overall score to its risk category.
func Categorize(overall int) model.RiskCategory {
	switch {
	case overall >= highThreshold:
		return model.RiskHigh
	case overall >= mediumThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// EvalParams bundles the shared immutable state for an all-tender run.
type EvalParams struct {
	Tenders   map[string]model.Tender
	Companies map[string]model.Company
	Directors map[string]model.Director
	Officials map[string]model.PublicOfficial
	Bids      []model.Bid
	Graph     *graph.Graph

	// Clusters is detected from Bids with default thresholds when nil.
	Clusters []cartel.Cluster
	// Workers defaults to DefaultWorkers when <= 0.
	Workers int
}

// ComputeAllRiskScores scores every tender, detecting cartel clusters once
// and reusing them across evaluations.
func ComputeAllRiskScores(
	tenders map[string]model.Tender,
	companies map[string]model.Company,
	directors map[string]model.Director,
	officials map[string]model.PublicOfficial,
	bids []model.Bid,
	g *graph.Graph,
) map[string]model.RiskScore {
	return ComputeAll(EvalParams{
		Tenders:   tenders,
		Companies: companies,
		Directors: directors,
		Officials: officials,
		Bids:      bids,
		Graph:     g,
	})
}

// ComputeAll fans tender evaluation out across workers. Each evaluation
// only reads the shared snapshot, so no locking is needed beyond the
// result map.
func ComputeAll(p EvalParams) map[string]model.RiskScore {
	clusters := p.Clusters
	if clusters == nil {
		clusters = cartel.NewDetector().Detect(p.Bids)
	}
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make(map[string]model.RiskScore, len(p.Tenders))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for tenderID, tender := range p.Tenders {
		wg.Add(1)
		sem <- struct{}{}
		go func(tenderID string, tender model.Tender) {
			defer wg.Done()
			defer func() { <-sem }()

			score := ComputeRiskScore(tender, p.Companies, p.Directors, p.Officials,
				p.Bids, p.Graph, clusters, p.Tenders)

			mu.Lock()
			results[tenderID] = score
			mu.Unlock()
		}(tenderID, tender)
	}
	wg.Wait()

	return results
}
