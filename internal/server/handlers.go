package server

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/sentinel/internal/core/graph"
	"github.com/agenthands/sentinel/internal/core/model"
)

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Sentinel API",
		"status":  "operational",
		"version": "0.1.0",
	})
}

func (s *Server) Stats(c *gin.Context) {
	snap := s.Snapshot()

	var high, medium, low, pending int
	var totalValue float64
	for _, score := range snap.Scores {
		switch score.Category {
		case model.RiskHigh:
			high++
		case model.RiskMedium:
			medium++
		default:
			low++
		}
	}
	for _, tender := range snap.Data.Tenders {
		if tender.Status == model.StatusOpen || tender.Status == model.StatusEvaluation {
			pending++
		}
		totalValue += tender.EstimatedValue
	}

	c.JSON(http.StatusOK, model.DashboardStats{
		TotalTenders:    len(snap.Data.Tenders),
		HighRiskCount:   high,
		MediumRiskCount: medium,
		LowRiskCount:    low,
		PendingReview:   pending,
		TotalValue:      totalValue,
		FlaggedToday:    high,
	})
}

func (s *Server) ListTenders(c *gin.Context) {
	snap := s.Snapshot()

	riskLevel := model.RiskCategory(c.Query("risk_level"))
	status := model.TenderStatus(c.Query("status"))
	sortBy := c.DefaultQuery("sort_by", "risk")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	results := make([]model.TenderWithRisk, 0, len(snap.Data.Tenders))
	for tenderID, tender := range snap.Data.Tenders {
		score := snap.Scores[tenderID]
		if riskLevel != "" && score.Category != riskLevel {
			continue
		}
		if status != "" && tender.Status != status {
			continue
		}
		results = append(results, model.TenderWithRisk{
			Tender:      tender,
			Risk:        score,
			BidderCount: len(snap.Data.BidsByTender[tenderID]),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		switch sortBy {
		case "value":
			if a.Tender.EstimatedValue != b.Tender.EstimatedValue {
				return a.Tender.EstimatedValue > b.Tender.EstimatedValue
			}
		case "date":
			if !a.Tender.PublishedDate.Equal(b.Tender.PublishedDate) {
				return a.Tender.PublishedDate.After(b.Tender.PublishedDate)
			}
		default:
			if a.Risk.Overall != b.Risk.Overall {
				return a.Risk.Overall > b.Risk.Overall
			}
		}
		return a.Tender.ID < b.Tender.ID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) TenderDetail(c *gin.Context) {
	snap := s.Snapshot()
	tenderID := c.Param("id")

	tender, ok := snap.Data.Tenders[tenderID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tender not found"})
		return
	}

	detail := model.TenderDetail{
		Tender: tender,
		Risk:   snap.Scores[tenderID],
		Bids:   snap.Data.BidsByTender[tenderID],
	}
	if tender.AwardedTo != "" {
		if company, ok := snap.Data.Companies[tender.AwardedTo]; ok {
			detail.WinningCompany = &company
		}
	}

	c.JSON(http.StatusOK, detail)
}

func (s *Server) TenderGraph(c *gin.Context) {
	snap := s.Snapshot()
	tenderID := c.Param("id")

	if _, ok := snap.Data.Tenders[tenderID]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tender not found"})
		return
	}

	depth, err := strconv.Atoi(c.DefaultQuery("depth", "2"))
	if err != nil || depth < 1 || depth > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "depth must be between 1 and 3"})
		return
	}

	sub := graph.TenderSubgraph(snap.Graph, tenderID, depth)
	c.JSON(http.StatusOK, graph.ToGraphData(sub))
}

func (s *Server) ExploreGraph(c *gin.Context) {
	c.JSON(http.StatusOK, graph.ToGraphData(s.Snapshot().Graph))
}

func (s *Server) Cartels(c *gin.Context) {
	snap := s.Snapshot()

	type cartelView struct {
		CompanyIDs   []string `json:"company_ids"`
		CompanyNames []string `json:"company_names"`
		Size         int      `json:"size"`
	}

	cartels := make([]cartelView, 0, len(snap.Clusters))
	for _, cluster := range snap.Clusters {
		view := cartelView{
			CompanyIDs: cluster.Members,
			Size:       cluster.Size(),
		}
		for _, id := range cluster.Members {
			if company, ok := snap.Data.Companies[id]; ok {
				view.CompanyNames = append(view.CompanyNames, company.Name)
			}
		}
		cartels = append(cartels, view)
	}

	c.JSON(http.StatusOK, gin.H{"cartels": cartels, "total": len(cartels)})
}

func (s *Server) Company(c *gin.Context) {
	snap := s.Snapshot()
	companyID := c.Param("id")

	company, ok := snap.Data.Companies[companyID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	directors := make([]model.Director, 0, len(company.DirectorIDs))
	for _, directorID := range company.DirectorIDs {
		if director, ok := snap.Data.Directors[directorID]; ok {
			directors = append(directors, director)
		}
	}

	c.JSON(http.StatusOK, gin.H{"company": company, "directors": directors})
}

// Refresh rebuilds the graph, clusters and scores from the current dataset
// and swaps the snapshot in atomically.
func (s *Server) Refresh(c *gin.Context) {
	old := s.Snapshot()
	snap := s.Engine.BuildSnapshot(old.Data)
	s.snapshot.Store(snap)

	if err := s.Engine.Export(context.Background(), snap); err != nil {
		log.Printf("Memgraph export failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snap.ID,
		"tenders":     len(snap.Scores),
		"nodes":       snap.Graph.NodeCount(),
		"edges":       snap.Graph.EdgeCount(),
	})
}
