package graph

import (
	"sort"
	"time"

	"github.com/agenthands/sentinel/internal/core/model"
)

const displayTitleLimit = 50

// Build constructs the relationship graph from a dataset snapshot.
//
// Node types: COMPANY, DIRECTOR, OFFICIAL, TENDER.
// Edge types: DIRECTOR_OF, BID_ON, WON, AWARDED_BY, RELATED_TO,
// SHARES_ADDRESS, SHARES_PHONE. The last three are marked suspicious.
// Input entities are never mutated.
func Build(
	companies map[string]model.Company,
	directors map[string]model.Director,
	officials map[string]model.PublicOfficial,
	tenders map[string]model.Tender,
	bids []model.Bid,
) *Graph {
	g := New()

	for _, company := range companies {
		g.AddNode(model.Node{
			ID:               company.ID,
			Type:             model.NodeCompany,
			Label:            company.Name,
			Address:          company.Address,
			Phone:            company.Phone,
			RegistrationDate: company.RegistrationDate.Format(time.DateOnly),
		})
	}

	for _, director := range directors {
		g.AddNode(model.Node{
			ID:    director.ID,
			Type:  model.NodeDirector,
			Label: director.Name,
		})
		for _, companyID := range director.CompanyIDs {
			g.AddEdge(model.Edge{
				Source: director.ID,
				Target: companyID,
				Type:   model.EdgeDirectorOf,
			})
		}
	}

	for _, official := range officials {
		g.AddNode(model.Node{
			ID:         official.ID,
			Type:       model.NodeOfficial,
			Label:      official.Name,
			Department: official.Department,
			Position:   official.Position,
		})
		// Family and business connections are flagged. Only persons in the
		// director registry are linked; other IDs (including officials) are
		// skipped so the result never depends on node insertion order.
		for personID, relation := range official.RelatedPersons {
			if _, ok := directors[personID]; !ok {
				continue
			}
			g.AddEdge(model.Edge{
				Source:     official.ID,
				Target:     personID,
				Type:       model.EdgeRelatedTo,
				Relation:   relation,
				Suspicious: true,
			})
		}
	}

	for _, tender := range tenders {
		g.AddNode(model.Node{
			ID:              tender.ID,
			Type:            model.NodeTender,
			Label:           displayTitle(tender.Title),
			FullTitle:       tender.Title,
			ProcuringEntity: tender.ProcuringEntity,
			Value:           tender.EstimatedValue,
			Status:          tender.Status,
			RiskLevel:       model.RiskLow,
		})
		if tender.ProcurementOfficerID != "" {
			g.AddEdge(model.Edge{
				Source: tender.ID,
				Target: tender.ProcurementOfficerID,
				Type:   model.EdgeAwardedBy,
			})
		}
	}

	for _, bid := range bids {
		tender, ok := tenders[bid.TenderID]
		if !ok {
			continue
		}
		edgeType := model.EdgeBidOn
		if tender.AwardedTo == bid.CompanyID {
			edgeType = model.EdgeWon
		}
		g.AddEdge(model.Edge{
			Source: bid.CompanyID,
			Target: bid.TenderID,
			Type:   edgeType,
			Amount: bid.Amount,
		})
	}

	addSharedAddressEdges(g, companies)
	addSharedPhoneEdges(g, companies)

	return g
}

// sortedCompanies gives the pairwise passes a stable iteration order.
func sortedCompanies(companies map[string]model.Company) []model.Company {
	list := make([]model.Company, 0, len(companies))
	for _, c := range companies {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// O(n^2) over companies; fine at the target scale of low hundreds.
func addSharedAddressEdges(g *Graph, companies map[string]model.Company) {
	list := sortedCompanies(companies)
	for i, a := range list {
		for _, b := range list[i+1:] {
			if AddressesSimilar(a.Address, b.Address) {
				g.AddEdge(model.Edge{
					Source:     a.ID,
					Target:     b.ID,
					Type:       model.EdgeSharesAddress,
					Suspicious: true,
				})
			}
		}
	}
}

func addSharedPhoneEdges(g *Graph, companies map[string]model.Company) {
	list := sortedCompanies(companies)
	for i, a := range list {
		for _, b := range list[i+1:] {
			if SamePhone(a.Phone, b.Phone) {
				g.AddEdge(model.Edge{
					Source:     a.ID,
					Target:     b.ID,
					Type:       model.EdgeSharesPhone,
					Suspicious: true,
				})
			}
		}
	}
}

func displayTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= displayTitleLimit {
		return title
	}
	return string(runes[:displayTitleLimit]) + "..."
}
