package risk

import (
	"fmt"
	"strings"
	"time"

	"github.com/agenthands/sentinel/internal/core/cartel"
	"github.com/agenthands/sentinel/internal/core/graph"
	"github.com/agenthands/sentinel/internal/core/model"
)

// Weights holds the full contribution of each factor type to the overall
// score. The indirect-conflict and "young but not brand new" shell weights
// are fixed reductions, not derived.
var Weights = map[model.RiskFactorType]int{
	model.FactorConflictOfInterest: 30,
	model.FactorCartelPattern:      25,
	model.FactorShellCompany:       20,
	model.FactorPriceAnomaly:       15,
	model.FactorRushedTimeline:     10,
}

const (
	indirectConflictWeight = 20
	maxIndirectPathHops    = 3

	shellAgeSevereDays  = 30
	shellAgeNotableDays = 90

	priceRatioThreshold = 1.5

	rushedWindowSevereDays  = 5
	rushedWindowNotableDays = 7

	minCartelOverlap = 3
)

// CheckConflictOfInterest looks for a connection between the winning
// vendor and the procurement officer: first a direct entry in the
// official's related-persons map, then an indirect relationship path of at
// most three hops.
func CheckConflictOfInterest(
	tender model.Tender,
	winner *model.Company,
	directors map[string]model.Director,
	officials map[string]model.PublicOfficial,
	g *graph.Graph,
) (model.RiskFactor, bool) {
	if winner == nil || tender.ProcurementOfficerID == "" {
		return model.RiskFactor{}, false
	}
	official, ok := officials[tender.ProcurementOfficerID]
	if !ok {
		return model.RiskFactor{}, false
	}

	for _, directorID := range winner.DirectorIDs {
		relation, related := official.RelatedPersons[directorID]
		if !related {
			continue
		}
		directorName := directorID
		if director, ok := directors[directorID]; ok {
			directorName = director.Name
		}
		return model.RiskFactor{
			Type: model.FactorConflictOfInterest,
			Description: fmt.Sprintf("Winning vendor's director %s is %s of Procurement Officer %s",
				directorName, relationLabel(relation), official.Name),
			Weight: Weights[model.FactorConflictOfInterest],
			Evidence: []string{
				fmt.Sprintf("Director: %s", directorName),
				fmt.Sprintf("Official: %s (%s)", official.Name, official.Position),
				fmt.Sprintf("Relationship: %s", relation),
				fmt.Sprintf("Department: %s", official.Department),
			},
			RelatedEntityIDs: []string{directorID, official.ID, winner.ID},
		}, true
	}

	path, found := graph.ShortestPath(g, winner.ID, tender.ProcurementOfficerID)
	if found && len(path) <= maxIndirectPathHops+1 {
		labels := make([]string, len(path))
		for i, nodeID := range path {
			labels[i] = nodeID
			if node, ok := g.Node(nodeID); ok {
				labels[i] = node.Label
			}
		}
		return model.RiskFactor{
			Type:        model.FactorConflictOfInterest,
			Description: "Connection path found between winner and procurement officer",
			Weight:      indirectConflictWeight,
			Evidence: []string{
				fmt.Sprintf("Path: %s", strings.Join(labels, " -> ")),
				fmt.Sprintf("Path length: %d connections", len(path)-1),
			},
			RelatedEntityIDs: path,
		}, true
	}

	return model.RiskFactor{}, false
}

// CheckCartelPattern reports when at least three members of one cartel
// cluster bid on the tender. The first qualifying cluster wins; clusters
// are neither merged nor ranked.
func CheckCartelPattern(
	tender model.Tender,
	tenderBids []model.Bid,
	companies map[string]model.Company,
	clusters []cartel.Cluster,
) (model.RiskFactor, bool) {
	bidders := make(map[string]bool, len(tenderBids))
	for _, bid := range tenderBids {
		bidders[bid.CompanyID] = true
	}

	for _, cluster := range clusters {
		var overlap []string
		for _, id := range cluster.Members {
			if bidders[id] {
				overlap = append(overlap, id)
			}
		}
		if len(overlap) < minCartelOverlap {
			continue
		}

		var names []string
		for _, id := range overlap {
			if company, ok := companies[id]; ok {
				names = append(names, company.Name)
			}
		}
		return model.RiskFactor{
			Type: model.FactorCartelPattern,
			Description: fmt.Sprintf("Suspected bidding cartel: %d companies that consistently bid together are present in this tender",
				len(overlap)),
			Weight: Weights[model.FactorCartelPattern],
			Evidence: []string{
				fmt.Sprintf("Cartel members in this tender: %s", strings.Join(names, ", ")),
				fmt.Sprintf("Total cartel size: %d companies", cluster.Size()),
				"Pattern: These companies consistently bid on the same tenders",
			},
			RelatedEntityIDs: overlap,
		}, true
	}

	return model.RiskFactor{}, false
}

// CheckShellCompany flags winners registered shortly before the tender
// deadline. Under 30 days is severe; 30 to 89 days carries half weight.
func CheckShellCompany(tender model.Tender, winner *model.Company) (model.RiskFactor, bool) {
	if winner == nil || winner.RegistrationDate.IsZero() {
		return model.RiskFactor{}, false
	}

	ageDays := daysBetween(winner.RegistrationDate, tender.Deadline)
	if ageDays >= shellAgeNotableDays {
		return model.RiskFactor{}, false
	}

	weight := Weights[model.FactorShellCompany]
	evidence := []string{
		fmt.Sprintf("Company: %s", winner.Name),
		fmt.Sprintf("Registration date: %s", winner.RegistrationDate.Format(time.DateOnly)),
		fmt.Sprintf("Tender deadline: %s", tender.Deadline.Format(time.DateOnly)),
		fmt.Sprintf("Company age at deadline: %d days", ageDays),
	}
	if ageDays < shellAgeSevereDays {
		if tender.AwardedAmount > 0 {
			evidence = append(evidence, fmt.Sprintf("Contract value: KES %s", formatKES(tender.AwardedAmount)))
		}
	} else {
		weight = Weights[model.FactorShellCompany] / 2
	}

	return model.RiskFactor{
		Type: model.FactorShellCompany,
		Description: fmt.Sprintf("Winning company registered only %d days before tender deadline",
			ageDays),
		Weight:           weight,
		Evidence:         evidence,
		RelatedEntityIDs: []string{winner.ID},
	}, true
}

// CheckPriceAnomaly flags awards above 150% of the estimated value. When
// other awarded tenders exist in the same category, the category average
// is attached as context only; it never changes the weight.
func CheckPriceAnomaly(tender model.Tender, allTenders map[string]model.Tender) (model.RiskFactor, bool) {
	if tender.AwardedAmount == 0 || tender.EstimatedValue == 0 {
		return model.RiskFactor{}, false
	}

	ratio := tender.AwardedAmount / tender.EstimatedValue
	if ratio <= priceRatioThreshold {
		return model.RiskFactor{}, false
	}
	percentage := int((ratio - 1) * 100)

	evidence := []string{
		fmt.Sprintf("Awarded amount: KES %s", formatKES(tender.AwardedAmount)),
		fmt.Sprintf("Estimated value: KES %s", formatKES(tender.EstimatedValue)),
		fmt.Sprintf("Deviation: %d%% above estimate", percentage),
	}

	var comparable []model.Tender
	for _, other := range allTenders {
		if other.ID == tender.ID || other.Category != tender.Category {
			continue
		}
		if other.Status == model.StatusAwarded && other.AwardedAmount > 0 {
			comparable = append(comparable, other)
		}
	}
	if len(comparable) > 0 {
		var total float64
		for _, other := range comparable {
			total += other.AwardedAmount
		}
		average := total / float64(len(comparable))
		evidence = append(evidence, fmt.Sprintf("Category average: KES %s", formatKES(average)))
	}

	return model.RiskFactor{
		Type:             model.FactorPriceAnomaly,
		Description:      fmt.Sprintf("Contract awarded at %d%% above estimated value", percentage),
		Weight:           Weights[model.FactorPriceAnomaly],
		Evidence:         evidence,
		RelatedEntityIDs: []string{tender.ID},
	}, true
}

// CheckRushedTimeline flags short submission windows: five days or fewer
// is severe, six or seven days carries half weight.
func CheckRushedTimeline(tender model.Tender) (model.RiskFactor, bool) {
	window := daysBetween(tender.PublishedDate, tender.Deadline)
	if window > rushedWindowNotableDays {
		return model.RiskFactor{}, false
	}

	if window <= rushedWindowSevereDays {
		return model.RiskFactor{
			Type:        model.FactorRushedTimeline,
			Description: fmt.Sprintf("Tender had only %d-day submission window", window),
			Weight:      Weights[model.FactorRushedTimeline],
			Evidence: []string{
				fmt.Sprintf("Published: %s", tender.PublishedDate.Format(time.DateOnly)),
				fmt.Sprintf("Deadline: %s", tender.Deadline.Format(time.DateOnly)),
				fmt.Sprintf("Window: %d days", window),
				"Standard window should be 14-21 days for competitive bidding",
			},
			RelatedEntityIDs: []string{tender.ID},
		}, true
	}

	return model.RiskFactor{
		Type:        model.FactorRushedTimeline,
		Description: fmt.Sprintf("Tender had short %d-day submission window", window),
		Weight:      Weights[model.FactorRushedTimeline] / 2,
		Evidence: []string{
			fmt.Sprintf("Published: %s", tender.PublishedDate.Format(time.DateOnly)),
			fmt.Sprintf("Deadline: %s", tender.Deadline.Format(time.DateOnly)),
			fmt.Sprintf("Window: %d days", window),
		},
		RelatedEntityIDs: []string{tender.ID},
	}, true
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func relationLabel(relation model.RelationshipType) string {
	return strings.ToLower(strings.ReplaceAll(string(relation), "_", " "))
}

// formatKES renders an amount with thousands separators and no decimals.
func formatKES(amount float64) string {
	digits := fmt.Sprintf("%.0f", amount)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	var sb strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	if negative {
		return "-" + sb.String()
	}
	return sb.String()
}
