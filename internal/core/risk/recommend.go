package risk

import (
	"strings"

	"github.com/agenthands/sentinel/internal/core/model"
)

const (
	lowRiskRecommendation = "No immediate action required. Routine monitoring recommended."

	recommendationSeparator = " • "
)

var factorRecommendations = map[model.RiskFactorType]string{
	model.FactorConflictOfInterest: "Request conflict of interest declarations from all parties",
	model.FactorCartelPattern:      "Review bidding patterns across related tenders",
	model.FactorShellCompany:       "Verify company credentials and track record",
	model.FactorPriceAnomaly:       "Conduct market price verification",
	model.FactorRushedTimeline:     "Review justification for expedited timeline",
}

var highRiskEscalations = []string{
	"Escalate to Internal Audit for immediate review",
	"Consider freezing payment pending investigation",
}

// GenerateRecommendation maps each present factor to its advisory sentence,
// deduplicated in first-seen order, with escalation steps appended for
// HIGH-category tenders.
func GenerateRecommendation(factors []model.RiskFactor, category model.RiskCategory) string {
	if category == model.RiskLow {
		return lowRiskRecommendation
	}

	var recommendations []string
	seen := make(map[string]bool)
	appendOnce := func(rec string) {
		if rec != "" && !seen[rec] {
			seen[rec] = true
			recommendations = append(recommendations, rec)
		}
	}

	for _, factor := range factors {
		appendOnce(factorRecommendations[factor.Type])
	}
	if category == model.RiskHigh {
		for _, rec := range highRiskEscalations {
			appendOnce(rec)
		}
	}

	return strings.Join(recommendations, recommendationSeparator)
}
