package model

type RiskCategory string

const (
	RiskHigh   RiskCategory = "HIGH"
	RiskMedium RiskCategory = "MEDIUM"
	RiskLow    RiskCategory = "LOW"
)

type RiskFactorType string

const (
	FactorConflictOfInterest RiskFactorType = "CONFLICT_OF_INTEREST"
	FactorCartelPattern      RiskFactorType = "CARTEL_PATTERN"
	FactorShellCompany       RiskFactorType = "SHELL_COMPANY"
	FactorPriceAnomaly       RiskFactorType = "PRICE_ANOMALY"
	FactorRushedTimeline     RiskFactorType = "RUSHED_TIMELINE"
)

// RiskFactor is one weighted, evidenced finding from a single detection rule.
type RiskFactor struct {
	Type             RiskFactorType `json:"type"`
	Description      string         `json:"description"`
	Weight           int            `json:"weight"`
	Evidence         []string       `json:"evidence"`
	RelatedEntityIDs []string       `json:"related_entity_ids"`
}

// RiskScore is the capped, categorized sum of a tender's risk factors.
// Overall is always in [0, 100].
type RiskScore struct {
	Overall        int          `json:"overall"`
	Category       RiskCategory `json:"category"`
	Factors        []RiskFactor `json:"factors"`
	Recommendation string       `json:"recommendation,omitempty"`
}

// TenderWithRisk is the listing row served by the API.
type TenderWithRisk struct {
	Tender      Tender    `json:"tender"`
	Risk        RiskScore `json:"risk"`
	BidderCount int       `json:"bidder_count"`
}

// TenderDetail is the full per-tender view including bids.
type TenderDetail struct {
	Tender         Tender    `json:"tender"`
	Risk           RiskScore `json:"risk"`
	Bids           []Bid     `json:"bids"`
	WinningCompany *Company  `json:"winning_company,omitempty"`
}

type DashboardStats struct {
	TotalTenders    int     `json:"total_tenders"`
	HighRiskCount   int     `json:"high_risk_count"`
	MediumRiskCount int     `json:"medium_risk_count"`
	LowRiskCount    int     `json:"low_risk_count"`
	PendingReview   int     `json:"pending_review"`
	TotalValue      float64 `json:"total_value"`
	FlaggedToday    int     `json:"flagged_today"`
}
