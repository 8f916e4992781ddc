package model

import "time"

type TenderStatus string

const (
	StatusOpen       TenderStatus = "OPEN"
	StatusEvaluation TenderStatus = "EVALUATION"
	StatusAwarded    TenderStatus = "AWARDED"
	StatusCancelled  TenderStatus = "CANCELLED"
)

type RelationshipType string

const (
	RelSibling         RelationshipType = "SIBLING"
	RelSpouse          RelationshipType = "SPOUSE"
	RelParentChild     RelationshipType = "PARENT_CHILD"
	RelBusinessPartner RelationshipType = "BUSINESS_PARTNER"
)

type Company struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registration_number"`
	RegistrationDate   time.Time `json:"registration_date"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	DirectorIDs        []string  `json:"director_ids"`
}

type Director struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	NationalID string   `json:"national_id,omitempty"`
	CompanyIDs []string `json:"company_ids"`
}

// RelatedPersons maps a person (director) ID to the kind of relationship
// the official has with them.
type PublicOfficial struct {
	ID             string                      `json:"id"`
	Name           string                      `json:"name"`
	Department     string                      `json:"department"`
	Position       string                      `json:"position"`
	RelatedPersons map[string]RelationshipType `json:"related_persons"`
}

// AwardedTo, AwardedAmount and ProcurementOfficerID are only set once a
// tender has been awarded; the zero values mean "not present".
type Tender struct {
	ID                   string       `json:"id"`
	ReferenceNumber      string       `json:"reference_number"`
	Title                string       `json:"title"`
	Description          string       `json:"description"`
	ProcuringEntity      string       `json:"procuring_entity"`
	Category             string       `json:"category"`
	EstimatedValue       float64      `json:"estimated_value"`
	PublishedDate        time.Time    `json:"published_date"`
	Deadline             time.Time    `json:"deadline"`
	Status               TenderStatus `json:"status"`
	AwardedTo            string       `json:"awarded_to,omitempty"`
	AwardedAmount        float64      `json:"awarded_amount,omitempty"`
	ProcurementOfficerID string       `json:"procurement_officer_id,omitempty"`
}

type Bid struct {
	ID             string    `json:"id"`
	TenderID       string    `json:"tender_id"`
	CompanyID      string    `json:"company_id"`
	Amount         float64   `json:"amount"`
	SubmissionDate time.Time `json:"submission_date"`
	TechnicalScore float64   `json:"technical_score,omitempty"`
}
