package model

type NodeType string

const (
	NodeCompany  NodeType = "COMPANY"
	NodeDirector NodeType = "DIRECTOR"
	NodeOfficial NodeType = "OFFICIAL"
	NodeTender   NodeType = "TENDER"
)

type EdgeType string

const (
	EdgeDirectorOf    EdgeType = "DIRECTOR_OF"
	EdgeBidOn         EdgeType = "BID_ON"
	EdgeWon           EdgeType = "WON"
	EdgeAwardedBy     EdgeType = "AWARDED_BY"
	EdgeRelatedTo     EdgeType = "RELATED_TO"
	EdgeSharesAddress EdgeType = "SHARES_ADDRESS"
	EdgeSharesPhone   EdgeType = "SHARES_PHONE"
)

// Node is a typed graph node. Only the fields relevant to the node's Type
// are populated; Type is the discriminant.
type Node struct {
	ID    string   `json:"id"`
	Type  NodeType `json:"type"`
	Label string   `json:"label"`

	// Company fields
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phone,omitempty"`
	RegistrationDate string `json:"registration_date,omitempty"`

	// Official fields
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`

	// Tender fields
	FullTitle       string       `json:"full_title,omitempty"`
	ProcuringEntity string       `json:"procuring_entity,omitempty"`
	Value           float64      `json:"value,omitempty"`
	Status          TenderStatus `json:"status,omitempty"`
	RiskLevel       RiskCategory `json:"risk_level,omitempty"`
}

// Edge is an undirected relationship between two nodes. Amount is set for
// BID_ON/WON edges, Relation for RELATED_TO edges.
type Edge struct {
	Source     string           `json:"source"`
	Target     string           `json:"target"`
	Type       EdgeType         `json:"relationship"`
	Suspicious bool             `json:"suspicious"`
	Amount     float64          `json:"amount,omitempty"`
	Relation   RelationshipType `json:"relation_type,omitempty"`
}

// GraphNode and GraphEdge are the projection served to graph-view clients.
type GraphNode struct {
	ID        string                 `json:"id"`
	Type      NodeType               `json:"type"`
	Label     string                 `json:"label"`
	RiskLevel RiskCategory           `json:"risk_level,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type GraphEdge struct {
	ID           string   `json:"id"`
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	Relationship EdgeType `json:"relationship"`
	Suspicious   bool     `json:"suspicious"`
	Label        string   `json:"label,omitempty"`
}

type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
