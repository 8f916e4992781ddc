package driver

import "github.com/agenthands/sentinel/internal/core/model"

// Node labels and relationship types are interpolated into the query
// templates; both come from closed enum maps, never from user input.

var nodeLabels = map[model.NodeType]string{
	model.NodeCompany:  "Company",
	model.NodeDirector: "Director",
	model.NodeOfficial: "Official",
	model.NodeTender:   "Tender",
}

var edgeRelationships = map[model.EdgeType]string{
	model.EdgeDirectorOf:    "DIRECTOR_OF",
	model.EdgeBidOn:         "BID_ON",
	model.EdgeWon:           "WON",
	model.EdgeAwardedBy:     "AWARDED_BY",
	model.EdgeRelatedTo:     "RELATED_TO",
	model.EdgeSharesAddress: "SHARES_ADDRESS",
	model.EdgeSharesPhone:   "SHARES_PHONE",
}

const (
	saveNodeQueryTemplate = `
		MERGE (n:%s {id: $id, snapshot_id: $snapshot_id})
		SET n.label = $label,
			n.risk_level = $risk_level,
			n.address = $address,
			n.phone = $phone,
			n.registration_date = $registration_date,
			n.department = $department,
			n.position = $position,
			n.full_title = $full_title,
			n.procuring_entity = $procuring_entity,
			n.value = $value,
			n.status = $status
		RETURN n.id AS id
	`

	saveEdgeQueryTemplate = `
		MATCH (source {id: $source_id, snapshot_id: $snapshot_id})
		MATCH (target {id: $target_id, snapshot_id: $snapshot_id})
		MERGE (source)-[e:%s]->(target)
		SET e.suspicious = $suspicious,
			e.amount = $amount,
			e.relation_type = $relation_type,
			e.snapshot_id = $snapshot_id
		RETURN e.suspicious AS suspicious
	`

	purgeSnapshotQuery = `
		MATCH (n {snapshot_id: $snapshot_id})
		DETACH DELETE n
	`
)
