package cartel

import (
	"sort"

	"github.com/agenthands/sentinel/internal/core/model"
)

// Cluster is a set of company IDs suspected of coordinated bidding.
// Members are kept sorted.
type Cluster struct {
	Members []string
}

func (c Cluster) Size() int { return len(c.Members) }

func (c Cluster) Has(companyID string) bool {
	for _, id := range c.Members {
		if id == companyID {
			return true
		}
	}
	return false
}

// Detector finds groups of companies that consistently bid together.
// Two companies are linked once they co-appear as bidders on at least
// MinCoBids tenders; linked components of MinClusterSize or more are
// cartel candidates.
type Detector struct {
	MinCoBids      int
	MinClusterSize int
}

func NewDetector() *Detector {
	return &Detector{
		MinCoBids:      3,
		MinClusterSize: 3,
	}
}

func (d *Detector) Detect(bids []model.Bid) []Cluster {
	// Distinct bidder set per tender.
	tenderBidders := make(map[string]map[string]bool)
	for _, bid := range bids {
		if tenderBidders[bid.TenderID] == nil {
			tenderBidders[bid.TenderID] = make(map[string]bool)
		}
		tenderBidders[bid.TenderID][bid.CompanyID] = true
	}

	// Co-bid frequency per unordered company pair.
	type pair struct{ a, b string }
	coBidCounts := make(map[pair]int)
	for _, bidders := range tenderBidders {
		ids := make([]string, 0, len(bidders))
		for id := range bidders {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for i, a := range ids {
			for _, b := range ids[i+1:] {
				coBidCounts[pair{a, b}]++
			}
		}
	}

	// Auxiliary graph keeps only pairs at or above the threshold.
	adj := make(map[string][]string)
	for p, count := range coBidCounts {
		if count >= d.MinCoBids {
			adj[p.a] = append(adj[p.a], p.b)
			adj[p.b] = append(adj[p.b], p.a)
		}
	}

	// Connected components of the auxiliary graph.
	nodes := make([]string, 0, len(adj))
	for id := range adj {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)

	visited := make(map[string]bool)
	var clusters []Cluster
	for _, id := range nodes {
		if visited[id] {
			continue
		}
		var component []string
		d.dfs(id, adj, visited, &component)
		if len(component) >= d.MinClusterSize {
			sort.Strings(component)
			clusters = append(clusters, Cluster{Members: component})
		}
	}

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Members[0] < clusters[j].Members[0]
	})
	return clusters
}

func (d *Detector) dfs(u string, adj map[string][]string, visited map[string]bool, component *[]string) {
	visited[u] = true
	*component = append(*component, u)
	for _, v := range adj[u] {
		if !visited[v] {
			d.dfs(v, adj, visited, component)
		}
	}
}
