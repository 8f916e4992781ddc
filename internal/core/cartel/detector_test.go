package cartel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/sentinel/internal/core/model"
)

// coBids generates n tenders on which every listed company bids.
func coBids(n int, companies ...string) []model.Bid {
	var bids []model.Bid
	for i := 0; i < n; i++ {
		tenderID := fmt.Sprintf("tender-%s-%d", companies[0], i)
		for _, companyID := range companies {
			bids = append(bids, model.Bid{
				ID:        fmt.Sprintf("bid-%s-%s", tenderID, companyID),
				TenderID:  tenderID,
				CompanyID: companyID,
			})
		}
	}
	return bids
}

func TestDetect_ThresholdIsExact(t *testing.T) {
	d := NewDetector()

	// One co-bid short of the threshold: no cluster.
	below := coBids(d.MinCoBids-1, "x", "y", "z")
	assert.Empty(t, d.Detect(below))

	// Exactly at the threshold: one cluster.
	at := coBids(d.MinCoBids, "x", "y", "z")
	clusters := d.Detect(at)
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"x", "y", "z"}, clusters[0].Members)
}

func TestDetect_SmallComponentsExcluded(t *testing.T) {
	d := NewDetector()

	// Two companies co-bid heavily, but a pair is below MinClusterSize.
	bids := coBids(10, "x", "y")
	assert.Empty(t, d.Detect(bids))
}

func TestDetect_DuplicateBidsCountOnce(t *testing.T) {
	d := NewDetector()

	// Each company bids twice on the same tenders; the per-tender bidder
	// set is deduplicated, so the pair count stays below the threshold.
	bids := coBids(d.MinCoBids-1, "x", "y", "z")
	bids = append(bids, coBids(d.MinCoBids-1, "x", "y", "z")...)
	assert.Empty(t, d.Detect(bids))
}

func TestDetect_TransitiveLinksMerge(t *testing.T) {
	d := NewDetector()

	// a-b and b-c each pass the threshold; a and c never co-bid but land
	// in the same component.
	bids := coBids(3, "a", "b")
	bids = append(bids, coBids(3, "b", "c")...)

	clusters := d.Detect(bids)
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"a", "b", "c"}, clusters[0].Members)
}

func TestDetect_MultipleClustersSorted(t *testing.T) {
	d := NewDetector()

	bids := coBids(4, "n1", "n2", "n3")
	bids = append(bids, coBids(4, "a1", "a2", "a3", "a4")...)

	clusters := d.Detect(bids)
	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, clusters[0].Members)
	assert.Equal(t, []string{"n1", "n2", "n3"}, clusters[1].Members)
}

func TestDetect_NoBids(t *testing.T) {
	assert.Empty(t, NewDetector().Detect(nil))
}

func TestCluster_Has(t *testing.T) {
	c := Cluster{Members: []string{"a", "b"}}
	assert.True(t, c.Has("a"))
	assert.False(t, c.Has("z"))
	assert.Equal(t, 2, c.Size())
}

func TestDetect_CustomThresholds(t *testing.T) {
	d := &Detector{MinCoBids: 5, MinClusterSize: 2}

	bids := coBids(5, "x", "y")
	clusters := d.Detect(bids)
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"x", "y"}, clusters[0].Members)

	assert.Empty(t, d.Detect(coBids(4, "x", "y")))
}
