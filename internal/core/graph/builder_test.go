package graph

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/sentinel/internal/core/model"
)

func buildFixture() *Graph {
	companies := map[string]model.Company{
		"comp-1": {
			ID: "comp-1", Name: "Alpha Ltd",
			RegistrationDate: time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC),
			Address:          "Plot 45, Industrial Area", Phone: "+254 20 555 0001",
			DirectorIDs: []string{"dir-1"},
		},
		"comp-2": {
			ID: "comp-2", Name: "Beta Ltd",
			RegistrationDate: time.Date(2018, 7, 22, 0, 0, 0, 0, time.UTC),
			Address:          "Plot 45B, Westlands", Phone: "+254 20 555 0001",
			DirectorIDs: []string{"dir-1"},
		},
		"comp-3": {
			ID: "comp-3", Name: "Gamma Ltd",
			RegistrationDate: time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
			Address:          "Mombasa Road", Phone: "+254 20 555 0003",
		},
	}
	directors := map[string]model.Director{
		"dir-1": {ID: "dir-1", Name: "Jane Doe", CompanyIDs: []string{"comp-1", "comp-2", "comp-missing"}},
	}
	officials := map[string]model.PublicOfficial{
		"off-1": {
			ID: "off-1", Name: "John Officer",
			Department: "Roads", Position: "Procurement Manager",
			RelatedPersons: map[string]model.RelationshipType{
				"dir-1":       model.RelSibling,
				"dir-unknown": model.RelSpouse,
			},
		},
	}
	tenders := map[string]model.Tender{
		"tender-1": {
			ID: "tender-1", Title: strings.Repeat("Road works ", 10),
			ProcuringEntity: "KURA", EstimatedValue: 1_000_000,
			Status: model.StatusAwarded, AwardedTo: "comp-1",
			ProcurementOfficerID: "off-1",
		},
		"tender-2": {
			ID: "tender-2", Title: "Short title",
			Status:               model.StatusOpen,
			ProcurementOfficerID: "off-missing",
		},
	}
	bids := []model.Bid{
		{ID: "bid-1", TenderID: "tender-1", CompanyID: "comp-1", Amount: 990_000},
		{ID: "bid-2", TenderID: "tender-1", CompanyID: "comp-2", Amount: 1_050_000},
		{ID: "bid-3", TenderID: "tender-missing", CompanyID: "comp-1", Amount: 10},
		{ID: "bid-4", TenderID: "tender-1", CompanyID: "comp-missing", Amount: 10},
	}

	return Build(companies, directors, officials, tenders, bids)
}

func TestBuild_Nodes(t *testing.T) {
	g := buildFixture()

	// 3 companies + 1 director + 1 official + 2 tenders
	assert.Equal(t, 7, g.NodeCount())

	company, ok := g.Node("comp-1")
	require.True(t, ok)
	assert.Equal(t, model.NodeCompany, company.Type)
	assert.Equal(t, "Alpha Ltd", company.Label)
	assert.Equal(t, "2019-03-15", company.RegistrationDate)

	official, ok := g.Node("off-1")
	require.True(t, ok)
	assert.Equal(t, model.NodeOfficial, official.Type)
	assert.Equal(t, "Procurement Manager", official.Position)
}

func TestBuild_TenderTitleTruncation(t *testing.T) {
	g := buildFixture()

	long, ok := g.Node("tender-1")
	require.True(t, ok)
	assert.Len(t, []rune(long.Label), 53) // 50 + "..."
	assert.True(t, strings.HasSuffix(long.Label, "..."))
	assert.Equal(t, strings.Repeat("Road works ", 10), long.FullTitle)

	short, ok := g.Node("tender-2")
	require.True(t, ok)
	assert.Equal(t, "Short title", short.Label)
}

func TestBuild_DirectorEdges(t *testing.T) {
	g := buildFixture()

	edge, ok := g.EdgeBetween("dir-1", "comp-1")
	require.True(t, ok)
	assert.Equal(t, model.EdgeDirectorOf, edge.Type)
	assert.False(t, edge.Suspicious)

	// Dangling company reference is skipped, not an error.
	_, ok = g.EdgeBetween("dir-1", "comp-missing")
	assert.False(t, ok)
}

func TestBuild_RelatedToEdges(t *testing.T) {
	g := buildFixture()

	edge, ok := g.EdgeBetween("off-1", "dir-1")
	require.True(t, ok)
	assert.Equal(t, model.EdgeRelatedTo, edge.Type)
	assert.True(t, edge.Suspicious)
	assert.Equal(t, model.RelSibling, edge.Relation)

	_, ok = g.EdgeBetween("off-1", "dir-unknown")
	assert.False(t, ok)
}

func TestBuild_RelatedToLinksDirectorsOnly(t *testing.T) {
	// Two officials naming each other as related persons. Officials are not
	// directors, so no edge may appear — on any build, regardless of map
	// iteration order.
	officials := map[string]model.PublicOfficial{
		"off-a": {
			ID: "off-a", Name: "A",
			RelatedPersons: map[string]model.RelationshipType{"off-b": model.RelBusinessPartner},
		},
		"off-b": {
			ID: "off-b", Name: "B",
			RelatedPersons: map[string]model.RelationshipType{"off-a": model.RelBusinessPartner},
		},
	}

	for i := 0; i < 100; i++ {
		g := Build(nil, nil, officials, nil, nil)
		_, ok := g.EdgeBetween("off-a", "off-b")
		require.False(t, ok, "run %d", i)
		require.Equal(t, 0, g.EdgeCount(), "run %d", i)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	first := buildFixture()
	for i := 0; i < 20; i++ {
		g := buildFixture()
		assert.Equal(t, first.NodeCount(), g.NodeCount())
		assert.Equal(t, first.EdgeCount(), g.EdgeCount())
		for _, e := range first.Edges() {
			got, ok := g.EdgeBetween(e.Source, e.Target)
			require.True(t, ok, "%s-%s", e.Source, e.Target)
			assert.Equal(t, e.Type, got.Type)
		}
	}
}

func TestBuild_BidEdges(t *testing.T) {
	g := buildFixture()

	// The awarded company's bid becomes a WON edge.
	won, ok := g.EdgeBetween("comp-1", "tender-1")
	require.True(t, ok)
	assert.Equal(t, model.EdgeWon, won.Type)
	assert.Equal(t, 990_000.0, won.Amount)

	bidOn, ok := g.EdgeBetween("comp-2", "tender-1")
	require.True(t, ok)
	assert.Equal(t, model.EdgeBidOn, bidOn.Type)

	// Bids referencing missing tenders or companies are skipped.
	_, ok = g.EdgeBetween("comp-1", "tender-missing")
	assert.False(t, ok)
	_, ok = g.EdgeBetween("comp-missing", "tender-1")
	assert.False(t, ok)
}

func TestBuild_AwardedByEdges(t *testing.T) {
	g := buildFixture()

	edge, ok := g.EdgeBetween("tender-1", "off-1")
	require.True(t, ok)
	assert.Equal(t, model.EdgeAwardedBy, edge.Type)

	_, ok = g.EdgeBetween("tender-2", "off-missing")
	assert.False(t, ok)
}

func TestBuild_SharedAddressAndPhone(t *testing.T) {
	g := buildFixture()

	// comp-1 and comp-2 share plot 45 and the same phone line. The phone
	// pass runs last, so the surviving edge between them is SHARES_PHONE;
	// either way it must be suspicious.
	edge, ok := g.EdgeBetween("comp-1", "comp-2")
	require.True(t, ok)
	assert.Equal(t, model.EdgeSharesPhone, edge.Type)
	assert.True(t, edge.Suspicious)

	_, ok = g.EdgeBetween("comp-1", "comp-3")
	assert.False(t, ok)
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	companies := map[string]model.Company{
		"comp-1": {ID: "comp-1", Name: "Alpha Ltd", Address: "Plot 1"},
	}
	Build(companies, nil, nil, nil, nil)
	assert.Equal(t, "Alpha Ltd", companies["comp-1"].Name)
	assert.Len(t, companies, 1)
}
