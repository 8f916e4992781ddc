// Package dataset holds a procurement data snapshot and the synthetic
// fixture used when no external source is configured.
package dataset

import "github.com/agenthands/sentinel/internal/core/model"

// Dataset is one immutable snapshot of the entity collections, organized
// for lookup by ID.
type Dataset struct {
	Companies map[string]model.Company
	Directors map[string]model.Director
	Officials map[string]model.PublicOfficial
	Tenders   map[string]model.Tender
	Bids      []model.Bid

	BidsByTender map[string][]model.Bid
}

// FromLists indexes entity lists into a Dataset.
func FromLists(
	companies []model.Company,
	directors []model.Director,
	officials []model.PublicOfficial,
	tenders []model.Tender,
	bids []model.Bid,
) *Dataset {
	ds := &Dataset{
		Companies:    make(map[string]model.Company, len(companies)),
		Directors:    make(map[string]model.Director, len(directors)),
		Officials:    make(map[string]model.PublicOfficial, len(officials)),
		Tenders:      make(map[string]model.Tender, len(tenders)),
		Bids:         bids,
		BidsByTender: make(map[string][]model.Bid),
	}
	for _, c := range companies {
		ds.Companies[c.ID] = c
	}
	for _, d := range directors {
		ds.Directors[d.ID] = d
	}
	for _, o := range officials {
		ds.Officials[o.ID] = o
	}
	for _, t := range tenders {
		ds.Tenders[t.ID] = t
	}
	for _, b := range bids {
		ds.BidsByTender[b.TenderID] = append(ds.BidsByTender[b.TenderID], b)
	}
	return ds
}
