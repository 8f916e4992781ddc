package dataset

import (
	"time"

	"github.com/agenthands/sentinel/internal/core/model"
)

// Synthetic returns the deterministic demo dataset with the embedded fraud
// patterns:
//
//  1. Wanjiku Construction cartel: four companies bidding together and
//     rotating wins, with shared plot addresses and a shared phone.
//  2. Shell company: FastTrack Solutions registered 4 days before winning.
//  3. Conflict of interest: a HealthFirst director is the brother of the
//     KEMSA procurement officer.
//  4. Price inflation: pharmaceuticals awarded at 180% of the estimate.
//  5. Rushed timelines: 4- and 5-day submission windows.
func Synthetic() *Dataset {
	directors := []model.Director{
		// Cartel directors; Peter Wanjiku and Samuel Ochieng each sit on
		// two cartel companies, tying the group together.
		{ID: "dir-001", Name: "Peter Wanjiku Kamau", CompanyIDs: []string{"comp-001", "comp-002"}},
		{ID: "dir-002", Name: "Grace Njeri Wanjiku", CompanyIDs: []string{"comp-001"}},
		{ID: "dir-003", Name: "Samuel Ochieng Otieno", CompanyIDs: []string{"comp-002", "comp-003"}},
		{ID: "dir-004", Name: "Mary Akinyi Ouma", CompanyIDs: []string{"comp-003"}},
		{ID: "dir-005", Name: "David Kipchoge Ruto", CompanyIDs: []string{"comp-004"}},
		{ID: "dir-006", Name: "Elizabeth Wambui Kariuki", CompanyIDs: []string{"comp-004"}},

		{ID: "dir-007", Name: "Michael Otieno Odhiambo", CompanyIDs: []string{"comp-005"}},

		// John Kamau Mwangi is the brother of official off-001.
		{ID: "dir-008", Name: "John Kamau Mwangi", CompanyIDs: []string{"comp-006"}},
		{ID: "dir-009", Name: "Anne Wanjiru Mwangi", CompanyIDs: []string{"comp-006"}},

		{ID: "dir-010", Name: "Francis Mutua Kilonzo", CompanyIDs: []string{"comp-007"}},
		{ID: "dir-011", Name: "Catherine Nyambura Gitau", CompanyIDs: []string{"comp-008"}},
		{ID: "dir-012", Name: "Patrick Kiprotich Korir", CompanyIDs: []string{"comp-009"}},
		{ID: "dir-013", Name: "Susan Adhiambo Achieng", CompanyIDs: []string{"comp-010"}},
		{ID: "dir-014", Name: "Joseph Mwenda Nthiga", CompanyIDs: []string{"comp-011"}},
		{ID: "dir-015", Name: "Margaret Wairimu Ndung'u", CompanyIDs: []string{"comp-012"}},
	}

	officials := []model.PublicOfficial{
		{
			ID:             "off-001",
			Name:           "James Mwangi Kamau",
			Department:     "Kenya Medical Supplies Authority",
			Position:       "Chief Procurement Officer",
			RelatedPersons: map[string]model.RelationshipType{"dir-008": model.RelSibling},
		},
		{
			ID:         "off-002",
			Name:       "Alice Chebet Kiptoo",
			Department: "Kenya Rural Roads Authority",
			Position:   "Procurement Manager",
		},
		{
			ID:         "off-003",
			Name:       "Robert Omondi Onyango",
			Department: "Ministry of Health",
			Position:   "Senior Procurement Officer",
		},
		{
			ID:         "off-004",
			Name:       "Janet Wangui Muturi",
			Department: "Kenya Power and Lighting Company",
			Position:   "Head of Procurement",
		},
		{
			ID:         "off-005",
			Name:       "Daniel Rotich Kibet",
			Department: "Nakuru County Government",
			Position:   "County Procurement Director",
		},
	}

	companies := []model.Company{
		{
			ID: "comp-001", Name: "Wanjiku Construction Ltd",
			RegistrationNumber: "PVT-2019-045678", RegistrationDate: date(2019, 3, 15),
			Address: "Plot 45, Industrial Area, Nairobi", Phone: "+254 20 555 0001",
			DirectorIDs: []string{"dir-001", "dir-002"},
		},
		{
			ID: "comp-002", Name: "Mwamba Developers Co.",
			RegistrationNumber: "PVT-2018-034521", RegistrationDate: date(2018, 7, 22),
			Address: "Plot 45A, Industrial Area, Nairobi", Phone: "+254 20 555 0002",
			DirectorIDs: []string{"dir-001", "dir-003"},
		},
		{
			ID: "comp-003", Name: "Safari Contractors Ltd",
			RegistrationNumber: "PVT-2020-067890", RegistrationDate: date(2020, 1, 10),
			Address: "Plot 47, Industrial Area, Nairobi", Phone: "+254 20 555 0003",
			DirectorIDs: []string{"dir-003", "dir-004"},
		},
		{
			// Shares plot 45 with comp-001/comp-002 and the phone line of comp-001.
			ID: "comp-004", Name: "Eastlands Builders Ltd",
			RegistrationNumber: "PVT-2017-012345", RegistrationDate: date(2017, 11, 5),
			Address: "Plot 45B, Industrial Area, Nairobi", Phone: "+254 20 555 0001",
			DirectorIDs: []string{"dir-005", "dir-006"},
		},
		{
			// Registered 4 days before winning tender-002.
			ID: "comp-005", Name: "FastTrack Solutions Ltd",
			RegistrationNumber: "PVT-2026-000123", RegistrationDate: date(2026, 1, 11),
			Address: "Virtual Office, Westlands, Nairobi", Phone: "+254 700 123 456",
			DirectorIDs: []string{"dir-007"},
		},
		{
			ID: "comp-006", Name: "HealthFirst Medical Supplies Ltd",
			RegistrationNumber: "PVT-2021-078901", RegistrationDate: date(2021, 5, 18),
			Address: "Likoni Road, Industrial Area, Nairobi", Phone: "+254 20 444 5678",
			DirectorIDs: []string{"dir-008", "dir-009"},
		},
		{
			ID: "comp-007", Name: "Kilonzo Office Supplies",
			RegistrationNumber: "PVT-2015-023456", RegistrationDate: date(2015, 8, 12),
			Address: "Mombasa Road, Nairobi", Phone: "+254 20 333 4567",
			DirectorIDs: []string{"dir-010"},
		},
		{
			ID: "comp-008", Name: "Gitau Medical Equipment Ltd",
			RegistrationNumber: "PVT-2016-034567", RegistrationDate: date(2016, 2, 28),
			Address: "Upper Hill, Nairobi", Phone: "+254 20 222 3456",
			DirectorIDs: []string{"dir-011"},
		},
		{
			ID: "comp-009", Name: "Korir Road Construction Co.",
			RegistrationNumber: "PVT-2014-045678", RegistrationDate: date(2014, 6, 15),
			Address: "Eldoret Town, Uasin Gishu", Phone: "+254 53 206 1234",
			DirectorIDs: []string{"dir-012"},
		},
		{
			ID: "comp-010", Name: "Achieng IT Solutions",
			RegistrationNumber: "PVT-2019-056789", RegistrationDate: date(2019, 9, 3),
			Address: "Kisumu CBD, Kisumu", Phone: "+254 57 202 5678",
			DirectorIDs: []string{"dir-013"},
		},
		{
			ID: "comp-011", Name: "Nthiga Security Services",
			RegistrationNumber: "PVT-2018-067890", RegistrationDate: date(2018, 4, 20),
			Address: "Meru Town, Meru", Phone: "+254 64 203 1234",
			DirectorIDs: []string{"dir-014"},
		},
		{
			ID: "comp-012", Name: "Ndung'u Pharmaceuticals Ltd",
			RegistrationNumber: "PVT-2012-078901", RegistrationDate: date(2012, 11, 8),
			Address: "Thika Road, Nairobi", Phone: "+254 20 876 5432",
			DirectorIDs: []string{"dir-015"},
		},
	}

	tenders := []model.Tender{
		{
			ID: "tender-001", ReferenceNumber: "KURA/NCB/2026/001",
			Title:           "Construction of Nairobi-Nakuru Highway Section B",
			Description:     "Construction and maintenance of 25km highway section including drainage and signage",
			ProcuringEntity: "Kenya Rural Roads Authority", Category: "Road Construction",
			EstimatedValue: 450_000_000,
			PublishedDate:  date(2026, 1, 2), Deadline: date(2026, 1, 16),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-001", AwardedAmount: 445_000_000,
			ProcurementOfficerID: "off-002",
		},
		{
			// Shell company win with a 5-day window.
			ID: "tender-002", ReferenceNumber: "KPLC/IT/2026/002",
			Title:           "Enterprise IT Infrastructure Modernization",
			Description:     "Supply and installation of data center equipment and network infrastructure",
			ProcuringEntity: "Kenya Power and Lighting Company", Category: "Information Technology",
			EstimatedValue: 78_000_000,
			PublishedDate:  date(2026, 1, 10), Deadline: date(2026, 1, 15),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-005", AwardedAmount: 78_000_000,
			ProcurementOfficerID: "off-004",
		},
		{
			// Winner's director is the officer's brother.
			ID: "tender-003", ReferenceNumber: "KEMSA/MED/2026/003",
			Title:           "Supply of Essential Medical Equipment",
			Description:     "Supply of diagnostic equipment, patient monitors, and surgical instruments to Level 5 hospitals",
			ProcuringEntity: "Kenya Medical Supplies Authority", Category: "Medical Supplies",
			EstimatedValue: 120_000_000,
			PublishedDate:  date(2026, 1, 5), Deadline: date(2026, 1, 19),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-006", AwardedAmount: 118_500_000,
			ProcurementOfficerID: "off-001",
		},
		{
			ID: "tender-004", ReferenceNumber: "NCG/ROADS/2026/004",
			Title:           "Nakuru Town Roads Rehabilitation",
			Description:     "Rehabilitation of 15km urban roads including footpaths and street lighting",
			ProcuringEntity: "Nakuru County Government", Category: "Road Construction",
			EstimatedValue: 85_000_000,
			PublishedDate:  date(2026, 1, 3), Deadline: date(2026, 1, 17),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-003", AwardedAmount: 82_000_000,
			ProcurementOfficerID: "off-005",
		},
		{
			// Awarded at 180% of the estimate.
			ID: "tender-005", ReferenceNumber: "MOH/SUPP/2026/005",
			Title:           "Supply of Pharmaceutical Products Q1 2026",
			Description:     "Supply of essential medicines and pharmaceutical products to public health facilities",
			ProcuringEntity: "Ministry of Health", Category: "Medical Supplies",
			EstimatedValue: 45_000_000,
			PublishedDate:  date(2026, 1, 8), Deadline: date(2026, 1, 22),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-006", AwardedAmount: 81_000_000,
			ProcurementOfficerID: "off-003",
		},
		{
			ID: "tender-006", ReferenceNumber: "MOH/EQUIP/2026/006",
			Title:           "Office Equipment and Furniture Supply",
			Description:     "Supply of office furniture, computers, and equipment for new MoH annexe",
			ProcuringEntity: "Ministry of Health", Category: "Office Supplies",
			EstimatedValue: 8_500_000,
			PublishedDate:  date(2026, 1, 4), Deadline: date(2026, 1, 25),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-007", AwardedAmount: 8_200_000,
			ProcurementOfficerID: "off-003",
		},
		{
			ID: "tender-007", ReferenceNumber: "UG/ROADS/2026/007",
			Title:           "Eldoret-Iten Road Maintenance",
			Description:     "Routine maintenance and pothole repair for 40km section",
			ProcuringEntity: "Kenya Rural Roads Authority", Category: "Road Construction",
			EstimatedValue: 25_000_000,
			PublishedDate:  date(2026, 1, 6), Deadline: date(2026, 1, 27),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-009", AwardedAmount: 24_500_000,
			ProcurementOfficerID: "off-002",
		},
		{
			ID: "tender-008", ReferenceNumber: "KURA/NCB/2026/008",
			Title:           "Mombasa Road Expansion Project Phase 1",
			Description:     "Expansion of Mombasa Road from 4 to 6 lanes, 10km section",
			ProcuringEntity: "Kenya Rural Roads Authority", Category: "Road Construction",
			EstimatedValue: 320_000_000,
			PublishedDate:  date(2026, 1, 7), Deadline: date(2026, 1, 21),
			Status:               model.StatusEvaluation,
			ProcurementOfficerID: "off-002",
		},
		{
			ID: "tender-009", ReferenceNumber: "KIS/IT/2026/009",
			Title:           "Kisumu County Digital Services Platform",
			Description:     "Development and deployment of e-government platform for county services",
			ProcuringEntity: "Kisumu County Government", Category: "Information Technology",
			EstimatedValue: 35_000_000,
			PublishedDate:  date(2026, 1, 10), Deadline: date(2026, 1, 31),
			Status: model.StatusOpen,
		},
		{
			ID: "tender-010", ReferenceNumber: "KEMSA/MED/2026/010",
			Title:           "Supply of Laboratory Reagents",
			Description:     "Supply of laboratory reagents and consumables to national reference laboratories",
			ProcuringEntity: "Kenya Medical Supplies Authority", Category: "Medical Supplies",
			EstimatedValue: 28_000_000,
			PublishedDate:  date(2026, 1, 9), Deadline: date(2026, 1, 30),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-012", AwardedAmount: 27_200_000,
			ProcurementOfficerID: "off-001",
		},
		{
			ID: "tender-011", ReferenceNumber: "NCG/BUILD/2026/011",
			Title:           "Construction of Nakuru Level 4 Hospital Extension",
			Description:     "Construction of new wing including emergency unit and ICU facilities",
			ProcuringEntity: "Nakuru County Government", Category: "Building Construction",
			EstimatedValue: 180_000_000,
			PublishedDate:  date(2026, 1, 8), Deadline: date(2026, 1, 22),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-002", AwardedAmount: 175_000_000,
			ProcurementOfficerID: "off-005",
		},
		{
			ID: "tender-012", ReferenceNumber: "MOH/SEC/2026/012",
			Title:           "Security Services for MoH Facilities",
			Description:     "Provision of security guard services for Ministry headquarters and regional offices",
			ProcuringEntity: "Ministry of Health", Category: "Security Services",
			EstimatedValue: 12_000_000,
			PublishedDate:  date(2026, 1, 11), Deadline: date(2026, 2, 1),
			Status:               model.StatusOpen,
			ProcurementOfficerID: "off-003",
		},
		{
			ID: "tender-013", ReferenceNumber: "KPLC/IT/2026/013",
			Title:           "Annual IT Support and Maintenance",
			Description:     "Provision of IT support services for Kenya Power regional offices",
			ProcuringEntity: "Kenya Power and Lighting Company", Category: "Information Technology",
			EstimatedValue: 18_000_000,
			PublishedDate:  date(2026, 1, 12), Deadline: date(2026, 2, 5),
			Status:               model.StatusOpen,
			ProcurementOfficerID: "off-004",
		},
		{
			// 4-day emergency window.
			ID: "tender-014", ReferenceNumber: "KEMSA/EMG/2026/014",
			Title:           "Emergency Medical Supplies Procurement",
			Description:     "Emergency procurement of PPE and medical consumables",
			ProcuringEntity: "Kenya Medical Supplies Authority", Category: "Medical Supplies",
			EstimatedValue: 55_000_000,
			PublishedDate:  date(2026, 1, 14), Deadline: date(2026, 1, 18),
			Status:               model.StatusEvaluation,
			ProcurementOfficerID: "off-001",
		},
		{
			ID: "tender-015", ReferenceNumber: "KURA/NCB/2026/015",
			Title:           "Thika Superhighway Repairs",
			Description:     "Emergency repairs and resurfacing of damaged sections",
			ProcuringEntity: "Kenya Rural Roads Authority", Category: "Road Construction",
			EstimatedValue: 95_000_000,
			PublishedDate:  date(2026, 1, 5), Deadline: date(2026, 1, 19),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-004", AwardedAmount: 93_000_000,
			ProcurementOfficerID: "off-002",
		},
		{
			ID: "tender-016", ReferenceNumber: "KIS/SUP/2026/016",
			Title:           "Office Stationery and Supplies",
			Description:     "Annual framework contract for office stationery and consumables",
			ProcuringEntity: "Kisumu County Government", Category: "Office Supplies",
			EstimatedValue: 4_500_000,
			PublishedDate:  date(2026, 1, 13), Deadline: date(2026, 2, 10),
			Status: model.StatusOpen,
		},
		{
			ID: "tender-017", ReferenceNumber: "MOH/EQUIP/2026/017",
			Title:           "Dialysis Machines for Level 5 Hospitals",
			Description:     "Supply and installation of 50 dialysis machines with training",
			ProcuringEntity: "Ministry of Health", Category: "Medical Supplies",
			EstimatedValue: 150_000_000,
			PublishedDate:  date(2026, 1, 6), Deadline: date(2026, 1, 27),
			Status:    model.StatusAwarded,
			AwardedTo: "comp-008", AwardedAmount: 148_000_000,
			ProcurementOfficerID: "off-003",
		},
		{
			ID: "tender-018", ReferenceNumber: "NCG/IT/2026/018",
			Title:           "County Revenue Collection System",
			Description:     "Development of integrated revenue collection and management system",
			ProcuringEntity: "Nakuru County Government", Category: "Information Technology",
			EstimatedValue: 42_000_000,
			PublishedDate:  date(2026, 1, 4), Deadline: date(2026, 1, 18),
			Status:               model.StatusCancelled,
			ProcurementOfficerID: "off-005",
		},
		{
			ID: "tender-019", ReferenceNumber: "KURA/MAINT/2026/019",
			Title:           "Routine Road Maintenance - Western Region",
			Description:     "Annual routine maintenance contract for classified roads in Western Kenya",
			ProcuringEntity: "Kenya Rural Roads Authority", Category: "Road Construction",
			EstimatedValue: 65_000_000,
			PublishedDate:  date(2026, 1, 10), Deadline: date(2026, 2, 3),
			Status:               model.StatusEvaluation,
			ProcurementOfficerID: "off-002",
		},
		{
			ID: "tender-020", ReferenceNumber: "KPLC/SEC/2026/020",
			Title:           "Security Systems Upgrade",
			Description:     "Supply and installation of CCTV and access control systems",
			ProcuringEntity: "Kenya Power and Lighting Company", Category: "Security Services",
			EstimatedValue: 22_000_000,
			PublishedDate:  date(2026, 1, 11), Deadline: date(2026, 2, 4),
			Status:               model.StatusOpen,
			ProcurementOfficerID: "off-004",
		},
	}

	bids := []model.Bid{
		// tender-001: full cartel turnout plus one outsider.
		{ID: "bid-001", TenderID: "tender-001", CompanyID: "comp-001", Amount: 445_000_000, SubmissionDate: datetime(2026, 1, 16, 14, 30)},
		{ID: "bid-002", TenderID: "tender-001", CompanyID: "comp-002", Amount: 448_000_000, SubmissionDate: datetime(2026, 1, 16, 14, 45)},
		{ID: "bid-003", TenderID: "tender-001", CompanyID: "comp-003", Amount: 452_000_000, SubmissionDate: datetime(2026, 1, 16, 15, 0)},
		{ID: "bid-004", TenderID: "tender-001", CompanyID: "comp-004", Amount: 455_000_000, SubmissionDate: datetime(2026, 1, 16, 15, 15)},
		{ID: "bid-005", TenderID: "tender-001", CompanyID: "comp-009", Amount: 460_000_000, SubmissionDate: datetime(2026, 1, 15, 10, 0)},

		// tender-002: shell company sneaks in at the last minute.
		{ID: "bid-006", TenderID: "tender-002", CompanyID: "comp-005", Amount: 78_000_000, SubmissionDate: datetime(2026, 1, 15, 11, 55)},
		{ID: "bid-007", TenderID: "tender-002", CompanyID: "comp-010", Amount: 82_000_000, SubmissionDate: datetime(2026, 1, 14, 9, 0)},

		// tender-003: conflict of interest.
		{ID: "bid-008", TenderID: "tender-003", CompanyID: "comp-006", Amount: 118_500_000, SubmissionDate: datetime(2026, 1, 19, 10, 0)},
		{ID: "bid-009", TenderID: "tender-003", CompanyID: "comp-008", Amount: 125_000_000, SubmissionDate: datetime(2026, 1, 18, 14, 0)},
		{ID: "bid-010", TenderID: "tender-003", CompanyID: "comp-012", Amount: 122_000_000, SubmissionDate: datetime(2026, 1, 18, 16, 30)},

		// tender-004: cartel again, different winner.
		{ID: "bid-011", TenderID: "tender-004", CompanyID: "comp-001", Amount: 84_000_000, SubmissionDate: datetime(2026, 1, 17, 9, 0)},
		{ID: "bid-012", TenderID: "tender-004", CompanyID: "comp-002", Amount: 85_000_000, SubmissionDate: datetime(2026, 1, 17, 9, 30)},
		{ID: "bid-013", TenderID: "tender-004", CompanyID: "comp-003", Amount: 82_000_000, SubmissionDate: datetime(2026, 1, 17, 10, 0)},
		{ID: "bid-014", TenderID: "tender-004", CompanyID: "comp-004", Amount: 86_000_000, SubmissionDate: datetime(2026, 1, 17, 10, 30)},

		// tender-005: inflated winner vs a reasonable loser.
		{ID: "bid-015", TenderID: "tender-005", CompanyID: "comp-006", Amount: 81_000_000, SubmissionDate: datetime(2026, 1, 22, 11, 0)},
		{ID: "bid-016", TenderID: "tender-005", CompanyID: "comp-012", Amount: 48_000_000, SubmissionDate: datetime(2026, 1, 21, 14, 0)},

		{ID: "bid-017", TenderID: "tender-006", CompanyID: "comp-007", Amount: 8_200_000, SubmissionDate: datetime(2026, 1, 24, 10, 0)},
		{ID: "bid-018", TenderID: "tender-006", CompanyID: "comp-010", Amount: 8_800_000, SubmissionDate: datetime(2026, 1, 23, 15, 0)},

		{ID: "bid-019", TenderID: "tender-007", CompanyID: "comp-009", Amount: 24_500_000, SubmissionDate: datetime(2026, 1, 26, 11, 0)},

		// tender-008: cartel bids while still in evaluation.
		{ID: "bid-020", TenderID: "tender-008", CompanyID: "comp-001", Amount: 318_000_000, SubmissionDate: datetime(2026, 1, 21, 14, 0)},
		{ID: "bid-021", TenderID: "tender-008", CompanyID: "comp-002", Amount: 315_000_000, SubmissionDate: datetime(2026, 1, 21, 14, 30)},
		{ID: "bid-022", TenderID: "tender-008", CompanyID: "comp-003", Amount: 322_000_000, SubmissionDate: datetime(2026, 1, 21, 15, 0)},
		{ID: "bid-023", TenderID: "tender-008", CompanyID: "comp-004", Amount: 325_000_000, SubmissionDate: datetime(2026, 1, 21, 15, 30)},

		{ID: "bid-024", TenderID: "tender-010", CompanyID: "comp-012", Amount: 27_200_000, SubmissionDate: datetime(2026, 1, 29, 10, 0)},
		{ID: "bid-025", TenderID: "tender-010", CompanyID: "comp-006", Amount: 29_000_000, SubmissionDate: datetime(2026, 1, 29, 11, 0)},

		{ID: "bid-026", TenderID: "tender-011", CompanyID: "comp-001", Amount: 178_000_000, SubmissionDate: datetime(2026, 1, 22, 9, 0)},
		{ID: "bid-027", TenderID: "tender-011", CompanyID: "comp-002", Amount: 175_000_000, SubmissionDate: datetime(2026, 1, 22, 9, 30)},
		{ID: "bid-028", TenderID: "tender-011", CompanyID: "comp-003", Amount: 182_000_000, SubmissionDate: datetime(2026, 1, 22, 10, 0)},
		{ID: "bid-029", TenderID: "tender-011", CompanyID: "comp-004", Amount: 185_000_000, SubmissionDate: datetime(2026, 1, 22, 10, 30)},

		{ID: "bid-030", TenderID: "tender-014", CompanyID: "comp-006", Amount: 54_000_000, SubmissionDate: datetime(2026, 1, 18, 11, 0)},
		{ID: "bid-031", TenderID: "tender-014", CompanyID: "comp-012", Amount: 52_000_000, SubmissionDate: datetime(2026, 1, 17, 16, 0)},

		{ID: "bid-032", TenderID: "tender-015", CompanyID: "comp-001", Amount: 94_000_000, SubmissionDate: datetime(2026, 1, 19, 10, 0)},
		{ID: "bid-033", TenderID: "tender-015", CompanyID: "comp-002", Amount: 96_000_000, SubmissionDate: datetime(2026, 1, 19, 10, 30)},
		{ID: "bid-034", TenderID: "tender-015", CompanyID: "comp-003", Amount: 97_000_000, SubmissionDate: datetime(2026, 1, 19, 11, 0)},
		{ID: "bid-035", TenderID: "tender-015", CompanyID: "comp-004", Amount: 93_000_000, SubmissionDate: datetime(2026, 1, 19, 11, 30)},

		{ID: "bid-036", TenderID: "tender-017", CompanyID: "comp-008", Amount: 148_000_000, SubmissionDate: datetime(2026, 1, 26, 14, 0)},
		{ID: "bid-037", TenderID: "tender-017", CompanyID: "comp-006", Amount: 155_000_000, SubmissionDate: datetime(2026, 1, 26, 15, 0)},

		{ID: "bid-038", TenderID: "tender-019", CompanyID: "comp-009", Amount: 63_000_000, SubmissionDate: datetime(2026, 2, 2, 10, 0)},
		{ID: "bid-039", TenderID: "tender-019", CompanyID: "comp-001", Amount: 64_000_000, SubmissionDate: datetime(2026, 2, 2, 11, 0)},
	}

	return FromLists(companies, directors, officials, tenders, bids)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}
