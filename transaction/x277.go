package transaction

import x12 "github.com/apimeister/x12-types-sub000"

var (
	STC = seg("STC", "Status Information",
		req("Health Care Claim Status"), opt("Date"), opt("Action Code"), opt("Monetary Amount"),
		opt("Monetary Amount"), opt("Date"), opt("Payment Method Code"), opt("Date"), opt("Check Number"),
		opt("Health Care Claim Status"), opt("Health Care Claim Status"), opt("Free-form Message Text"))
	SVC = seg("SVC", "Service Information",
		req("Composite Medical Procedure Identifier"), req("Monetary Amount"), opt("Monetary Amount"),
		opt("Product/Service ID"), opt("Quantity"), opt("Composite Medical Procedure Identifier"), opt("Quantity"))
)

// claimLoop is loop 2200D/2200E: a claim status keyed by its TRN, with
// the service line loop 2220D/2220E.
func claimLoop(id, service string) *x12.LoopSpec {
	return &x12.LoopSpec{ID: id, Slots: []x12.Slot{
		x12.Mandatory(qualified(TRN, "2")),
		x12.Repeat(STC, 0, 0),
		x12.Repeat(REF, 0, 3),
		x12.Repeat(DTP, 0, 1),
		x12.LoopSlot(&x12.LoopSpec{ID: service, Slots: []x12.Slot{
			x12.Mandatory(SVC),
			x12.Repeat(STC, 0, 0),
			x12.Repeat(REF, 0, 1),
			x12.Repeat(DTP, 0, 1),
		}}, 0, 0),
	}}
}

// X277 is the Health Care Claim Status Response. Its HL levels are
// information source (20), information receiver (21), service provider (19),
// subscriber (22) and dependent (23).
var X277 = &x12.TransactionSpec{
	Code:            "277",
	Name:            "Health Care Claim Status Response",
	FunctionalGroup: "HN",
	Body: &x12.LoopSpec{ID: "277", Slots: []x12.Slot{
		x12.Mandatory(BHT),
		x12.HLSlot(&x12.HierarchySpec{Levels: []x12.LevelSpec{
			{Code: "20", Name: "Information Source", Body: &x12.LoopSpec{ID: "2000A", Slots: []x12.Slot{
				x12.LoopSlot(nameLoop("2100A", "PR"), 1, 1),
			}}},
			{Code: "21", Name: "Information Receiver", Body: &x12.LoopSpec{ID: "2000B", Slots: []x12.Slot{
				x12.LoopSlot(nameLoop("2100B", "41"), 1, 1),
			}}},
			{Code: "19", Name: "Service Provider", Body: &x12.LoopSpec{ID: "2000C", Slots: []x12.Slot{
				x12.LoopSlot(nameLoop("2100C", "1P"), 1, 1),
			}}},
			{Code: "22", Name: "Subscriber", Body: &x12.LoopSpec{ID: "2000D", Slots: []x12.Slot{
				x12.Optional(DMG),
				x12.LoopSlot(nameLoop("2100D", "IL"), 1, 1),
				x12.LoopSlot(claimLoop("2200D", "2220D"), 0, 0),
			}}},
			{Code: "23", Name: "Dependent", Body: &x12.LoopSpec{ID: "2000E", Slots: []x12.Slot{
				x12.Optional(DMG),
				x12.LoopSlot(nameLoop("2100E", "QC"), 1, 1),
				x12.LoopSlot(claimLoop("2200E", "2220E"), 0, 0),
			}}},
		}}, 1),
	}},
}
