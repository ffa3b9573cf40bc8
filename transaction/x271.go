package transaction

import x12 "github.com/apimeister/x12-types-sub000"

var (
	AAA = seg("AAA", "Request Validation",
		req("Yes/No Condition or Response Code"), opt("Agency Qualifier Code"),
		opt("Reject Reason Code"), opt("Follow-up Action Code"))
	INS = seg("INS", "Insured Benefit",
		req("Yes/No Condition or Response Code"), req("Individual Relationship Code"),
		opt("Maintenance Type Code"), opt("Maintenance Reason Code"), opt("Benefit Status Code"),
		opt("Medicare Status Code"), opt("COBRA Qualifying Event Code"), opt("Employment Status Code"),
		opt("Student Status Code"), opt("Yes/No Condition or Response Code"), opt("Date Time Period Format Qualifier"),
		opt("Date Time Period"), opt("Confidentiality Code"), opt("City Name"), opt("State or Province Code"),
		opt("Country Code"), opt("Number"))
	EB = seg("EB", "Eligibility or Benefit Information",
		req("Eligibility or Benefit Information Code"), opt("Coverage Level Code"), opt("Service Type Code"),
		opt("Insurance Type Code"), opt("Plan Coverage Description"), opt("Time Period Qualifier"),
		opt("Monetary Amount"), opt("Percentage as Decimal"), opt("Quantity Qualifier"), opt("Quantity"),
		opt("Yes/No Condition or Response Code"), opt("Yes/No Condition or Response Code"),
		opt("Composite Medical Procedure Identifier"), opt("Composite Diagnosis Code Pointer"))
	HSD = seg("HSD", "Health Care Services Delivery",
		opt("Quantity Qualifier"), opt("Quantity"), opt("Unit or Basis for Measurement Code"),
		opt("Sample Selection Modulus"), opt("Time Period Qualifier"), opt("Number of Periods"),
		opt("Ship/Delivery or Calendar Pattern Code"), opt("Ship/Delivery Pattern Time Code"))
	III = seg("III", "Information",
		opt("Code List Qualifier Code"), opt("Industry Code"), opt("Code Category"),
		opt("Free-form Message Text"), opt("Quantity"), opt("Composite Unit of Measure"),
		opt("Surface/Layer/Position Code"), opt("Surface/Layer/Position Code"), opt("Surface/Layer/Position Code"))
)

// benefitLoop is loop 2110: one EB with its details and the LS/LE
// bracketed 2120 benefit related entity loop.
func benefitLoop(id, related string) *x12.LoopSpec {
	return &x12.LoopSpec{ID: id, Slots: []x12.Slot{
		x12.Mandatory(EB),
		x12.Repeat(HSD, 0, 9),
		x12.Repeat(REF, 0, 9),
		x12.Repeat(DTP, 0, 20),
		x12.Repeat(AAA, 0, 9),
		x12.Repeat(MSG, 0, 10),
		x12.LoopSlot(&x12.LoopSpec{ID: "2115", Slots: []x12.Slot{
			x12.Mandatory(III),
		}}, 0, 10),
		x12.LoopSlot(&x12.LoopSpec{ID: related, Bracketed: true, Slots: []x12.Slot{
			x12.LoopSlot(&x12.LoopSpec{ID: related + "-NM1", Slots: []x12.Slot{
				x12.Mandatory(NM1),
				x12.Optional(N3),
				x12.Optional(N4),
				x12.Repeat(PER, 0, 3),
			}}, 1, 23),
		}}, 0, 1),
	}}
}

// memberLoop is the 2100C/2100D name loop with its 2110 benefits.
func memberLoop(id, benefits string, entity string) *x12.LoopSpec {
	return &x12.LoopSpec{ID: id, Slots: []x12.Slot{
		x12.Mandatory(qualified(NM1, entity)),
		x12.Repeat(REF, 0, 9),
		x12.Optional(N3),
		x12.Optional(N4),
		x12.Repeat(PER, 0, 3),
		x12.Repeat(AAA, 0, 9),
		x12.Optional(DMG),
		x12.Optional(INS),
		x12.Repeat(DTP, 0, 9),
		x12.LoopSlot(benefitLoop(benefits, "2120"), 0, 0),
	}}
}

// X271 is the Health Care Eligibility Benefit Response.
var X271 = &x12.TransactionSpec{
	Code:            "271",
	Name:            "Health Care Eligibility Benefit Response",
	FunctionalGroup: "HB",
	Body: &x12.LoopSpec{ID: "271", Slots: []x12.Slot{
		x12.Mandatory(BHT),
		x12.HLSlot(&x12.HierarchySpec{Levels: []x12.LevelSpec{
			{Code: "20", Name: "Information Source", Body: &x12.LoopSpec{ID: "2000A", Slots: []x12.Slot{
				x12.Repeat(AAA, 0, 9),
				x12.LoopSlot(nameLoop("2100A"), 1, 1),
			}}},
			{Code: "21", Name: "Information Receiver", Body: &x12.LoopSpec{ID: "2000B", Slots: []x12.Slot{
				x12.LoopSlot(nameLoop("2100B"), 1, 1),
			}}},
			{Code: "22", Name: "Subscriber", Body: &x12.LoopSpec{ID: "2000C", Slots: []x12.Slot{
				x12.Repeat(TRN, 0, 3),
				x12.LoopSlot(memberLoop("2100C", "2110C", "IL"), 1, 1),
			}}},
			{Code: "23", Name: "Dependent", Body: &x12.LoopSpec{ID: "2000D", Slots: []x12.Slot{
				x12.Repeat(TRN, 0, 3),
				x12.LoopSlot(memberLoop("2100D", "2110D", "03"), 1, 1),
			}}},
		}}, 1),
	}},
}
