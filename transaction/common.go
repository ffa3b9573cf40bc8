package transaction

import x12 "github.com/apimeister/x12-types-sub000"

var (
	req = x12.Req
	opt = x12.Opt
)

var (
	N1 = seg("N1", "Party Identification",
		req("Entity Identifier Code"), opt("Name"), opt("Identification Code Qualifier"),
		opt("Identification Code"), opt("Entity Relationship Code"), opt("Entity Identifier Code"))
	N2 = seg("N2", "Additional Name Information", req("Name"), opt("Name"))
	N3 = seg("N3", "Party Location", req("Address Information"), opt("Address Information"))
	N4 = seg("N4", "Geographic Location",
		opt("City Name"), opt("State or Province Code"), opt("Postal Code"), opt("Country Code"),
		opt("Location Qualifier"), opt("Location Identifier"), opt("Country Subdivision Code"))
	PER = seg("PER", "Administrative Communications Contact",
		req("Contact Function Code"), opt("Name"),
		opt("Communication Number Qualifier"), opt("Communication Number"),
		opt("Communication Number Qualifier"), opt("Communication Number"),
		opt("Communication Number Qualifier"), opt("Communication Number"),
		opt("Contact Inquiry Reference"))
	REF = seg("REF", "Reference Information",
		req("Reference Identification Qualifier"), opt("Reference Identification"),
		opt("Description"), opt("Reference Identifier"))
	N9 = seg("N9", "Extended Reference Information",
		req("Reference Identification Qualifier"), opt("Reference Identification"),
		opt("Free-form Description"), opt("Date"), opt("Time"), opt("Time Code"), opt("Reference Identifier"))
	DTM = seg("DTM", "Date/Time Reference",
		req("Date/Time Qualifier"), opt("Date"), opt("Time"), opt("Time Code"),
		opt("Date Time Period Format Qualifier"), opt("Date Time Period"))
	DTP = seg("DTP", "Date or Time or Period",
		req("Date/Time Qualifier"), req("Date Time Period Format Qualifier"), req("Date Time Period"))
	NTE = seg("NTE", "Note/Special Instruction", opt("Note Reference Code"), req("Description"))
	NM1 = seg("NM1", "Individual or Organizational Name",
		req("Entity Identifier Code"), req("Entity Type Qualifier"), opt("Name Last or Organization Name"),
		opt("Name First"), opt("Name Middle"), opt("Name Prefix"), opt("Name Suffix"),
		opt("Identification Code Qualifier"), opt("Identification Code"),
		opt("Entity Relationship Code"), opt("Entity Identifier Code"), opt("Name Last or Organization Name"))
	TRN = seg("TRN", "Trace",
		req("Trace Type Code"), req("Reference Identification"),
		opt("Originating Company Identifier"), opt("Reference Identification"))
	BHT = seg("BHT", "Beginning of Hierarchical Transaction",
		req("Hierarchical Structure Code"), req("Transaction Set Purpose Code"),
		opt("Reference Identification"), opt("Date"), opt("Time"), opt("Transaction Type Code"))
	DMG = seg("DMG", "Demographic Information",
		opt("Date Time Period Format Qualifier"), opt("Date Time Period"), opt("Gender Code"),
		opt("Marital Status Code"), opt("Composite Race or Ethnicity Information"),
		opt("Citizenship Status Code"), opt("Country Code"), opt("Basis of Verification Code"),
		opt("Quantity"), opt("Code List Qualifier Code"), opt("Industry Code"))
	AMT = seg("AMT", "Monetary Amount Information",
		req("Amount Qualifier Code"), req("Monetary Amount"), opt("Credit/Debit Flag Code"))
	QTY = seg("QTY", "Quantity Information",
		req("Quantity Qualifier"), opt("Quantity"), opt("Composite Unit of Measure"), opt("Free-form Information"))
	MSG = seg("MSG", "Message Text", req("Free-Form Message Text"), opt("Printer Carriage Control Code"), opt("Number"))
	CTT = seg("CTT", "Transaction Totals",
		req("Number of Line Items"), opt("Hash Total"), opt("Weight"), opt("Unit or Basis for Measurement Code"),
		opt("Volume"), opt("Unit or Basis for Measurement Code"), opt("Description"))
)

// partyLoop is the N1 name/address loop shared by the supply chain sets.
func partyLoop(id string) *x12.LoopSpec {
	return &x12.LoopSpec{ID: id, Slots: []x12.Slot{
		x12.Mandatory(N1),
		x12.Repeat(N2, 0, 2),
		x12.Repeat(N3, 0, 2),
		x12.Optional(N4),
		x12.Repeat(REF, 0, 12),
		x12.Repeat(PER, 0, 3),
	}}
}

// nameLoop is the NM1 loop of the health care sets.
func nameLoop(id string, codes ...string) *x12.LoopSpec {
	return &x12.LoopSpec{ID: id, Slots: []x12.Slot{
		x12.Mandatory(qualified(NM1, codes...)),
		x12.Repeat(REF, 0, 9),
		x12.Optional(N3),
		x12.Optional(N4),
		x12.Repeat(PER, 0, 3),
		x12.Optional(DMG),
	}}
}
