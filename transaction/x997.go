package transaction

import x12 "github.com/apimeister/x12-types-sub000"

var (
	AK1 = seg("AK1", "Functional Group Response Header",
		req("Functional Identifier Code"), req("Group Control Number"), opt("Version / Release / Industry Identifier Code"))
	AK2 = seg("AK2", "Transaction Set Response Header",
		req("Transaction Set Identifier Code"), req("Transaction Set Control Number"), opt("Implementation Convention Reference"))
	AK3 = seg("AK3", "Data Segment Note",
		req("Segment ID Code"), req("Segment Position in Transaction Set"), opt("Loop Identifier Code"), opt("Segment Syntax Error Code"))
	AK4 = seg("AK4", "Data Element Note",
		req("Position in Segment"), opt("Data Element Reference Number"), req("Data Element Syntax Error Code"), opt("Copy of Bad Data Element"))
	AK5 = seg("AK5", "Transaction Set Response Trailer",
		req("Transaction Set Acknowledgment Code"), opt("Transaction Set Syntax Error Code"),
		opt("Transaction Set Syntax Error Code"), opt("Transaction Set Syntax Error Code"),
		opt("Transaction Set Syntax Error Code"), opt("Transaction Set Syntax Error Code"))
	AK9 = seg("AK9", "Functional Group Response Trailer",
		req("Functional Group Acknowledge Code"), req("Number of Transaction Sets Included"),
		req("Number of Received Transaction Sets"), req("Number of Accepted Transaction Sets"),
		opt("Functional Group Syntax Error Code"), opt("Functional Group Syntax Error Code"),
		opt("Functional Group Syntax Error Code"), opt("Functional Group Syntax Error Code"),
		opt("Functional Group Syntax Error Code"))
)

// X997 is the Functional Acknowledgment.
var X997 = &x12.TransactionSpec{
	Code:            "997",
	Name:            "Functional Acknowledgment",
	FunctionalGroup: "FA",
	Body: &x12.LoopSpec{ID: "997", Slots: []x12.Slot{
		x12.Mandatory(AK1),
		x12.LoopSlot(&x12.LoopSpec{ID: "AK2", Slots: []x12.Slot{
			x12.Mandatory(AK2),
			x12.LoopSlot(&x12.LoopSpec{ID: "AK3", Slots: []x12.Slot{
				x12.Mandatory(AK3),
				x12.Repeat(AK4, 0, 99),
			}}, 0, 0),
			x12.Mandatory(AK5),
		}}, 0, 0),
		x12.Mandatory(AK9),
	}},
}
