package transaction

import x12 "github.com/apimeister/x12-types-sub000"

var (
	BSN = seg("BSN", "Beginning Segment for Ship Notice",
		req("Transaction Set Purpose Code"), req("Shipment Identification"), req("Date"), req("Time"),
		opt("Hierarchical Structure Code"), opt("Transaction Type Code"), opt("Status Reason Code"))
	TD1 = seg("TD1", "Carrier Details (Quantity and Weight)",
		opt("Packaging Code"), opt("Lading Quantity"), opt("Commodity Code Qualifier"), opt("Commodity Code"),
		opt("Lading Description"), opt("Weight Qualifier"), opt("Weight"),
		opt("Unit or Basis for Measurement Code"), opt("Volume"), opt("Unit or Basis for Measurement Code"))
	TD5 = seg("TD5", "Carrier Details (Routing Sequence/Transit Time)",
		opt("Routing Sequence Code"), opt("Identification Code Qualifier"), opt("Identification Code"),
		opt("Transportation Method/Type Code"), opt("Routing"), opt("Shipment/Order Status Code"),
		opt("Location Qualifier"), opt("Location Identifier"), opt("Transit Direction Code"),
		opt("Transit Time Direction Qualifier"), opt("Transit Time"), opt("Service Level Code"),
		opt("Service Level Code"), opt("Service Level Code"), opt("Country Code"))
	TD3 = seg("TD3", "Carrier Details (Equipment)",
		opt("Equipment Description Code"), opt("Equipment Initial"), opt("Equipment Number"),
		opt("Weight Qualifier"), opt("Weight"), opt("Unit or Basis for Measurement Code"),
		opt("Ownership Code"), opt("Seal Status Code"), opt("Seal Number"), opt("Equipment Type"))
	PRF = seg("PRF", "Purchase Order Reference",
		req("Purchase Order Number"), opt("Release Number"), opt("Change Order Sequence Number"),
		opt("Date"), opt("Assigned Identification"), opt("Contract Number"), opt("Purchase Order Type Code"))
	MAN = seg("MAN", "Marks and Numbers Information",
		req("Marks and Numbers Qualifier"), req("Marks and Numbers"), opt("Marks and Numbers"),
		opt("Marks and Numbers Qualifier"), opt("Marks and Numbers"), opt("Marks and Numbers"))
	PO4 = seg("PO4", "Item Physical Details",
		opt("Pack"), opt("Size"), opt("Unit or Basis for Measurement Code"), opt("Packaging Code"),
		opt("Weight Qualifier"), opt("Gross Weight per Pack"), opt("Unit or Basis for Measurement Code"))
	LIN = seg("LIN", "Item Identification",
		opt("Assigned Identification"), req("Product/Service ID Qualifier"), req("Product/Service ID"),
		opt("Product/Service ID Qualifier"), opt("Product/Service ID"),
		opt("Product/Service ID Qualifier"), opt("Product/Service ID"),
		opt("Product/Service ID Qualifier"), opt("Product/Service ID"))
	SN1 = seg("SN1", "Item Detail (Shipment)",
		opt("Assigned Identification"), req("Number of Units Shipped"), req("Unit or Basis for Measurement Code"),
		opt("Quantity Shipped to Date"), opt("Quantity Ordered"), opt("Unit or Basis for Measurement Code"),
		opt("Returnable Container Load Make-Up Code"), opt("Line Item Status Code"))
	PID = seg("PID", "Product/Item Description",
		req("Item Description Type"), opt("Product/Process Characteristic Code"), opt("Agency Qualifier Code"),
		opt("Product Description Code"), opt("Description"))
)

// X856 is the Ship Notice/Manifest. Its body is an HL hierarchy of
// shipment, order, tare, pack and item levels.
var X856 = &x12.TransactionSpec{
	Code:            "856",
	Name:            "Ship Notice/Manifest",
	FunctionalGroup: "SH",
	Body: &x12.LoopSpec{ID: "856", Slots: []x12.Slot{
		x12.Mandatory(BSN),
		x12.Repeat(DTM, 0, 10),
		x12.HLSlot(&x12.HierarchySpec{Levels: []x12.LevelSpec{
			{Code: "S", Name: "Shipment", Body: &x12.LoopSpec{ID: "HL-S", Slots: []x12.Slot{
				x12.Repeat(TD1, 0, 20),
				x12.Repeat(TD5, 0, 12),
				x12.Repeat(TD3, 0, 12),
				x12.Repeat(REF, 0, 0),
				x12.Repeat(DTM, 0, 10),
				x12.LoopSlot(partyLoop("N1"), 0, 200),
			}}},
			{Code: "O", Name: "Order", Body: &x12.LoopSpec{ID: "HL-O", Slots: []x12.Slot{
				x12.Optional(PRF),
				x12.Repeat(REF, 0, 0),
				x12.Repeat(DTM, 0, 10),
				x12.LoopSlot(partyLoop("N1"), 0, 200),
			}}},
			{Code: "T", Name: "Tare", Body: &x12.LoopSpec{ID: "HL-T", Slots: []x12.Slot{
				x12.Optional(PO4),
				x12.Repeat(MAN, 0, 0),
			}}},
			{Code: "P", Name: "Pack", Body: &x12.LoopSpec{ID: "HL-P", Slots: []x12.Slot{
				x12.Optional(PO4),
				x12.Repeat(MAN, 0, 0),
			}}},
			{Code: "I", Name: "Item", Body: &x12.LoopSpec{ID: "HL-I", Slots: []x12.Slot{
				x12.Optional(LIN),
				x12.Optional(SN1),
				x12.Repeat(PID, 0, 200),
				x12.Repeat(REF, 0, 0),
				x12.Repeat(DTM, 0, 10),
			}}},
		}}, 1),
		x12.Optional(CTT),
	}},
}
