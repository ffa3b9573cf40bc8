package transaction

import x12 "github.com/apimeister/x12-types-sub000"

var (
	W05 = seg("W05", "Shipping Order Identification",
		req("Order Status Code"), req("Depositor Order Number"), opt("Purchase Order Number"),
		opt("Link Sequence Number"), opt("Master Reference (Link) Number"),
		opt("Transaction Type Code"), opt("Action Code"))
	G62 = seg("G62", "Date/Time",
		opt("Date Qualifier"), opt("Date"), opt("Time Qualifier"), opt("Time"), opt("Time Code"))
	W66 = seg("W66", "Warehouse Carrier Information",
		req("Shipment Method of Payment"), req("Transportation Method/Type Code"),
		opt("PickUp or Delivery Code"), opt("Location Identifier"), opt("Routing"),
		opt("F.O.B. Point Code"), opt("Date"), opt("Time"), opt("Standard Carrier Alpha Code"),
		opt("Location Identifier"), opt("Location Identifier"))
	LX  = seg("LX", "Transaction Set Line Number", req("Assigned Number"))
	W01 = seg("W01", "Line Item Detail - Warehouse",
		req("Quantity Ordered"), req("Unit or Basis for Measurement Code"), opt("U.P.C. Case Code"),
		opt("Product/Service ID Qualifier"), opt("Product/Service ID"),
		opt("Product/Service ID Qualifier"), opt("Product/Service ID"),
		opt("Freight Class Code"), opt("Rate Value Qualifier"), opt("Commodity Code Qualifier"),
		opt("Commodity Code"), opt("Pallet Block and Tiers"), opt("Product/Service ID Qualifier"),
		opt("Product/Service ID"), opt("Product/Service ID Qualifier"), opt("Product/Service ID"))
	G69 = seg("G69", "Line Item Detail - Description", req("Free-form Description"))
	W76 = seg("W76", "Total Shipping Order",
		req("Quantity Ordered"), opt("Weight"), opt("Unit or Basis for Measurement Code"),
		opt("Volume"), opt("Unit or Basis for Measurement Code"))
)

// X940 is the Warehouse Shipping Order.
var X940 = &x12.TransactionSpec{
	Code:            "940",
	Name:            "Warehouse Shipping Order",
	FunctionalGroup: "OW",
	Body: &x12.LoopSpec{ID: "940", Slots: []x12.Slot{
		x12.Mandatory(W05),
		x12.LoopSlot(partyLoop("0100"), 0, 10),
		x12.Repeat(N9, 0, 30),
		x12.Repeat(G62, 0, 10),
		x12.Repeat(NTE, 0, 10),
		x12.Optional(W66),
		x12.LoopSlot(&x12.LoopSpec{ID: "0200", Slots: []x12.Slot{
			x12.Mandatory(LX),
			x12.LoopSlot(&x12.LoopSpec{ID: "0210", Slots: []x12.Slot{
				x12.Mandatory(W01),
				x12.Optional(G69),
				x12.Repeat(N9, 0, 200),
				x12.Repeat(NTE, 0, 10),
			}}, 1, 9999),
		}}, 0, 0),
		x12.Optional(W76),
	}},
}
