package x12

import (
	"strings"
	"testing"
)

// header builds an ISA header with the given delimiters, terminator and
// suffix included.
func header(d Delimiters) string {
	fields := []string{
		"00", "          ", "00", "          ",
		"ZZ", "SENDERID       ", "ZZ", "RECEIVERID     ",
		"231017", "1253", "U", "00401", "000000001", "0", "P", d.Component,
	}
	return "ISA" + d.Element + strings.Join(fields, d.Element) + d.Terminator + d.Suffix
}

// wire turns a body written with the default delimiters into one written
// with d. The body must not contain the replacement characters.
func wire(d Delimiters, body string) string {
	r := strings.NewReplacer(
		"*", d.Element,
		">", d.Component,
		"~", d.Terminator+d.Suffix,
	)
	return header(d) + r.Replace(body)
}

var (
	tW05 = &SegmentSpec{Tag: "W05", Elements: []ElementSpec{Req("status"), Req("order"), Opt("po"), Opt("link")}}
	tN1  = &SegmentSpec{Tag: "N1", Elements: []ElementSpec{Req("entity"), Opt("name"), Opt("qualifier"), Opt("code")}}
	tN3  = &SegmentSpec{Tag: "N3", Elements: []ElementSpec{Req("address"), Opt("address")}}
	tLX  = &SegmentSpec{Tag: "LX", Elements: []ElementSpec{Req("number")}}
	tW01 = &SegmentSpec{Tag: "W01", Elements: []ElementSpec{Req("quantity"), Req("unit"), Opt("upc"), Opt("qualifier"), Opt("id")}}
	tW76 = &SegmentSpec{Tag: "W76", Elements: []ElementSpec{Req("quantity"), Opt("weight"), Opt("unit")}}

	test940 = &TransactionSpec{
		Code:            "940",
		FunctionalGroup: "OW",
		Body: &LoopSpec{ID: "940", Slots: []Slot{
			Mandatory(tW05),
			LoopSlot(&LoopSpec{ID: "0100", Slots: []Slot{
				Mandatory(tN1),
				Repeat(tN3, 0, 2),
			}}, 0, 10),
			LoopSlot(&LoopSpec{ID: "0200", Slots: []Slot{
				Mandatory(tLX),
				Repeat(tW01, 1, 0),
			}}, 0, 0),
			Optional(tW76),
		}},
	}
	testSchemas = MustSchemaSet(test940)
)

const exampleBody = "GS*OW*SENDER*RECEIVER*20231017*1253*1*X*004010~" +
	"ST*940*0001~W05*N*538686~N1*ST*NAME~SE*3*0001~" +
	"GE*1*1~IEA*1*1~"

const orderBody = "GS*OW*SENDER*RECEIVER*20231017*1253*7*X*004010~" +
	"ST*940*0001~" +
	"W05*N*538686**7~" +
	"N1*ST*ACME STORE*9*0012345>01~N3*12 MAIN ST~N3*SUITE 4~" +
	"N1*SF*WAREHOUSE~" +
	"LX*1~W01*12*CA*012345678905~W01*3*EA~" +
	"LX*2~W01*1*PL*~" +
	"W76*16*210.5*LB~" +
	"SE*13*0001~" +
	"ST*940*0002~W05*F*538687~SE*3*0002~" +
	"GE*2*7~IEA*1*000000001~"

func mustDecode(t *testing.T, input string, opts ...ReadOption) *Interchange {
	t.Helper()
	ic, rest, err := DecodeString(input, append([]ReadOption{WithSchemas(testSchemas)}, opts...)...)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if rest != "" {
		t.Fatalf("unconsumed input %q", rest)
	}
	return ic
}

func mustEncode(t *testing.T, ic *Interchange, opts ...WriteOption) string {
	t.Helper()
	out, err := EncodeToString(ic, opts...)
	if err != nil {
		t.Fatalf("EncodeToString: %v", err)
	}
	return out
}
