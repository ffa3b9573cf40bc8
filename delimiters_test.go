package x12

import (
	"errors"
	"strings"
	"testing"
)

func TestSniffDelimiters(t *testing.T) {
	cases := []struct {
		name string
		d    Delimiters
	}{
		{"default", DefaultDelimiters},
		{"caret-hash", Delimiters{Element: "^", Component: ":", Terminator: "#"}},
		{"newline-suffix", Delimiters{Element: "*", Component: ">", Terminator: "~", Suffix: "\n"}},
		{"crlf-suffix", Delimiters{Element: "|", Component: "\\", Terminator: "'", Suffix: "\r\n"}},
		{"multibyte", Delimiters{Element: "§", Component: "»", Terminator: "¶"}},
		{"newline-terminator", Delimiters{Element: "*", Component: ":", Terminator: "\n"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := header(tc.d) + "GS" + tc.d.Element + "OW"
			d, isa, rest, err := SniffDelimiters(in)
			if err != nil {
				t.Fatalf("SniffDelimiters: %v", err)
			}
			want := tc.d
			if want.Terminator == "\n" {
				want.Suffix = ""
			}
			if d != want {
				t.Fatalf("delimiters: got %+v want %+v", d, want)
			}
			if got := isa.Get(6); got != "SENDERID       " {
				t.Fatalf("ISA06: got %q", got)
			}
			if got := isa.Get(16); got != tc.d.Component {
				t.Fatalf("ISA16: got %q", got)
			}
			if rest != "GS"+tc.d.Element+"OW" {
				t.Fatalf("rest: got %q", rest)
			}
		})
	}
}

func TestSniffDelimiters_HeaderLength(t *testing.T) {
	h := header(DefaultDelimiters)
	if len(h) != isaHeaderLen+1 {
		t.Fatalf("fixture header is %d bytes, want %d", len(h), isaHeaderLen+1)
	}
}

func TestSniffDelimiters_TerminatorRepeatsComponent(t *testing.T) {
	d := Delimiters{Element: "*", Component: ">", Terminator: ">"}
	got, _, rest, err := SniffDelimiters(header(d) + "GS*OW>")
	if err != nil {
		t.Fatalf("SniffDelimiters: %v", err)
	}
	if got.Terminator != ">" || got.Component != ">" {
		t.Fatalf("got %+v", got)
	}
	if rest != "GS*OW>" {
		t.Fatalf("rest: got %q", rest)
	}

	in := wire(d, exampleBody)
	ic, rest, err := DecodeString(in, WithSchemas(testSchemas))
	if err != nil || rest != "" {
		t.Fatalf("DecodeString: %v, rest %q", err, rest)
	}
	if ic.Delimiters != d || ic.ISA.Get(16) != ">" {
		t.Fatalf("delimiters: got %+v, ISA16 %q", ic.Delimiters, ic.ISA.Get(16))
	}
	out, err := EncodeToString(ic)
	if err != nil {
		t.Fatalf("EncodeToString: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch\n got: %q\nwant: %q", out, in)
	}
}

func TestSniffDelimiters_Errors(t *testing.T) {
	good := header(DefaultDelimiters)
	cases := map[string]string{
		"empty":           "",
		"short":           good[:50],
		"no terminator":   good[:isaHeaderLen],
		"wrong tag":       "GS" + good[2:],
		"moved separator": strings.Replace(good, "*00*", "*000", 1),
		"same separators": strings.Replace(good, "*>~", "**~", 1),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, rest, err := SniffDelimiters(in)
			if !errors.Is(err, ErrInvalidHeader) {
				t.Fatalf("expected ErrInvalidHeader, got %v", err)
			}
			var de *DecodeError
			if !errors.As(err, &de) || de.Tag != "ISA" {
				t.Fatalf("expected *DecodeError for ISA, got %#v", err)
			}
			if rest != in {
				t.Fatal("failed sniff must not consume input")
			}
		})
	}
}

func TestWriteISA_WidthChecked(t *testing.T) {
	_, isa, _, err := SniffDelimiters(header(DefaultDelimiters))
	if err != nil {
		t.Fatal(err)
	}
	isa.Set(6, "SHORT")
	var b strings.Builder
	if err := writeISA(&b, isa, DefaultDelimiters); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := writeISA(&b, nil, DefaultDelimiters); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestWriteISA_RoundTrip(t *testing.T) {
	d := Delimiters{Element: "§", Component: "»", Terminator: "¶", Suffix: "\n"}
	in := header(d)
	got, isa, _, err := SniffDelimiters(in)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := writeISA(&b, isa, got); err != nil {
		t.Fatal(err)
	}
	if b.String() != in {
		t.Fatalf("got %q want %q", b.String(), in)
	}
}
