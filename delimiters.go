package x12

import (
	"fmt"
	"unicode/utf8"
)

// Delimiters are the separators sniffed from an interchange header. Each of
// Element, Component and Terminator is a single rune, which may be
// multi-byte. Suffix is the line break (if any) written after every
// terminator, e.g. "\n" for one-segment-per-line files.
type Delimiters struct {
	Element    string
	Component  string
	Terminator string
	Suffix     string
}

// DefaultDelimiters are the conventional X12 delimiters.
var DefaultDelimiters = Delimiters{Element: "*", Component: ">", Terminator: "~"}

// SniffDelimiters reads the fixed-width ISA header at the start of input and
// returns the delimiters it declares, the decoded header and the input that
// follows the header's terminator and suffix.
func SniffDelimiters(input string) (Delimiters, *Segment, string, error) {
	d, isa, n, err := readISA(input)
	if err != nil {
		return Delimiters{}, nil, input, err
	}
	return d, isa, input[n:], nil
}

func (d Delimiters) validate() error {
	for _, s := range []string{d.Element, d.Component, d.Terminator} {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("%w: delimiter %q must be a single character", ErrInvalidHeader, s)
		}
	}
	// The terminator may repeat the component separator; only the element
	// separator must differ from both.
	if d.Element == d.Component || d.Element == d.Terminator {
		return fmt.Errorf("%w: element separator must differ from the other delimiters", ErrInvalidHeader)
	}
	for _, r := range d.Suffix {
		if r != '\r' && r != '\n' {
			return fmt.Errorf("%w: suffix may only contain line breaks", ErrInvalidHeader)
		}
	}
	return nil
}
