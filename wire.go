package x12

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// isaWidths are the fixed widths, in characters, of ISA01 through ISA16.
var isaWidths = [16]int{2, 10, 2, 10, 2, 15, 2, 15, 6, 4, 1, 5, 9, 1, 1, 1}

// isaHeaderLen is the header length up to and excluding the terminator:
// the tag, 16 separators and the fixed-width fields.
const isaHeaderLen = 105

func headerError(pos int, format string, args ...any) error {
	return &DecodeError{Tag: "ISA", Offset: pos, Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalidHeader}, args...)...)}
}

// nextRune returns the rune starting at pos as a string.
func nextRune(in string, pos int) (string, bool) {
	if pos >= len(in) {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(in[pos:])
	return in[pos : pos+size], true
}

// readISA decodes the positional interchange header. It returns the
// delimiters, the header segment and the number of bytes consumed including
// terminator and suffix.
func readISA(in string) (Delimiters, *Segment, int, error) {
	var d Delimiters
	if !strings.HasPrefix(in, SpecISA.Tag) {
		if len(in) < len(SpecISA.Tag) {
			return d, nil, 0, headerError(0, "input shorter than %d characters", isaHeaderLen+1)
		}
		return d, nil, 0, headerError(0, "tag %q", in[:len(SpecISA.Tag)])
	}
	pos := len(SpecISA.Tag)
	sep, ok := nextRune(in, pos)
	if !ok {
		return d, nil, 0, headerError(pos, "input shorter than %d characters", isaHeaderLen+1)
	}
	d.Element = sep

	isa := &Segment{Tag: SpecISA.Tag, Elements: make([]Value, len(isaWidths)), spec: SpecISA}
	for i, width := range isaWidths {
		r, ok := nextRune(in, pos)
		if !ok {
			return d, nil, 0, headerError(pos, "input shorter than %d characters", isaHeaderLen+1)
		}
		if r != sep {
			return d, nil, 0, headerError(pos, "expected element separator %q before ISA%02d, found %q", sep, i+1, r)
		}
		pos += len(r)
		start := pos
		for k := 0; k < width; k++ {
			r, ok := nextRune(in, pos)
			if !ok {
				return d, nil, 0, headerError(pos, "input shorter than %d characters", isaHeaderLen+1)
			}
			pos += len(r)
		}
		isa.Elements[i] = Some(in[start:pos])
	}
	d.Component = isa.Elements[15].String()

	term, ok := nextRune(in, pos)
	if !ok {
		return d, nil, 0, headerError(pos, "missing segment terminator")
	}
	d.Terminator = term
	pos += len(term)

	start := pos
	for pos < len(in) && (in[pos] == '\r' || in[pos] == '\n') {
		pos++
	}
	d.Suffix = in[start:pos]

	if err := d.validate(); err != nil {
		return d, nil, 0, &DecodeError{Tag: "ISA", Offset: start - len(term), Err: err}
	}
	return d, isa, pos, nil
}

// writeISA appends the fixed-width header. ISA16 is always taken from d.
func writeISA(b *strings.Builder, isa *Segment, d Delimiters) error {
	if isa == nil || isa.Tag != SpecISA.Tag {
		return fmt.Errorf("%w: missing ISA header", ErrValidation)
	}
	if len(isa.Elements) != len(isaWidths) {
		return fmt.Errorf("%w: ISA has %d elements, want %d", ErrValidation, len(isa.Elements), len(isaWidths))
	}
	b.WriteString(isa.Tag)
	for i, width := range isaWidths {
		v := isa.Elements[i].String()
		if i == len(isaWidths)-1 {
			v = d.Component
		}
		if n := utf8.RuneCountInString(v); n != width {
			return fmt.Errorf("%w: ISA%02d %q has width %d, want %d", ErrValidation, i+1, v, n, width)
		}
		// ISA16 is the component separator itself, which may also be the
		// terminator.
		if i < len(isaWidths)-1 && (strings.Contains(v, d.Element) || strings.Contains(v, d.Terminator)) {
			return fmt.Errorf("%w: ISA%02d contains a delimiter", ErrValidation, i+1)
		}
		b.WriteString(d.Element)
		b.WriteString(v)
	}
	b.WriteString(d.Terminator)
	b.WriteString(d.Suffix)
	return nil
}
