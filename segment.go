package x12

import (
	"fmt"
	"strings"
)

// DecodeSegment decodes one segment from the start of input. It returns
// ErrNotThisTag, without consuming anything, when the next segment is not a
// spec segment, and a *DecodeError for structural failures. The returned
// string is the input following the segment.
func DecodeSegment(input string, d Delimiters, spec *SegmentSpec) (*Segment, string, error) {
	c := &cursor{in: input, d: d, limits: defaultLimits()}
	s, err := c.segment(spec)
	if err != nil {
		return nil, input, err
	}
	return s, c.rest(), nil
}

// EncodeSegment encodes one segment. Absent trailing elements are omitted
// together with their separators. A decoded segment keeps the line breaks
// it was read with; others get d.Suffix.
func EncodeSegment(s *Segment, d Delimiters) string {
	var b strings.Builder
	appendSegment(&b, s, d, true)
	return b.String()
}

func appendSegment(b *strings.Builder, s *Segment, d Delimiters, keepBreaks bool) {
	last := -1
	for i, v := range s.Elements {
		if v.set {
			last = i
		}
	}
	b.WriteString(s.Tag)
	for _, v := range s.Elements[:last+1] {
		b.WriteString(d.Element)
		b.WriteString(v.s)
	}
	b.WriteString(d.Terminator)
	if keepBreaks && s.brkSet {
		b.WriteString(s.brk)
	} else {
		b.WriteString(d.Suffix)
	}
}

// checkSegment reports whether s can be written and read back unchanged.
func checkSegment(s *Segment, d Delimiters) error {
	if s == nil {
		return fmt.Errorf("%w: nil segment", ErrValidation)
	}
	if s.Tag == "" || strings.Contains(s.Tag, d.Element) || strings.Contains(s.Tag, d.Terminator) {
		return fmt.Errorf("%w: bad segment tag %q", ErrValidation, s.Tag)
	}
	for i, v := range s.Elements {
		if strings.Contains(v.s, d.Element) || strings.Contains(v.s, d.Terminator) {
			return fmt.Errorf("%w: %s%02d contains a delimiter", ErrValidation, s.Tag, i+1)
		}
	}
	if s.spec == nil {
		return nil
	}
	if len(s.Elements) > len(s.spec.Elements) {
		return fmt.Errorf("%w: %s has %d elements, schema declares %d", ErrValidation, s.Tag, len(s.Elements), len(s.spec.Elements))
	}
	for i, e := range s.spec.Elements {
		if e.Required && (i >= len(s.Elements) || !s.Elements[i].set) {
			return fmt.Errorf("%w: %s%02d (%s) is mandatory", ErrValidation, s.Tag, i+1, e.Name)
		}
	}
	return nil
}
