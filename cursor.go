package x12

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// cursor walks the segments of one interchange. Lookahead is a mark/reset of
// the two position fields; nothing is ever un-consumed from the output tree.
type cursor struct {
	in     string
	pos    int
	seg    int
	d      Delimiters
	limits Limits
	log    *slog.Logger
}

type mark struct{ pos, seg int }

func (c *cursor) mark() mark { return mark{c.pos, c.seg} }

func (c *cursor) reset(m mark) { c.pos, c.seg = m.pos, m.seg }

func (c *cursor) rest() string { return c.in[c.pos:] }

func (c *cursor) errorf(tag, expected string, err error) *DecodeError {
	return &DecodeError{Tag: tag, Expected: expected, Segment: c.seg, Offset: c.pos, Err: err}
}

// peek returns the raw text of the next segment without its terminator and
// the position just past the terminator and any line breaks. ok is false at
// end of input.
func (c *cursor) peek() (raw string, next int, ok bool, err error) {
	rest := c.in[c.pos:]
	if strings.TrimLeft(rest, "\r\n") == "" {
		return "", c.pos, false, nil
	}
	i := strings.Index(rest, c.d.Terminator)
	if i < 0 {
		return "", c.pos, false, c.errorf(tagOf(rest, c.d.Element), "", ErrUnterminated)
	}
	if i == 0 {
		return "", c.pos, false, c.errorf("", "", ErrEmptySegment)
	}
	next = c.pos + i + len(c.d.Terminator)
	for next < len(c.in) && (c.in[next] == '\r' || c.in[next] == '\n') {
		next++
	}
	return rest[:i], next, true, nil
}

// lineBreak returns the line breaks between the terminator of raw, the
// segment at the cursor, and next.
func (c *cursor) lineBreak(raw string, next int) string {
	return c.in[c.pos+len(raw)+len(c.d.Terminator) : next]
}

// peekTag returns the tag of the next segment, or "" at end of input.
func (c *cursor) peekTag() (string, error) {
	raw, _, ok, err := c.peek()
	if err != nil || !ok {
		return "", err
	}
	return tagOf(raw, c.d.Element), nil
}

func tagOf(raw, sep string) string {
	if i := strings.Index(raw, sep); i >= 0 {
		return raw[:i]
	}
	return raw
}

// firstElement returns element 01 of a raw segment.
func firstElement(raw, sep string) string {
	i := strings.Index(raw, sep)
	if i < 0 {
		return ""
	}
	raw = raw[i+len(sep):]
	if j := strings.Index(raw, sep); j >= 0 {
		return raw[:j]
	}
	return raw
}

func matches(raw, sep, tag string, qualifiers []string) bool {
	if tagOf(raw, sep) != tag {
		return false
	}
	if len(qualifiers) == 0 {
		return true
	}
	q := firstElement(raw, sep)
	for _, want := range qualifiers {
		if q == want {
			return true
		}
	}
	return false
}

// lookahead reports whether the next segment matches tag and qualifiers.
// It never consumes input.
func (c *cursor) lookahead(tag string, qualifiers []string) (bool, error) {
	raw, _, ok, err := c.peek()
	if err != nil || !ok {
		return false, err
	}
	return matches(raw, c.d.Element, tag, qualifiers), nil
}

// advance consumes the segment just peeked.
func (c *cursor) advance(next int) error {
	if c.seg >= c.limits.MaxSegments {
		return c.errorf("", "", fmt.Errorf("%w: more than %d segments", ErrLimitExceeded, c.limits.MaxSegments))
	}
	c.pos = next
	c.seg++
	return nil
}

// segment decodes the next segment against spec. A tag or qualifier
// mismatch returns ErrNotThisTag and leaves the cursor untouched.
func (c *cursor) segment(spec *SegmentSpec) (*Segment, error) {
	return c.segmentMatching(spec, spec.Qualifiers)
}

func (c *cursor) segmentMatching(spec *SegmentSpec, qualifiers []string) (*Segment, error) {
	raw, next, ok, err := c.peek()
	if err != nil {
		return nil, err
	}
	if !ok || !matches(raw, c.d.Element, spec.Tag, qualifiers) {
		return nil, ErrNotThisTag
	}
	fields := c.split(raw)
	if len(fields) > c.limits.MaxElements {
		return nil, c.errorf(spec.Tag, "", fmt.Errorf("%w: %d elements", ErrLimitExceeded, len(fields)))
	}
	if len(fields) > len(spec.Elements) {
		return nil, c.errorf(spec.Tag, "", fmt.Errorf("%w: %d, schema declares %d", ErrTooManyElements, len(fields), len(spec.Elements)))
	}
	if len(fields) < spec.minElements() {
		return nil, c.errorf(spec.Tag, fmt.Sprintf("%s%02d", spec.Tag, len(fields)+1), ErrMissingElement)
	}
	s := &Segment{Tag: spec.Tag, Elements: make([]Value, len(spec.Elements)), spec: spec}
	for i, f := range fields {
		s.Elements[i] = Some(f)
	}
	s.keepBreak(c.lineBreak(raw, next), c.d.Suffix)
	if err := c.advance(next); err != nil {
		return nil, err
	}
	return s, nil
}

// opaque consumes the next segment without a schema; every received element
// is present.
func (c *cursor) opaque() (*Segment, error) {
	raw, next, ok, err := c.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, c.errorf("", "segment", ErrMissingSegment)
	}
	fields := c.split(raw)
	if len(fields) > c.limits.MaxElements {
		return nil, c.errorf(tagOf(raw, c.d.Element), "", fmt.Errorf("%w: %d elements", ErrLimitExceeded, len(fields)))
	}
	s := NewSegment(tagOf(raw, c.d.Element), fields...)
	s.keepBreak(c.lineBreak(raw, next), c.d.Suffix)
	if err := c.advance(next); err != nil {
		return nil, err
	}
	return s, nil
}

// split returns the elements of raw after the tag.
func (c *cursor) split(raw string) []string {
	i := strings.Index(raw, c.d.Element)
	if i < 0 {
		return nil
	}
	return strings.Split(raw[i+len(c.d.Element):], c.d.Element)
}

// require decodes a mandatory segment, turning a mismatch into a
// structural error.
func (c *cursor) require(spec *SegmentSpec) (*Segment, error) {
	s, err := c.segment(spec)
	if errors.Is(err, ErrNotThisTag) {
		found, perr := c.peekTag()
		if perr != nil {
			return nil, perr
		}
		return nil, c.errorf(found, spec.Tag, ErrMissingSegment)
	}
	return s, err
}
