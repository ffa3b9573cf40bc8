package x12

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode writes ic to w.
//
// Segments are written in tree order with the interchange's own delimiters
// and line breaks, so a decoded interchange encodes back to its original
// bytes. Every
// schematized segment is checked for its mandatory elements and no value may
// contain the element separator or terminator.
//
// By default, Encode will:
//   - Fill absent SE, GE and IEA counts and control numbers, creating
//     missing trailers (modifies ic in place)
//   - Write the text uncompressed
//
// Use WriteOption functions to customize this behavior:
//   - WithAutoPopulateControls(false): don't modify ic
//   - WithDelimiters(d): re-delimit the output, writing d.Suffix after
//     every segment
//   - WithWriteCompression(comp): compress the output
func Encode(w io.Writer, ic *Interchange, opts ...WriteOption) error {
	cfg := newWriteConfig(opts)
	text, err := encodeInterchange(ic, cfg)
	if err != nil {
		return err
	}
	payload, err := compressPayload(cfg.compression, []byte(text))
	if err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// EncodeToString returns the wire text of ic. Compression options are
// ignored.
func EncodeToString(ic *Interchange, opts ...WriteOption) (string, error) {
	return encodeInterchange(ic, newWriteConfig(opts))
}

type encoder struct {
	b     strings.Builder
	d     Delimiters
	count int

	// keepBreaks writes decoded segments with their original line breaks.
	keepBreaks bool
}

func (e *encoder) segment(s *Segment) error {
	if err := checkSegment(s, e.d); err != nil {
		return err
	}
	appendSegment(&e.b, s, e.d, e.keepBreaks)
	e.count++
	return nil
}

func (e *encoder) node(n Node) error {
	switch n := n.(type) {
	case *Segment:
		return e.segment(n)
	case *Loop:
		if n == nil {
			return nil
		}
		for _, child := range n.Nodes {
			if err := e.node(child); err != nil {
				return err
			}
		}
		return nil
	case *Hierarchy:
		if n == nil {
			return nil
		}
		for _, hl := range n.Nodes {
			if err := e.segment(hl.HL); err != nil {
				return err
			}
			if err := e.node(hl.Body); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unexpected node %T", ErrValidation, n)
	}
}

func encodeInterchange(ic *Interchange, cfg writeConfig) (string, error) {
	if ic == nil {
		return "", fmt.Errorf("%w: interchange is nil", ErrValidation)
	}
	d := ic.Delimiters
	if cfg.delimiters != nil {
		d = *cfg.delimiters
	}
	if d.Element == "" {
		d = DefaultDelimiters
	}
	if err := d.validate(); err != nil {
		return "", err
	}

	e := &encoder{d: d, keepBreaks: cfg.delimiters == nil}
	if err := writeISA(&e.b, ic.ISA, d); err != nil {
		return "", err
	}
	for _, ta1 := range ic.TA1 {
		if err := e.segment(ta1); err != nil {
			return "", err
		}
	}
	for i, g := range ic.Groups {
		if err := e.group(g, cfg); err != nil {
			return "", fmt.Errorf("group %d: %w", i, err)
		}
	}
	if cfg.autoPopulate {
		ic.IEA = populate(ic.IEA, SpecIEA, strconv.Itoa(len(ic.Groups)), ic.ISA.Get(13))
	}
	if err := e.segment(ic.IEA); err != nil {
		return "", err
	}
	return e.b.String(), nil
}

func (e *encoder) group(g *Group, cfg writeConfig) error {
	if g == nil {
		return fmt.Errorf("%w: group is nil", ErrValidation)
	}
	if err := e.segment(g.GS); err != nil {
		return err
	}
	for i, tx := range g.Transactions {
		if err := e.transaction(tx, cfg); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	if cfg.autoPopulate {
		g.GE = populate(g.GE, SpecGE, strconv.Itoa(len(g.Transactions)), g.GS.Get(6))
	}
	return e.segment(g.GE)
}

func (e *encoder) transaction(tx *Transaction, cfg writeConfig) error {
	if tx == nil {
		return fmt.Errorf("%w: transaction is nil", ErrValidation)
	}
	start := e.count
	if err := e.segment(tx.ST); err != nil {
		return err
	}
	if err := e.node(tx.Body); err != nil {
		return err
	}
	if cfg.autoPopulate {
		tx.SE = populate(tx.SE, SpecSE, strconv.Itoa(e.count-start+1), tx.ST.Get(2))
	}
	return e.segment(tx.SE)
}

// populate fills the two elements of a trailer that are absent, creating
// the trailer when it is nil. Present empty elements are left alone.
func populate(s *Segment, spec *SegmentSpec, count, control string) *Segment {
	if s == nil {
		s = &Segment{Tag: spec.Tag, spec: spec}
	}
	if !s.Element(1).IsSet() {
		s.Set(1, count)
	}
	if !s.Element(2).IsSet() {
		s.Set(2, control)
	}
	return s
}
