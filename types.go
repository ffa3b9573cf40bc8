package x12

import "strings"

// Value is a single element value. The zero Value is absent, which is
// distinct from a present empty string.
type Value struct {
	s   string
	set bool
}

// Some returns a present value.
func Some(s string) Value { return Value{s: s, set: true} }

func (v Value) Get() (string, bool) { return v.s, v.set }

func (v Value) IsSet() bool { return v.set }

// String returns the value, or "" when absent.
func (v Value) String() string { return v.s }

// Components splits a composite element on the component separator.
// An absent value has no components.
func (v Value) Components(d Delimiters) []string {
	if !v.set {
		return nil
	}
	return strings.Split(v.s, d.Component)
}

// Segment is one decoded record: a tag and its element slots.
type Segment struct {
	Tag      string
	Elements []Value

	spec *SegmentSpec

	// brk holds the line breaks read after the terminator when they differ
	// from Delimiters.Suffix.
	brk    string
	brkSet bool
}

func (s *Segment) keepBreak(brk, suffix string) {
	if brk != suffix {
		s.brk, s.brkSet = brk, true
	}
}

// NewSegment builds a segment with present values for every element.
func NewSegment(tag string, elements ...string) *Segment {
	s := &Segment{Tag: tag, Elements: make([]Value, len(elements))}
	for i, e := range elements {
		s.Elements[i] = Some(e)
	}
	return s
}

// Element returns the i-th element using X12 reference numbering (ST01 is
// Element(1)). Out-of-range positions are absent.
func (s *Segment) Element(i int) Value {
	if s == nil || i < 1 || i > len(s.Elements) {
		return Value{}
	}
	return s.Elements[i-1]
}

// Get is shorthand for Element(i).String().
func (s *Segment) Get(i int) string { return s.Element(i).String() }

// Set stores a present value at reference position i, growing the slot list
// with absent values as needed.
func (s *Segment) Set(i int, v string) {
	for len(s.Elements) < i {
		s.Elements = append(s.Elements, Value{})
	}
	s.Elements[i-1] = Some(v)
}

// Spec returns the schema the segment was decoded with, or nil.
func (s *Segment) Spec() *SegmentSpec { return s.spec }

// Node is a decoded tree node: *Segment, *Loop or *Hierarchy.
type Node interface {
	isNode()
}

func (*Segment) isNode()   {}
func (*Loop) isNode()      {}
func (*Hierarchy) isNode() {}

// Loop is a decoded loop body. Nodes are kept in document order, which is
// also schema order.
type Loop struct {
	ID    string
	Nodes []Node
}

// Segment returns the first direct child segment with tag, or nil.
func (l *Loop) Segment(tag string) *Segment {
	for _, n := range l.Nodes {
		if s, ok := n.(*Segment); ok && s.Tag == tag {
			return s
		}
	}
	return nil
}

// Segments returns every direct child segment with tag.
func (l *Loop) Segments(tag string) []*Segment {
	var out []*Segment
	for _, n := range l.Nodes {
		if s, ok := n.(*Segment); ok && s.Tag == tag {
			out = append(out, s)
		}
	}
	return out
}

// Loops returns every direct child loop with id.
func (l *Loop) Loops(id string) []*Loop {
	var out []*Loop
	for _, n := range l.Nodes {
		if sub, ok := n.(*Loop); ok && sub.ID == id {
			out = append(out, sub)
		}
	}
	return out
}

// Hierarchy returns the first direct child hierarchy, or nil.
func (l *Loop) Hierarchy() *Hierarchy {
	for _, n := range l.Nodes {
		if h, ok := n.(*Hierarchy); ok {
			return h
		}
	}
	return nil
}

// Hierarchy is a run of HL nodes. Nodes is in document order.
type Hierarchy struct {
	Nodes []*HLNode
}

// HLNode is one hierarchical level with its detail segments.
type HLNode struct {
	ID     string
	Parent Value
	Level  string
	HL     *Segment
	Body   *Loop
}

// ByLevel returns the nodes with level code in document order.
func (h *Hierarchy) ByLevel(code string) []*HLNode {
	var out []*HLNode
	for _, n := range h.Nodes {
		if n.Level == code {
			out = append(out, n)
		}
	}
	return out
}

// Levels buckets the nodes by level code.
func (h *Hierarchy) Levels() map[string][]*HLNode {
	m := make(map[string][]*HLNode)
	for _, n := range h.Nodes {
		m[n.Level] = append(m[n.Level], n)
	}
	return m
}

// Transaction is one transaction set (ST ... SE).
type Transaction struct {
	ST   *Segment
	Body *Loop
	SE   *Segment
}

// Code returns the transaction set identifier (ST01).
func (t *Transaction) Code() string { return t.ST.Get(1) }

// ControlNumber returns the transaction set control number (ST02).
func (t *Transaction) ControlNumber() string { return t.ST.Get(2) }

// Group is one functional group (GS ... GE). Every transaction in a group is
// decoded with the same bound Schema; Schema is nil for opaque groups.
type Group struct {
	GS           *Segment
	Schema       *TransactionSpec
	Transactions []*Transaction
	GE           *Segment
}

// Interchange is the outermost envelope (ISA ... IEA).
type Interchange struct {
	Delimiters Delimiters
	ISA        *Segment
	TA1        []*Segment
	Groups     []*Group
	IEA        *Segment
}

// ControlNumber returns the interchange control number (ISA13).
func (ic *Interchange) ControlNumber() string { return ic.ISA.Get(13) }
