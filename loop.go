package x12

import (
	"errors"
	"fmt"
)

// slots decodes a slot sequence into l. Each slot is tried by lookahead and
// repeated until the lookahead fails or Max is reached; only a slot that
// falls short of Min is an error.
func (c *cursor) slots(l *Loop, slots []Slot, depth int) error {
	for i := range slots {
		s := &slots[i]
		n := 0
		for s.Max == 0 || n < s.Max {
			node, err := c.slot(s, depth)
			if errors.Is(err, ErrNotThisTag) {
				break
			}
			if err != nil {
				return err
			}
			l.Nodes = append(l.Nodes, node)
			n++
		}
		if n < s.Min {
			found, err := c.peekTag()
			if err != nil {
				return err
			}
			return c.errorf(found, slotTrigger(s), ErrMissingSegment)
		}
	}
	return nil
}

func (c *cursor) slot(s *Slot, depth int) (Node, error) {
	switch {
	case s.Segment != nil:
		seg, err := c.segment(s.Segment)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case s.Loop != nil:
		l, err := c.loop(s.Loop, depth+1)
		if err != nil {
			return nil, err
		}
		return l, nil
	case s.Hierarchy != nil:
		h, err := c.hierarchy(s.Hierarchy, depth+1)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return nil, fmt.Errorf("%w: empty slot", ErrInvalidSchema)
}

// slotTrigger names the segment that starts s, for error messages.
func slotTrigger(s *Slot) string {
	switch {
	case s.Segment != nil:
		return s.Segment.Tag
	case s.Loop != nil && s.Loop.Bracketed:
		return SpecLS.Tag + "*" + s.Loop.ID
	case s.Loop != nil && len(s.Loop.Slots) > 0 && s.Loop.Slots[0].Segment != nil:
		return s.Loop.Slots[0].Segment.Tag
	case s.Hierarchy != nil:
		return SpecHL.Tag
	}
	return ""
}

func (c *cursor) checkDepth(depth int) error {
	if depth > c.limits.MaxDepth {
		tag, _ := c.peekTag()
		return c.errorf(tag, "", fmt.Errorf("%w: nesting deeper than %d", ErrLimitExceeded, c.limits.MaxDepth))
	}
	return nil
}

// loop decodes one occurrence of spec, or returns ErrNotThisTag if its
// trigger segment is not next.
func (c *cursor) loop(spec *LoopSpec, depth int) (*Loop, error) {
	if spec.Bracketed {
		return c.bracketed(spec, depth)
	}
	trigger := spec.Slots[0].Segment
	ok, err := c.lookahead(trigger.Tag, trigger.Qualifiers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotThisTag
	}
	if err := c.checkDepth(depth); err != nil {
		return nil, err
	}
	l := &Loop{ID: spec.ID}
	if err := c.slots(l, spec.Slots, depth); err != nil {
		return nil, err
	}
	return l, nil
}

// bracketed decodes an LS ... LE region. Segments between the declared
// body and LE still belong to the loop and are kept unschematized.
func (c *cursor) bracketed(spec *LoopSpec, depth int) (*Loop, error) {
	id := []string{spec.ID}
	ok, err := c.lookahead(SpecLS.Tag, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotThisTag
	}
	if err := c.checkDepth(depth); err != nil {
		return nil, err
	}
	ls, err := c.segmentMatching(SpecLS, id)
	if err != nil {
		return nil, err
	}
	l := &Loop{ID: spec.ID, Nodes: []Node{ls}}
	if err := c.slots(l, spec.Slots, depth); err != nil {
		return nil, err
	}
	for {
		ok, err := c.lookahead(SpecLE.Tag, id)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		tag, err := c.peekTag()
		if err != nil {
			return nil, err
		}
		if tag == "" || tag == SpecSE.Tag {
			return nil, c.errorf(tag, SpecLE.Tag+"*"+spec.ID, ErrMissingSegment)
		}
		seg, err := c.opaque()
		if err != nil {
			return nil, err
		}
		l.Nodes = append(l.Nodes, seg)
	}
	le, err := c.segmentMatching(SpecLE, id)
	if err != nil {
		return nil, err
	}
	l.Nodes = append(l.Nodes, le)
	return l, nil
}

// opaqueUntil consumes unschematized segments up to, not including, the
// next segment tagged stop.
func (c *cursor) opaqueUntil(l *Loop, stop string) error {
	for {
		tag, err := c.peekTag()
		if err != nil {
			return err
		}
		if tag == stop {
			return nil
		}
		if tag == "" {
			return c.errorf("", stop, ErrMissingSegment)
		}
		seg, err := c.opaque()
		if err != nil {
			return err
		}
		l.Nodes = append(l.Nodes, seg)
	}
}
