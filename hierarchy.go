package x12

import "errors"

// hierarchy decodes a run of HL nodes. Each HL is dispatched on its level
// code (HL03) to the level's detail loop. The run ends at the first segment
// that is not an HL or at an HL whose level code spec does not declare; that
// HL is left unconsumed for the caller.
func (c *cursor) hierarchy(spec *HierarchySpec, depth int) (*Hierarchy, error) {
	h := &Hierarchy{}
	for {
		m := c.mark()
		hl, err := c.segment(SpecHL)
		if errors.Is(err, ErrNotThisTag) {
			break
		}
		if err != nil {
			return nil, err
		}
		code := hl.Get(3)
		level := spec.level(code)
		if level == nil {
			c.reset(m)
			if c.log != nil {
				c.log.Debug("x12: hierarchy stopped at undeclared level", "level", code, "id", hl.Get(1), "segment", c.seg)
			}
			break
		}
		if err := c.checkDepth(depth); err != nil {
			return nil, err
		}
		body := &Loop{ID: level.Body.ID}
		if err := c.slots(body, level.Body.Slots, depth+1); err != nil {
			return nil, err
		}
		h.Nodes = append(h.Nodes, &HLNode{
			ID:     hl.Get(1),
			Parent: hl.Element(2),
			Level:  code,
			HL:     hl,
			Body:   body,
		})
	}
	if len(h.Nodes) == 0 {
		return nil, ErrNotThisTag
	}
	return h, nil
}
