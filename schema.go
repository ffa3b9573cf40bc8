package x12

import (
	"fmt"
	"slices"
)

// ElementSpec declares one element slot of a segment.
type ElementSpec struct {
	Name     string
	Required bool
}

// SegmentSpec declares a segment: its tag and ordered element slots.
//
// When Qualifiers is non-empty a segment only matches if its first element
// is one of the listed codes. Specs are immutable once declared and may be
// shared between concurrent decodes.
type SegmentSpec struct {
	Tag        string
	Name       string
	Elements   []ElementSpec
	Qualifiers []string
}

// Req declares a mandatory element.
func Req(name string) ElementSpec { return ElementSpec{Name: name, Required: true} }

// Opt declares an optional element.
func Opt(name string) ElementSpec { return ElementSpec{Name: name} }

func (s *SegmentSpec) minElements() int {
	n := 0
	for i, e := range s.Elements {
		if e.Required {
			n = i + 1
		}
	}
	return n
}

// Slot is one position of a loop body: a segment, a nested loop or an HL
// hierarchy, repeated between Min and Max times (Max 0 is unbounded).
type Slot struct {
	Segment   *SegmentSpec
	Loop      *LoopSpec
	Hierarchy *HierarchySpec
	Min, Max  int
}

// Mandatory is a segment that must occur exactly once.
func Mandatory(s *SegmentSpec) Slot { return Slot{Segment: s, Min: 1, Max: 1} }

// Optional is a segment that occurs at most once.
func Optional(s *SegmentSpec) Slot { return Slot{Segment: s, Max: 1} }

// Repeat is a repeated segment.
func Repeat(s *SegmentSpec, min, max int) Slot { return Slot{Segment: s, Min: min, Max: max} }

// LoopSlot is a nested, possibly repeated loop.
func LoopSlot(l *LoopSpec, min, max int) Slot { return Slot{Loop: l, Min: min, Max: max} }

// HLSlot is an HL hierarchy; min is 0 or 1.
func HLSlot(h *HierarchySpec, min int) Slot { return Slot{Hierarchy: h, Min: min, Max: 1} }

// LoopSpec declares a loop. A loop is triggered by its first slot, which
// must be a mandatory segment. Bracketed loops are instead delimited by
// LS/LE segments carrying ID.
type LoopSpec struct {
	ID        string
	Slots     []Slot
	Bracketed bool
}

// HierarchySpec declares the level codes accepted in an HL run.
type HierarchySpec struct {
	Levels []LevelSpec
}

// LevelSpec binds an HL level code to the detail loop that follows the HL.
type LevelSpec struct {
	Code string
	Name string
	Body *LoopSpec
}

func (h *HierarchySpec) level(code string) *LevelSpec {
	for i := range h.Levels {
		if h.Levels[i].Code == code {
			return &h.Levels[i]
		}
	}
	return nil
}

// TransactionSpec declares one transaction set. Body holds the slots between
// ST and SE.
type TransactionSpec struct {
	Code            string
	Name            string
	FunctionalGroup string
	Body            *LoopSpec
}

// Validate checks the schema is usable by the decoder.
func (t *TransactionSpec) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil transaction spec", ErrInvalidSchema)
	}
	if t.Code == "" {
		return fmt.Errorf("%w: transaction spec has no code", ErrInvalidSchema)
	}
	if t.Body == nil {
		return fmt.Errorf("%w: %s has no body", ErrInvalidSchema, t.Code)
	}
	return validateSlots(t.Code, t.Body.Slots, false)
}

func validateLoop(l *LoopSpec) error {
	if l.Bracketed {
		if l.ID == "" {
			return fmt.Errorf("%w: bracketed loop has no id", ErrInvalidSchema)
		}
		return validateSlots(l.ID, l.Slots, false)
	}
	return validateSlots(l.ID, l.Slots, true)
}

func validateSlots(owner string, slots []Slot, needTrigger bool) error {
	if needTrigger {
		if len(slots) == 0 || slots[0].Segment == nil || slots[0].Min < 1 {
			return fmt.Errorf("%w: loop %s must start with a mandatory segment", ErrInvalidSchema, owner)
		}
	}
	for i, s := range slots {
		kinds := 0
		if s.Segment != nil {
			kinds++
		}
		if s.Loop != nil {
			kinds++
		}
		if s.Hierarchy != nil {
			kinds++
		}
		if kinds != 1 {
			return fmt.Errorf("%w: %s slot %d must hold exactly one of segment, loop, hierarchy", ErrInvalidSchema, owner, i)
		}
		if s.Min < 0 || (s.Max != 0 && s.Max < s.Min) {
			return fmt.Errorf("%w: %s slot %d has bad cardinality %d..%d", ErrInvalidSchema, owner, i, s.Min, s.Max)
		}
		switch {
		case s.Segment != nil:
			if s.Segment.Tag == "" {
				return fmt.Errorf("%w: %s slot %d has no tag", ErrInvalidSchema, owner, i)
			}
		case s.Loop != nil:
			if err := validateLoop(s.Loop); err != nil {
				return err
			}
		case s.Hierarchy != nil:
			if len(s.Hierarchy.Levels) == 0 {
				return fmt.Errorf("%w: %s slot %d hierarchy has no levels", ErrInvalidSchema, owner, i)
			}
			for _, lv := range s.Hierarchy.Levels {
				if lv.Body == nil {
					return fmt.Errorf("%w: level %s has no body", ErrInvalidSchema, lv.Code)
				}
				if err := validateSlots(lv.Body.ID, lv.Body.Slots, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// SchemaSet maps transaction set codes to their declarations.
type SchemaSet map[string]*TransactionSpec

// NewSchemaSet validates specs and indexes them by code.
func NewSchemaSet(specs ...*TransactionSpec) (SchemaSet, error) {
	set := make(SchemaSet, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, ok := set[s.Code]; ok {
			return nil, fmt.Errorf("%w: duplicate transaction %s", ErrInvalidSchema, s.Code)
		}
		set[s.Code] = s
	}
	return set, nil
}

// MustSchemaSet is like NewSchemaSet but panics on error. It is intended for
// package-level schema tables.
func MustSchemaSet(specs ...*TransactionSpec) SchemaSet {
	set, err := NewSchemaSet(specs...)
	if err != nil {
		panic(err)
	}
	return set
}

// Codes returns the registered transaction codes, sorted.
func (s SchemaSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Envelope segments.
var (
	SpecISA = &SegmentSpec{Tag: "ISA", Name: "Interchange Control Header", Elements: []ElementSpec{
		Req("Authorization Information Qualifier"),
		Req("Authorization Information"),
		Req("Security Information Qualifier"),
		Req("Security Information"),
		Req("Interchange ID Qualifier"),
		Req("Interchange Sender ID"),
		Req("Interchange ID Qualifier"),
		Req("Interchange Receiver ID"),
		Req("Interchange Date"),
		Req("Interchange Time"),
		Req("Repetition Separator"),
		Req("Interchange Control Version Number"),
		Req("Interchange Control Number"),
		Req("Acknowledgment Requested"),
		Req("Interchange Usage Indicator"),
		Req("Component Element Separator"),
	}}
	SpecTA1 = &SegmentSpec{Tag: "TA1", Name: "Interchange Acknowledgment", Elements: []ElementSpec{
		Req("Interchange Control Number"),
		Req("Interchange Date"),
		Req("Interchange Time"),
		Req("Interchange Acknowledgment Code"),
		Req("Interchange Note Code"),
	}}
	SpecIEA = &SegmentSpec{Tag: "IEA", Name: "Interchange Control Trailer", Elements: []ElementSpec{
		Req("Number of Included Functional Groups"),
		Req("Interchange Control Number"),
	}}
	SpecGS = &SegmentSpec{Tag: "GS", Name: "Functional Group Header", Elements: []ElementSpec{
		Req("Functional Identifier Code"),
		Req("Application Sender's Code"),
		Req("Application Receiver's Code"),
		Req("Date"),
		Req("Time"),
		Req("Group Control Number"),
		Req("Responsible Agency Code"),
		Req("Version / Release / Industry Identifier Code"),
	}}
	SpecGE = &SegmentSpec{Tag: "GE", Name: "Functional Group Trailer", Elements: []ElementSpec{
		Req("Number of Transaction Sets Included"),
		Req("Group Control Number"),
	}}
	SpecST = &SegmentSpec{Tag: "ST", Name: "Transaction Set Header", Elements: []ElementSpec{
		Req("Transaction Set Identifier Code"),
		Req("Transaction Set Control Number"),
		Opt("Implementation Convention Reference"),
	}}
	SpecSE = &SegmentSpec{Tag: "SE", Name: "Transaction Set Trailer", Elements: []ElementSpec{
		Req("Number of Included Segments"),
		Req("Transaction Set Control Number"),
	}}
	SpecHL = &SegmentSpec{Tag: "HL", Name: "Hierarchical Level", Elements: []ElementSpec{
		Req("Hierarchical ID Number"),
		Opt("Hierarchical Parent ID Number"),
		Req("Hierarchical Level Code"),
		Opt("Hierarchical Child Code"),
	}}
	SpecLS = &SegmentSpec{Tag: "LS", Name: "Loop Header", Elements: []ElementSpec{
		Req("Loop Identifier Code"),
	}}
	SpecLE = &SegmentSpec{Tag: "LE", Name: "Loop Trailer", Elements: []ElementSpec{
		Req("Loop Identifier Code"),
	}}
)
