package x12

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate checks the envelope control structure of ic: trailer counts and
// the control numbers repeated between headers and trailers. It does not
// look at business content.
func Validate(ic *Interchange) error {
	if ic == nil {
		return fmt.Errorf("%w: interchange is nil", ErrValidation)
	}
	if ic.ISA == nil || ic.IEA == nil {
		return fmt.Errorf("%w: interchange envelope incomplete", ErrValidation)
	}
	if err := checkCount("IEA01", ic.IEA.Get(1), len(ic.Groups)); err != nil {
		return err
	}
	if err := checkControl("IEA02", ic.IEA.Get(2), "ISA13", ic.ISA.Get(13)); err != nil {
		return err
	}
	for i, g := range ic.Groups {
		if g == nil || g.GS == nil || g.GE == nil {
			return fmt.Errorf("%w: group %d envelope incomplete", ErrValidation, i)
		}
		if err := checkCount("GE01", g.GE.Get(1), len(g.Transactions)); err != nil {
			return fmt.Errorf("group %s: %w", g.GS.Get(6), err)
		}
		if err := checkControl("GE02", g.GE.Get(2), "GS06", g.GS.Get(6)); err != nil {
			return err
		}
		for _, tx := range g.Transactions {
			if tx == nil || tx.ST == nil || tx.SE == nil {
				return fmt.Errorf("%w: transaction envelope incomplete in group %s", ErrValidation, g.GS.Get(6))
			}
			if err := checkCount("SE01", tx.SE.Get(1), countSegments(tx)); err != nil {
				return fmt.Errorf("transaction %s: %w", tx.ControlNumber(), err)
			}
			if err := checkControl("SE02", tx.SE.Get(2), "ST02", tx.ST.Get(2)); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkCount(name, got string, want int) error {
	n, err := strconv.Atoi(strings.TrimSpace(got))
	if err != nil {
		return fmt.Errorf("%w: %s %q is not a number", ErrValidation, name, got)
	}
	if n != want {
		return fmt.Errorf("%w: %s is %d, counted %d", ErrValidation, name, n, want)
	}
	return nil
}

// checkControl compares control numbers numerically when both parse, so
// that a zero-padded ISA13 matches an unpadded IEA02.
func checkControl(name, got, refName, want string) error {
	if got == want {
		return nil
	}
	a, errA := strconv.ParseUint(strings.TrimSpace(got), 10, 64)
	b, errB := strconv.ParseUint(strings.TrimSpace(want), 10, 64)
	if errA == nil && errB == nil && a == b {
		return nil
	}
	return fmt.Errorf("%w: %s %q does not match %s %q", ErrValidation, name, got, refName, want)
}

// countSegments counts the segments of tx from ST through SE inclusive.
func countSegments(tx *Transaction) int {
	return 2 + countNode(tx.Body)
}

func countNode(n Node) int {
	switch n := n.(type) {
	case *Segment:
		return 1
	case *Loop:
		if n == nil {
			return 0
		}
		total := 0
		for _, child := range n.Nodes {
			total += countNode(child)
		}
		return total
	case *Hierarchy:
		if n == nil {
			return 0
		}
		total := 0
		for _, hl := range n.Nodes {
			total += 1 + countNode(hl.Body)
		}
		return total
	}
	return 0
}
