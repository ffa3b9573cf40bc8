package x12

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Decode reads every interchange in r.
//
// The decoding process:
//  1. Reads at most Limits.MaxInputSize bytes
//  2. Unwraps ZIP, Zstandard, LZ4 or Brotli compression (see [WithReadCompression])
//  3. Sniffs the delimiters of each interchange from its ISA header
//  4. Decodes groups and transaction sets against the schemas from [WithSchemas]
//
// Decode returns a *DecodeError wrapping ErrInvalidHeader, ErrMissingSegment,
// ErrMissingElement and friends for structural failures, and ErrLimitExceeded
// if any limit is exceeded.
func Decode(r io.Reader, opts ...ReadOption) ([]*Interchange, error) {
	cfg := newReadConfig(opts)
	data, err := readAll(io.LimitReader(r, cfg.limits.MaxInputSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > cfg.limits.MaxInputSize {
		return nil, fmt.Errorf("%w: input larger than %d bytes", ErrLimitExceeded, cfg.limits.MaxInputSize)
	}
	data, err = decompressPayload(cfg.compression, data, cfg.limits.MaxInputSize)
	if err != nil {
		return nil, err
	}
	return decodeAll(string(data), cfg)
}

// DecodeString decodes the interchange at the start of input and returns it
// with the unconsumed rest of input.
func DecodeString(input string, opts ...ReadOption) (*Interchange, string, error) {
	return decodeInterchange(input, newReadConfig(opts))
}

// DecodeAll decodes consecutive interchanges until input is exhausted.
func DecodeAll(input string, opts ...ReadOption) ([]*Interchange, error) {
	return decodeAll(input, newReadConfig(opts))
}

func decodeAll(input string, cfg readConfig) ([]*Interchange, error) {
	var out []*Interchange
	rest := strings.TrimLeft(input, " \t\r\n")
	for rest != "" {
		ic, r, err := decodeInterchange(rest, cfg)
		if err != nil {
			return nil, fmt.Errorf("interchange %d: %w", len(out), err)
		}
		out = append(out, ic)
		rest = strings.TrimLeft(r, " \t\r\n")
	}
	return out, nil
}

func decodeInterchange(input string, cfg readConfig) (*Interchange, string, error) {
	d, isa, n, err := readISA(input)
	if err != nil {
		return nil, input, err
	}
	c := &cursor{in: input, pos: n, seg: 1, d: d, limits: cfg.limits, log: cfg.logger}
	ic := &Interchange{Delimiters: d, ISA: isa}

	for {
		ta1, err := c.segment(SpecTA1)
		if errors.Is(err, ErrNotThisTag) {
			break
		}
		if err != nil {
			return nil, input, err
		}
		ic.TA1 = append(ic.TA1, ta1)
	}
	for {
		ok, err := c.lookahead(SpecGS.Tag, nil)
		if err != nil {
			return nil, input, err
		}
		if !ok {
			break
		}
		g, err := c.group(cfg)
		if err != nil {
			return nil, input, err
		}
		ic.Groups = append(ic.Groups, g)
	}
	if ic.IEA, err = c.require(SpecIEA); err != nil {
		return nil, input, err
	}
	if cfg.validate {
		if err := Validate(ic); err != nil {
			return nil, input, err
		}
	}
	return ic, c.rest(), nil
}

func (c *cursor) group(cfg readConfig) (*Group, error) {
	gs, err := c.require(SpecGS)
	if err != nil {
		return nil, err
	}
	g := &Group{GS: gs}
	for {
		ok, err := c.lookahead(SpecST.Tag, nil)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tx, err := c.transaction(g, cfg)
		if err != nil {
			return nil, err
		}
		g.Transactions = append(g.Transactions, tx)
	}
	if len(g.Transactions) == 0 {
		found, err := c.peekTag()
		if err != nil {
			return nil, err
		}
		return nil, c.errorf(found, SpecST.Tag, ErrMissingSegment)
	}
	if g.GE, err = c.require(SpecGE); err != nil {
		return nil, err
	}
	return g, nil
}

// transaction decodes one ST ... SE. The first transaction of a group binds
// the group's schema; later ones must carry the same code.
func (c *cursor) transaction(g *Group, cfg readConfig) (*Transaction, error) {
	raw, _, _, err := c.peek()
	if err != nil {
		return nil, err
	}
	code := firstElement(raw, c.d.Element)
	spec := cfg.schemas[code]
	if len(g.Transactions) == 0 {
		if spec == nil && !cfg.opaque {
			return nil, c.errorf(SpecST.Tag, "", fmt.Errorf("%w: %q", ErrUnknownTransaction, code))
		}
		g.Schema = spec
		if c.log != nil {
			c.log.Debug("x12: group bound", "functional_id", g.GS.Get(1), "control", g.GS.Get(6), "transaction", code, "schema", spec != nil)
		}
	} else if bound := g.Transactions[0].Code(); code != bound {
		return nil, c.errorf(SpecST.Tag, "", fmt.Errorf("%w: %q in a group of %q", ErrSchemaMismatch, code, bound))
	}

	st, err := c.require(SpecST)
	if err != nil {
		return nil, err
	}
	tx := &Transaction{ST: st, Body: &Loop{ID: code}}
	if spec != nil {
		err = c.slots(tx.Body, spec.Body.Slots, 1)
	} else {
		err = c.opaqueUntil(tx.Body, SpecSE.Tag)
	}
	if err != nil {
		return nil, err
	}
	if tx.SE, err = c.require(SpecSE); err != nil {
		return nil, err
	}
	if c.log != nil {
		c.log.Debug("x12: transaction decoded", "code", code, "control", st.Get(2), "segments", countSegments(tx))
	}
	return tx, nil
}
