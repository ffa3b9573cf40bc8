// Package x12 decodes and encodes X12 EDI interchanges.
//
// An X12 interchange is a flat stream of tagged segments that carries
// business documents (purchase orders, ship notices, claims,
// acknowledgments). The package turns that stream into a tree shaped by a
// declared schema and writes the tree back to the identical bytes.
//
// # Wire Format Overview
//
// An interchange consists of:
//   - A fixed-width ISA header that also declares the delimiters
//   - Zero or more TA1 interchange acknowledgments
//   - Functional groups (GS ... GE), each holding transaction sets of one type
//   - Transaction sets (ST ... SE) whose bodies follow a schema of loops
//   - An IEA trailer
//
// Segments are written as TAG, then separator and value per element, then the
// segment terminator. Absent trailing elements are omitted with their
// separators. The element separator, component separator and terminator are
// whatever the ISA header uses; they may be any single character, including
// multi-byte ones.
//
// # Schemas
//
// A [TransactionSpec] declares the body of one transaction set as a sequence
// of [Slot] values: mandatory, optional or repeated segments, nested loops,
// LS/LE bracketed loops and HL hierarchies. The decoder is predictive: it
// looks at the next segment's tag to decide whether a slot is present and
// never backtracks over consumed input. When two slots could match the same
// segment, the first declared wins.
//
// Schemas are immutable once built and are shared freely between
// goroutines. Declarations for a few transaction sets live in the
// transaction subpackage.
//
// # Basic Usage
//
//	ic, rest, err := x12.DecodeString(text, x12.WithSchemas(transaction.All))
//	if err != nil {
//		var de *x12.DecodeError
//		if errors.As(err, &de) {
//			log.Printf("segment %d: %v", de.Segment, de)
//		}
//		return err
//	}
//	out, err := x12.EncodeToString(ic) // out == text[:len(text)-len(rest)]
//
// # Thread Safety
//
// Decoding and encoding are synchronous and keep no shared mutable state.
// Independent inputs may be decoded concurrently; see [DecodeBatch].
//
// # Security Considerations
//
// Input size, segment count, elements per segment and nesting depth are
// bounded by configurable [Limits]. Compressed input is capped at
// Limits.MaxInputSize after decompression.
package x12
