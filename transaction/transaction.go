// Package transaction declares X12 transaction set schemas for the x12
// decoder: 940 Warehouse Shipping Order, 997 Functional Acknowledgment,
// 856 Ship Notice/Manifest, 271 Eligibility Benefit Response and 277 Claim
// Status Response.
//
// The declarations are subsets of the published implementation guides: each
// lists the segments and loops in standard order with their mandatory
// elements, which is all the decoder needs. Field-level formats are not
// modeled.
package transaction

import x12 "github.com/apimeister/x12-types-sub000"

// All holds every transaction set in this package.
var All = x12.MustSchemaSet(X940, X997, X856, X271, X277)

func seg(tag, name string, elements ...x12.ElementSpec) *x12.SegmentSpec {
	return &x12.SegmentSpec{Tag: tag, Name: name, Elements: elements}
}

// qualified returns a copy of s that only matches when element 01 is one of
// codes.
func qualified(s *x12.SegmentSpec, codes ...string) *x12.SegmentSpec {
	q := *s
	q.Qualifiers = codes
	return &q
}
