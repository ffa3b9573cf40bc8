package x12

type Limits struct {
	MaxInputSize int64 // bytes read from an io.Reader, after decompression
	MaxSegments  int   // per interchange, ISA included
	MaxElements  int   // per segment
	MaxDepth     int   // loop and hierarchy nesting
}

func defaultLimits() Limits {
	return Limits{
		MaxInputSize: 256 << 20, // 256 MiB
		MaxSegments:  10_000_000,
		MaxElements:  512,
		MaxDepth:     32,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxInputSize == 0 {
		l.MaxInputSize = d.MaxInputSize
	}
	if l.MaxSegments == 0 {
		l.MaxSegments = d.MaxSegments
	}
	if l.MaxElements == 0 {
		l.MaxElements = d.MaxElements
	}
	if l.MaxDepth == 0 {
		l.MaxDepth = d.MaxDepth
	}
	return l
}
