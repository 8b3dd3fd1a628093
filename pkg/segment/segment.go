// Package segment defines the caller-facing output of an analysis: a tree of
// byte ranges annotated with semantic type and decoded value, and the builder
// that derives it from a decode trace.
package segment

// Segment annotates one byte range of the source file. Segments are immutable
// once built and marshal losslessly to JSON.
type Segment struct {
	Range    [2]int64       `json:"range"`
	Type     string         `json:"type"`
	Value    any            `json:"value"`
	Children []*Segment     `json:"children,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// New returns a segment covering [start, end).
func New(start, end int64, typ string, value any) *Segment {
	return &Segment{Range: [2]int64{start, end}, Type: typ, Value: value}
}

// Len returns the segment length in bytes.
func (s *Segment) Len() int64 {
	return s.Range[1] - s.Range[0]
}
