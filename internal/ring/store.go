package ring

import (
	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/geometry"
)

type Segment struct {
	On    bool
	Color color.RGB
}

type Segments [geometry.Segments]Segment

// AllOn reports whether every segment is lit.
func (s Segments) AllOn() bool {
	for _, seg := range s {
		if !seg.On {
			return false
		}
	}
	return true
}

func (s Segments) LitCount() int {
	n := 0
	for _, seg := range s {
		if seg.On {
			n++
		}
	}
	return n
}

// Store holds the on/off state and last applied colour of each segment.
// Turning a segment off never forgets its colour.
type Store struct {
	segments Segments
}

func NewStore(defaultColor color.RGB) *Store {
	s := &Store{}
	for i := range s.segments {
		s.segments[i] = Segment{Color: defaultColor}
	}
	return s
}

func validIndex(i int) bool { return i >= 0 && i < geometry.Segments }

// Set updates one segment. A nil colour, or on == false, keeps the stored
// colour. Out of range indices are ignored.
func (s *Store) Set(i int, on bool, c *color.RGB) {
	if !validIndex(i) {
		return
	}
	s.segments[i] = apply(s.segments[i], on, c)
}

// SetAll applies Set's rule to every segment. The new state is built on a
// copy and swapped in with a single assignment.
func (s *Store) SetAll(on bool, c *color.RGB) {
	next := s.segments
	for i := range next {
		next[i] = apply(next[i], on, c)
	}
	s.segments = next
}

// Get returns a copy of segment i.
func (s *Store) Get(i int) (Segment, bool) {
	if !validIndex(i) {
		return Segment{}, false
	}
	return s.segments[i], true
}

func (s *Store) Snapshot() Segments { return s.segments }

func (s *Store) AllOn() bool { return s.segments.AllOn() }

func (s *Store) LitCount() int { return s.segments.LitCount() }

func apply(seg Segment, on bool, c *color.RGB) Segment {
	seg.On = on
	if on && c != nil {
		seg.Color = *c
	}
	return seg
}
