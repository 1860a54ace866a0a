package linecharts

import (
	"github.com/gogpu/gg"
)

// scratch is a reusable buffer of mapped points. It is reset before each
// series and never shared between goroutines.
type scratch struct {
	points  []gg.Point
	indices []int
	segment []gg.Point
}

func (s *scratch) reset(n int) {
	if cap(s.points) < n {
		s.points = make([]gg.Point, 0, n)
		s.indices = make([]int, 0, n)
	}
	s.points = s.points[:0]
	s.indices = s.indices[:0]
}

func (s *scratch) push(index int, p gg.Point) {
	s.points = append(s.points, p)
	s.indices = append(s.indices, index)
}

func (s *scratch) len() int {
	return len(s.points)
}

// segmentBuffer returns a buffer of n points reused between calls.
func (s *scratch) segmentBuffer(n int) []gg.Point {
	if cap(s.segment) < n {
		s.segment = make([]gg.Point, n)
	}
	return s.segment[:n]
}
