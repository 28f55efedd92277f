// Package vcf validates the structure and content of VCF files.
package vcf

import "io"

// Line is one line of input and its 1-based position in the stream.
type Line struct {
	Number int
	Text   string
}

// LineSource produces lines in order.
type LineSource interface {
	// Next returns the next line, or io.EOF when the input is exhausted.
	Next() (Line, error)
}

// sliceSource serves lines from memory.
type sliceSource struct {
	lines []string
	next  int
}

// Lines returns a LineSource over the given lines, numbered from 1.
func Lines(lines ...string) LineSource {
	return &sliceSource{lines: lines}
}

func (s *sliceSource) Next() (Line, error) {
	if s.next >= len(s.lines) {
		return Line{}, io.EOF
	}
	s.next++
	return Line{Number: s.next, Text: s.lines[s.next-1]}, nil
}
