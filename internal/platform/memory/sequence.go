package memory

// Sequence is a strictly increasing ID allocator. The zero value is ready to
// use: it starts at 0, so the first ID handed out is 1. IDs are never
// decremented or reused.
type Sequence struct {
	last int
}

// Next advances the sequence and returns the new ID.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}
