// Package history records previously shown card indices for back-navigation.
package history

// Stack is a LIFO of deck indices. The zero value is an empty stack.
type Stack struct {
	entries []int
}

// Push records i as the most recently left card.
func (s *Stack) Push(i int) {
	s.entries = append(s.entries, i)
}

// Pop removes and returns the most recent entry. ok is false if the stack
// is empty.
func (s *Stack) Pop() (i int, ok bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	last := len(s.entries) - 1
	i = s.entries[last]
	s.entries = s.entries[:last]
	return i, true
}

// Peek returns the most recent entry without removing it.
func (s *Stack) Peek() (i int, ok bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Indices returns a copy of the entries, oldest first.
func (s *Stack) Indices() []int {
	out := make([]int, len(s.entries))
	copy(out, s.entries)
	return out
}
