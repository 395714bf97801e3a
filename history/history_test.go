package history

import (
	"testing"

	"github.com/flimzy/diff"
)

func TestStack(t *testing.T) {
	var s Stack
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on an empty stack should fail")
	}
	if _, ok := s.Peek(); ok {
		t.Fatal("Peek on an empty stack should fail")
	}
	s.Push(0)
	s.Push(3)
	s.Push(1)
	if d := diff.Interface([]int{0, 3, 1}, s.Indices()); d != nil {
		t.Error(d)
	}
	if i, ok := s.Peek(); !ok || i != 1 {
		t.Errorf("Unexpected peek result %d/%t", i, ok)
	}
	if i, _ := s.Pop(); i != 1 {
		t.Errorf("Expected 1, got %d", i)
	}
	if i, _ := s.Pop(); i != 3 {
		t.Errorf("Expected 3, got %d", i)
	}
	if s.Len() != 1 {
		t.Errorf("Unexpected length %d", s.Len())
	}
}

func TestClear(t *testing.T) {
	var s Stack
	s.Push(1)
	s.Push(2)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected an empty stack, got %v", s.Indices())
	}
	s.Push(4)
	if d := diff.Interface([]int{4}, s.Indices()); d != nil {
		t.Error(d)
	}
}

func TestIndicesIsACopy(t *testing.T) {
	var s Stack
	s.Push(1)
	out := s.Indices()
	out[0] = 7
	if i, _ := s.Peek(); i != 1 {
		t.Error("Stack was modified through Indices()")
	}
}
