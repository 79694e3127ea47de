package queue

import (
	"github.com/edwingeng/deque"
)

// intStack is a LIFO buffer of int32 whose top is the back of the
// underlying deque.
type intStack struct {
	d deque.Deque
}

func newIntStack() *intStack {
	return &intStack{d: deque.NewDeque()}
}

func (s *intStack) push(v int32) {
	s.d.PushBack(v)
}

// pop must not be called on an empty stack.
func (s *intStack) pop() int32 {
	return s.d.PopBack().(int32)
}

// top must not be called on an empty stack.
func (s *intStack) top() int32 {
	return s.d.Back().(int32)
}

func (s *intStack) empty() bool {
	return s.d.Empty()
}

func (s *intStack) len() int {
	return s.d.Len()
}

// bottomUp returns the elements from bottom to top.
func (s *intStack) bottomUp() []int32 {
	values := make([]int32, 0, s.d.Len())
	s.d.Range(func(_ int, v deque.Elem) bool {
		values = append(values, v.(int32))
		return true
	})
	return values
}
