package hqueue

// FIFO is a first-in first-out queue of pixel offsets.
// The zero value is an empty queue ready to use.
type FIFO struct {
	items []int
	head  int
}

// Push appends p.
func (f *FIFO) Push(p int) {
	f.items = append(f.items, p)
}

// Pop removes and returns the oldest offset. ok is false when empty.
func (f *FIFO) Pop() (p int, ok bool) {
	if f.head >= len(f.items) {
		return 0, false
	}
	p = f.items[f.head]
	f.head++
	if f.head == len(f.items) {
		// drained: reuse the backing array
		f.items = f.items[:0]
		f.head = 0
	}
	return p, true
}

// Len returns the number of queued offsets.
func (f *FIFO) Len() int {
	return len(f.items) - f.head
}

// Reset empties the queue, keeping its capacity.
func (f *FIFO) Reset() {
	f.items = f.items[:0]
	f.head = 0
}
