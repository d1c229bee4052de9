package hqueue

// Levels is the number of grey levels a Queue holds.
const Levels = 256

// Order is the direction in which a Queue serves its levels.
type Order int

const (
	// Ascending serves level 0 first.
	Ascending Order = iota
	// Descending serves level 255 first.
	Descending
)

// Queue is a hierarchical queue of pixel offsets.
type Queue struct {
	levels [Levels]FIFO
	order  Order
	water  int
	size   int
	popped int

	onDrain func(level, popped int)
}

// New returns an empty queue serving levels in the given order.
func New(order Order) *Queue {
	q := &Queue{order: order}
	q.Reset()
	return q
}

// OnDrain registers fn, called with the level and the number of offsets
// popped from it each time the water level leaves a level it served.
func (q *Queue) OnDrain(fn func(level, popped int)) {
	q.onDrain = fn
}

// Reset empties the queue and puts the water level at its start.
func (q *Queue) Reset() {
	for i := range q.levels {
		q.levels[i].Reset()
	}
	q.size = 0
	q.popped = 0
	q.water = 0
	if q.order == Descending {
		q.water = Levels - 1
	}
}

// Push queues p at level, clamped into 0..255 and to the water level.
func (q *Queue) Push(level, p int) {
	level = min(max(level, 0), Levels-1)
	if q.order == Ascending {
		level = max(level, q.water)
	} else {
		level = min(level, q.water)
	}
	q.levels[level].Push(p)
	q.size++
}

// Pop removes the next offset: the oldest one on the first non-empty level
// at or beyond the water level. It returns that level, which becomes the
// new water level. ok is false when the queue is empty.
func (q *Queue) Pop() (p, level int, ok bool) {
	lvl := q.Next()
	if lvl < 0 {
		return 0, 0, false
	}
	q.moveTo(lvl)
	p, _ = q.levels[lvl].Pop()
	q.size--
	q.popped++
	return p, lvl, true
}

// Next returns the level the next Pop would serve, or -1 when empty.
func (q *Queue) Next() int {
	if q.size == 0 {
		return -1
	}
	if q.order == Ascending {
		for l := q.water; l < Levels; l++ {
			if q.levels[l].Len() > 0 {
				return l
			}
		}
	} else {
		for l := q.water; l >= 0; l-- {
			if q.levels[l].Len() > 0 {
				return l
			}
		}
	}
	return -1
}

// Water returns the current water level.
func (q *Queue) Water() int {
	return q.water
}

// Len returns the number of queued offsets.
func (q *Queue) Len() int {
	return q.size
}

// Finish reports the last served level to the drain hook.
func (q *Queue) Finish() {
	q.moveTo(-1)
}

func (q *Queue) moveTo(level int) {
	if level == q.water {
		return
	}
	if q.popped > 0 && q.onDrain != nil {
		q.onDrain(q.water, q.popped)
	}
	q.popped = 0
	if level >= 0 {
		q.water = level
	}
}
