package hqueue_test

import (
	"testing"

	"github.com/katalvlaran/lvmorph/hqueue"
)

// BenchmarkQueue_PushPop fills every level then drains the queue.
func BenchmarkQueue_PushPop(b *testing.B) {
	q := hqueue.New(hqueue.Ascending)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Reset()
		for p := 0; p < 1<<14; p++ {
			q.Push(p*37%hqueue.Levels, p)
		}
		for {
			if _, _, ok := q.Pop(); !ok {
				break
			}
		}
	}
}
