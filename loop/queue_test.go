package loop

import (
	"sync"
	"testing"
)

func TestQueueDrainIsFIFO(t *testing.T) {
	var q actionQueue
	var got []int
	for i := 0; i < 10; i++ {
		i := i
		q.enqueue(func() { got = append(got, i) })
	}
	for _, a := range q.drain() {
		a()
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("drain order %v not FIFO", got)
		}
	}
}

func TestQueueEnqueueDuringDrainDefers(t *testing.T) {
	var q actionQueue
	ran := 0
	q.enqueue(func() {
		ran++
		q.enqueue(func() { ran++ }) // feedback action
	})
	for _, a := range q.drain() {
		a()
	}
	if ran != 1 {
		t.Fatalf("feedback action ran in the same drain: ran=%d", ran)
	}
	if q.len() != 1 {
		t.Fatalf("feedback action not deferred: len=%d", q.len())
	}
	for _, a := range q.drain() {
		a()
	}
	if ran != 2 {
		t.Fatalf("deferred action did not run on next drain: ran=%d", ran)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	var q actionQueue
	const producers, each = 8, 100
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.enqueue(func() {})
			}
		}()
	}
	wg.Wait()
	if got := len(q.drain()); got != producers*each {
		t.Fatalf("drained %d actions, want %d", got, producers*each)
	}
}

func TestQueuePerProducerOrderSurvivesInterleaving(t *testing.T) {
	var q actionQueue
	type rec struct{ producer, seq int }
	var mu sync.Mutex
	var got []rec

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				i := i
				q.enqueue(func() {
					mu.Lock()
					got = append(got, rec{p, i})
					mu.Unlock()
				})
			}
		}()
	}
	wg.Wait()
	for _, a := range q.drain() {
		a()
	}

	last := map[int]int{}
	for _, r := range got {
		if prev, ok := last[r.producer]; ok && r.seq <= prev {
			t.Fatalf("producer %d reordered: %d after %d", r.producer, r.seq, prev)
		}
		last[r.producer] = r.seq
	}
}
