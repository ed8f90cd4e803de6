package event

import (
	"sync"
	"time"
)

// Queue accumulates events between polls. Safe for concurrent use: backends
// may append from their own goroutine while the session drains.
type Queue struct {
	mu    sync.Mutex
	recs  []*Record
	start time.Time
	now   func() time.Time
}

func NewQueue() *Queue {
	q := &Queue{now: time.Now}
	q.start = q.now()
	return q
}

// Appends the event stamped with the time elapsed since the queue was created.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.recs = append(q.recs, &Record{Time: q.now().Sub(q.start), Ev: ev})
}

// Appends the event with an explicit timestamp (backends that have their own clock).
func (q *Queue) PushAt(t time.Duration, ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.recs = append(q.recs, &Record{Time: t, Ev: ev})
}

// Returns all records in arrival order and leaves the queue empty. Never blocks.
func (q *Queue) Drain() []*Record {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.recs) == 0 {
		return nil
	}
	u := q.recs
	q.recs = nil
	return u
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.recs)
}
