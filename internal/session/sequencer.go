package session

import "sync"

type groupLock struct {
	mu   sync.Mutex
	refs int
}

// Sequencer serializes work per group name. Different groups never wait on each other.
// Holding a group's lock across append and publish makes publish order match id order.
type Sequencer struct {
	mu     sync.Mutex
	groups map[string]*groupLock
}

func NewSequencer() *Sequencer {
	return &Sequencer{
		groups: make(map[string]*groupLock),
	}
}

func (q *Sequencer) Do(group string, fn func() error) error {
	l := q.acquire(group)
	defer q.release(group, l)

	l.mu.Lock()
	defer l.mu.Unlock()

	return fn()
}

func (q *Sequencer) acquire(group string) *groupLock {
	q.mu.Lock()
	defer q.mu.Unlock()

	l, ok := q.groups[group]
	if !ok {
		l = &groupLock{}
		q.groups[group] = l
	}
	l.refs++

	return l
}

// release drops the lock entry once nobody holds or waits for it.
func (q *Sequencer) release(group string, l *groupLock) {
	q.mu.Lock()
	defer q.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(q.groups, group)
	}
}
