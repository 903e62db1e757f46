// ABOUTME: Scheduler abstraction for delay timers and zero-delay deferrals
// ABOUTME: Posted funnels real timers onto a host event loop; Manual is a virtual clock

package loop

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call was prevented;
	// stopping a fired or stopped timer is a no-op returning false.
	Stop() bool
}

// Scheduler runs callbacks later on the host's event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Defer schedules fn with zero delay.
func Defer(s Scheduler, fn func()) Timer {
	return s.AfterFunc(0, fn)
}

// Posted is a Scheduler backed by time.AfterFunc whose callbacks are handed
// to post, so they run on the goroutine that drains the host loop.
type Posted struct {
	post func(func())
}

// NewPosted creates a Posted scheduler.
func NewPosted(post func(func())) *Posted {
	return &Posted{post: post}
}

type postedTimer struct {
	t        *time.Timer
	canceled atomic.Bool
	done     atomic.Bool
}

func (p *postedTimer) Stop() bool {
	if p.done.Load() {
		return false
	}
	if p.canceled.Swap(true) {
		return false
	}
	p.t.Stop()
	return true
}

// AfterFunc implements Scheduler.
func (s *Posted) AfterFunc(d time.Duration, fn func()) Timer {
	pt := &postedTimer{}
	pt.t = time.AfterFunc(d, func() {
		s.post(func() {
			if pt.canceled.Load() {
				return
			}
			pt.done.Store(true)
			fn()
		})
	})
	return pt
}

// Manual is a deterministic Scheduler driven by Advance. Callbacks run on
// the goroutine calling Advance, in due-time then scheduling order.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m       *Manual
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTask) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManual creates a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{m: m, due: m.now + d, seq: m.seq, fn: fn}
	m.seq++
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every callback that comes
// due, including ones scheduled by callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		t := m.next(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// Flush runs every callback already due at the current time.
func (m *Manual) Flush() {
	m.Advance(0)
}

func (m *Manual) next(target time.Duration) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	m.tasks = live

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	if len(m.tasks) == 0 || m.tasks[0].due > target {
		return nil
	}
	t := m.tasks[0]
	t.fired = true
	if t.due > m.now {
		m.now = t.due
	}
	return t
}

// Pending returns the number of callbacks not yet run or stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}
