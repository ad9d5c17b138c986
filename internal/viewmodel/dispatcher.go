package viewmodel

import "sync"

// Dispatcher is a single-goroutine run loop standing in for the platform's
// UI thread. Callbacks handed to Dispatch run one at a time, in submission
// order, so anything that mutates the presentation surface stays on a single
// execution context.
type Dispatcher struct {
	mu      sync.Mutex
	jobs    chan func()
	done    chan struct{}
	stopped bool
}

// NewDispatcher starts the run loop.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		jobs: make(chan func(), 16),
		done: make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for job := range d.jobs {
		job()
	}
}

// Dispatch queues fn for execution on the run loop. Callbacks submitted
// after Stop are dropped.
func (d *Dispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.jobs <- fn
}

// Stop drains the queued callbacks and stops the run loop.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	d.mu.Unlock()
	<-d.done
}
