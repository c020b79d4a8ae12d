package parallel

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Task is a unit of work submitted to a Pool.
type Task func() error

// PanicError is the failure recorded when a task panics.
type PanicError struct {
	Value any    // Value passed to panic.
	Stack []byte // Stack of the panicking goroutine.
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: task panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is an error (e.g. runtime.Error).
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Pool runs tasks on a fixed set of worker goroutines draining a FIFO queue.
//
// A Pool is one-shot: construct it, Enqueue tasks, call Wait, discard it.
// Go has no destructors, so callers that may return early should
// `defer pool.Wait()`; Wait is idempotent.
//
// Example:
//
//	pool := parallel.NewPool(4)
//	for _, job := range jobs {
//	    pool.Enqueue(job)
//	}
//	if err := pool.Wait(); err != nil {
//	    return err
//	}
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []Task
	head    int
	stop    bool
	workers sync.WaitGroup

	errOnce sync.Once
	err     error

	waitOnce sync.Once
}

// NewPool starts n worker goroutines. n <= 0 means runtime.NumCPU().
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	p.workers.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

// Enqueue appends a task to the queue and wakes one idle worker.
// Safe for concurrent use. Panics if the pool has been stopped by Wait.
func (p *Pool) Enqueue(task Task) {
	p.mu.Lock()
	if p.stop {
		p.mu.Unlock()
		panic("parallel: Enqueue on a stopped pool")
	}
	p.tasks = append(p.tasks, task)
	p.mu.Unlock()
	p.cond.Signal()
}

// Wait stops the pool, lets the workers drain every queued task and blocks
// until all of them have exited. It returns the first task failure, if any.
// Everything done by the tasks happens before Wait returns.
func (p *Pool) Wait() error {
	p.waitOnce.Do(func() {
		p.mu.Lock()
		p.stop = true
		p.mu.Unlock()
		p.cond.Broadcast()
		p.workers.Wait()
	})
	return p.err
}

func (p *Pool) worker() {
	defer p.workers.Done()
	for {
		task, ok := p.next()
		if !ok {
			return
		}
		p.run(task)
	}
}

// next blocks until a task is available or the pool stops with an empty queue.
func (p *Pool) next() (Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for !p.stop && p.head == len(p.tasks) {
		p.cond.Wait()
	}
	if p.head == len(p.tasks) {
		return nil, false
	}

	task := p.tasks[p.head]
	p.tasks[p.head] = nil
	p.head++
	if p.head == len(p.tasks) {
		// Queue drained: reuse the backing array.
		p.tasks, p.head = p.tasks[:0], 0
	}
	return task, true
}

// run executes task outside the lock, recording an error or panic.
func (p *Pool) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.fail(&PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	if err := task(); err != nil {
		p.fail(err)
	}
}

// fail keeps the first failure only.
func (p *Pool) fail(err error) {
	p.errOnce.Do(func() {
		p.err = err
	})
}
