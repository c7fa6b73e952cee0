package schedule

import (
	"log/slog"
	"sync"
	"time"
)

// TaskOptions configures a periodic Task.
type TaskOptions struct {
	Name  string
	Every time.Duration
	Lock  sync.Locker // owner's lock; held while Run executes
	Run   func()      // one period's work
	After func()      // called after Lock is released, only when Run ran
}

// Task runs a callback every period until stopped.
//
// Task state is guarded by the owner's Lock: Start and Stop must be called
// with it held. Each Start opens a new generation; a callback from an older
// generation that was already in flight when Stop ran finds the generation
// changed and does nothing, so no tick fires after Stop returns.
type Task struct {
	sched Scheduler
	opts  TaskOptions

	gen     uint64
	timer   Timer
	running bool
}

// NewTask creates a stopped task.
func NewTask(s Scheduler, opts TaskOptions) *Task {
	if opts.Lock == nil {
		panic("schedule: task requires a lock")
	}
	if opts.Every <= 0 {
		panic("schedule: task period must be positive")
	}
	return &Task{sched: s, opts: opts}
}

// Start (re)starts the task. Any pending tick is cancelled first, so
// repeated starts never double-schedule.
func (t *Task) Start() {
	t.cancel()
	t.gen++
	t.running = true
	t.schedule(t.gen)
	slog.Debug("task started", "task", t.opts.Name, "every", t.opts.Every)
}

// Stop cancels the pending tick. Returns false if the task was not running.
func (t *Task) Stop() bool {
	if !t.running {
		return false
	}
	t.cancel()
	t.gen++
	t.running = false
	slog.Debug("task stopped", "task", t.opts.Name)
	return true
}

// Running reports whether the task is scheduled.
func (t *Task) Running() bool {
	return t.running
}

func (t *Task) cancel() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Task) schedule(gen uint64) {
	t.timer = t.sched.AfterFunc(t.opts.Every, func() { t.fire(gen) })
}

func (t *Task) fire(gen uint64) {
	t.opts.Lock.Lock()
	if !t.running || gen != t.gen {
		t.opts.Lock.Unlock()
		return
	}
	t.timer = nil
	t.opts.Run()
	// Run may have stopped or restarted the task
	if t.running && gen == t.gen {
		t.schedule(gen)
	}
	t.opts.Lock.Unlock()

	if t.opts.After != nil {
		t.opts.After()
	}
}
