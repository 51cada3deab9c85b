package game

import (
	"sync"
	"time"

	"github.com/gammazero/deque"
)

// Timer is a handle on a scheduled action.
type Timer interface {
	// Stop prevents the action from running. It returns false if the action
	// already ran or was already stopped.
	Stop() bool
}

// Scheduler runs an action once, after a delay.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Timer
}

// RealtimeScheduler schedules actions on the wall clock.
type RealtimeScheduler struct{}

func (RealtimeScheduler) AfterFunc(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}

// ManualScheduler only advances when told to. Actions run synchronously
// inside Advance, on the caller's goroutine.
type ManualScheduler struct {
	lock  sync.Mutex
	now   time.Duration
	seq   uint64
	tasks deque.Deque
}

type manualTask struct {
	scheduler *ManualScheduler
	due       time.Duration
	seq       uint64
	fn        func()
	done      bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (scheduler *ManualScheduler) AfterFunc(delay time.Duration, fn func()) Timer {
	scheduler.lock.Lock()
	defer scheduler.lock.Unlock()

	scheduler.seq++
	task := &manualTask{
		scheduler: scheduler,
		due:       scheduler.now + delay,
		seq:       scheduler.seq,
		fn:        fn,
	}
	scheduler.tasks.PushBack(task)
	return task
}

// Now returns the time elapsed since the scheduler was created
func (scheduler *ManualScheduler) Now() time.Duration {
	scheduler.lock.Lock()
	defer scheduler.lock.Unlock()
	return scheduler.now
}

// Pending returns the number of actions waiting to run
func (scheduler *ManualScheduler) Pending() int {
	scheduler.lock.Lock()
	defer scheduler.lock.Unlock()

	pending := 0
	for i := 0; i < scheduler.tasks.Len(); i++ {
		if !scheduler.tasks.At(i).(*manualTask).done {
			pending++
		}
	}
	return pending
}

// Advance moves the clock forward by d and runs every action that became due,
// in due order. It returns the number of actions run.
func (scheduler *ManualScheduler) Advance(d time.Duration) int {
	scheduler.lock.Lock()
	scheduler.now += d

	var due []*manualTask
	for n := scheduler.tasks.Len(); n > 0; n-- {
		task := scheduler.tasks.PopFront().(*manualTask)
		if task.done {
			continue
		}
		if task.due <= scheduler.now {
			task.done = true
			due = insertByDue(due, task)
		} else {
			scheduler.tasks.PushBack(task)
		}
	}
	scheduler.lock.Unlock()

	// Actions are free to take other locks, or schedule more actions
	for _, task := range due {
		task.fn()
	}
	return len(due)
}

func insertByDue(tasks []*manualTask, task *manualTask) []*manualTask {
	i := len(tasks)
	for i > 0 && (tasks[i-1].due > task.due || (tasks[i-1].due == task.due && tasks[i-1].seq > task.seq)) {
		i--
	}
	tasks = append(tasks, nil)
	copy(tasks[i+1:], tasks[i:])
	tasks[i] = task
	return tasks
}

func (task *manualTask) Stop() bool {
	task.scheduler.lock.Lock()
	defer task.scheduler.lock.Unlock()

	if task.done {
		return false
	}
	task.done = true
	return true
}
