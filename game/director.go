package game

import (
	"sync"
	"time"
)

type Director interface {
	/**
	 * Attach the director to a game
	 */
	Init(*Game)

	/**
	 * Perform a single selection
	 */
	Act()

	/**
	 * Continue acting periodically, until End() is called
	 */
	ActContinuously()

	/**
	 * Stop acting
	 */
	End()
}

// BaseDirector drives a director's Act on a fixed interval. Directors embed
// it and implement ActContinuously/End on top of Run/Stop.
type BaseDirector struct {
	Interval time.Duration

	lock sync.Mutex
	done chan struct{}
}

func (base *BaseDirector) Run(act func()) {
	base.lock.Lock()
	defer base.lock.Unlock()

	if base.done != nil {
		return
	}
	done := make(chan struct{})
	base.done = done

	interval := base.Interval
	if interval <= 0 {
		interval = DefaultDirectorInterval
	}

	go func() {
		tick := time.NewTicker(interval)
		defer tick.Stop()

		for {
			select {
			case <-done:
				return
			case <-tick.C:
				act()
			}
		}
	}()
}

func (base *BaseDirector) Stop() {
	base.lock.Lock()
	defer base.lock.Unlock()

	if base.done != nil {
		close(base.done)
		base.done = nil
	}
}
