package timer

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rocketscienceinc/tokenguess-backend/internal/entity"
)

const defaultStep = time.Second

// Countdown is an entity.Timer advanced one step per Tic. Observers are notified once,
// when the remaining time reaches zero.
type Countdown struct {
	mu sync.Mutex

	step      time.Duration
	remaining time.Duration
	running   bool
	done      chan struct{}

	observers []entity.TimerObserver
}

func NewCountdown(step time.Duration) *Countdown {
	if step <= 0 {
		step = defaultStep
	}

	done := make(chan struct{})
	close(done)

	return &Countdown{
		step: step,
		done: done,
	}
}

func (that *Countdown) Register(observer entity.TimerObserver) {
	if observer == nil {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.observers = append(that.observers, observer)
}

// SetFor arms the countdown with the given duration, re-arming it if already running.
func (that *Countdown) SetFor(duration time.Duration) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.running {
		that.done = make(chan struct{})
	}

	that.remaining = max(duration, 0)
	that.running = true
}

func (that *Countdown) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.disarm()
}

// Tic advances the countdown by one step. Stopped or expired countdowns ignore it.
func (that *Countdown) Tic() {
	that.mu.Lock()

	if !that.running {
		that.mu.Unlock()
		return
	}

	that.remaining -= that.step
	if that.remaining > 0 {
		that.mu.Unlock()
		return
	}

	that.remaining = 0
	that.disarm()
	observers := slices.Clone(that.observers)

	// observers may call back into Stop
	that.mu.Unlock()

	for _, observer := range observers {
		observer.Timeout()
	}
}

// Run tics every step until the countdown stops, expires or ctx is done.
func (that *Countdown) Run(ctx context.Context) {
	ticker := time.NewTicker(that.step)
	defer ticker.Stop()

	done := that.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			that.Tic()
		}
	}
}

// Done is closed when the current countdown is stopped or expires.
func (that *Countdown) Done() <-chan struct{} {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.done
}

func (that *Countdown) Remaining() time.Duration {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.remaining
}

func (that *Countdown) Running() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.running
}

func (that *Countdown) disarm() {
	if !that.running {
		return
	}

	that.running = false
	close(that.done)
}
