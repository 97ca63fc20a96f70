// Package typewriter animates a fixed list of phrases through an endless
// type, hold, delete, hold cycle, one rune at a time. The animator owns its
// cursor state and drives a display sink; it runs until its context is
// canceled.
package typewriter

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Hold multipliers applied to the base delay at the two cycle pauses.
const (
	fullHoldFactor  = 10
	emptyHoldFactor = 5
)

// Common construction errors
var (
	ErrNoPhrases  = errors.New("phrase list cannot be empty")
	ErrNoDisplay  = errors.New("display cannot be nil")
	ErrBadDelay   = errors.New("base delay must be positive")
	ErrNotRunning = errors.New("animator is not running")
)

// Display receives each animation frame.
type Display interface {
	// SetText replaces the displayed text with the given frame.
	SetText(text string)
}

// DisplayFunc adapts a plain function to the Display interface.
type DisplayFunc func(text string)

// SetText implements Display.
func (f DisplayFunc) SetText(text string) { f(text) }

// Animator cycles a display through a fixed phrase list. The cursor (phrase
// index and revealed length) is owned by the animation loop; no other
// goroutine touches it.
type Animator struct {
	phrases []string
	delay   time.Duration
	display Display

	index  int // current phrase, cyclic over phrases
	length int // revealed runes of the current phrase

	// sleep is injectable for tests; the default waits on a timer or the
	// context, whichever finishes first.
	sleep func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an Animator over the given phrases. It fails fast on a missing
// display or empty phrase list rather than animating nothing.
func New(phrases []string, delay time.Duration, display Display) (*Animator, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	if display == nil {
		return nil, ErrNoDisplay
	}
	if delay <= 0 {
		return nil, ErrBadDelay
	}

	return &Animator{
		phrases: phrases,
		delay:   delay,
		display: display,
		sleep:   sleepCtx,
	}, nil
}

// Run drives the animation until the context is canceled and returns the
// context's error. Each cycle reveals the current phrase rune by rune,
// holds it for 10x the base delay, deletes it rune by rune, holds the empty
// frame for 5x the base delay, then advances to the next phrase, wrapping
// after the last.
func (a *Animator) Run(ctx context.Context) error {
	for {
		phrase := []rune(a.phrases[a.index])

		// Type.
		for a.length = 1; a.length <= len(phrase); a.length++ {
			a.display.SetText(string(phrase[:a.length]))
			if err := a.sleep(ctx, a.delay); err != nil {
				return err
			}
		}

		if err := a.sleep(ctx, fullHoldFactor*a.delay); err != nil {
			return err
		}

		// Delete.
		for a.length = len(phrase) - 1; a.length >= 0; a.length-- {
			a.display.SetText(string(phrase[:a.length]))
			if err := a.sleep(ctx, a.delay); err != nil {
				return err
			}
		}

		if err := a.sleep(ctx, emptyHoldFactor*a.delay); err != nil {
			return err
		}

		a.index = (a.index + 1) % len(a.phrases)
	}
}

// Start launches the animation in a background goroutine. Use Stop to cancel
// it and wait for the loop to exit.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return // already running
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		_ = a.Run(ctx)
	}()
}

// Stop cancels a running animation and waits for the loop to exit. Returns
// ErrNotRunning if Start was never called.
func (a *Animator) Stop() error {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel == nil {
		return ErrNotRunning
	}
	cancel()
	a.wg.Wait()
	return nil
}

// sleepCtx waits for the duration or until the context is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
