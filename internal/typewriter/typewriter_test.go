package typewriter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameRecorder captures every frame pushed to the display.
type frameRecorder struct {
	frames []string
}

func (r *frameRecorder) SetText(text string) {
	r.frames = append(r.frames, text)
}

// runSteps runs the animator with an instant fake sleep that records each
// wait and stops the loop after n sleeps.
func runSteps(t *testing.T, a *Animator, n int) []time.Duration {
	t.Helper()

	var waits []time.Duration
	a.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		if len(waits) >= n {
			return context.Canceled
		}
		return nil
	}

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	return waits
}

func TestNewValidation(t *testing.T) {
	display := &frameRecorder{}

	_, err := New(nil, time.Millisecond, display)
	assert.ErrorIs(t, err, ErrNoPhrases)

	_, err = New([]string{"go"}, time.Millisecond, nil)
	assert.ErrorIs(t, err, ErrNoDisplay)

	_, err = New([]string{"go"}, 0, display)
	assert.ErrorIs(t, err, ErrBadDelay)
}

func TestCycleTrace(t *testing.T) {
	display := &frameRecorder{}
	d := 10 * time.Millisecond
	a, err := New([]string{"go", "no"}, d, display)
	require.NoError(t, err)

	// One full cycle of "go" is 6 sleeps: 2 type steps, full hold,
	// 2 delete steps, empty hold. Run a cycle and a bit of the next phrase.
	waits := runSteps(t, a, 8)

	assert.Equal(t, []string{"g", "go", "g", "", "n", "no"}, display.frames)
	assert.Equal(t, []time.Duration{
		d, d, // typing "g", "go"
		10 * d, // hold full phrase
		d, d, // deleting back to "g", ""
		5 * d, // hold empty
		d, d, // next phrase "n", "no"
	}, waits)
}

func TestPhraseOrderWrapsAround(t *testing.T) {
	display := &frameRecorder{}
	a, err := New([]string{"ab", "cd"}, time.Millisecond, display)
	require.NoError(t, err)

	// Two full cycles (6 sleeps each) plus the first frame of the wrap.
	runSteps(t, a, 13)

	assert.Equal(t, []string{
		"a", "ab", "a", "",
		"c", "cd", "c", "",
		"a", // wrapped back to the first phrase
	}, display.frames)
	assert.Equal(t, 0, a.index)
}

func TestRevealLengthsStepByOne(t *testing.T) {
	display := &frameRecorder{}
	a, err := New([]string{"chores"}, time.Millisecond, display)
	require.NoError(t, err)

	// Exactly one cycle: 6 type + hold + 6 delete + hold.
	runSteps(t, a, 14)

	require.Len(t, display.frames, 12)
	for i := 0; i < 6; i++ {
		assert.Len(t, display.frames[i], i+1, "type step %d", i)
	}
	for i := 6; i < 12; i++ {
		assert.Len(t, display.frames[i], 11-i, "delete step %d", i)
	}
}

func TestRunHonorsContextDuringRealSleep(t *testing.T) {
	display := &frameRecorder{}
	a, err := New([]string{"a very long phrase"}, time.Hour, display)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestStartStop(t *testing.T) {
	display := &frameRecorder{}
	a, err := New([]string{"go"}, time.Millisecond, display)
	require.NoError(t, err)

	assert.ErrorIs(t, a.Stop(), ErrNotRunning)

	a.Start()
	// Starting twice is a no-op rather than a second loop.
	a.Start()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, a.Stop())

	assert.NotEmpty(t, display.frames)
	assert.ErrorIs(t, a.Stop(), ErrNotRunning)
}

func TestDisplayFuncAdapter(t *testing.T) {
	var got string
	DisplayFunc(func(text string) { got = text }).SetText("hello")
	assert.Equal(t, "hello", got)
}
