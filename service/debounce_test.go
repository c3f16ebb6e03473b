package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_RunsOnlyLatest(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var last atomic.Int32
	var calls atomic.Int32
	for i := int32(1); i <= 5; i++ {
		d.Call(func() {
			calls.Add(1)
			last.Store(i)
		})
	}
	assert.True(t, d.Pending())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(5), last.Load())
	assert.False(t, d.Pending())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	d.Call(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_ZeroWaitIsSynchronous(t *testing.T) {
	d := NewDebouncer(0)

	ran := false
	d.Call(func() { ran = true })
	assert.True(t, ran)
}
