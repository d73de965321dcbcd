package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitNilChannel(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(nil, Event{Type: RunStart})
	})
}

func TestEmitDelivers(t *testing.T) {
	ch := NewChannel()
	Emit(ch, Event{Type: StepStart, RunID: "run-1", Step: 2})

	require.Len(t, ch, 1)
	ev := <-ch
	assert.Equal(t, StepStart, ev.Type)
	assert.Equal(t, "run-1", ev.RunID)
	assert.Equal(t, 2, ev.Step)
}

func TestEmitDropsWhenFull(t *testing.T) {
	ch := make(chan Event, 1)
	Emit(ch, Event{Type: RunStart})

	assert.NotPanics(t, func() {
		Emit(ch, Event{Type: RunEnd})
	})
	assert.Len(t, ch, 1)

	ev := <-ch
	assert.Equal(t, RunStart, ev.Type)
}
