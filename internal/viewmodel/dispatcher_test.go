package viewmodel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_RunsInOrder(t *testing.T) {
	dispatcher := NewDispatcher()

	var mu sync.Mutex
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		dispatcher.Dispatch(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	dispatcher.Stop()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestDispatcher_DispatchAfterStopIsDropped(t *testing.T) {
	dispatcher := NewDispatcher()
	dispatcher.Stop()

	ran := false
	dispatcher.Dispatch(func() { ran = true })

	assert.False(t, ran)
}

func TestDispatcher_StopTwice(t *testing.T) {
	dispatcher := NewDispatcher()
	dispatcher.Stop()

	assert.NotPanics(t, func() { dispatcher.Stop() })
}
