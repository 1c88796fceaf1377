package tasks

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	bgTasks := New(slog.Default(), 3, 10)
	bgTasks.Run()
	var ran atomic.Bool
	bgTasks.Add(func() {
		ran.Store(true)
	})
	bgTasks.Shutdown(context.Background())
	assert.True(t, ran.Load())
}

func TestShutdownDrainsQueue(t *testing.T) {
	bgTasks := New(slog.Default(), 2, 10)
	bgTasks.Run()
	var done atomic.Int32
	for i := 0; i < 5; i++ {
		bgTasks.Add(func() {
			done.Add(1)
		})
	}
	err := bgTasks.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.EqualValues(t, 5, done.Load())
	assert.True(t, bgTasks.IsEmpty())
}
