package driver_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/internal/driver"
)

type outcome struct {
	res driver.Result
	err error
}

func next(t *testing.T, ch <-chan outcome) outcome {
	t.Helper()
	select {
	case o := <-ch:
		return o
	case <-time.After(10 * time.Second):
		t.Fatal("no generation after fixture change")
		return outcome{}
	}
}

func TestWatch(t *testing.T) {
	r := newRunner(t, testConfig(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan outcome, 8)
	done := make(chan error, 1)
	go func() {
		done <- r.Watch(ctx, func(res driver.Result, err error) { ch <- outcome{res, err} })
	}()

	first := next(t, ch)
	require.NoError(t, first.err)
	assert.True(t, first.res.Collapsed)

	// A broken pattern file is reported and the watch keeps going.
	require.NoError(t, os.WriteFile(r.Config.Patterns, []byte("{"), 0o644))
	assert.Error(t, next(t, ch).err)

	require.NoError(t, compat.WritePatterns(r.Config.Patterns, compat.Synthesize(2)))
	again := next(t, ch)
	require.NoError(t, again.err)
	assert.Equal(t, first.res.States, again.res.States)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
