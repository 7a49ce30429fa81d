package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libtarget/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/src/b.js")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/src/a.js")
		d.Add("/project/src/b.js")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/src/a.js", "/project/src/b.js"}, calls[0])
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		count := 0

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			count++
			mu.Unlock()
		})

		d.Add("/project/src/App.vue")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/src/App.vue")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, count)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		called := false
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			called = true
		})

		d.Add("/project/src/App.vue")
		d.Stop()
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.False(t, called)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/project/src/App.vue")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
	})
}
