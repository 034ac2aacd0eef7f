package cleanup_test

import (
	"sync"
	"testing"

	"github.com/simplegithub/sgh/internal/utils/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanup(t *testing.T) {
	var cu cleanup.Cleanup
	var flag1 = false
	var flag2 = false
	cu.Add(func() {
		if !flag2 {
			t.Error("cleanup functions should run in reverse order")
		}
		flag1 = true
	})
	cu.Add(func() {
		if flag1 {
			t.Error("cleanup functions should run in reverse order")
		}
		flag2 = true
	})
	cu.Cleanup()
	assert.True(t, flag1)
	assert.True(t, flag2)
	assert.True(t, cu.Done())
}

func TestCleanupRunsOnce(t *testing.T) {
	var cu cleanup.Cleanup
	calls := 0
	cu.Add(func() { calls++ })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cu.Cleanup()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestCleanupAddAfterCleanupRunsImmediately(t *testing.T) {
	var cu cleanup.Cleanup
	cu.Cleanup()
	ran := false
	cu.Add(func() { ran = true })
	assert.True(t, ran)
}

func TestCleanupEmpty(t *testing.T) {
	var cu cleanup.Cleanup
	cu.Cleanup()
	assert.True(t, cu.Done())
}
