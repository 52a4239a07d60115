package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLocker_SerializesSameKey(t *testing.T) {
	k := NewKeyedLocker()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("owner-1")
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, k.Len(), "released keys are dropped")
}

func TestKeyedLocker_IndependentKeys(t *testing.T) {
	k := NewKeyedLocker()

	unlockA := k.Lock("owner-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := k.Lock("owner-b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
	assert.Equal(t, 1, k.Len())
}

func TestKeyedLocker_UnlockIsIdempotent(t *testing.T) {
	k := NewKeyedLocker()

	unlock := k.Lock("owner-1")
	unlock()
	unlock()

	assert.Equal(t, 0, k.Len())
	k.Lock("owner-1")()
}
