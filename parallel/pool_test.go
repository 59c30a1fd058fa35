package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)

		var ran atomic.Int64
		for i := range 50 {
			pool.Do(func() error {
				ran.Add(1)
				if i%10 == 0 {
					return errors.New("boom")
				}
				return nil
			})
		}

		ok, failed := pool.Wait(true)
		if ran.Load() != 50 {
			t.Errorf("workers=%d: ran %d jobs, want 50", workers, ran.Load())
		}
		if ok != 45 || failed != 5 {
			t.Errorf("workers=%d: Wait() = %d, %d, want 45, 5", workers, ok, failed)
		}

		// a second Wait is harmless
		pool.Wait(true)
	}
}

func TestInlinePoolRunsInOrder(t *testing.T) {
	pool := Start(1)

	var order []int
	for i := range 5 {
		pool.Do(func() error {
			order = append(order, i)
			return nil
		})
	}
	pool.Wait(true)

	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v", order)
		}
	}
}
