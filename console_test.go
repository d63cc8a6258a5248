package lantern_test

import (
	"sync"
	"testing"
	"time"

	"lantern"
)

func TestCoordinatorStartsOpen(t *testing.T) {
	coord := lantern.NewCoordinator()
	done := make(chan struct{})
	go func() {
		coord.WaitBanner()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitBanner blocked on a fresh coordinator")
	}
}

func TestCoordinatorGatesUntilBannerDone(t *testing.T) {
	coord := lantern.NewCoordinator()
	coord.ResetBanner()

	released := make(chan struct{})
	go func() {
		coord.WaitBanner()
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("WaitBanner returned while banner was pending")
	case <-time.After(50 * time.Millisecond):
	}

	coord.MarkBannerDone()
	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitBanner did not wake after MarkBannerDone")
	}
}

func TestCoordinatorWakesAllWaiters(t *testing.T) {
	coord := lantern.NewCoordinator()
	coord.ResetBanner()

	const waiters = 8
	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			coord.WaitBanner()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	coord.MarkBannerDone()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("not all waiters woke after MarkBannerDone")
	}
}

func TestCoordinatorOutputLockSerializes(t *testing.T) {
	coord := lantern.NewCoordinator()
	var inside int
	var maxInside int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			coord.WithOutputLock(func() {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Fatalf("output lock admitted %d writers at once", maxInside)
	}
}
