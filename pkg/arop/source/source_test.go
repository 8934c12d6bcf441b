package source

import (
	"errors"
	"testing"
	"time"

	"github.com/ib-77/arop/pkg/arop"
)

var errBroken = errors.New("broken")

func TestPending_CompleteResolves(t *testing.T) {
	t.Parallel()

	d, c := Pending[int]()

	if _, ok := d.Poll(); ok {
		t.Fatalf("expected pending before completion")
	}

	if !c.Complete(9) {
		t.Fatalf("expected the first completion to win")
	}

	res, ok := d.Poll()
	if !ok || !res.IsSuccess() || res.Result() != 9 {
		t.Fatalf("expected success 9, got: ok=%v, success=%v, val=%v", ok, res.IsSuccess(), res.Result())
	}
}

func TestPending_FailResolves(t *testing.T) {
	t.Parallel()

	d, c := Pending[int]()
	c.Fail(errBroken)

	res := d.Wait()
	if !res.IsFailure() || !errors.Is(res.Err(), errBroken) {
		t.Fatalf("expected failure 'broken', got: failure=%v, err=%v", res.IsFailure(), res.Err())
	}
}

func TestPending_CancelResolves(t *testing.T) {
	t.Parallel()

	d, c := Pending[int]()
	c.Cancel(errBroken)

	res := d.Wait()
	if !res.IsCancel() {
		t.Fatalf("expected a cancellation, got: failure=%v, err=%v", res.IsFailure(), res.Err())
	}
}

func TestPending_FirstResolutionWins(t *testing.T) {
	t.Parallel()

	d, c := Pending[string]()

	if !c.Complete("first") {
		t.Fatalf("expected the first completion to win")
	}
	if c.Fail(errBroken) || c.Complete("second") {
		t.Fatalf("expected later resolutions to be rejected")
	}

	res := d.Wait()
	if !res.IsSuccess() || res.Result() != "first" {
		t.Fatalf("expected 'first' to stick, got: success=%v, val=%q, err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestPending_CompletedFromAnotherGoroutine(t *testing.T) {
	t.Parallel()

	d, c := Pending[int]()

	go func() {
		time.Sleep(5 * time.Millisecond)
		c.Complete(7)
	}()

	res := d.Wait()
	if !res.IsSuccess() || res.Result() != 7 {
		t.Fatalf("expected success 7, got: success=%v, val=%v, err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestAfter_ResolvesOnceElapsed(t *testing.T) {
	t.Parallel()

	start := time.Now()
	res := After(20*time.Millisecond, "tick").Wait()

	if !res.IsSuccess() || res.Result() != "tick" {
		t.Fatalf("expected success 'tick', got: success=%v, val=%q", res.IsSuccess(), res.Result())
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected the timer to hold for its duration, resolved after %v", elapsed)
	}
}

func TestAfter_PendingBeforeDeadline(t *testing.T) {
	t.Parallel()

	d := After(time.Hour, 1)

	if _, ok := d.Poll(); ok {
		t.Fatalf("expected pending long before the deadline")
	}
}

func TestFailAfter_ResolvesToFailure(t *testing.T) {
	t.Parallel()

	res := FailAfter[int](5*time.Millisecond, errBroken).Wait()

	if !res.IsFailure() || !errors.Is(res.Err(), errBroken) {
		t.Fatalf("expected failure 'broken', got: failure=%v, err=%v", res.IsFailure(), res.Err())
	}
}

func TestChan_ReceivesFirstValue(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 1)
	ch <- 11

	res := Chan(ch).Wait()
	if !res.IsSuccess() || res.Result() != 11 {
		t.Fatalf("expected success 11, got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}
}

func TestChan_PendingUntilSend(t *testing.T) {
	t.Parallel()

	ch := make(chan string)
	d := Chan(ch)

	if _, ok := d.Poll(); ok {
		t.Fatalf("expected pending on an empty channel")
	}

	go func() { ch <- "late" }()

	res := d.Wait()
	if !res.IsSuccess() || res.Result() != "late" {
		t.Fatalf("expected success 'late', got: success=%v, val=%q", res.IsSuccess(), res.Result())
	}
}

func TestChan_ClosedBecomesFailure(t *testing.T) {
	t.Parallel()

	ch := make(chan int)
	close(ch)

	res := Chan(ch).Wait()
	if !res.IsFailure() || !errors.Is(res.Err(), ErrChannelClosed) {
		t.Fatalf("expected ErrChannelClosed, got: failure=%v, err=%v", res.IsFailure(), res.Err())
	}
}

func TestNever_StaysPending(t *testing.T) {
	t.Parallel()

	d := Never[int]()

	for i := 0; i < 10; i++ {
		if _, ok := d.Poll(); ok {
			t.Fatalf("expected never to stay pending")
		}
	}
	if d.IsResolved() {
		t.Fatalf("expected never to stay unresolved")
	}
}

func TestSources_ComposeWithCombinators(t *testing.T) {
	t.Parallel()

	fast := After(2*time.Millisecond, 1)
	slow := After(50*time.Millisecond, 2)

	res := fast.Select(slow).Wait()
	if !res.IsSuccess() || res.Result() != 1 {
		t.Fatalf("expected the fast timer to win, got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}

	doubled := arop.Map(After(2*time.Millisecond, 3), func(v int) int { return v * 2 })
	if r := doubled.Wait(); r.Result() != 6 {
		t.Fatalf("expected 6, got %v", r.Result())
	}
}
