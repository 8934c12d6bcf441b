package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/arop/pkg/arop"
)

var errStage = errors.New("stage failed")

func TestFromValue_ThenMap_EndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := Map(
		Then(FromValue(ctx, 6),
			func(_ context.Context, v int) *arop.Deferred[int] {
				return arop.Succeed(v * 7)
			}),
		func(_ context.Context, v int) string {
			return strconv.Itoa(v)
		})

	res := c.Wait()
	if !res.IsSuccess() || res.Result() != "42" {
		t.Fatalf("expected success '42', got: success=%v, val=%q, err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestThen_ShortCircuitsOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0

	c := Then(Start(ctx, arop.FailWith[int](errStage)),
		func(_ context.Context, v int) *arop.Deferred[string] {
			calls++
			return arop.Succeed("never")
		})

	res := c.Wait()
	if !res.IsFailure() || !errors.Is(res.Err(), errStage) {
		t.Fatalf("expected the failure to pass through, got: failure=%v, err=%v", res.IsFailure(), res.Err())
	}
	if calls != 0 {
		t.Fatalf("expected the continuation not to run, got %d calls", calls)
	}
}

func TestThenTry_ConvertsError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := ThenTry(FromValue(ctx, "not a number"),
		func(_ context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		})

	res := c.Wait()
	if !res.IsFailure() {
		t.Fatalf("expected a failure from the parse error, got: success=%v", res.IsSuccess())
	}
}

func TestEnsure_SideEffectOnlyOnSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seen := 0
	res := FromValue(ctx, 5).
		Ensure(func(_ context.Context, v int) { seen += v }).
		Wait()

	if !res.IsSuccess() || res.Result() != 5 {
		t.Fatalf("expected success 5 unchanged, got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}
	if seen != 5 {
		t.Fatalf("expected the side effect once, got %d", seen)
	}

	seen = 0
	Start(ctx, arop.FailWith[int](errStage)).
		Ensure(func(_ context.Context, v int) { seen += v }).
		Wait()

	if seen != 0 {
		t.Fatalf("expected no side effect on failure, got %d", seen)
	}
}

func TestChain_IsLazyUntilDriven(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0

	c := Map(Start(ctx, arop.From(func() (int, error) {
		calls++
		return 1, nil
	})), func(_ context.Context, v int) int {
		calls++
		return v + 1
	})

	if calls != 0 {
		t.Fatalf("expected no work before the chain is driven, got %d calls", calls)
	}

	res := c.Wait()
	if !res.IsSuccess() || res.Result() != 2 {
		t.Fatalf("expected success 2, got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}
	if calls != 2 {
		t.Fatalf("expected both stages to run once, got %d calls", calls)
	}
}

type chainCtxKey string

func TestHandlers_ReceiveChainContext(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), chainCtxKey("tenant"), "acme")

	res := Map(FromValue(ctx, 0),
		func(ctx context.Context, _ int) string {
			tenant, _ := ctx.Value(chainCtxKey("tenant")).(string)
			return tenant
		}).Wait()

	if res.Result() != "acme" {
		t.Fatalf("expected the chain context in handlers, got %q", res.Result())
	}
}

func TestWait_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	res := Start(ctx, arop.From(func() (int, error) {
		calls++
		return 1, nil
	})).Wait()

	if !res.IsCancel() || !errors.Is(res.Err(), context.Canceled) {
		t.Fatalf("expected a cancellation, got: cancel=%v, err=%v", res.IsCancel(), res.Err())
	}
	if calls != 0 {
		t.Fatalf("expected the computation not to be driven, got %d calls", calls)
	}
}

func TestFinally_CollapsesAllLanes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	onSuccess := func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v) }
	onFailure := func(_ context.Context, err error) string { return "err:" + err.Error() }
	onCancel := func(_ context.Context, err error) string { return "cancel" }

	if out := Finally(FromValue(ctx, 1), onSuccess, onFailure, onCancel); out != "ok:1" {
		t.Fatalf("expected 'ok:1', got %q", out)
	}

	if out := Finally(Start(ctx, arop.FailWith[int](errStage)), onSuccess, onFailure, onCancel); out != "err:stage failed" {
		t.Fatalf("expected 'err:stage failed', got %q", out)
	}

	if out := Finally(Start(ctx, arop.CancelWith[int](context.Canceled)), onSuccess, onFailure, onCancel); out != "cancel" {
		t.Fatalf("expected 'cancel', got %q", out)
	}
}

func TestStart_ExposesDeferred(t *testing.T) {
	t.Parallel()

	d := arop.Succeed(3)
	c := Start(context.Background(), d)

	if c.Deferred() != d {
		t.Fatalf("expected the chain to expose its deferred")
	}
}
