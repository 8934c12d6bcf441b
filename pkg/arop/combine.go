package arop

// Pair carries the values of a two-way Join.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple carries the values of Join3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad carries the values of Join4.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Quint carries the values of Join5.
type Quint[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// Join resolves successfully once both operands have resolved successfully,
// pairing the values. The first non-success observed resolves the join with
// that error immediately and the other operand is abandoned. Each poll gives
// both pending operands a chance to make progress.
func Join[A, B any](a *Deferred[A], b *Deferred[B]) *Deferred[Pair[A, B]] {
	return newDeferred("join", func() (Result[Pair[A, B]], bool) {
		ra, aok := a.Poll()
		if aok && !ra.IsSuccess() {
			return forward[A, Pair[A, B]](ra), true
		}

		rb, bok := b.Poll()
		if bok && !rb.IsSuccess() {
			return forward[B, Pair[A, B]](rb), true
		}

		if aok && bok {
			return Success(Pair[A, B]{First: ra.Result(), Second: rb.Result()}), true
		}
		return Result[Pair[A, B]]{}, false
	})
}

// Join3 joins three computations the way Join joins two.
func Join3[A, B, C any](a *Deferred[A], b *Deferred[B], c *Deferred[C]) *Deferred[Triple[A, B, C]] {
	return newDeferred("join3", func() (Result[Triple[A, B, C]], bool) {
		ra, aok := a.Poll()
		if aok && !ra.IsSuccess() {
			return forward[A, Triple[A, B, C]](ra), true
		}

		rb, bok := b.Poll()
		if bok && !rb.IsSuccess() {
			return forward[B, Triple[A, B, C]](rb), true
		}

		rc, cok := c.Poll()
		if cok && !rc.IsSuccess() {
			return forward[C, Triple[A, B, C]](rc), true
		}

		if aok && bok && cok {
			return Success(Triple[A, B, C]{
				First:  ra.Result(),
				Second: rb.Result(),
				Third:  rc.Result(),
			}), true
		}
		return Result[Triple[A, B, C]]{}, false
	})
}

// Join4 joins four computations the way Join joins two.
func Join4[A, B, C, D any](a *Deferred[A], b *Deferred[B], c *Deferred[C], d *Deferred[D]) *Deferred[Quad[A, B, C, D]] {
	return newDeferred("join4", func() (Result[Quad[A, B, C, D]], bool) {
		ra, aok := a.Poll()
		if aok && !ra.IsSuccess() {
			return forward[A, Quad[A, B, C, D]](ra), true
		}

		rb, bok := b.Poll()
		if bok && !rb.IsSuccess() {
			return forward[B, Quad[A, B, C, D]](rb), true
		}

		rc, cok := c.Poll()
		if cok && !rc.IsSuccess() {
			return forward[C, Quad[A, B, C, D]](rc), true
		}

		rd, dok := d.Poll()
		if dok && !rd.IsSuccess() {
			return forward[D, Quad[A, B, C, D]](rd), true
		}

		if aok && bok && cok && dok {
			return Success(Quad[A, B, C, D]{
				First:  ra.Result(),
				Second: rb.Result(),
				Third:  rc.Result(),
				Fourth: rd.Result(),
			}), true
		}
		return Result[Quad[A, B, C, D]]{}, false
	})
}

// Join5 joins five computations the way Join joins two.
func Join5[A, B, C, D, E any](a *Deferred[A], b *Deferred[B], c *Deferred[C], d *Deferred[D], e *Deferred[E]) *Deferred[Quint[A, B, C, D, E]] {
	return newDeferred("join5", func() (Result[Quint[A, B, C, D, E]], bool) {
		ra, aok := a.Poll()
		if aok && !ra.IsSuccess() {
			return forward[A, Quint[A, B, C, D, E]](ra), true
		}

		rb, bok := b.Poll()
		if bok && !rb.IsSuccess() {
			return forward[B, Quint[A, B, C, D, E]](rb), true
		}

		rc, cok := c.Poll()
		if cok && !rc.IsSuccess() {
			return forward[C, Quint[A, B, C, D, E]](rc), true
		}

		rd, dok := d.Poll()
		if dok && !rd.IsSuccess() {
			return forward[D, Quint[A, B, C, D, E]](rd), true
		}

		re, eok := e.Poll()
		if eok && !re.IsSuccess() {
			return forward[E, Quint[A, B, C, D, E]](re), true
		}

		if aok && bok && cok && dok && eok {
			return Success(Quint[A, B, C, D, E]{
				First:  ra.Result(),
				Second: rb.Result(),
				Third:  rc.Result(),
				Fourth: rd.Result(),
				Fifth:  re.Result(),
			}), true
		}
		return Result[Quint[A, B, C, D, E]]{}, false
	})
}

// JoinAll joins any number of same-typed computations, collecting the values
// in argument order. With no operands it resolves to an empty slice.
func JoinAll[T any](ds ...*Deferred[T]) *Deferred[[]T] {
	return newDeferred("joinall", func() (Result[[]T], bool) {
		pending := false
		for _, d := range ds {
			r, ok := d.Poll()
			if !ok {
				pending = true
				continue
			}
			if !r.IsSuccess() {
				return forward[T, []T](r), true
			}
		}

		if pending {
			return Result[[]T]{}, false
		}

		out := make([]T, len(ds))
		for i, d := range ds {
			r, _ := d.Poll()
			out[i] = r.Result()
		}
		return Success(out), true
	})
}

// Select resolves with the outcome of whichever computation resolves first,
// success or not. The loser is abandoned and never polled again.
func (d *Deferred[T]) Select(other *Deferred[T]) *Deferred[T] {
	return newDeferred("select", func() (Result[T], bool) {
		if r, ok := d.Poll(); ok {
			return r, true
		}
		if r, ok := other.Poll(); ok {
			return r, true
		}
		return Result[T]{}, false
	})
}

// Either holds one of two possible values, tagged by side.
type Either[A, B any] struct {
	left   A
	right  B
	isLeft bool
}

func Left[A, B any](v A) Either[A, B] {
	return Either[A, B]{left: v, isLeft: true}
}

func Right[A, B any](v B) Either[A, B] {
	return Either[A, B]{right: v}
}

func (e Either[A, B]) IsLeft() bool {
	return e.isLeft
}

func (e Either[A, B]) Left() A {
	return e.left
}

func (e Either[A, B]) Right() B {
	return e.right
}

// Select2 races two computations of different types. The first success wins
// and is wrapped on its side of an Either; a first-resolved failure or
// cancellation resolves the race with that error. The loser is abandoned.
func Select2[A, B any](a *Deferred[A], b *Deferred[B]) *Deferred[Either[A, B]] {
	return newDeferred("select2", func() (Result[Either[A, B]], bool) {
		if ra, ok := a.Poll(); ok {
			if ra.IsSuccess() {
				return Success(Left[A, B](ra.Result())), true
			}
			return forward[A, Either[A, B]](ra), true
		}

		if rb, ok := b.Poll(); ok {
			if rb.IsSuccess() {
				return Success(Right[A, B](rb.Result())), true
			}
			return forward[B, Either[A, B]](rb), true
		}

		return Result[Either[A, B]]{}, false
	})
}
