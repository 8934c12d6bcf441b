package arop

// Map transforms the successful value with onSuccess. Failures and
// cancellations pass through with their error untouched.
func Map[In, Out any](d *Deferred[In], onSuccess func(In) Out) *Deferred[Out] {
	return newDeferred("map", func() (Result[Out], bool) {
		in, ok := d.Poll()
		if !ok {
			return Result[Out]{}, false
		}

		if in.IsSuccess() {
			return Success(onSuccess(in.Result())), true
		}
		return forward[In, Out](in), true
	})
}

// MapErr transforms the error of a plain failure with onFailure. Successes
// and cancellations pass through untouched.
func (d *Deferred[T]) MapErr(onFailure func(error) error) *Deferred[T] {
	return newDeferred("maperr", func() (Result[T], bool) {
		in, ok := d.Poll()
		if !ok {
			return Result[T]{}, false
		}

		if in.IsFailure() {
			return Fail[T](onFailure(in.Err())), true
		}
		return in, true
	})
}

// Switch continues a successful computation with the Deferred produced by
// onSuccess; the combined computation resolves with that continuation's
// outcome. Failures and cancellations skip onSuccess entirely.
func Switch[In, Out any](d *Deferred[In], onSuccess func(In) *Deferred[Out]) *Deferred[Out] {
	var next *Deferred[Out]

	return newDeferred("switch", func() (Result[Out], bool) {
		if next == nil {
			in, ok := d.Poll()
			if !ok {
				return Result[Out]{}, false
			}
			if !in.IsSuccess() {
				return forward[In, Out](in), true
			}
			next = onSuccess(in.Result())
		}
		return next.Poll()
	})
}

// SwitchErr recovers a plain failure with the Deferred produced by
// onFailure. Successes and cancellations skip onFailure entirely.
func (d *Deferred[T]) SwitchErr(onFailure func(error) *Deferred[T]) *Deferred[T] {
	var next *Deferred[T]

	return newDeferred("switcherr", func() (Result[T], bool) {
		if next == nil {
			in, ok := d.Poll()
			if !ok {
				return Result[T]{}, false
			}
			if !in.IsFailure() {
				return in, true
			}
			next = onFailure(in.Err())
		}
		return next.Poll()
	})
}

// Try calls onTryExecute on the successful value and converts its
// (value, error) pair with Of. Failures and cancellations skip the call.
func Try[In, Out any](d *Deferred[In], onTryExecute func(In) (Out, error)) *Deferred[Out] {
	return newDeferred("try", func() (Result[Out], bool) {
		in, ok := d.Poll()
		if !ok {
			return Result[Out]{}, false
		}

		if in.IsSuccess() {
			return Of(onTryExecute(in.Result())), true
		}
		return forward[In, Out](in), true
	})
}

// Tee runs a side effect on the successful value without changing the
// outcome. The effect runs at most once.
func (d *Deferred[T]) Tee(onSuccess func(T)) *Deferred[T] {
	return newDeferred("tee", func() (Result[T], bool) {
		in, ok := d.Poll()
		if !ok {
			return Result[T]{}, false
		}

		if in.IsSuccess() {
			onSuccess(in.Result())
		}
		return in, true
	})
}
