package parser

// parseFunc is the shape shared by every production: it either returns a
// value and the cursor after it, or a failure and the cursor it was given.
type parseFunc[T any] func(c cursor) (T, cursor, *Failure)

// as converts the result of p, typically into a variant interface.
func as[T, U any](p parseFunc[T], f func(T) U) parseFunc[U] {
	return func(c cursor) (U, cursor, *Failure) {
		v, next, fail := p(c)
		if fail != nil {
			var zero U
			return zero, c, fail
		}
		return f(v), next, nil
	}
}

// alt tries each parser in order and returns the first success. A mismatch
// moves on to the next alternative; any other failure ends the choice. When
// every alternative mismatches, the failure that got furthest is returned.
func alt[T any](ps ...parseFunc[T]) parseFunc[T] {
	return func(c cursor) (T, cursor, *Failure) {
		var zero T
		var best *Failure
		for _, p := range ps {
			v, next, f := p(c)
			if f == nil {
				return v, next, nil
			}
			if f.Kind != FailureMismatch {
				return zero, c, f
			}
			if best == nil || f.Offset > best.Offset {
				best = f
			}
		}
		return zero, c, best
	}
}

// many applies p until it mismatches or stops consuming input. Mismatches
// end the repetition successfully; other failures propagate.
func many[T any](p parseFunc[T]) parseFunc[[]T] {
	return func(c cursor) ([]T, cursor, *Failure) {
		var out []T
		for {
			v, next, f := p(c)
			if f != nil {
				if f.Kind == FailureMismatch {
					return out, c, nil
				}
				return out, c, f
			}
			if next.off == c.off {
				return out, c, nil
			}
			out = append(out, v)
			c = next
		}
	}
}

// commit turns a mismatch of p into a committed failure, so an enclosing
// alt stops instead of trying the next alternative.
func commit[T any](p parseFunc[T]) parseFunc[T] {
	return func(c cursor) (T, cursor, *Failure) {
		v, next, f := p(c)
		if f != nil && f.Kind == FailureMismatch {
			committed := *f
			committed.Kind = FailureCommitted
			return v, c, &committed
		}
		return v, next, f
	}
}

// recoverWith replaces a mismatch or committed failure of p with the
// placeholder built by fallback from the starting cursor and the failure.
// Incomplete failures always propagate. fallback may return the starting
// cursor unchanged, in which case many drops the placeholder and stops.
func recoverWith[T any](p parseFunc[T], fallback func(start cursor, f *Failure) (T, cursor)) parseFunc[T] {
	return func(c cursor) (T, cursor, *Failure) {
		v, next, f := p(c)
		if f == nil || f.Kind == FailureIncomplete {
			return v, next, f
		}
		v, next = fallback(c, f)
		return v, next, nil
	}
}
