// SPDX-License-Identifier: MIT

package parser

// Map transforms the value of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) (B, string, bool) {
		a, rest, ok := p(input)
		if !ok {
			return fail[B](input)
		}

		return f(a), rest, true
	}
}

// Bind runs p and uses its value to select the parser for the rest of the input.
// The whole chain fails, consuming nothing, if either step fails.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(input string) (B, string, bool) {
		a, rest, ok := p(input)
		if !ok {
			return fail[B](input)
		}
		b, rest, ok := f(a)(rest)
		if !ok {
			return fail[B](input)
		}

		return b, rest, true
	}
}

// Sequence2 runs pa then pb on the remaining input and combines both values with f.
func Sequence2[A, B, R any](f func(A, B) R, pa Parser[A], pb Parser[B]) Parser[R] {
	return func(input string) (R, string, bool) {
		var (
			a    A
			b    B
			rest string
			ok   bool
		)
		if a, rest, ok = pa(input); !ok {
			return fail[R](input)
		}
		if b, rest, ok = pb(rest); !ok {
			return fail[R](input)
		}

		return f(a, b), rest, true
	}
}

// Sequence3 is Sequence2 for three parsers.
func Sequence3[A, B, C, R any](f func(A, B, C) R, pa Parser[A], pb Parser[B], pc Parser[C]) Parser[R] {
	return func(input string) (R, string, bool) {
		var (
			a    A
			b    B
			c    C
			rest string
			ok   bool
		)
		if a, rest, ok = pa(input); !ok {
			return fail[R](input)
		}
		if b, rest, ok = pb(rest); !ok {
			return fail[R](input)
		}
		if c, rest, ok = pc(rest); !ok {
			return fail[R](input)
		}

		return f(a, b, c), rest, true
	}
}

// Sequence4 is Sequence2 for four parsers.
func Sequence4[A, B, C, D, R any](f func(A, B, C, D) R, pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[R] {
	return func(input string) (R, string, bool) {
		var (
			a    A
			b    B
			c    C
			d    D
			rest string
			ok   bool
		)
		if a, rest, ok = pa(input); !ok {
			return fail[R](input)
		}
		if b, rest, ok = pb(rest); !ok {
			return fail[R](input)
		}
		if c, rest, ok = pc(rest); !ok {
			return fail[R](input)
		}
		if d, rest, ok = pd(rest); !ok {
			return fail[R](input)
		}

		return f(a, b, c, d), rest, true
	}
}

// Sequence5 is Sequence2 for five parsers.
func Sequence5[A, B, C, D, E, R any](f func(A, B, C, D, E) R, pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E]) Parser[R] {
	return func(input string) (R, string, bool) {
		var (
			a    A
			b    B
			c    C
			d    D
			e    E
			rest string
			ok   bool
		)
		if a, rest, ok = pa(input); !ok {
			return fail[R](input)
		}
		if b, rest, ok = pb(rest); !ok {
			return fail[R](input)
		}
		if c, rest, ok = pc(rest); !ok {
			return fail[R](input)
		}
		if d, rest, ok = pd(rest); !ok {
			return fail[R](input)
		}
		if e, rest, ok = pe(rest); !ok {
			return fail[R](input)
		}

		return f(a, b, c, d, e), rest, true
	}
}

// Sequence6 is Sequence2 for six parsers.
func Sequence6[A, B, C, D, E, F, R any](f func(A, B, C, D, E, F) R, pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], pf Parser[F]) Parser[R] {
	return func(input string) (R, string, bool) {
		var (
			a    A
			b    B
			c    C
			d    D
			e    E
			g    F
			rest string
			ok   bool
		)
		if a, rest, ok = pa(input); !ok {
			return fail[R](input)
		}
		if b, rest, ok = pb(rest); !ok {
			return fail[R](input)
		}
		if c, rest, ok = pc(rest); !ok {
			return fail[R](input)
		}
		if d, rest, ok = pd(rest); !ok {
			return fail[R](input)
		}
		if e, rest, ok = pe(rest); !ok {
			return fail[R](input)
		}
		if g, rest, ok = pf(rest); !ok {
			return fail[R](input)
		}

		return f(a, b, c, d, e, g), rest, true
	}
}

// Left runs pa then pb and keeps the value of pa.
func Left[A, B any](pa Parser[A], pb Parser[B]) Parser[A] {
	return Sequence2(func(a A, _ B) A { return a }, pa, pb)
}

// Right runs pa then pb and keeps the value of pb.
func Right[A, B any](pa Parser[A], pb Parser[B]) Parser[B] {
	return Sequence2(func(_ A, b B) B { return b }, pa, pb)
}

// Choice tries each parser on the original input and returns the first success.
// Priority is the argument order; there is no ambiguity resolution beyond it.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		var p Parser[T]
		for _, p = range parsers {
			if v, rest, ok := p(input); ok {
				return v, rest, true
			}
		}

		return fail[T](input)
	}
}

// Maybe always succeeds. The Option is valid, and input consumed, only when p succeeded.
func Maybe[T any](p Parser[T]) Parser[Option[T]] {
	return func(input string) (Option[T], string, bool) {
		v, rest, ok := p(input)
		if !ok {
			return Absent[T](), input, true
		}

		return Present(v), rest, true
	}
}

// Many applies p until it fails and returns the (possibly empty) sequence of values.
// A success that consumes nothing also ends the repetition and is not recorded,
// so Many terminates even over parsers that can match the empty string.
// Complexity: O(k) applications of p for k matches.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, bool) {
		var (
			out  []T
			rest = input
		)
		for {
			v, next, ok := p(rest)
			if !ok || len(next) == len(rest) {
				return out, rest, true
			}
			out = append(out, v)
			rest = next
		}
	}
}

// Some is Many requiring at least one match.
func Some[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, bool) {
		out, rest, _ := Many(p)(input)
		if len(out) == 0 {
			return fail[[]T](input)
		}

		return out, rest, true
	}
}

// ManyText is Many for byte parsers, collecting the bytes into a string.
func ManyText(p Parser[byte]) Parser[string] {
	return Map(Many(p), func(bs []byte) string { return string(bs) })
}

// SomeText is Some for byte parsers, collecting the bytes into a string.
func SomeText(p Parser[byte]) Parser[string] {
	return Map(Some(p), func(bs []byte) string { return string(bs) })
}

// Skip runs skip before p when it matches. If skip matches but p then fails,
// p is retried on the original input.
func Skip[S, T any](skip Parser[S], p Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		if _, after, ok := skip(input); ok {
			if v, rest, ok := p(after); ok {
				return v, rest, true
			}
		}

		return p(input)
	}
}

// TokenLeft skips leading input matched by skip before p.
func TokenLeft[T, S any](p Parser[T], skip Parser[S]) Parser[T] {
	return Skip(skip, p)
}

// TokenRight skips trailing input matched by skip after p.
func TokenRight[T, S any](p Parser[T], skip Parser[S]) Parser[T] {
	return func(input string) (T, string, bool) {
		v, rest, ok := p(input)
		if !ok {
			return fail[T](input)
		}
		if _, after, ok := skip(rest); ok {
			rest = after
		}

		return v, rest, true
	}
}

// Token skips input matched by skip on both sides of p.
func Token[T, S any](p Parser[T], skip Parser[S]) Parser[T] {
	return TokenRight(TokenLeft(p, skip), skip)
}

// Flatten turns "p succeeded with an absent value" into a failure.
// It is how numeric lexers reject literals that fail post-hoc validation.
func Flatten[T any](p Parser[Option[T]]) Parser[T] {
	return func(input string) (T, string, bool) {
		o, rest, ok := p(input)
		if !ok || !o.Valid {
			return fail[T](input)
		}

		return o.Value, rest, true
	}
}
