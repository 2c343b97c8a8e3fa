// SPDX-License-Identifier: MIT

package parser

// Parser consumes a prefix of input and returns the decoded value together
// with the unconsumed suffix.
//
// Contract:
//   - On success ok is true and rest is a suffix of input.
//   - On failure ok is false, value is the zero T and rest == input.
//   - A parser has no side effects; running it twice on the same input
//     yields the same result.
type Parser[T any] func(input string) (value T, rest string, ok bool)

// Option is an optionally present value, produced by Maybe and consumed by Flatten.
type Option[T any] struct {
	Value T    // decoded value, meaningful only when Valid
	Valid bool // whether Value is present
}

// Present wraps v into a valid Option.
func Present[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// Absent returns an Option without a value.
func Absent[T any]() Option[T] {
	return Option[T]{}
}

// OrElse returns the value if present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.Valid {
		return o.Value
	}

	return def
}

// fail is the canonical failure result: zero value, original input.
func fail[T any](input string) (T, string, bool) {
	var zero T
	return zero, input, false
}
