// SPDX-License-Identifier: MIT

package parser

import "strings"

// Item consumes exactly one byte. It fails on empty input.
// Complexity: O(1).
var Item Parser[byte] = func(input string) (byte, string, bool) {
	if input == "" {
		return fail[byte](input)
	}

	return input[0], input[1:], true
}

// EndOfInput succeeds, consuming nothing, only when input is exhausted.
var EndOfInput Parser[struct{}] = func(input string) (struct{}, string, bool) {
	if input != "" {
		return fail[struct{}](input)
	}

	return struct{}{}, input, true
}

// Unit always succeeds with v and consumes nothing.
func Unit[T any](v T) Parser[T] {
	return func(input string) (T, string, bool) {
		return v, input, true
	}
}

// Fail always fails.
func Fail[T any]() Parser[T] {
	return func(input string) (T, string, bool) {
		return fail[T](input)
	}
}

// SatisfyWith runs base and succeeds iff base succeeds and pred holds on its value.
func SatisfyWith[T any](base Parser[T], pred func(T) bool) Parser[T] {
	return func(input string) (T, string, bool) {
		v, rest, ok := base(input)
		if !ok || !pred(v) {
			return fail[T](input)
		}

		return v, rest, true
	}
}

// Satisfy consumes one byte for which pred holds.
func Satisfy(pred func(byte) bool) Parser[byte] {
	return SatisfyWith(Item, pred)
}

// Symbol consumes the byte c.
func Symbol(c byte) Parser[byte] {
	return Satisfy(func(b byte) bool { return b == c })
}

// Str matches the literal lit as a prefix of the input (case-sensitive).
// Complexity: O(len(lit)).
func Str(lit string) Parser[string] {
	return func(input string) (string, string, bool) {
		if !strings.HasPrefix(input, lit) {
			return fail[string](input)
		}

		return lit, input[len(lit):], true
	}
}
