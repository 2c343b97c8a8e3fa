// SPDX-License-Identifier: MIT

package parser

import (
	"strconv"
	"unsafe"
)

// Signed is the set of signed integer types a numeric lexer can target.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types a numeric lexer can target.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integral is any integer type.
type Integral interface {
	Signed | Unsigned
}

// Floating is any floating-point type.
type Floating interface {
	~float32 | ~float64
}

// bitSize reports the width of T in bits.
func bitSize[T Integral | Floating]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// isSigned reports whether T is a signed integer type.
func isSigned[T Integral]() bool {
	var zero T
	return ^zero < zero
}

// IntegerFromString converts a decimal literal into T, failing on malformed
// input or when the value does not fit T's width.
// Unsigned targets reject a leading sign.
func IntegerFromString[T Integral](s string) (T, bool) {
	if isSigned[T]() {
		v, err := strconv.ParseInt(s, 10, bitSize[T]())
		if err != nil {
			return 0, false
		}

		return T(v), true
	}
	v, err := strconv.ParseUint(s, 10, bitSize[T]())
	if err != nil {
		return 0, false
	}

	return T(v), true
}

// FloatFromString converts a decimal literal into T, failing on malformed
// input or when the magnitude overflows T.
func FloatFromString[T Floating](s string) (T, bool) {
	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, false
	}

	return T(v), true
}

// Natural parses one or more decimal digits into T.
// It fails on overflow for T's width; the offending digits are not consumed.
//
//	Natural[uint64]()("28376429813462jj234") // 28376429813462, "jj234", true
//	Natural[int8]()("128")                   // 0, "128", false
func Natural[T Integral]() Parser[T] {
	return Flatten(Map(SomeText(Digit), func(digits string) Option[T] {
		if v, ok := IntegerFromString[T](digits); ok {
			return Present(v)
		}

		return Absent[T]()
	}))
}

// Integer parses an optional '-' immediately followed by digits into T.
// The sign is part of the literal, so the minimum of T parses.
//
//	Integer[int8]()("-128") // -128, "", true
//	Integer[int8]()("-129") // 0, "-129", false
func Integer[T Signed]() Parser[T] {
	literal := Sequence2(func(s, digits string) string { return s + digits }, minus(), SomeText(Digit))

	return Flatten(Map(literal, func(lit string) Option[T] {
		if v, ok := IntegerFromString[T](lit); ok {
			return Present(v)
		}

		return Absent[T]()
	}))
}

// minus yields "-" when a sign is present and "" otherwise; it never fails.
func minus() Parser[string] {
	return Map(Maybe(Symbol('-')), func(o Option[byte]) string {
		if o.Valid {
			return "-"
		}
		return ""
	})
}

// Real parses a decimal real into T. Accepted shapes:
//
//	[-]digits.[digits]
//	[-][.]digits
//
// Exponent notation is not accepted. Overflow for T fails.
func Real[T Floating]() Parser[T] {
	sign := minus()
	dot := Map(Maybe(Symbol('.')), func(o Option[byte]) string {
		if o.Valid {
			return "."
		}
		return ""
	})

	// digits '.' digits?
	fractional := Sequence4(
		func(s, whole string, _ byte, frac Option[string]) string {
			return s + whole + "." + frac.OrElse("")
		},
		sign, SomeText(Digit), Symbol('.'), Maybe(SomeText(Digit)),
	)
	// digits | .digits
	plain := Sequence3(
		func(s, d, digits string) string { return s + d + digits },
		sign, dot, SomeText(Digit),
	)

	return Flatten(Map(Choice(fractional, plain), func(literal string) Option[T] {
		if v, ok := FloatFromString[T](literal); ok {
			return Present(v)
		}

		return Absent[T]()
	}))
}
