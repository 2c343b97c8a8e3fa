// SPDX-License-Identifier: MIT

// Package parser is a small generic parser-combinator engine used to decode
// TSPLIB text.
//
// A Parser[T] is a plain function from the remaining input to a decoded value
// and the unconsumed suffix:
//
//	type Parser[T any] func(input string) (value T, rest string, ok bool)
//
// The remaining input is a view (a string slice), never a copy. A parser that
// fails returns ok == false together with the ORIGINAL input, so a failed
// alternative never corrupts the view of its siblings. Failure is a value;
// nothing in this package panics on user input.
//
// Building blocks:
//
//	Item, Satisfy, SatisfyWith, Symbol, Str, Unit, Fail, EndOfInput : primitives
//	Map, Bind, Sequence2..Sequence6, Left, Right                    : sequencing
//	Choice                                                          : left-biased alternative
//	Maybe, Many, Some, ManyText, SomeText                           : optional & repetition
//	Skip, Token, TokenLeft, TokenRight                              : insignificant input
//	Flatten                                                         : post-hoc validation
//	Natural, Integer, Real                                          : numeric lexers
//	Whitespace, WhitespaceNotEOL, EOL, LineEnd, Line                : line lexers
//
// Only Choice backtracks, and only because its failed alternatives consumed
// nothing. Many stops as soon as its parser fails or succeeds without
// consuming input, so repetition always terminates.
//
// Example:
//
//	pair := parser.Sequence2(
//		func(a, b int32) [2]int32 { return [2]int32{a, b} },
//		parser.TokenLeft(parser.Integer[int32](), parser.Whitespace),
//		parser.TokenLeft(parser.Integer[int32](), parser.Whitespace),
//	)
//	v, rest, ok := pair(" 3 -4 tail") // v == [3 -4], rest == " tail", ok == true
package parser
