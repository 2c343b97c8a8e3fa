// SPDX-License-Identifier: MIT

package parser

// Byte classes (ASCII; TSPLIB files are plain ASCII).
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isLower(c byte) bool      { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool      { return c >= 'A' && c <= 'Z' }
func isLineEnd(c byte) bool    { return c == '\n' || c == '\r' }
func isBlank(c byte) bool      { return c == ' ' || c == '\t' || c == '\v' || c == '\f' }
func isSpace(c byte) bool      { return isBlank(c) || isLineEnd(c) }
func isNotLineEnd(c byte) bool { return !isLineEnd(c) }

var (
	// Digit consumes one decimal digit.
	Digit = Satisfy(isDigit)
	// Lower consumes one lowercase ASCII letter.
	Lower = Satisfy(isLower)
	// Upper consumes one uppercase ASCII letter.
	Upper = Satisfy(isUpper)
	// Letter consumes one ASCII letter.
	Letter = Choice(Lower, Upper)
	// AlphaNum consumes one ASCII letter or digit.
	AlphaNum = Choice(Letter, Digit)
	// Space consumes one whitespace byte, line terminators included.
	Space = Satisfy(isSpace)
	// Blank consumes one whitespace byte that does not break the line.
	Blank = Satisfy(isBlank)

	// Whitespace consumes any run of whitespace, newlines included. Never fails.
	Whitespace = ManyText(Space)
	// WhitespaceNotEOL consumes any run of blanks on the current line. Never fails.
	WhitespaceNotEOL = ManyText(Blank)

	// EOL consumes one line terminator: "\r\n", "\n\r", "\n" or "\r".
	EOL = Choice(Str("\r\n"), Str("\n\r"), Str("\n"), Str("\r"))
	// LineEnd is EOL, or the end of input for a final unterminated line.
	LineEnd = Choice(EOL, Map(EndOfInput, func(struct{}) string { return "" }))

	lineBody = Left(ManyText(Satisfy(isNotLineEnd)), LineEnd)
)

// Line consumes the rest of the current line including its terminator and
// returns the text without the terminator. At the end of input a line without
// terminator is accepted; empty input fails so that repetition over Line ends.
var Line Parser[string] = func(input string) (string, string, bool) {
	if input == "" {
		return fail[string](input)
	}

	return lineBody(input)
}
