// SPDX-License-Identifier: MIT

package grammar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tsplib/parser"
)

// records reads tag/record pairs until one fails to decode.
var records = parser.Many(parser.Bind(parser.TokenLeft(Tag, parser.Whitespace), Decoder))

// Tokens decodes as many records as possible and returns them with the
// unconsumed rest of input.
// Complexity: O(len(input)).
func Tokens(input string) ([]Token, string) {
	tokens, rest, _ := records(input)

	return tokens, rest
}

// Parse decodes input into a Config.
// Stage 1: tokenize.
// Stage 2: anything but whitespace left over is a record that failed to
// decode; report its line as ErrSyntax.
// Stage 3: fold.
func Parse(input string) (Config, error) {
	tokens, rest := Tokens(input)

	rest = strings.TrimLeft(rest, " \t\n\r\v\f")
	if rest != "" {
		consumed := input[:len(input)-len(rest)]
		tag, _, _ := Tag(rest)

		return Config{}, fmt.Errorf("line %d: record %q: %w", lineOf(consumed), tag, ErrSyntax)
	}

	return Fold(tokens), nil
}

// lineOf returns the 1-based line on which the text following consumed starts.
func lineOf(consumed string) int {
	lines, _, _ := parser.Many(parser.Line)(consumed)
	if consumed == "" || isLineBreak(consumed[len(consumed)-1]) {
		return len(lines) + 1
	}

	return len(lines)
}
