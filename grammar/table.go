// SPDX-License-Identifier: MIT

package grammar

import "github.com/katalvlaran/tsplib/parser"

// decoders maps every recognized tag to its record decoder.
// Built once at package initialization and only read afterwards.
var decoders = map[string]parser.Parser[Token]{
	TagName:              decodeName,
	TagType:              decodeType,
	TagComment:           decodeComment,
	TagDimension:         decodeDimension,
	TagCapacity:          decodeCapacity,
	TagEdgeWeightType:    decodeEdgeWeightType,
	TagEdgeWeightFormat:  decodeEdgeWeightFormat,
	TagEdgeDataFormat:    decodeEdgeDataFormat,
	TagNodeCoordSection:  decodeNodeCoordSection,
	TagEdgeDataSection:   decodeEdgeDataSection,
	TagEdgeWeightSection: decodeEdgeWeightSection,
}

// Decoder returns the decoder registered for tag, or a line skipper producing Ignored.
func Decoder(tag string) parser.Parser[Token] {
	if d, ok := decoders[tag]; ok {
		return d
	}

	return skipLine(tag)
}

// Recognized reports whether tag has a decoder.
func Recognized(tag string) bool {
	_, ok := decoders[tag]

	return ok
}

func isTagByte(c byte) bool {
	return c != ':' && c != ' ' && c != '\t' && c != '\v' && c != '\f' && !isLineBreak(c)
}

// Tag reads a tag: the run of bytes up to whitespace or a colon, then the
// colon if present, optionally preceded by blanks.
var Tag = parser.Left(
	parser.ManyText(parser.Satisfy(isTagByte)),
	parser.Maybe(parser.TokenLeft(parser.Symbol(':'), parser.WhitespaceNotEOL)),
)
