// Package grammar decodes the TSPLIB text format into a Config.
//
// A TSPLIB file is an open-ended sequence of records, each introduced by a tag:
//
//	NAME : br17
//	TYPE : ATSP
//	EDGE_WEIGHT_TYPE : EXPLICIT
//	EDGE_WEIGHT_FORMAT : FULL_MATRIX
//	EDGE_WEIGHT_SECTION
//	 9999 3 5 ...
//	EOF
//
// Decoding runs in two stages:
//
//  1. Tokens: read a tag, look its decoder up in a static table and decode one
//     Token; repeat until no further record decodes. Tags without a decoder
//     (EOF, DEPOT_SECTION, DISPLAY_DATA_SECTION, ...) skip their line and yield
//     Ignored.
//  2. Fold: reduce the tokens into a Config, one field per token kind, the
//     last occurrence of a kind winning.
//
// Parse runs both and turns unconsumed input into ErrSyntax.
//
// Records may appear in any order. Tags are case-sensitive; the colon after a
// tag is optional and may be surrounded by blanks.
package grammar
