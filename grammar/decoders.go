// SPDX-License-Identifier: MIT

package grammar

import (
	"strings"

	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/parser"
)

// keyword pairs a literal with the enum value it stands for.
type keyword[T any] struct {
	lit   string
	value T
}

// oneOf matches the first keyword whose literal prefixes the input.
func oneOf[T any](keywords ...keyword[T]) parser.Parser[T] {
	alts := make([]parser.Parser[T], len(keywords))
	for i, kw := range keywords {
		alts[i] = parser.Map(parser.Str(kw.lit), func(string) T { return kw.value })
	}

	return parser.Choice(alts...)
}

// field decodes a single-line value after optional blanks.
func field[T any](p parser.Parser[T], wrap func(T) Token) parser.Parser[Token] {
	return parser.Map(parser.TokenLeft(p, parser.WhitespaceNotEOL), wrap)
}

func isLineBreak(c byte) bool { return c == '\n' || c == '\r' }

var (
	// restOfLine is the text up to the line terminator; it accepts an empty last line.
	restOfLine = parser.Left(
		parser.ManyText(parser.Satisfy(func(c byte) bool { return !isLineBreak(c) })),
		parser.LineEnd,
	)

	// text is restOfLine without trailing blanks.
	text = parser.Map(restOfLine, func(s string) string { return strings.TrimRight(s, " \t\v\f") })

	problemTypes = oneOf(
		keyword[core.ProblemType]{"TSP", core.TSP},
		keyword[core.ProblemType]{"ATSP", core.ATSP},
		keyword[core.ProblemType]{"SOP", core.SOP},
		keyword[core.ProblemType]{"HCP", core.HCP},
		keyword[core.ProblemType]{"CRVP", core.CRVP},
		keyword[core.ProblemType]{"CVRP", core.CRVP},
		keyword[core.ProblemType]{"TOUR", core.TOUR},
	)

	edgeWeightTypes = oneOf(
		keyword[core.EdgeWeightType]{"EXPLICIT", core.WeightExplicit},
		keyword[core.EdgeWeightType]{"EUC_2D", core.WeightEuc},
		keyword[core.EdgeWeightType]{"EUC_3D", core.WeightEuc},
		keyword[core.EdgeWeightType]{"MAX_2D", core.WeightMax},
		keyword[core.EdgeWeightType]{"MAX_3D", core.WeightMax},
		keyword[core.EdgeWeightType]{"MAN_2D", core.WeightMan},
		keyword[core.EdgeWeightType]{"MAN_3D", core.WeightMan},
		keyword[core.EdgeWeightType]{"CEIL_2D", core.WeightCeil},
		keyword[core.EdgeWeightType]{"GEO", core.WeightGeo},
	)

	edgeWeightFormats = oneOf(
		keyword[core.EdgeWeightFormat]{"FUNCTION", core.FormatFunction},
		keyword[core.EdgeWeightFormat]{"FULL_MATRIX", core.FormatFullMatrix},
		keyword[core.EdgeWeightFormat]{"UPPER_ROW", core.FormatUpperRow},
		keyword[core.EdgeWeightFormat]{"LOWER_ROW", core.FormatLowerRow},
		keyword[core.EdgeWeightFormat]{"UPPER_DIAG_ROW", core.FormatUpperDiagRow},
		keyword[core.EdgeWeightFormat]{"LOWER_DIAG_ROW", core.FormatLowerDiagRow},
		keyword[core.EdgeWeightFormat]{"UPPER_COL", core.FormatUpperCol},
		keyword[core.EdgeWeightFormat]{"LOWER_COL", core.FormatLowerCol},
		keyword[core.EdgeWeightFormat]{"UPPER_DIAG_COL", core.FormatUpperDiagCol},
		keyword[core.EdgeWeightFormat]{"LOWER_DIAG_COL", core.FormatLowerDiagCol},
	)

	edgeDataFormats = oneOf(
		keyword[core.EdgeDataFormat]{"EDGE_LIST", core.DataEdgeList},
		keyword[core.EdgeDataFormat]{"ADJ_LIST", core.DataAdjList},
	)
)

// Node lines: an id, then two or three reals separated by blanks, trailing
// blanks allowed, then the end of the line.
var (
	nodeID    = parser.Natural[uint32]()
	nodeCoord = parser.Right(parser.SomeText(parser.Blank), parser.Real[float64]())
	nodeEnd   = parser.Right(parser.WhitespaceNotEOL, parser.LineEnd)

	node2D = parser.Sequence4(
		func(id uint32, x, y float64, _ string) core.Node2D {
			return core.Node2D{ID: id, X: x, Y: y}
		},
		nodeID, nodeCoord, nodeCoord, nodeEnd,
	)

	node3D = parser.Sequence5(
		func(id uint32, x, y, z float64, _ string) core.Node3D {
			return core.Node3D{ID: id, X: x, Y: y, Z: z}
		},
		nodeID, nodeCoord, nodeCoord, nodeCoord, nodeEnd,
	)

	// nodes2D is tried first; a section is uniformly 2D or 3D and stops at the first line of the other shape.
	nodes2D = parser.Map(parser.Some(parser.TokenLeft(node2D, parser.Whitespace)),
		func(ns []core.Node2D) core.NodeCoords { return core.Nodes2D(ns) })
	nodes3D = parser.Map(parser.Some(parser.TokenLeft(node3D, parser.Whitespace)),
		func(ns []core.Node3D) core.NodeCoords { return core.Nodes3D(ns) })

	integers = parser.Some(parser.TokenLeft(parser.Integer[int32](), parser.Whitespace))
)

// Record decoders. Each runs on the input that follows the tag and its colon.
var (
	decodeName    = field(text, func(v string) Token { return Name{Value: v} })
	decodeComment = field(text, func(v string) Token { return Comment{Value: v} })

	decodeType             = field(problemTypes, func(v core.ProblemType) Token { return ProblemType{Value: v} })
	decodeDimension        = field(parser.Natural[uint32](), func(v uint32) Token { return Dimension{Value: v} })
	decodeCapacity         = field(parser.Natural[uint32](), func(v uint32) Token { return Capacity{Value: v} })
	decodeEdgeWeightType   = field(edgeWeightTypes, func(v core.EdgeWeightType) Token { return EdgeWeightType{Value: v} })
	decodeEdgeWeightFormat = field(edgeWeightFormats, func(v core.EdgeWeightFormat) Token { return EdgeWeightFormat{Value: v} })
	decodeEdgeDataFormat   = field(edgeDataFormats, func(v core.EdgeDataFormat) Token { return EdgeDataFormat{Value: v} })

	decodeNodeCoordSection = parser.Map(parser.Choice(nodes2D, nodes3D),
		func(ns core.NodeCoords) Token { return NodeCoordSection{Nodes: ns} })
	decodeEdgeDataSection = parser.Map(integers,
		func(vs []int32) Token { return EdgeDataSection{Values: vs} })
	decodeEdgeWeightSection = parser.Map(integers,
		func(vs []int32) Token { return EdgeWeightSection{Values: vs} })
)

// skipLine consumes the rest of the line for a tag without a decoder.
func skipLine(tag string) parser.Parser[Token] {
	return parser.Map(restOfLine, func(string) Token { return Ignored{Tag: tag} })
}
