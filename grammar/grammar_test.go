// SPDX-License-Identifier: MIT

package grammar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/grammar"
)

const small = `NAME: tiny
TYPE: TSP
COMMENT: three cities
DIMENSION: 3
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 4
3 6 8
EOF
`

func TestTokens(t *testing.T) {
	tokens, rest := grammar.Tokens(small)
	require.GreaterOrEqual(t, len(tokens), 7)
	assert.Equal(t, grammar.Name{Value: "tiny"}, tokens[0])
	assert.Equal(t, grammar.ProblemType{Value: core.TSP}, tokens[1])
	assert.Equal(t, grammar.Comment{Value: "three cities"}, tokens[2])
	assert.Equal(t, grammar.Dimension{Value: 3}, tokens[3])
	assert.Equal(t, grammar.EdgeWeightType{Value: core.WeightEuc}, tokens[4])
	assert.IsType(t, grammar.NodeCoordSection{}, tokens[5])
	assert.Equal(t, grammar.Ignored{Tag: grammar.TagEOF}, tokens[6])
	assert.Equal(t, "", rest)
}

func TestParse(t *testing.T) {
	cfg, err := grammar.Parse(small)
	require.NoError(t, err)

	head := cfg.Specification
	require.NotNil(t, head.Name)
	assert.Equal(t, "tiny", *head.Name)
	require.NotNil(t, head.Comment)
	assert.Equal(t, "three cities", *head.Comment)
	require.NotNil(t, head.Type)
	assert.Equal(t, core.TSP, *head.Type)
	require.NotNil(t, head.Dimension)
	assert.Equal(t, uint32(3), *head.Dimension)
	require.NotNil(t, head.EdgeWeightType)
	assert.Equal(t, core.WeightEuc, *head.EdgeWeightType)
	assert.Nil(t, head.Capacity)
	assert.Nil(t, head.EdgeWeightFormat)
	assert.Nil(t, head.EdgeDataFormat)

	nodes, ok := cfg.Data.NodeCoords.(core.Nodes2D)
	require.True(t, ok)
	assert.Equal(t, core.Nodes2D{{ID: 1}, {ID: 2, X: 3, Y: 4}, {ID: 3, X: 6, Y: 8}}, nodes)
	assert.Nil(t, cfg.Data.EdgeData)
	assert.Nil(t, cfg.Data.EdgeWeights)
}

func TestParse_LineEndings(t *testing.T) {
	var variants = map[string]string{
		"crlf":       "NAME: x\r\nDIMENSION: 2\r\nNODE_COORD_SECTION\r\n1 0 0\r\n2 1 1\r\nEOF\r\n",
		"cr":         "NAME: x\rDIMENSION: 2\rNODE_COORD_SECTION\r1 0 0\r2 1 1\rEOF\r",
		"lfcr":       "NAME: x\n\rDIMENSION: 2\n\rNODE_COORD_SECTION\n\r1 0 0\n\r2 1 1\n\rEOF\n\r",
		"no newline": "NAME: x\nDIMENSION: 2\nNODE_COORD_SECTION\n1 0 0\n2 1 1",
		"indented":   "  NAME : x\n\n\tDIMENSION : 2\nNODE_COORD_SECTION :\n  1 0 0\n  2 1 1\n\nEOF",
	}
	for name, in := range variants {
		t.Run(name, func(t *testing.T) {
			cfg, err := grammar.Parse(in)
			require.NoError(t, err)
			require.NotNil(t, cfg.Specification.Name)
			assert.Equal(t, "x", *cfg.Specification.Name)
			require.NotNil(t, cfg.Specification.Dimension)
			assert.Equal(t, uint32(2), *cfg.Specification.Dimension)
			require.NotNil(t, cfg.Data.NodeCoords)
			assert.Equal(t, 2, cfg.Data.NodeCoords.Len())
		})
	}
}

func TestParse_UnknownTagsDoNotInterfere(t *testing.T) {
	const in = "NAME: a\nDISPLAY_DATA_TYPE: TWOD_DISPLAY\nTYPE: ATSP\nDEPOT_SECTION\n1\n-1\nCAPACITY: 6\nSOMETHING ELSE\nEOF\n"

	cfg, err := grammar.Parse(in)
	require.NoError(t, err)
	assert.Equal(t, "a", *cfg.Specification.Name)
	assert.Equal(t, core.ATSP, *cfg.Specification.Type)
	assert.Equal(t, uint32(6), *cfg.Specification.Capacity)
}

func TestParse_SyntaxError(t *testing.T) {
	var cases = []struct {
		name, in string
		line     string
	}{
		{"bad dimension", "NAME: a\nDIMENSION: many\n", "line 2"},
		{"bad type", "NAME: a\n\nTYPE: QAP\n", "line 3"},
		{"bad section", "NODE_COORD_SECTION\nfoo\n", "line 1"},
		{"crlf", "NAME: a\r\nCOMMENT: b\r\nEDGE_WEIGHT_TYPE: EUC\r\n", "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grammar.Parse(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, grammar.ErrSyntax))
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := grammar.Parse("")
	require.NoError(t, err)
	assert.Equal(t, grammar.Config{}, cfg)

	cfg, err = grammar.Parse(" \n\t\n")
	require.NoError(t, err)
	assert.Nil(t, cfg.Specification.Name)
}

func TestFold_LastWriteWins(t *testing.T) {
	cfg := grammar.Fold([]grammar.Token{
		grammar.Name{Value: "first"},
		grammar.Dimension{Value: 4},
		grammar.Ignored{Tag: "EOF"},
		grammar.EdgeWeightSection{Values: []int32{1, 2}},
		grammar.Name{Value: "second"},
		grammar.EdgeWeightSection{Values: []int32{3}},
	})

	assert.Equal(t, "second", *cfg.Specification.Name)
	assert.Equal(t, uint32(4), *cfg.Specification.Dimension)
	assert.Equal(t, []int32{3}, cfg.Data.EdgeWeights)
	assert.Nil(t, cfg.Specification.Comment)
}

func TestFold_EveryKind(t *testing.T) {
	nodes := core.Nodes3D{{ID: 1, X: 1, Y: 2, Z: 3}}
	cfg := grammar.Fold([]grammar.Token{
		grammar.Name{Value: "n"},
		grammar.Comment{Value: "c"},
		grammar.ProblemType{Value: core.HCP},
		grammar.Dimension{Value: 1},
		grammar.Capacity{Value: 2},
		grammar.EdgeWeightType{Value: core.WeightMan},
		grammar.EdgeWeightFormat{Value: core.FormatFunction},
		grammar.EdgeDataFormat{Value: core.DataAdjList},
		grammar.NodeCoordSection{Nodes: nodes},
		grammar.EdgeDataSection{Values: []int32{-1}},
		grammar.EdgeWeightSection{Values: []int32{0}},
	})

	head := cfg.Specification
	assert.Equal(t, "n", *head.Name)
	assert.Equal(t, "c", *head.Comment)
	assert.Equal(t, core.HCP, *head.Type)
	assert.Equal(t, uint32(1), *head.Dimension)
	assert.Equal(t, uint32(2), *head.Capacity)
	assert.Equal(t, core.WeightMan, *head.EdgeWeightType)
	assert.Equal(t, core.FormatFunction, *head.EdgeWeightFormat)
	assert.Equal(t, core.DataAdjList, *head.EdgeDataFormat)
	assert.Equal(t, core.NodeCoords(nodes), cfg.Data.NodeCoords)
	assert.Equal(t, []int32{-1}, cfg.Data.EdgeData)
	assert.Equal(t, []int32{0}, cfg.Data.EdgeWeights)
}
