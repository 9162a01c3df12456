package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
)

// ledgerGrid lays out a small report sheet:
//
//	A1:B1  blank
//	A2:B2  类别 | 数量
//	A3:B6  four data rows
//	A7:B7  合计 | 10
func ledgerGrid() models.Grid {
	return models.NewSliceGrid([][]any{
		{nil, nil},
		{"类别", "数量"},
		{"甲", int64(1)},
		{"乙", int64(2)},
		{"丙", int64(3)},
		{"丁", int64(4)},
		{"合计", int64(10)},
	})
}

func TestResolveBlockFixed(t *testing.T) {
	block, err := ResolveBlock(ledgerGrid(), models.BlockSpec{Range: "A3:B6"}, true)
	require.NoError(t, err)
	assert.Equal(t, Range{2, 5, 0, 1}, block.Data)
	assert.Nil(t, block.Total)
}

func TestResolveBlockFixedClipping(t *testing.T) {
	g := ledgerGrid()

	block, err := ResolveBlock(g, models.BlockSpec{Range: "A3:B100"}, true)
	require.NoError(t, err)
	assert.Equal(t, Range{2, 6, 0, 1}, block.Data, "end bound clips to the last grid row")

	_, err = ResolveBlock(g, models.BlockSpec{Range: "A3:B100"}, false)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds, "clipping disabled")

	// A start corner off the sheet is never rescued by clipping.
	_, err = ResolveBlock(g, models.BlockSpec{Range: "A100:B200"}, true)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestResolveBlockAnchored(t *testing.T) {
	spec := models.BlockSpec{
		Start:   &models.StartSpec{Column: "A", Text: "类别", RowDelta: 1},
		End:     &models.EndSpec{Keyword: &models.KeywordSpec{Column: "A", Text: "合计", RowOffset: -1}},
		Columns: "A:B",
	}
	block, err := ResolveBlock(ledgerGrid(), spec, true)
	require.NoError(t, err)
	assert.Equal(t, Range{2, 5, 0, 1}, block.Data)
}

func TestResolveBlockAnchoredToLastRow(t *testing.T) {
	spec := models.BlockSpec{
		Start:   &models.StartSpec{Column: "A", Text: "类别", RowDelta: 1},
		Columns: "A:B",
	}
	block, err := ResolveBlock(ledgerGrid(), spec, true)
	require.NoError(t, err)
	assert.Equal(t, Range{2, 6, 0, 1}, block.Data, "nil end runs to the last grid row")
}

func TestResolveBlockAnchoredFixedEnd(t *testing.T) {
	spec := models.BlockSpec{
		Start:   &models.StartSpec{Column: "A", Text: "甲"},
		End:     &models.EndSpec{Row: 5},
		Columns: "A:B",
	}
	block, err := ResolveBlock(ledgerGrid(), spec, true)
	require.NoError(t, err)
	assert.Equal(t, Range{2, 4, 0, 1}, block.Data)
}

func TestResolveBlockAnchorNotFound(t *testing.T) {
	// 名称 occurs twice, so asking for the third occurrence must fail.
	g := models.NewSliceGrid([][]any{
		{"名称"}, {"甲"}, {"名称"}, {"乙"},
	})
	spec := models.BlockSpec{
		Start:   &models.StartSpec{Column: "A", Text: "名称", Occurrence: 3},
		Columns: "A:A",
	}
	_, err := ResolveBlock(g, spec, true)
	assert.ErrorIs(t, err, ErrAnchorNotFound)

	spec.Start.Text = "丙"
	spec.Start.Occurrence = 0
	_, err = ResolveBlock(ledgerGrid(), spec, true)
	assert.ErrorIs(t, err, ErrAnchorNotFound)
}

func TestResolveBlockKeywordNotFound(t *testing.T) {
	spec := models.BlockSpec{
		Start:   &models.StartSpec{Column: "A", Text: "类别", RowDelta: 1},
		End:     &models.EndSpec{Keyword: &models.KeywordSpec{Column: "A", Text: "总计", RowOffset: -1}},
		Columns: "A:B",
	}
	_, err := ResolveBlock(ledgerGrid(), spec, true)
	assert.ErrorIs(t, err, ErrKeywordNotFound)
}

func TestResolveBlockEmpty(t *testing.T) {
	// The keyword sits directly on the start row; offset -1 lands the end
	// one row above the start. That is an empty block, not an error.
	spec := models.BlockSpec{
		Start:   &models.StartSpec{Column: "A", Text: "合计"},
		End:     &models.EndSpec{Keyword: &models.KeywordSpec{Column: "A", Text: "合计", RowOffset: -1}},
		Columns: "A:B",
	}
	block, err := ResolveBlock(ledgerGrid(), spec, true)
	require.NoError(t, err)
	assert.Equal(t, 0, block.Data.Rows())
}

func TestResolveBlockTotal(t *testing.T) {
	block, err := ResolveBlock(ledgerGrid(), models.BlockSpec{Range: "A3:B6", Total: "A7:B7"}, true)
	require.NoError(t, err)
	require.NotNil(t, block.Total)
	assert.Equal(t, Range{6, 6, 0, 1}, *block.Total)

	_, err = ResolveBlock(ledgerGrid(), models.BlockSpec{Range: "A3:B6", Total: "A7:B8"}, true)
	assert.ErrorIs(t, err, ErrInvalidAddress, "total must be a single row")
}

func TestResolveBlockUnionShape(t *testing.T) {
	g := ledgerGrid()

	_, err := ResolveBlock(g, models.BlockSpec{}, true)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ResolveBlock(g, models.BlockSpec{
		Range:   "A3:B6",
		Start:   &models.StartSpec{Column: "A", Text: "类别"},
		Columns: "A:B",
	}, true)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ResolveBlock(g, models.BlockSpec{
		Start: &models.StartSpec{Column: "A", Text: "类别"},
	}, true)
	assert.ErrorIs(t, err, ErrInvalidAddress, "anchored block requires a columns span")

	_, err = ResolveBlock(g, models.BlockSpec{
		Start:   &models.StartSpec{Column: "A", Text: "类别"},
		End:     &models.EndSpec{},
		Columns: "A:B",
	}, true)
	assert.ErrorIs(t, err, ErrInvalidAddress, "end must set row or keyword")
}
