package flowchart

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/analytics"
)

func summary(income, expense map[string]float64) analytics.Summary {
	s := analytics.Summary{
		IncomeByCategory:  map[string]decimal.Decimal{},
		ExpenseByCategory: map[string]decimal.Decimal{},
	}
	for k, v := range income {
		d := decimal.NewFromFloat(v)
		s.IncomeByCategory[k] = d
		s.TotalIncome = s.TotalIncome.Add(d)
	}
	for k, v := range expense {
		d := decimal.NewFromFloat(v)
		s.ExpenseByCategory[k] = d
		s.TotalExpense = s.TotalExpense.Add(d)
	}
	return s
}

func blockByLabel(t *testing.T, blocks []Block, label string) Block {
	t.Helper()
	for _, b := range blocks {
		if b.Label == label {
			return b
		}
	}
	t.Fatalf("no block labeled %q", label)
	return Block{}
}

func TestLayoutSavingsCase(t *testing.T) {
	s := summary(
		map[string]float64{"Salary": 1000},
		map[string]float64{"Rent": 600, "Food": 200},
	)

	l := New(s, map[string]string{"Salary": "#111111", "Rent": "#222222", "Food": "#333333"}, 600, 400)
	require.False(t, l.Empty)

	// Scale anchors to the larger side: 400 / 1000.
	scale := 0.4

	require.Len(t, l.Left, 1)
	assert.InDelta(t, 1000*scale, l.Left[0].Height, 0.001)

	require.Len(t, l.Right, 3)
	savings := blockByLabel(t, l.Right, SavingsLabel)
	assert.InDelta(t, 200.0, savings.Amount, 0.001)
	assert.InDelta(t, 200*scale, savings.Height, 0.001)

	for _, b := range l.Right {
		assert.NotEqual(t, DeficitLabel, b.Label)
	}
	for _, b := range l.Left {
		assert.NotEqual(t, DeficitLabel, b.Label)
	}
}

func TestLayoutDeficitCase(t *testing.T) {
	s := summary(
		map[string]float64{"Salary": 500},
		map[string]float64{"Rent": 600},
	)

	l := New(s, nil, 600, 400)
	require.False(t, l.Empty)

	deficit := blockByLabel(t, l.Left, DeficitLabel)
	assert.InDelta(t, 100.0, deficit.Amount, 0.001)
	assert.InDelta(t, 0.5, deficit.Opacity, 0.001)

	for _, b := range l.Right {
		assert.NotEqual(t, SavingsLabel, b.Label)
	}
}

func TestLayoutOrdersBlocksDescending(t *testing.T) {
	s := summary(
		map[string]float64{"Salary": 900, "Freelance": 100},
		map[string]float64{"Food": 50, "Rent": 700, "Transport": 150},
	)

	l := New(s, nil, 600, 400)

	require.Len(t, l.Left, 2)
	assert.Equal(t, "Salary", l.Left[0].Label)
	assert.Equal(t, "Freelance", l.Left[1].Label)

	require.GreaterOrEqual(t, len(l.Right), 3)
	assert.Equal(t, "Rent", l.Right[0].Label)
	assert.Equal(t, "Transport", l.Right[1].Label)
	assert.Equal(t, "Food", l.Right[2].Label)

	// Stacking leaves a gutter between neighbors.
	assert.InDelta(t, l.Right[0].Height+Gutter, l.Right[1].Y, 0.001)
}

func TestLayoutLinks(t *testing.T) {
	s := summary(
		map[string]float64{"Salary": 1000},
		map[string]float64{"Rent": 600, "Food": 400},
	)

	l := New(s, nil, 600, 400)
	require.Len(t, l.Links, 2)

	// One link per right block, stroke width equals block height.
	assert.InDelta(t, l.Right[0].Height, l.Links[0].Width, 0.001)
	assert.InDelta(t, l.Right[1].Height, l.Links[1].Width, 0.001)
	assert.InDelta(t, LinkOpacity, l.Links[0].Opacity, 0.001)

	// The left cursor advances by consumed height.
	assert.InDelta(t, l.Right[0].Height/2, l.Links[0].Y1, 0.001)
	assert.InDelta(t, l.Right[0].Height+l.Right[1].Height/2, l.Links[1].Y1, 0.001)

	// Links land on the vertical center of their destination block.
	assert.InDelta(t, l.Right[1].Y+l.Right[1].Height/2, l.Links[1].Y2, 0.001)
}

func TestLayoutEmpty(t *testing.T) {
	l := New(summary(nil, nil), nil, 600, 400)
	assert.True(t, l.Empty)
	assert.Empty(t, l.Left)
	assert.Empty(t, l.Right)
	assert.Empty(t, l.Links)
}

func TestBezierPathControlPoints(t *testing.T) {
	link := Link{X1: 140, Y1: 50, X2: 460, Y2: 200}
	assert.Equal(t, "M 140.0 50.0 C 300.0 50.0, 300.0 200.0, 460.0 200.0", link.BezierPath())
}

func TestWriteSVG(t *testing.T) {
	s := summary(map[string]float64{"Salary": 100}, map[string]float64{"Rent": 60})
	l := New(s, nil, 600, 400)

	var sb strings.Builder
	require.NoError(t, WriteSVG(&sb, l))
	out := sb.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<rect")
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, SavingsLabel)
}

func TestWriteSVGEmptyPlaceholder(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteSVG(&sb, New(summary(nil, nil), nil, 600, 400)))
	assert.Contains(t, sb.String(), "No data for this period")
	assert.NotContains(t, sb.String(), "<rect")
}
