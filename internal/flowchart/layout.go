// Package flowchart lays out the two-column proportional income/expense
// flow diagram.
//
// The diagram is a deliberate approximation: money is fungible, so the
// links do not trace verified source-to-destination flows, only
// proportional visual flow from the income column to the expense column.
package flowchart

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/analytics"
)

// Geometry constants shared by every rendering of the diagram.
const (
	// Gutter is the vertical gap between stacked blocks.
	Gutter = 5.0
	// BlockWidth is the horizontal size of a column block.
	BlockWidth = 140.0
	// LinkOpacity keeps overlapping links legible.
	LinkOpacity = 0.3
)

const (
	// DeficitLabel names the synthetic left block covering overspend.
	DeficitLabel = "Deficit"
	// SavingsLabel names the synthetic right block covering surplus.
	SavingsLabel = "Savings"

	deficitColor  = "#E74C3C"
	savingsColor  = "#2ECC71"
	fallbackColor = "#999999"
)

// Block is one rectangle in a column.
type Block struct {
	Label   string
	Color   string
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Opacity float64
	Amount  float64
}

// Link is one curved band from the left column to a right block. The
// curve is a cubic bezier whose control points are offset horizontally
// toward the chart's midpoint.
type Link struct {
	Color   string
	X1      float64
	Y1      float64
	X2      float64
	Y2      float64
	Width   float64
	Opacity float64
}

// Layout is the computed diagram geometry.
type Layout struct {
	Left   []Block
	Right  []Block
	Links  []Link
	Width  float64
	Height float64
	Empty  bool
}

// New computes the diagram for one summary. Zero income and zero expense
// yields an Empty layout; callers render a "no data" placeholder and the
// pixel scale is never derived from a zero total.
func New(sum analytics.Summary, colors map[string]string, width, height float64) Layout {
	l := Layout{Width: width, Height: height}

	income, _ := sum.TotalIncome.Float64()
	expense, _ := sum.TotalExpense.Float64()
	if income <= 0 && expense <= 0 {
		l.Empty = true
		return l
	}

	larger := income
	if expense > larger {
		larger = expense
	}
	scale := height / larger

	l.Left = stackColumn(sortedEntries(sum.IncomeByCategory), colors, 0, scale)
	if expense > income {
		l.Left = appendBlock(l.Left, Block{
			Label:   DeficitLabel,
			Color:   deficitColor,
			X:       0,
			Width:   BlockWidth,
			Height:  (expense - income) * scale,
			Opacity: 0.5,
			Amount:  expense - income,
		})
	}

	rightX := width - BlockWidth
	l.Right = stackColumn(sortedEntries(sum.ExpenseByCategory), colors, rightX, scale)
	if income > expense {
		l.Right = appendBlock(l.Right, Block{
			Label:   SavingsLabel,
			Color:   savingsColor,
			X:       rightX,
			Width:   BlockWidth,
			Height:  (income - expense) * scale,
			Opacity: 1,
			Amount:  income - expense,
		})
	}

	l.Links = buildLinks(l.Right, width)

	return l
}

type entry struct {
	label  string
	amount float64
}

// sortedEntries orders category totals descending by amount, ties broken
// by name for a stable diagram.
func sortedEntries(byCategory map[string]decimal.Decimal) []entry {
	entries := make([]entry, 0, len(byCategory))
	for label, amount := range byCategory {
		f, _ := amount.Float64()
		if f <= 0 {
			continue
		}
		entries = append(entries, entry{label: label, amount: f})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].amount != entries[j].amount {
			return entries[i].amount > entries[j].amount
		}
		return entries[i].label < entries[j].label
	})
	return entries
}

func stackColumn(entries []entry, colors map[string]string, x, scale float64) []Block {
	blocks := make([]Block, 0, len(entries))
	y := 0.0
	for _, e := range entries {
		color, ok := colors[e.label]
		if !ok {
			color = fallbackColor
		}
		h := e.amount * scale
		blocks = append(blocks, Block{
			Label:   e.label,
			Color:   color,
			X:       x,
			Y:       y,
			Width:   BlockWidth,
			Height:  h,
			Opacity: 1,
			Amount:  e.amount,
		})
		y += h + Gutter
	}
	return blocks
}

// appendBlock stacks a synthetic block under the existing column.
func appendBlock(blocks []Block, b Block) []Block {
	y := 0.0
	if n := len(blocks); n > 0 {
		y = blocks[n-1].Y + blocks[n-1].Height + Gutter
	}
	b.Y = y
	return append(blocks, b)
}

// buildLinks draws one band per right block. A vertical cursor walks down
// the left column as each band consumes its share of the income stack;
// band width equals the destination block's height.
func buildLinks(right []Block, width float64) []Link {
	links := make([]Link, 0, len(right))
	cursor := 0.0
	for _, b := range right {
		links = append(links, Link{
			Color:   b.Color,
			X1:      BlockWidth,
			Y1:      cursor + b.Height/2,
			X2:      width - BlockWidth,
			Y2:      b.Y + b.Height/2,
			Width:   b.Height,
			Opacity: LinkOpacity,
		})
		cursor += b.Height
	}
	return links
}
