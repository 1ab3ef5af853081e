package services

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ghuser/shoppingcart/services/cart/domain/models"
)

// NoItems is the whole ticket for an empty cart.
const NoItems = "No items."

// Alignment positions a value inside its column.
type Alignment int

const (
	AlignLeft   Alignment = -1
	AlignCenter Alignment = 0
	AlignRight  Alignment = 1
)

// column describes one ticket column: its header, alignment and how to fill
// the cell for an item row and for the closing total row.
type column struct {
	name   string
	align  Alignment
	value  func(index int, line PricedLine) string
	footer func(r Receipt) string
}

func blank(Receipt) string { return "" }

var ticketColumns = []column{
	{
		name:   "#",
		align:  AlignRight,
		value:  func(index int, _ PricedLine) string { return strconv.Itoa(index) },
		footer: func(r Receipt) string { return strconv.Itoa(len(r.Lines)) },
	},
	{
		name:   "Item",
		align:  AlignLeft,
		value:  func(_ int, l PricedLine) string { return l.Item.Title.String() },
		footer: blank,
	},
	{
		name:   "Price",
		align:  AlignRight,
		value:  func(_ int, l PricedLine) string { return FormatMoney(l.Item.UnitPrice) },
		footer: blank,
	},
	{
		name:   "Quan.",
		align:  AlignRight,
		value:  func(_ int, l PricedLine) string { return strconv.Itoa(l.Item.Quantity) },
		footer: blank,
	},
	{
		name:   "Discount",
		align:  AlignRight,
		value:  func(_ int, l PricedLine) string { return FormatDiscount(l.Discount) },
		footer: blank,
	},
	{
		name:   "Total",
		align:  AlignRight,
		value:  func(_ int, l PricedLine) string { return FormatMoney(l.Total) },
		footer: func(r Receipt) string { return FormatMoney(r.Total) },
	},
}

// FormatTicket renders cart as a fixed-width table:
//
//	# Item       Price Quan. Discount Total
//	---------------------------------------
//	1 Some title  $.30     2        -  $.60
//	---------------------------------------
//	1                                  $.60
//
// Every row ends with one trailing space; rows are joined by "\n" with no
// final newline. An empty cart renders as NoItems.
func FormatTicket(cart *models.Cart) string {
	if cart.Len() == 0 {
		return NoItems
	}

	receipt := PriceCart(cart)
	rows := ticketRows(receipt)
	widths := columnWidths(rows)

	lineLength := len(widths) - 1
	for _, w := range widths {
		lineLength += w
	}
	separator := strings.Repeat("-", lineLength)

	var sb strings.Builder
	for i, row := range rows {
		if i == 1 || i == len(rows)-1 {
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}
		for c, value := range row {
			AppendFormatted(&sb, value, ticketColumns[c].align, widths[c])
		}
		if i != len(rows)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ticketRows returns the header, one row per priced line and the total row.
func ticketRows(r Receipt) [][]string {
	rows := make([][]string, 0, len(r.Lines)+2)

	header := make([]string, len(ticketColumns))
	for c, col := range ticketColumns {
		header[c] = col.name
	}
	rows = append(rows, header)

	for i, line := range r.Lines {
		row := make([]string, len(ticketColumns))
		for c, col := range ticketColumns {
			row[c] = col.value(i+1, line)
		}
		rows = append(rows, row)
	}

	footer := make([]string, len(ticketColumns))
	for c, col := range ticketColumns {
		footer[c] = col.footer(r)
	}
	return append(rows, footer)
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(ticketColumns))
	for _, row := range rows {
		for c, value := range row {
			widths[c] = max(widths[c], utf8.RuneCountInString(value))
		}
	}
	return widths
}

// AppendFormatted writes value to sb padded to width according to align,
// followed by one space. Values longer than width are cut to width first.
func AppendFormatted(sb *strings.Builder, value string, align Alignment, width int) {
	if utf8.RuneCountInString(value) > width {
		value = string([]rune(value)[:max(width, 0)])
	}
	n := utf8.RuneCountInString(value)

	var before int
	switch align {
	case AlignCenter:
		before = (width - n) / 2
	case AlignLeft:
		before = 0
	default:
		before = width - n
	}
	after := width - n - before

	sb.WriteString(strings.Repeat(" ", max(before, 0)))
	sb.WriteString(value)
	sb.WriteString(strings.Repeat(" ", max(after, 0)))
	sb.WriteByte(' ')
}
