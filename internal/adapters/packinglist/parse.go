// Package packinglist turns shipping packing lists (spreadsheet exports)
// into boxes.
//
// A packing list has one header row and one row per line item. Several rows
// may share a package number (NO.) when one crate holds several items; such
// rows describe a single box. Blank cells repeat the value above them.
package packinglist

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

// Column headers recognised in a packing list.
const (
	ColNo        = "NO."
	ColItem      = "ITEM"
	ColWidth     = "WIDTH(mm)"
	ColLength    = "LENGTH(mm)"
	ColHeight    = "HEIGHT(mm)"
	ColWeight    = "G.Weight"
	ColStackable = "STACKABLE"
)

var (
	ErrEmpty         = errors.New("packing list is empty")
	ErrMissingColumn = errors.New("packing list is missing a required column")
)

var required = []string{ColNo, ColWidth, ColLength, ColHeight}

type columns map[string]int

func (c columns) cell(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Parse converts raw rows, header first, into boxes ordered by package number.
// Packages without all three dimensions are skipped.
func Parse(rows [][]string) ([]*domain.Box, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	cols := columns{}
	for i, h := range rows[0] {
		cols[normalizeHeader(h)] = i
	}
	for _, name := range required {
		if _, ok := cols[normalizeHeader(name)]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	// Re-key on canonical names so lookups below use the constants.
	canon := columns{}
	for _, name := range []string{ColNo, ColItem, ColWidth, ColLength, ColHeight, ColWeight, ColStackable} {
		if i, ok := cols[normalizeHeader(name)]; ok {
			canon[name] = i
		}
	}

	filled := forwardFill(rows[1:], len(rows[0]))

	type group struct {
		no    int
		first []string
		items []string
	}
	groups := map[int]*group{}

	for line, row := range filled {
		rawNo := canon.cell(row, ColNo)
		if rawNo == "" {
			continue
		}
		no, err := parseNo(rawNo)
		if err != nil {
			return nil, fmt.Errorf("packing list row %d: %w", line+2, err)
		}

		g, ok := groups[no]
		if !ok {
			g = &group{no: no, first: row}
			groups[no] = g
		}
		if item := canon.cell(row, ColItem); item != "" && !slices.Contains(g.items, item) {
			g.items = append(g.items, item)
		}
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	slices.SortFunc(ordered, func(a, b *group) int { return cmp.Compare(a.no, b.no) })

	boxes := make([]*domain.Box, 0, len(ordered))
	for _, g := range ordered {
		row := g.first
		rawL, rawW, rawH := canon.cell(row, ColLength), canon.cell(row, ColWidth), canon.cell(row, ColHeight)
		if rawL == "" || rawW == "" || rawH == "" {
			continue
		}

		var dims [4]float64
		for i, raw := range []string{rawL, rawW, rawH, canon.cell(row, ColWeight)} {
			v, err := parseNumber(raw)
			if err != nil {
				return nil, fmt.Errorf("packing list NO.%d: %w", g.no, err)
			}
			dims[i] = v
		}

		boxes = append(boxes, domain.NewBox(
			g.no,
			fmt.Sprintf("NO.%d", g.no),
			dims[0], dims[1], dims[2], dims[3],
			parseStackable(canon.cell(row, ColStackable)),
			strings.Join(g.items, ", "),
		))
	}

	return boxes, nil
}

// forwardFill copies the last non-blank value of each column into blank cells below it.
func forwardFill(rows [][]string, width int) [][]string {
	last := make([]string, width)
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		filled := make([]string, max(width, len(row)))
		copy(filled, row)
		for i := range filled {
			if strings.TrimSpace(filled[i]) == "" {
				if i < width {
					filled[i] = last[i]
				}
				continue
			}
			if i < width {
				last[i] = filled[i]
			}
		}
		out = append(out, filled)
	}
	return out
}

func normalizeHeader(h string) string {
	h = strings.ToUpper(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "")
}

// parseNumber reads a spreadsheet number, allowing thousands separators.
// A blank cell reads as zero.
func parseNumber(raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}

func parseNo(raw string) (int, error) {
	v, err := parseNumber(raw)
	if err != nil {
		return 0, fmt.Errorf("package number: %w", err)
	}
	return int(v), nil
}

func parseStackable(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "N", "NO", "FALSE", "0", "X":
		return false
	}
	return true
}
