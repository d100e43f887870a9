package game

import (
	"strconv"
	"strings"
)

// ClampDimension bounds a row or column count to [MinDimension, MaxDimension]
func ClampDimension(n int) int {
	switch {
	case n < MinDimension:
		return MinDimension
	case n > MaxDimension:
		return MaxDimension
	default:
		return n
	}
}

// ClampMines bounds a mine count so at least one cell is always safe
func ClampMines(mines, rows, cols int) int {
	maxMines := rows*cols - 1
	switch {
	case mines < 0:
		return 0
	case mines > maxMines:
		return maxMines
	default:
		return mines
	}
}

// ParseDimension reads an untrusted row or column count. Empty or malformed
// input falls back to DefaultDimension; everything is clamped, never rejected.
func ParseDimension(in string) int {
	return ClampDimension(parseIntOr(in, DefaultDimension))
}

// ParseParams turns untrusted text inputs into clamped board parameters
func ParseParams(rows, cols, mines string) (int, int, int) {
	r := ParseDimension(rows)
	c := ParseDimension(cols)
	m := ClampMines(parseIntOr(mines, DefaultMines), r, c)
	return r, c, m
}

func parseIntOr(in string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil {
		return fallback
	}
	return n
}
