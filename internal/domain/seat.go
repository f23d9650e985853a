package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeat splits a seat identifier such as "C7" into zero-based row and
// column coordinates. A valid identifier is a single row letter followed by
// one or more digits, case-insensitive. 'A' maps to row 0 and column
// numbering starts at 1 externally, so "A1" parses to (0, 0).
func ParseSeat(id string) (row, col int, err error) {
	seat := NormalizeSeat(id)
	if len(seat) < 2 {
		return 0, 0, fmt.Errorf("%w: malformed seat id %q", ErrInvalidInput, id)
	}

	rowChar := seat[0]
	if rowChar < 'A' || rowChar > 'Z' {
		return 0, 0, fmt.Errorf("%w: seat id %q must start with a row letter", ErrInvalidInput, id)
	}

	num, err := strconv.Atoi(seat[1:])
	if err != nil || num < 1 {
		return 0, 0, fmt.Errorf("%w: seat id %q has an invalid column number", ErrInvalidInput, id)
	}

	return int(rowChar - 'A'), num - 1, nil
}

// SeatID is the inverse of ParseSeat: (0, 0) becomes "A1".
func SeatID(row, col int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(row), col+1)
}

// NormalizeSeat trims and uppercases a seat identifier into its canonical
// stored form.
func NormalizeSeat(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// NormalizeSeats canonicalizes a submitted seat list: every entry is trimmed
// and uppercased, blanks are dropped, and duplicates are collapsed keeping
// the position of their first occurrence.
func NormalizeSeats(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	normalized := make([]string, 0, len(ids))

	for _, id := range ids {
		seat := NormalizeSeat(id)
		if seat == "" {
			continue
		}

		if _, ok := seen[seat]; ok {
			continue
		}

		seen[seat] = struct{}{}
		normalized = append(normalized, seat)
	}

	return normalized
}
