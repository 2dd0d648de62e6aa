// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns an IDFn producing prefix + zero-padded index, e.g.
// PrefixIDFn("V", 2)(7) → "V07". Padding keeps lexicographic and numeric order aligned.
// Panics if width < 0.
func PrefixIDFn(prefix string, width int) IDFn {
	if width < 0 {
		panic(fmt.Sprintf("PrefixIDFn: width must be ≥ 0, got %d", width))
	}

	return func(idx int) string {
		return fmt.Sprintf("%s%0*d", prefix, width, idx)
	}
}

// NormalizeFn canonicalizes a vertex label read from external input.
type NormalizeFn func(raw string) string

// IdentityNormalize returns raw unchanged.
func IdentityNormalize(raw string) string { return raw }

// TrimNormalize strips surrounding whitespace, as found in hand-edited CSV and YAML.
func TrimNormalize(raw string) string { return strings.TrimSpace(raw) }
