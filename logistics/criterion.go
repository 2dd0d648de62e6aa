// SPDX-License-Identifier: MIT

package logistics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/builder"
)

// ErrUnknownCriterion is returned by ParseCriterion for unsupported names.
var ErrUnknownCriterion = errors.New("logistics: unknown criterion")

// Criterion selects what a route minimizes.
type Criterion string

// Supported criteria.
const (
	Cost Criterion = "cost"
	Time Criterion = "time"
)

// ParseCriterion accepts "cost" or "time" (case-insensitive), plus the
// "lowest"/"fastest" aliases.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cost", "lowest", "cheapest":
		return Cost, nil
	case "time", "fastest":
		return Time, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

// Attribute returns the edge attribute the criterion weighs.
func (c Criterion) Attribute() string {
	if c == Time {
		return builder.AttrTime
	}
	return builder.AttrCost
}

// Unit returns the display unit of totals under this criterion.
func (c Criterion) Unit() string {
	if c == Time {
		return "Hours"
	}
	return "RM"
}

func (c Criterion) valid() bool { return c == Cost || c == Time }
