// SPDX-License-Identifier: MIT

package logistics

import (
	"errors"
	"strings"
)

// DefaultHub is where parcels go when their city cannot be routed.
const DefaultHub = "Kuala Lumpur"

// ErrFallbackFailed is returned when the fallback hub itself cannot be routed.
var ErrFallbackFailed = errors.New("logistics: fallback hub unreachable")

// Fallback reasons, also used as the metrics label.
const (
	ReasonUnmapped = "unmapped" // destination is not a vertex
	ReasonNoPath   = "no_path"  // destination is a vertex but unreachable
)

// FallbackPolicy decides where to reroute an unroutable destination.
// A zero Hub disables rerouting.
type FallbackPolicy struct {
	Hub string
}

// DefaultFallback returns the policy used by NewPlanner.
func DefaultFallback() FallbackPolicy {
	return FallbackPolicy{Hub: DefaultHub}
}

// Disabled reports whether the policy never reroutes.
func (p FallbackPolicy) Disabled() bool {
	return strings.TrimSpace(p.Hub) == ""
}

// applies reports whether dest may be rerouted. The hub is never rerouted
// to itself.
func (p FallbackPolicy) applies(dest string) bool {
	return !p.Disabled() && dest != p.Hub
}
