// SPDX-License-Identifier: MIT
// Package: exobio/lsystem
//
// expand.go — parallel string rewriting.

package lsystem

import "strings"

// Expand rewrites cfg.Axiom cfg.Iterations times. In each pass every symbol
// is replaced simultaneously by its rule, or by itself when it has none.
//
// Iterations < 0 behave as 0; Iterations > MaxIterations are clamped.
// An empty axiom expands to "".
//
// Complexity: O(L·k^i) where k is the largest rule length and i the
// effective iteration count.
func Expand(cfg Config) string {
	current := cfg.Axiom
	iters := clampIterations(cfg.Iterations)

	var sb strings.Builder
	for i := 0; i < iters && current != ""; i++ {
		sb.Reset()
		sb.Grow(len(current) * 2)
		for _, r := range current {
			if rep, ok := cfg.Rules[r]; ok {
				sb.WriteString(rep)
				continue
			}
			sb.WriteRune(r)
		}
		current = sb.String()
	}

	return current
}

func clampIterations(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxIterations {
		return MaxIterations
	}

	return n
}
