// SPDX-License-Identifier: MIT

// Package mat: aligned textual rendering of any Matrix, for debugging and
// demo output only — not part of the computational core.
package mat

import (
	"fmt"
	"strings"
)

// elementFormat renders every scalar with four decimals; column widths are
// measured on the rendered strings so mixed magnitudes stay aligned.
const elementFormat = "%.4f"

// ToString renders m as an aligned, bracketed table:
//
//	⎡ 1.0000 0.0000 ⎤
//	⎣ 0.0000 1.0000 ⎦
//
// Single-row matrices render on one line as [ ... ].
// Complexity: O(r*c) for measurement plus O(r*c) for assembly.
func ToString(m Matrix) string {
	CheckNotNil("ToString", m)
	s := m.Shape()

	// Measure per-column widths on the rendered elements.
	widths := make([]int, s.Col)
	for i := 0; i < s.Row; i++ {
		for j := 0; j < s.Col; j++ {
			if n := len(fmt.Sprintf(elementFormat, m.At(i, j))); n > widths[j] {
				widths[j] = n
			}
		}
	}

	renderRow := func(sb *strings.Builder, i int, opening, closing string) {
		sb.WriteString(opening)
		for j := 0; j < s.Col; j++ {
			fmt.Fprintf(sb, "%*s ", widths[j], fmt.Sprintf(elementFormat, m.At(i, j)))
		}
		sb.WriteString(closing)
	}

	var sb strings.Builder
	if s.Row == 1 {
		renderRow(&sb, 0, "[ ", "]")
		return sb.String()
	}
	renderRow(&sb, 0, "⎡ ", "⎤\n")
	for i := 1; i < s.Row-1; i++ {
		renderRow(&sb, i, "⎢ ", "⎥\n")
	}
	renderRow(&sb, s.Row-1, "⎣ ", "⎦")
	return sb.String()
}
