// Package trace renders decoded messages as instruction traces.
package trace

import "strings"

type frame[S ~[]I, I any] struct {
	seq  S
	next int
}

// Render writes prefix followed by ",tag" for every instruction of seq, in
// order. Instructions for which children reports a nested sequence render
// as tag(nested,...) with the nested sequence joined the same way but
// without a prefix. An empty prefix renders seq as a bare comma-joined list.
//
// Nesting is walked with an explicit stack, so output depth is not bounded
// by the goroutine stack.
func Render[S ~[]I, I any](prefix string, seq S, tag func(I) string, children func(I) (S, bool)) string {
	var b strings.Builder
	b.WriteString(prefix)

	stack := []frame[S, I]{{seq: seq}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.seq) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				b.WriteByte(')')
			}
			continue
		}

		if top.next > 0 || (len(stack) == 1 && prefix != "") {
			b.WriteByte(',')
		}
		inst := top.seq[top.next]
		top.next++
		b.WriteString(tag(inst))
		if nested, ok := children(inst); ok {
			b.WriteByte('(')
			stack = append(stack, frame[S, I]{seq: nested})
		}
	}
	return b.String()
}
