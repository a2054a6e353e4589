package lts

import "github.com/jzbor/ccs"

// Traces enumerates action sequences from the root in breadth-first order,
// shortest first. A cyclic LTS has infinitely many traces, so enumeration
// stops after max traces; max <= 0 yields nothing.
func (l *LTS) Traces(max int) [][]ccs.Label {
	type walk struct {
		state int
		trace []ccs.Label
	}

	var traces [][]ccs.Label
	queue := []walk{{state: l.Root}}
	for len(queue) > 0 && len(traces) < max {
		w := queue[0]
		queue = queue[1:]
		for _, e := range l.Outgoing(w.state) {
			trace := make([]ccs.Label, len(w.trace), len(w.trace)+1)
			copy(trace, w.trace)
			trace = append(trace, e.Label)
			traces = append(traces, trace)
			if len(traces) == max {
				break
			}
			queue = append(queue, walk{state: e.Dst, trace: trace})
		}
	}
	return traces
}
