package bisim

// Worklist refines with a dirty-pair queue: every pair is verified once,
// and a removal only re-queues the pairs whose stability could have
// depended on it, the predecessor pairs on both sides. Stable regions of
// the relation are never re-scanned, which is what keeps large cross
// products tractable.
type Worklist struct{}

func (Worklist) Name() string { return "worklist" }

func (Worklist) refine(ps *pairSpace) {
	na, nb := len(ps.rel), 0
	if na > 0 {
		nb = len(ps.rel[0])
	}

	queued := make([]bool, na*nb)
	queue := make([]pair, 0, na*nb)
	push := func(p pair) {
		if queued[p.a*nb+p.b] {
			return
		}
		queued[p.a*nb+p.b] = true
		queue = append(queue, p)
	}
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			push(pair{i, j})
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		queued[p.a*nb+p.b] = false

		if !ps.rel[p.a][p.b] {
			continue
		}
		ok, w := ps.stable(p.a, p.b)
		if ok {
			continue
		}
		ps.remove(p.a, p.b, w)
		for _, pa := range ps.predA[p.a] {
			for _, pb := range ps.predB[p.b] {
				if ps.rel[pa][pb] {
					push(pair{pa, pb})
				}
			}
		}
	}
}
