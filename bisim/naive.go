package bisim

// Naive re-scans the whole candidate relation until a full pass removes
// nothing. Quadratic passes make it the reference implementation the
// worklist algorithm is checked against, not the one to benchmark large
// systems with.
type Naive struct{}

func (Naive) Name() string { return "naive" }

func (Naive) refine(ps *pairSpace) {
	for {
		removed := false
		for i := range ps.rel {
			for j := range ps.rel[i] {
				if !ps.rel[i][j] {
					continue
				}
				if ok, w := ps.stable(i, j); !ok {
					ps.remove(i, j, w)
					removed = true
				}
			}
		}
		if !removed {
			return
		}
	}
}
