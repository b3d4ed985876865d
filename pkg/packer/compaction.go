package packer

import (
	"sort"

	"github.com/dshills/outlayd/pkg/direction"
)

// edge is a precedence constraint pos[to] >= pos[from] + size[from] in
// one axis's compaction DAG.
type edge struct {
	from, to int
}

// topoOrderByA returns a topological order for both the X and Y
// precedence DAGs simultaneously. spec.md §3's table shows that a pair's
// relation is Left/Above exactly when a[i] < a[j] (the sign of
// a[j]-a[i] alone decides the table's row), so sorting indices by "i
// precedes j in a" — recoverable from Direction alone as
// Direction(i,j) in {Left, Above} — produces a valid topological order
// for both DAGs without needing the permutation itself.
func topoOrderByA(n int, tmpl Template) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(p, q int) bool {
		i, j := order[p], order[q]
		d := tmpl.Direction(i, j)
		return d == direction.Left || d == direction.Above
	})
	return order
}

// axisEdges partitions every unordered pair's induced relation into the X
// precedence DAG (Left/Right) and the Y precedence DAG (Above/Below).
func axisEdges(n int, tmpl Template) (xEdges, yEdges []edge) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch tmpl.Direction(i, j) {
			case direction.Left:
				xEdges = append(xEdges, edge{from: i, to: j})
			case direction.Right:
				xEdges = append(xEdges, edge{from: j, to: i})
			case direction.Above:
				yEdges = append(yEdges, edge{from: i, to: j})
			case direction.Below:
				yEdges = append(yEdges, edge{from: j, to: i})
			}
		}
	}
	return xEdges, yEdges
}

// predecessors and successors index an edge list by destination and
// source respectively, for compaction and slack computation.
func predecessors(n int, edges []edge) [][]int {
	preds := make([][]int, n)
	for _, e := range edges {
		preds[e.to] = append(preds[e.to], e.from)
	}
	return preds
}

func successors(n int, edges []edge) [][]int {
	succs := make([][]int, n)
	for _, e := range edges {
		succs[e.from] = append(succs[e.from], e.to)
	}
	return succs
}

// compact computes the minimal feasible coordinate for every node along
// one axis: pos[k] = max(0, max over predecessors p of pos[p]+size[p]),
// visited in the given topological order. This is the textbook
// sequence-pair compaction, here derived directly from axisEdges rather
// than the general weighted-longest-common-subsequence formulation.
func compact(order []int, edges []edge, size []int) []int {
	n := len(order)
	pos := make([]int, n)
	preds := predecessors(n, edges)
	for _, k := range order {
		best := 0
		for _, p := range preds[k] {
			if v := pos[p] + size[p]; v > best {
				best = v
			}
		}
		pos[k] = best
	}
	return pos
}

// partners lists, for each node, every other node it shares a
// partnerEdge with (regardless of edge direction) — the set whose
// center-alignment term is computed on the axis being relaxed.
func partners(n int, partnerEdges []edge) [][]int {
	out := make([][]int, n)
	for _, e := range partnerEdges {
		out[e.from] = append(out[e.from], e.to)
		out[e.to] = append(out[e.to], e.from)
	}
	return out
}

// relax runs a bounded number of Gauss-Seidel coordinate-descent sweeps
// that nudge each node's coordinate toward the median of its alignment
// partners' centers (on this axis), without ever moving a node outside
// the feasible window its own structural DAG already guarantees. The
// median, not the mean, minimizes spec.md §4.3's M_p term: each partner
// contributes |center_k - center_j| to the objective, and a sum of
// absolute differences over a single free variable is minimized at the
// median of the other terms, not their average.
// structEdges is this axis's own precedence DAG (used to compute each
// node's feasible [lower, upper] window); partnerEdges is the OTHER
// axis's DAG, whose endpoints are exactly the pairs whose M_p alignment
// term is computed on this axis (spec.md §4.3: "when the ordering is
// along X, the distance is on Y, and vice versa").
func relax(n int, structEdges, partnerEdges []edge, pos, size []int, boundMax int) {
	if n == 0 {
		return
	}
	preds := predecessors(n, structEdges)
	succs := successors(n, structEdges)
	parts := partners(n, partnerEdges)

	const sweeps = 4
	for s := 0; s < sweeps; s++ {
		for k := 0; k < n; k++ {
			lower := 0
			for _, p := range preds[k] {
				if v := pos[p] + size[p]; v > lower {
					lower = v
				}
			}
			upper := boundMax - size[k]
			for _, succ := range succs[k] {
				if v := pos[succ] - size[k]; v < upper {
					upper = v
				}
			}
			if upper < lower {
				upper = lower // structural window is degenerate; hold at lower
			}

			if len(parts[k]) == 0 {
				if pos[k] < lower {
					pos[k] = lower
				}
				if pos[k] > upper {
					pos[k] = upper
				}
				continue
			}

			// Desired doubled-position so that this node's center matches
			// the median of its partners' centers: 2*pos_k + size_k ~= median(2*pos_j + size_j).
			// The median minimizes sum_j |center_k - center_j|, unlike the
			// mean, once a node has 3+ partners on this axis.
			centers2 := make([]int, len(parts[k]))
			for idx, j := range parts[k] {
				centers2[idx] = 2*pos[j] + size[j]
			}
			sort.Ints(centers2)
			var median2 int
			if m := len(centers2); m%2 == 1 {
				median2 = centers2[m/2]
			} else {
				// Any point in [centers2[m/2-1], centers2[m/2]] ties for
				// optimal; the midpoint keeps the choice symmetric.
				median2 = (centers2[m/2-1] + centers2[m/2]) / 2
			}
			target := (median2 - size[k] + 1) / 2 // round to nearest

			if target < lower {
				target = lower
			}
			if target > upper {
				target = upper
			}
			pos[k] = target
		}
	}
}
