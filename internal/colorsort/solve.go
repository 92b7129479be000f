package colorsort

// Solve decides by breadth-first search whether b can be sorted into a
// solved state using only legal forward moves.
//
// explored counts every successor state generated during the search,
// including duplicates filtered by the visited set; it is a search-size
// diagnostic, not a move count. Unsolvability is a normal result, not
// an error.
//
// maxExplored > 0 caps the number of generated successors; a search
// that hits the cap reports unsolved. The state space of any board with
// bounded capacities and finitely many colors is finite, so with no cap
// the search always terminates.
func Solve(b *Board, maxExplored int) (solved bool, explored int) {
	start := b.Clone()
	visited := map[string]struct{}{start.Key(): {}}
	frontier := []*Board{start}

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		if cur.Solved() {
			return true, explored
		}
		for _, m := range cur.LegalMoves() {
			next := cur.Clone()
			next.transfer(m)
			explored++
			if maxExplored > 0 && explored >= maxExplored {
				Log.Debug(
					"solve state cap reached",
					"explored", explored, "frontier", len(frontier),
				)
				return false, explored
			}
			key := next.Key()
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			frontier = append(frontier, next)
		}
	}
	return false, explored
}
