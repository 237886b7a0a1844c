package rules

import "fmt"

// CycleError is returned by Sort when edges induce a cycle among the
// given mods. Named after sqldocument's topological_sort.go CycleError,
// generalized to name participating vertices.
type CycleError struct {
	Mods []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("rules: cycle detected among: %v", e.Mods)
}

// Sort performs a cycle-checked, stable topological sort of mods given
// edges (a must appear before b). It never inserts or removes elements:
// the result is always a permutation of mods. Edges whose endpoints are
// not present in mods are silently dropped.
//
// The stability pass is a direct port of original_source/src/lib.rs's
// stable_topo_sort_inner: repeatedly scan for an inversion (an element
// required to come before one that currently precedes it) and bubble it
// into place, restarting the scan after each move. This is the minimal
// perturbation of the input order that satisfies every edge.
func Sort(mods []string, edges [][2]string) ([]string, error) {
	index := make(map[string]int, len(mods))
	for i, m := range mods {
		index[m] = i
	}

	type edgeIdx = struct{ a, b int }
	var present []edgeIdx
	for _, e := range edges {
		a, aok := index[e[0]]
		b, bok := index[e[1]]
		if aok && bok {
			present = append(present, edgeIdx{a, b})
		}
	}

	if cycle := detectCycle(len(mods), present); cycle != nil {
		names := make([]string, len(cycle))
		for i, idx := range cycle {
			names[i] = mods[idx]
		}
		return nil, &CycleError{Mods: names}
	}

	hasEdge := make(map[[2]int]bool, len(present))
	for _, e := range present {
		hasEdge[[2]int{e.a, e.b}] = true
	}

	result := make([]string, len(mods))
	copy(result, mods)

	for {
		moved := false
		for i := 0; i < len(result) && !moved; i++ {
			for j := 0; j < i; j++ {
				x, y := index[result[i]], index[result[j]]
				if hasEdge[[2]int{x, y}] {
					item := result[i]
					result = append(result[:i], result[i+1:]...)
					result = append(result[:j], append([]string{item}, result[j:]...)...)
					moved = true
					break
				}
			}
		}
		if !moved {
			break
		}
	}

	return result, nil
}

// detectCycle runs a standard 3-color DFS cycle check over n vertices
// and the given edges, returning the DFS path at the point a back-edge
// was found (nil if acyclic). The returned path names participating
// vertices where feasible; it is not necessarily the minimal cycle.
func detectCycle(n int, edges []struct{ a, b int }) []int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.a] = append(adj[e.a], e.b)
	}

	const (
		white = iota
		gray
		black
	)
	color := make([]int, n)
	var path []int

	var visit func(v int) bool
	visit = func(v int) bool {
		color[v] = gray
		path = append(path, v)
		for _, w := range adj[v] {
			if color[w] == gray {
				path = append(path, w)
				return true
			}
			if color[w] == white && visit(w) {
				return true
			}
		}
		color[v] = black
		path = path[:len(path)-1]
		return false
	}

	for v := 0; v < n; v++ {
		if color[v] == white {
			path = nil
			if visit(v) {
				return path
			}
		}
	}
	return nil
}

// ApplyNearHints repositions NearStart names toward index 0 and NearEnd
// names toward the tail, never violating an Order edge between the
// hinted mod and the neighbor it would have to cross. Run after Sort.
// The original source parses NearStart/NearEnd rules but never applies
// them; this implementation does.
func ApplyNearHints(mods []string, edges [][2]string, nearStart, nearEnd []string) []string {
	hasEdge := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		hasEdge[e] = true
	}

	result := make([]string, len(mods))
	copy(result, mods)

	for _, name := range nearStart {
		pos := indexOf(result, name)
		for pos > 0 && !hasEdge[[2]string{result[pos-1], name}] {
			result[pos-1], result[pos] = result[pos], result[pos-1]
			pos--
		}
	}

	for _, name := range nearEnd {
		pos := indexOf(result, name)
		for pos >= 0 && pos < len(result)-1 && !hasEdge[[2]string{name, result[pos+1]}] {
			result[pos], result[pos+1] = result[pos+1], result[pos]
			pos++
		}
	}

	return result
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
