package draw

import "math"

const unmatched = -1

const infinity = math.MaxInt

// matcher computes a maximum bipartite matching with Hopcroft-Karp.
// Left vertices are givers, right vertices are recipients.
type matcher struct {
	adj    [][]int
	matchL []int
	matchR []int
	dist   []int
}

func newMatcher(adj [][]int, rights int) *matcher {
	m := &matcher{
		adj:    adj,
		matchL: make([]int, len(adj)),
		matchR: make([]int, rights),
		dist:   make([]int, len(adj)),
	}

	for i := range m.matchL {
		m.matchL[i] = unmatched
	}
	for i := range m.matchR {
		m.matchR[i] = unmatched
	}

	return m
}

// run returns the size of a maximum matching
func (m *matcher) run() int {
	size := 0
	for m.layer() {
		for u := range m.adj {
			if m.matchL[u] == unmatched && m.augment(u) {
				size++
			}
		}
	}
	return size
}

// layer builds the BFS layering from free left vertices and reports whether
// any augmenting path exists
func (m *matcher) layer() bool {
	queue := make([]int, 0, len(m.adj))
	for u := range m.adj {
		if m.matchL[u] == unmatched {
			m.dist[u] = 0
			queue = append(queue, u)
		} else {
			m.dist[u] = infinity
		}
	}

	found := false
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range m.adj[u] {
			w := m.matchR[v]
			if w == unmatched {
				found = true
			} else if m.dist[w] == infinity {
				m.dist[w] = m.dist[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return found
}

func (m *matcher) augment(u int) bool {
	for _, v := range m.adj[u] {
		w := m.matchR[v]
		if w == unmatched || (m.dist[w] == m.dist[u]+1 && m.augment(w)) {
			m.matchL[u] = v
			m.matchR[v] = u
			return true
		}
	}

	m.dist[u] = infinity
	return false
}

// hallViolation must be called after run on a non-perfect matching. It
// returns a set of left vertices S and |N(S)|, with |N(S)| = |S| - 1,
// found by alternating paths from the first free left vertex.
func (m *matcher) hallViolation() ([]int, int) {
	start := unmatched
	for u, v := range m.matchL {
		if v == unmatched {
			start = u
			break
		}
	}
	if start == unmatched {
		return nil, 0
	}

	seenL := map[int]bool{start: true}
	seenR := map[int]bool{}
	left := []int{start}

	for head := 0; head < len(left); head++ {
		for _, v := range m.adj[left[head]] {
			if seenR[v] {
				continue
			}
			seenR[v] = true

			// every neighbour is matched, otherwise the matching was not maximum
			w := m.matchR[v]
			if w != unmatched && !seenL[w] {
				seenL[w] = true
				left = append(left, w)
			}
		}
	}

	return left, len(seenR)
}
