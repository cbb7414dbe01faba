package core

// AffinityGraph is an immutable, deduplicated, undirected edge set over
// entity ids. It is rebuilt once per solve from the raw rapport pair
// list; symmetry and self-loop rejection are guaranteed by Pair.
type AffinityGraph struct {
	edges PairSet
}

// NewAffinityGraph builds a graph from pairs, dropping duplicates.
//
// Complexity: O(n) time, O(n) space.
func NewAffinityGraph(pairs []Pair) *AffinityGraph {
	return &AffinityGraph{edges: NewPairSet(pairs...)}
}

// Has reports whether an edge joins a and b. Argument order and
// whitespace are irrelevant; invalid pairs (self, empty) report false.
//
// Complexity: O(1).
func (g *AffinityGraph) Has(a, b string) bool {
	p, err := NewPair(a, b)
	if err != nil {
		return false
	}

	return g.edges.Has(p)
}

// HasPair reports whether the canonical pair p is an edge.
func (g *AffinityGraph) HasPair(p Pair) bool { return g.edges.Has(p) }

// EdgeCount returns the number of distinct edges.
func (g *AffinityGraph) EdgeCount() int { return len(g.edges) }

// Edges returns all edges in lexicographic order.
func (g *AffinityGraph) Edges() []Pair { return g.edges.Sorted() }

// Restrict returns a new graph keeping only edges internal to roster.
//
// Complexity: O(E).
func (g *AffinityGraph) Restrict(roster []string) *AffinityGraph {
	ids := make(map[string]struct{}, len(roster))
	for _, id := range roster {
		ids[id] = struct{}{}
	}

	return &AffinityGraph{edges: g.edges.Restrict(ids)}
}

// WithinGroup counts edges whose endpoints both lie in members.
// This is the per-unit rapport score.
//
// Complexity: O(k²) for k members; unit sizes are small by nature.
func (g *AffinityGraph) WithinGroup(members []string) int {
	var count int
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if g.Has(members[i], members[j]) {
				count++
			}
		}
	}

	return count
}

// PairsWithinGroup returns the edges internal to members in
// lexicographic order, for breakdown reporting.
//
// Complexity: O(k² + m log m).
func (g *AffinityGraph) PairsWithinGroup(members []string) []Pair {
	found := make(PairSet)
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if p, err := NewPair(members[i], members[j]); err == nil && g.edges.Has(p) {
				found.Add(p)
			}
		}
	}

	return found.Sorted()
}

// IncidentCount counts edges with at least one endpoint in members;
// internal edges count once. This is the numerator of the trim-ranking
// density: clusters that touch few rapport edges are the least
// promising to keep.
//
// Complexity: O(E).
func (g *AffinityGraph) IncidentCount(members []string) int {
	ids := make(map[string]struct{}, len(members))
	for _, id := range members {
		ids[id] = struct{}{}
	}

	var count int
	var okA, okB bool
	for p := range g.edges {
		_, okA = ids[p.a]
		_, okB = ids[p.b]
		if okA || okB {
			count++
		}
	}

	return count
}
