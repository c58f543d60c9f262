package core

import "sort"

// AdjacencyMatrix stores the graph as a dense V×V presence/weight matrix
// plus an ID ↔ slot index. Removed vertex slots are cleared and reused by
// later AddVertex calls, so the matrix only grows when no free slot exists.
//
// Best for dense graphs and frequent existence checks:
//
//	AddEdge/RemoveEdge/HasEdge: O(1)
//	Neighbors:                  O(V) enumeration
//	Memory:                     O(V²)
type AdjacencyMatrix struct {
	directed bool
	index    map[string]int // vertex ID → slot
	ids      []string       // slot → vertex ID, "" when free
	free     []int          // cleared slots available for reuse
	present  [][]bool       // present[i][j]: entry i→j exists
	weight   [][]int64      // weight[i][j]: weight of entry i→j
	entries  int            // count of directed entries
}

var _ Graph = (*AdjacencyMatrix)(nil)

// NewAdjacencyMatrix creates an empty matrix store.
// Undirected by default; pass WithDirected(true) for a directed graph.
func NewAdjacencyMatrix(opts ...GraphOption) *AdjacencyMatrix {
	cfg := newConfig(opts...)

	return &AdjacencyMatrix{
		directed: cfg.directed,
		index:    make(map[string]int),
	}
}

// AddVertex ensures id exists, reusing a freed slot when one is available.
// Idempotent. Complexity: O(1) amortized, O(V) when the matrix grows.
func (m *AdjacencyMatrix) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := m.index[id]; ok {
		return nil
	}

	// Reuse a cleared slot before growing the matrix.
	if n := len(m.free); n > 0 {
		slot := m.free[n-1]
		m.free = m.free[:n-1]
		m.index[id] = slot
		m.ids[slot] = id

		return nil
	}

	// Grow: one new row plus one new cell in every existing row.
	slot := len(m.ids)
	m.index[id] = slot
	m.ids = append(m.ids, id)
	for i := range m.present {
		m.present[i] = append(m.present[i], false)
		m.weight[i] = append(m.weight[i], 0)
	}
	m.present = append(m.present, make([]bool, slot+1))
	m.weight = append(m.weight, make([]int64, slot+1))

	return nil
}

// RemoveVertex clears id's row and column and releases its slot.
// No-op when absent. Complexity: O(V).
func (m *AdjacencyMatrix) RemoveVertex(id string) {
	slot, ok := m.index[id]
	if !ok {
		return
	}
	for j := range m.present[slot] {
		if m.present[slot][j] {
			m.present[slot][j] = false
			m.weight[slot][j] = 0
			m.entries--
		}
		if m.present[j][slot] {
			m.present[j][slot] = false
			m.weight[j][slot] = 0
			m.entries--
		}
	}
	delete(m.index, id)
	m.ids[slot] = ""
	m.free = append(m.free, slot)
}

// HasVertex reports whether id exists. Complexity: O(1).
func (m *AdjacencyMatrix) HasVertex(id string) bool {
	_, ok := m.index[id]

	return ok
}

// AddEdge records from → to, creating missing endpoints. A duplicate add
// overwrites the weight; undirected graphs mirror the cell.
// Complexity: O(1) (plus growth cost for new vertices).
func (m *AdjacencyMatrix) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	e := newEdge(from, to, opts...)
	_ = m.AddVertex(from)
	_ = m.AddVertex(to)

	i, j := m.index[from], m.index[to]
	m.setCell(i, j, e.Weight)
	if !m.directed {
		m.setCell(j, i, e.Weight)
	}

	return nil
}

// RemoveEdge clears from → to (and the mirror when undirected).
// No-op when absent. Complexity: O(1).
func (m *AdjacencyMatrix) RemoveEdge(from, to string) {
	i, ok := m.index[from]
	if !ok {
		return
	}
	j, ok := m.index[to]
	if !ok {
		return
	}
	m.clearCell(i, j)
	if !m.directed {
		m.clearCell(j, i)
	}
}

// HasEdge reports whether an entry from → to exists. Complexity: O(1).
func (m *AdjacencyMatrix) HasEdge(from, to string) bool {
	i, ok := m.index[from]
	if !ok {
		return false
	}
	j, ok := m.index[to]
	if !ok {
		return false
	}

	return m.present[i][j]
}

// EdgeWeight returns the weight of from → to and its existence.
// Complexity: O(1).
func (m *AdjacencyMatrix) EdgeWeight(from, to string) (int64, bool) {
	if !m.HasEdge(from, to) {
		return 0, false
	}

	return m.weight[m.index[from]][m.index[to]], true
}

// Neighbors returns all entries leaving id sorted by destination.
// Complexity: O(V log V).
func (m *AdjacencyMatrix) Neighbors(id string) []Edge {
	i, ok := m.index[id]
	if !ok {
		return nil
	}
	var out []Edge
	for j, set := range m.present[i] {
		if set {
			out = append(out, Edge{From: id, To: m.ids[j], Weight: m.weight[i][j]})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].To < out[b].To })

	return out
}

// Vertices returns all vertex IDs in sorted order. Complexity: O(V log V).
func (m *AdjacencyMatrix) Vertices() []string {
	ids := make([]string, 0, len(m.index))
	for id := range m.index {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every directed entry sorted by (From, To).
// Complexity: O(V² + E log E).
func (m *AdjacencyMatrix) Edges() []Edge {
	var out []Edge
	for i, row := range m.present {
		for j, set := range row {
			if set {
				out = append(out, Edge{From: m.ids[i], To: m.ids[j], Weight: m.weight[i][j]})
			}
		}
	}
	sortEdges(out)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (m *AdjacencyMatrix) VertexCount() int { return len(m.index) }

// EdgeCount returns the number of directed entries. Complexity: O(1).
func (m *AdjacencyMatrix) EdgeCount() int { return m.entries }

// Directed reports the construction-time directedness flag.
func (m *AdjacencyMatrix) Directed() bool { return m.directed }

// setCell writes one entry, counting it only when newly present.
func (m *AdjacencyMatrix) setCell(i, j int, w int64) {
	if !m.present[i][j] {
		m.present[i][j] = true
		m.entries++
	}
	m.weight[i][j] = w
}

// clearCell removes one entry if present.
func (m *AdjacencyMatrix) clearCell(i, j int) {
	if m.present[i][j] {
		m.present[i][j] = false
		m.weight[i][j] = 0
		m.entries--
	}
}
