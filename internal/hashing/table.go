package hashing

// perftKey identifies a subtree: the position key and the remaining depth.
type perftKey struct {
	hash  uint64
	depth int
}

// PerftTable memoises perft node counts by position key and depth.
type PerftTable struct {
	entries map[perftKey]uint64
	// maxCapacity limits entries; 0 means unlimited
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftTable creates a table. maxCapacity of 0 means unlimited capacity;
// once full, further stores are dropped and existing entries are kept.
func NewPerftTable(maxCapacity int) *PerftTable {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &PerftTable{
		entries:     make(map[perftKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Probe looks up the node count of a subtree.
func (t *PerftTable) Probe(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[perftKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records the node count of a subtree.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	key := perftKey{hash, depth}
	if _, ok := t.entries[key]; !ok && t.IsFull() {
		return
	}
	t.entries[key] = nodes
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Stats returns the probe hit and miss counts.
func (t *PerftTable) Stats() (hits, misses int) {
	return t.hits, t.misses
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.entries = make(map[perftKey]uint64)
	t.hits = 0
	t.misses = 0
}
