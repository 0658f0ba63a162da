package dijkstra

// item is a state waiting in the frontier together with the cost that justified its insertion.
type item struct {
	state State
	cost  int64
}

// frontier is a min-heap of items ordered by cost ascending.
// We use the "lazy decrease-key" approach: a cheaper cost for a queued state
// pushes a second item, and the stale one is dropped when popped
// (the settled set already holds its state).
type frontier []item

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller cost → higher priority.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type item.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(item)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it moved the minimum to the end.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
