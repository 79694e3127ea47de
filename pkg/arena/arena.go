package arena

// Index addresses a node inside an Arena.
type Index = int32

// Nil is the "no link" sentinel.
const Nil Index = -1

// Node is a single slot of an Arena. A linked structure decides
// whether it uses Prev at all.
type Node struct {
	Value int32
	Next  Index
	Prev  Index
}

// Arena stores the nodes of one linked structure in a slice and links
// them by index. Freed slots are recycled before the slice grows.
type Arena struct {
	nodes []Node
	free  []Index
}

// New creates an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Alloc stores v in an unlinked node and returns its index.
func (a *Arena) Alloc(v int32) Index {
	n := Node{Value: v, Next: Nil, Prev: Nil}
	if l := len(a.free); l > 0 {
		idx := a.free[l-1]
		a.free = a.free[:l-1]
		a.nodes[idx] = n
		return idx
	}
	a.nodes = append(a.nodes, n)
	return Index(len(a.nodes) - 1)
}

// Free recycles the slot at idx. The caller must have unlinked it.
func (a *Arena) Free(idx Index) {
	a.nodes[idx] = Node{Next: Nil, Prev: Nil}
	a.free = append(a.free, idx)
}

// Get returns the node at idx. It panics if idx is Nil or out of range.
func (a *Arena) Get(idx Index) *Node {
	return &a.nodes[idx]
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	return len(a.nodes) - len(a.free)
}

