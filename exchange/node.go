package exchange

// Arc is a directed-by-role edge from a request-side node to a bid-side
// node. Arcs are value types: two Arcs referencing the same (U, V) node
// pointers compare equal with ==, and are safe to use as map keys. Arcs
// carry no state of their own — their capacity is always derived from the
// endpoints' unit-capacity coefficients and their owning NodeSets'
// capacities.
type Arc struct {
	U *Node // request-side endpoint
	V *Node // bid-side endpoint
}

// NewArc pairs a request-side node u with a bid-side node v.
func NewArc(u, v *Node) Arc {
	return Arc{U: u, V: v}
}

// Node is a participant on one side of a potential trade. A Node belongs to
// exactly one NodeSet; the reference is established by NodeSet.Add and is
// immutable thereafter. Each arc incident to a Node carries its own
// unit-capacity coefficient vector, set via SetUnitCapacity.
type Node struct {
	label    string
	set      *NodeSet
	unitCaps map[Arc][]float64

	// tag is an opaque payload the graph-construction façade (package
	// portfolio) attaches to recover the originating domain request/bid
	// when translating matches back into trades. The exchange package
	// never interprets it.
	tag interface{}
}

// NewNode creates an unattached Node. label is used only for diagnostics —
// it has no bearing on matching or capacity arithmetic.
func NewNode(label string) *Node {
	return &Node{label: label, unitCaps: make(map[Arc][]float64)}
}

// Label returns the node's diagnostic label.
func (n *Node) Label() string { return n.label }

// Set returns the NodeSet this node belongs to, or nil if it has not been
// added to one yet.
func (n *Node) Set() *NodeSet { return n.set }

// Tag returns the opaque payload attached via SetTag.
func (n *Node) Tag() interface{} { return n.tag }

// SetTag attaches an opaque payload to the node. Used by package portfolio
// to remember which domain Request or Bid this node represents.
func (n *Node) SetTag(v interface{}) { n.tag = v }

// SetUnitCapacity records the per-constraint-dimension coefficients this
// node consumes on arc a: coefs[i] units of dimension i per unit of flow
// routed over a. The node must already belong to a NodeSet, and len(coefs)
// must equal the cardinality of that set's capacity vector — a shorter or
// longer vector violates the NodeSet invariant from spec §3 and is a
// StateError, not a silently-padded value.
func (n *Node) SetUnitCapacity(a Arc, coefs []float64) error {
	if n.set == nil {
		return newStateError("SetUnitCapacity", n, "node has no containing set")
	}
	if len(coefs) != len(n.set.capacities) {
		return newStateError("SetUnitCapacity", n, "unit capacity vector length does not match owning set's capacity vector")
	}
	cp := make([]float64, len(coefs))
	copy(cp, coefs)
	n.unitCaps[a] = cp
	return nil
}

// UnitCapacity returns the coefficient vector recorded for arc a, or nil if
// none was set.
func (n *Node) UnitCapacity(a Arc) []float64 {
	return n.unitCaps[a]
}

// coefAt returns the i-th coefficient of n's vector for arc a, treating a
// shorter-than-expected vector as zero in the missing dimensions. Callers
// that construct arcs through SetUnitCapacity never observe this path —
// it only guards against a node that was never given a coefficient vector
// for a, which the capacity engine treats as "does not constrain this arc".
func (n *Node) coefAt(a Arc, i int) float64 {
	coefs := n.unitCaps[a]
	if i < len(coefs) {
		return coefs[i]
	}
	return 0
}
