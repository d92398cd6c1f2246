package ir

// Minimize collapses structurally-duplicate sibling subtrees, level by
// level from the root down. At each node the element children are grouped
// by ShapeKey and only one representative per shape survives: the member
// with the most immediate element children, first seen winning ties. Leaf
// token children are always retained and the relative order of survivors is
// preserved. The surviving representative records how many siblings it
// displaced in Omitted.
//
// Minimization is a presentation transform, not a canonical form: the
// first-seen tie-break makes the result depend on sibling order for
// equally-sized candidates.
func (g *Graph) Minimize() {
	g.minimize(0)
}

func (g *Graph) minimize(id NodeID) {
	n := g.nodes[id]
	best := map[string]NodeID{}
	dropped := map[string]int{}
	for _, c := range n.Children {
		if !c.IsNode() {
			continue
		}
		child := g.nodes[c.ID]
		key := child.ShapeKey()
		cur, ok := best[key]
		if !ok {
			best[key] = c.ID
			continue
		}
		dropped[key]++
		if child.NodeChildren() > g.nodes[cur].NodeChildren() {
			best[key] = c.ID
		}
	}
	out := n.Children[:0]
	for _, c := range n.Children {
		if !c.IsNode() {
			out = append(out, c)
			continue
		}
		child := g.nodes[c.ID]
		if best[child.ShapeKey()] != c.ID {
			continue
		}
		child.Omitted += dropped[child.ShapeKey()]
		out = append(out, c)
	}
	n.Children = out
	for _, c := range n.Children {
		if c.IsNode() {
			g.minimize(c.ID)
		}
	}
}
