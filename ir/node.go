// Package ir provides the tree representation for markup overviews: an
// arena of nodes addressed by integer identity. A graph is built once per
// conversion, reduced in place by Minimize, and then read-only while it is
// rendered.
package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xover-format/xover/token"
)

// NodeID addresses a node within its Graph. The synthetic root is always 0.
type NodeID int

// NoParent marks the synthetic root, the only node without a parent.
const NoParent NodeID = -1

// Node is one element: a name, the attribute names in declared order
// (attribute values are discarded), and an ordered child list of element
// references and embedded leaf tokens.
type Node struct {
	ID       NodeID
	Name     string
	Keys     []string
	Parent   NodeID
	Children []Child

	// Omitted counts the same-shape siblings dropped by Minimize in favor
	// of this node.
	Omitted int
}

// Child is either a reference to a node in the same graph or an embedded
// leaf token; Tok == nil means node reference.
type Child struct {
	ID  NodeID
	Tok *token.Token
}

func (c Child) IsNode() bool {
	return c.Tok == nil
}

// ShapeKey is the signature used to group siblings for minimization: the
// element name joined with the attribute names in declared order. Two
// siblings are the same shape iff their keys are equal, so attribute order
// matters.
func (n *Node) ShapeKey() string {
	if len(n.Keys) == 0 {
		return n.Name
	}
	return n.Name + "," + strings.Join(n.Keys, ",")
}

// NodeChildren counts the immediate element children of n.
func (n *Node) NodeChildren() int {
	ttl := 0
	for _, c := range n.Children {
		if c.IsNode() {
			ttl++
		}
	}
	return ttl
}

// Graph owns every node of one document tree plus the cursor used while
// building it. Dropped nodes stay in the arena unreferenced; the graph is
// discarded wholesale after rendering.
type Graph struct {
	nodes map[NodeID]*Node
	next  NodeID
	cur   NodeID
}

func New() *Graph {
	g := &Graph{nodes: map[NodeID]*Node{}, next: 1}
	g.nodes[0] = &Node{ID: 0, Parent: NoParent}
	return g
}

func (g *Graph) Root() *Node {
	return g.nodes[0]
}

func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

func (g *Graph) Current() *Node {
	return g.nodes[g.cur]
}

// AtRoot reports whether the build cursor is at the synthetic root.
func (g *Graph) AtRoot() bool {
	return g.cur == 0
}

// OpenNode creates a new element under the current node and descends into
// it, returning its identity.
func (g *Graph) OpenNode(name string, keys []string) NodeID {
	n := &Node{ID: g.next, Name: name, Keys: keys, Parent: g.cur}
	g.next++
	g.nodes[n.ID] = n
	cur := g.nodes[g.cur]
	cur.Children = append(cur.Children, Child{ID: n.ID})
	g.cur = n.ID
	return n.ID
}

// CloseCurrent ascends to the parent of the current node. At the root it
// is a no-op.
func (g *Graph) CloseCurrent() {
	if p := g.nodes[g.cur].Parent; p != NoParent {
		g.cur = p
	}
}

// AddLeaf appends a leaf token to the current node.
func (g *Graph) AddLeaf(t token.Token) {
	cur := g.nodes[g.cur]
	cur.Children = append(cur.Children, Child{Tok: &t})
}

// Dump renders the arena in a one-node-per-line form for debugging.
func (g *Graph) Dump() string {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	var b strings.Builder
	for _, id := range ids {
		n := g.nodes[id]
		fmt.Fprintf(&b, "%3d parent=%d <%s", id, n.Parent, n.Name)
		for _, k := range n.Keys {
			fmt.Fprintf(&b, " %s", k)
		}
		fmt.Fprintf(&b, ">")
		for _, c := range n.Children {
			if c.IsNode() {
				fmt.Fprintf(&b, " #%d", c.ID)
				continue
			}
			fmt.Fprintf(&b, " %s", c.Tok)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
