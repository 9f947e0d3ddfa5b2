package wordreel

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter. Nodes are only created on the stage
// goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the element of the visual tree. Words, characters, containers and
// project thumbnails are all nodes; a single flat struct serves every type.
type Node struct {
	// Identity
	ID    uint32
	Name  string
	Class string
	Type  NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed during Stage.Update
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	Alpha   float64
	Visible bool

	// Size in local units. Sprites are stretched to it; text nodes measure it.
	Width, Height float64

	Color Color

	// Sprite fields (NodeTypeSprite)
	Source image.Image
	image  *ebiten.Image // uploaded lazily from Source on first draw

	// Text fields (NodeTypeText)
	Text string
	Font Font

	UserData any

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that draws src stretched to w x h. src may be
// nil, in which case the node occupies space but draws nothing.
func NewSprite(name string, src image.Image, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Source: src, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewText creates a text node with the given content and font. Width and
// Height are measured from the font when one is given.
func NewText(name string, content string, font Font) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Text: content, Font: font}
	nodeDefaults(n)
	if font != nil {
		n.Width, n.Height = font.MeasureString(content)
	}
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("wordreel: cannot add nil child")
	}
	if child.disposed || n.disposed {
		panic("wordreel: AddChild on disposed node")
	}
	if isAncestor(child, n) {
		panic("wordreel: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("wordreel: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// DisposeChildren disposes every child of this node.
func (n *Node) DisposeChildren() {
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Attached reports whether the node currently has a parent.
func (n *Node) Attached() bool {
	return n.Parent != nil
}

// --- Selectors ---

// Find returns the first node in this subtree (depth-first, including n itself)
// matching selector, or nil. ".foo" matches Class "foo"; "#foo" and "foo"
// match Name "foo".
func (n *Node) Find(selector string) *Node {
	if selector == "" {
		return nil
	}
	if n.matches(selector) {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(selector); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in this subtree matching selector, in
// depth-first order.
func (n *Node) FindAll(selector string) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.matches(selector) {
			out = append(out, c)
		}
	})
	return out
}

func (n *Node) matches(selector string) bool {
	switch {
	case strings.HasPrefix(selector, "."):
		return n.Class != "" && n.Class == selector[1:]
	case strings.HasPrefix(selector, "#"):
		return n.Name == selector[1:]
	default:
		return n.Name == selector
	}
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.walk(fn)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	if n.image != nil {
		n.image.Deallocate()
		n.image = nil
	}
	n.Source = nil
	n.Font = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
