package scene

import (
	"github.com/windhover/kestrel/body"
	"github.com/windhover/kestrel/spatial"
)

// NodeID addresses a coordinate node inside a FrameTree.
type NodeID int

// Root is the implicit world frame every tree hangs from.
const Root NodeID = -1

type coordNode struct {
	name        string
	parent      NodeID
	position    spatial.Vector3
	orientation spatial.Quaternion
}

// FrameTree is an arena of named coordinate frames. Nodes reference their
// parent by index rather than by pointer, so the tree has no cycles and
// plain value copies stay safe.
type FrameTree struct {
	nodes []coordNode
}

// Attach adds a frame under parent (use Root for a world-level frame) and
// returns its id. An out-of-range parent is a usage error.
func (t *FrameTree) Attach(name string, parent NodeID, position spatial.Vector3, orientation spatial.Quaternion) NodeID {
	if parent != Root && (parent < 0 || int(parent) >= len(t.nodes)) {
		panic("scene: attach to unknown coordinate frame")
	}
	t.nodes = append(t.nodes, coordNode{
		name:        name,
		parent:      parent,
		position:    position,
		orientation: orientation,
	})
	return NodeID(len(t.nodes) - 1)
}

// Name returns the node's name.
func (t *FrameTree) Name(id NodeID) string {
	return t.nodes[id].name
}

// Len returns the number of frames in the tree.
func (t *FrameTree) Len() int {
	return len(t.nodes)
}

// World composes the chain of local transforms from id up to the root and
// returns the frame's world placement as a kinematic state at rest.
func (t *FrameTree) World(id NodeID) body.State {
	s := body.NewState()
	for id != Root {
		n := t.nodes[id]
		s.Position = n.position.Add(n.orientation.Rotate(s.Position))
		s.Orientation = n.orientation.Product(s.Orientation).Normalize()
		id = n.parent
	}
	return s
}

// ToWorld maps a point expressed in frame id into world coordinates.
func (t *FrameTree) ToWorld(id NodeID, p spatial.Vector3) spatial.Vector3 {
	return t.World(id).TransformPoint(p)
}
