package scene

import (
	"math"
	"testing"

	"github.com/windhover/kestrel/spatial"
)

func TestFrameTree_Compose(t *testing.T) {
	var tree FrameTree

	base := tree.Attach("base", Root, spatial.Vec3(10, 0, 0), spatial.QuatIdentity())
	arm := tree.Attach("arm", base,
		spatial.Vec3(0, 2, 0),
		spatial.QuatFromAxisAngle(spatial.Vec3(0, 0, 1), math.Pi/2))

	if tree.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tree.Len())
	}
	if tree.Name(arm) != "arm" {
		t.Errorf("Name = %q", tree.Name(arm))
	}

	// A point on the arm's local x axis ends up along world y, offset by
	// both frame translations.
	got := tree.ToWorld(arm, spatial.Vec3(1, 0, 0))
	want := spatial.Vec3(10, 3, 0)
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("ToWorld = %v, want %v", got, want)
	}

	// The base is unaffected by its child.
	if got := tree.ToWorld(base, spatial.Vec3(0, 0, 0)); !got.ApproxEqual(spatial.Vec3(10, 0, 0), 0) {
		t.Errorf("base origin = %v", got)
	}
}

func TestFrameTree_AttachUnknownParent(t *testing.T) {
	var tree FrameTree
	defer func() {
		if recover() == nil {
			t.Error("attach to unknown parent did not panic")
		}
	}()
	tree.Attach("orphan", NodeID(5), spatial.Vec3(0, 0, 0), spatial.QuatIdentity())
}
