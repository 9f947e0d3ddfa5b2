package wordreel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// nodeIdentity compares nodes by pointer.
var nodeIdentity = cmp.Comparer(func(a, b *Node) bool { return a == b })

func trackedImage(name string, x, y float64) ActiveImage {
	return ActiveImage{X: x, Y: y, Width: 10, Height: 10, Node: NewContainer(name)}
}

func TestTrackerAddRemove(t *testing.T) {
	var tr Tracker
	a := trackedImage("a", 1, 1)
	b := trackedImage("b", 2, 2)
	c := trackedImage("c", 3, 3)
	tr.Add(a)
	tr.Add(b)
	tr.Add(c)

	if !tr.Remove(b.Node) {
		t.Fatal("Remove(b) = false, want true")
	}
	want := []ActiveImage{a, c}
	if diff := cmp.Diff(want, tr.Active(), nodeIdentity); diff != "" {
		t.Errorf("Active() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackerRemoveIsIdempotent(t *testing.T) {
	var tr Tracker
	a := trackedImage("a", 1, 1)
	tr.Add(a)

	stranger := NewContainer("stranger")
	if tr.Remove(stranger) {
		t.Error("Remove(untracked) = true")
	}
	if tr.Remove(nil) {
		t.Error("Remove(nil) = true")
	}
	if !tr.Remove(a.Node) {
		t.Error("first Remove(a) = false")
	}
	if tr.Remove(a.Node) {
		t.Error("second Remove(a) = true")
	}
	if tr.Len() != 0 {
		t.Errorf("Len = %d, want 0", tr.Len())
	}

	var empty Tracker
	empty.Remove(a.Node)
	if empty.Len() != 0 {
		t.Error("Remove on empty tracker changed it")
	}
}

func TestTrackerResetThenAdd(t *testing.T) {
	tests := []struct {
		name  string
		prior int
		added int
	}{
		{"empty before", 0, 3},
		{"full before", 5, 2},
		{"nothing added", 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tracker
			for i := 0; i < tt.prior; i++ {
				tr.Add(trackedImage("old", float64(i), 0))
			}
			tr.Reset()

			var want []ActiveImage
			for i := 0; i < tt.added; i++ {
				img := trackedImage("new", 0, float64(i))
				tr.Add(img)
				want = append(want, img)
			}
			if diff := cmp.Diff(want, tr.Active(), nodeIdentity, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Active() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrackerActiveIsCopy(t *testing.T) {
	var tr Tracker
	tr.Add(trackedImage("a", 1, 1))
	got := tr.Active()
	got[0].X = 99
	if tr.Active()[0].X != 1 {
		t.Error("mutating Active() result changed the tracker")
	}
}
