package arena

import "testing"

func TestNewRootIsLeaf(t *testing.T) {
	a := New(0)
	if !a.IsLeaf(a.Root()) {
		t.Fatal("fresh arena's root should be a leaf")
	}
	if got := a.Label(a.Root()); got != 0 {
		t.Fatalf("fresh root label = %d, want 0 (null)", got)
	}
}

func TestTurnInternalThenAddChild(t *testing.T) {
	a := New(0)
	root := a.Root()
	a.TurnInternal(root, 4)
	if a.IsLeaf(root) {
		t.Fatal("root should be internal after TurnInternal")
	}
	if a.Fanout(root) != 4 {
		t.Fatalf("Fanout() = %d, want 4", a.Fanout(root))
	}
	if a.HasChild(root, 2) {
		t.Fatal("slot 2 should be empty before AddChild")
	}
	child := a.AddChild(root, 2, 42)
	if !a.HasChild(root, 2) {
		t.Fatal("slot 2 should be occupied after AddChild")
	}
	if got := a.Child(root, 2); got != child {
		t.Fatalf("Child(2) = %d, want %d", got, child)
	}
	if !a.IsLeaf(child) {
		t.Fatal("freshly added child should be a leaf")
	}
	if got := a.Label(child); got != 42 {
		t.Fatalf("child label = %d, want 42", got)
	}
}

func TestTurnInternalTwiceIsNoOp(t *testing.T) {
	a := New(0)
	root := a.Root()
	a.TurnInternal(root, 4)
	a.AddChild(root, 0, 7)
	a.TurnInternal(root, 999) // must not wipe existing children
	if a.Fanout(root) != 4 {
		t.Fatalf("second TurnInternal changed fanout to %d", a.Fanout(root))
	}
	if !a.HasChild(root, 0) {
		t.Fatal("second TurnInternal wiped an existing child")
	}
}

func TestDescendTwoLevels(t *testing.T) {
	a := New(0)
	root := a.Root()
	a.TurnInternal(root, 4)
	mid := a.AddChild(root, 1, 0)
	a.TurnInternal(mid, 4)
	leaf := a.AddChild(mid, 3, 99)

	got := a.Child(a.Child(root, 1), 3)
	if got != leaf {
		t.Fatalf("descended child index = %d, want %d", got, leaf)
	}
	if a.Label(leaf) != 99 {
		t.Fatalf("leaf label = %d, want 99", a.Label(leaf))
	}
}
