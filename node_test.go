package deck

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewRectDefaults(t *testing.T) {
	c := Color{R: 0.5, G: 0.25, B: 1, A: 1}
	n := NewRect("rect", 40, 30, c)
	if n.Width != 40 || n.Height != 30 {
		t.Errorf("size = (%v, %v), want (40, 30)", n.Width, n.Height)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
	n.Color = ColorWhite
	assertNodeDefaults(t, n, "rect", NodeTypeRect)
}

func TestNewTextDefaults(t *testing.T) {
	n := NewText("text", "hello", 18)
	assertNodeDefaults(t, n, "text", NodeTypeText)
	if n.TextBlock == nil {
		t.Fatal("TextBlock should be set")
	}
	if n.TextBlock.Content != "hello" || n.TextBlock.FontSize != 18 {
		t.Errorf("TextBlock = %+v", *n.TextBlock)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Interactable {
		t.Error("Interactable should default to false")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewRect("c", 1, 1, ColorWhite)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildTwiceMovesToEnd(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(a)

	if parent.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", parent.NumChildren())
	}
	if parent.ChildAt(0) != b || parent.ChildAt(1) != a {
		t.Error("re-adding a child should move it to the top")
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestAddChildPanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)

	expectPanic(t, "cycle", func() { b.AddChild(a) })
	expectPanic(t, "self", func() { a.AddChild(a) })
	expectPanic(t, "nil", func() { a.AddChild(nil) })
	expectPanic(t, "index", func() { a.AddChildAt(NewContainer("c"), 5) })
}

func TestAddChildAtBeginning(t *testing.T) {
	parent := NewContainer("parent")
	top := NewContainer("top")
	bottom := NewContainer("bottom")
	parent.AddChild(top)
	parent.AddChildAt(bottom, 0)

	if parent.ChildAt(0) != bottom || parent.ChildAt(1) != top {
		t.Error("AddChildAt(0) should insert below existing children")
	}
	if parent.IndexOf(top) != 1 || parent.IndexOf(NewContainer("x")) != -1 {
		t.Error("IndexOf mismatch")
	}
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child should be detached")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	expectPanic(t, "wrong parent", func() { p2.RemoveChild(child) })
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent() // should not panic
}

// --- Walk ---

func TestWalkDepthFirstExcludesRoot(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	a1 := NewContainer("a1")
	b := NewContainer("b")
	root.AddChild(a)
	a.AddChild(a1)
	root.AddChild(b)

	var names []string
	root.Walk(func(n *Node) { names = append(names, n.Name) })

	want := []string{"a", "a1", "b"}
	if len(names) != len(want) {
		t.Fatalf("Walk visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Walk[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	child := NewContainer("child")
	root.AddChild(parent)
	parent.AddChild(child)
	parent.OnDrag = func(DragContext) {}

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 {
		t.Error("disposed nodes should have ID = 0")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
	if parent.OnDrag != nil {
		t.Error("callbacks should be cleared")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("should still be disposed")
	}
}

func TestDebugPanicsOnDisposedNode(t *testing.T) {
	globalDebug = true
	defer func() { globalDebug = false }()

	n := NewContainer("n")
	n.Dispose()
	expectPanic(t, "disposed parent", func() { n.AddChild(NewContainer("c")) })
}

// --- Dirty propagation ---

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	child.AddChild(grandchild)

	child.transformDirty = false
	grandchild.transformDirty = false

	parent.AddChild(child)

	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("subtree should be dirty after AddChild")
	}
}

func TestBoundsRoundTrip(t *testing.T) {
	n := NewRect("r", 10, 20, ColorWhite)
	r := Rect{X: 1, Y: 2, Width: 30, Height: 40}
	n.SetBounds(r)
	if n.Bounds() != r {
		t.Errorf("Bounds = %+v, want %+v", n.Bounds(), r)
	}
}
