package deck

import "testing"

func TestDiscretizeFontSize(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{16, 16},
		{16.05, 16},
		{16.19, 16.1},
		{14.4, 14.4},
		{0.09, 0},
		{12.96, 12.9},
	}
	for _, c := range cases {
		assertNear(t, "discretize", discretizeFontSize(c.in), c.want)
	}
}

func buildContent() (root, bg, label *Node) {
	root = NewContainer("card")
	bg = NewRect("bg", 200, 300, ColorWhite)
	label = NewText("label", "A", 20)
	label.SetBounds(Rect{X: 10, Y: 40, Width: 180, Height: 30})
	root.AddChild(bg)
	bg.AddChild(label)
	return root, bg, label
}

func TestRefLayoutCaptureAndApply(t *testing.T) {
	root, bg, label := buildContent()
	var ref refLayout
	ref.width = 200
	ref.capture(root)

	if !ref.captured() || len(ref.entries) != 2 {
		t.Fatalf("captured %d entries, want 2", len(ref.entries))
	}

	ref.apply(root, 0.5)
	if bg.Bounds() != (Rect{Width: 100, Height: 150}) {
		t.Errorf("bg bounds = %+v", bg.Bounds())
	}
	if label.Bounds() != (Rect{X: 5, Y: 20, Width: 90, Height: 15}) {
		t.Errorf("label bounds = %+v", label.Bounds())
	}
	assertNear(t, "font", label.TextBlock.FontSize, 10)

	// Scaling is always relative to the captured geometry.
	ref.apply(root, 0.9)
	assertNear(t, "bg.w", bg.Width, 180)
	assertNear(t, "font", label.TextBlock.FontSize, 18)

	ref.apply(root, 1)
	if bg.Bounds() != (Rect{Width: 200, Height: 300}) {
		t.Errorf("bg bounds after restore = %+v", bg.Bounds())
	}
	assertNear(t, "font", label.TextBlock.FontSize, 20)
}

func TestRefLayoutFontDiscretized(t *testing.T) {
	root, _, label := buildContent()
	var ref refLayout
	ref.capture(root)
	ref.apply(root, 0.81) // 20 * 0.81 = 16.2
	assertNear(t, "font", label.TextBlock.FontSize, 16.2)
	ref.apply(root, 0.729) // 14.58
	assertNear(t, "font", label.TextBlock.FontSize, 14.5)
}

func TestRefLayoutIgnoresLateNodes(t *testing.T) {
	root, _, _ := buildContent()
	var ref refLayout
	ref.capture(root)

	late := NewRect("late", 50, 50, ColorWhite)
	root.AddChild(late)
	ref.apply(root, 0.5)
	if late.Width != 50 {
		t.Errorf("late node width = %v, want untouched 50", late.Width)
	}
}

func TestRefLayoutReset(t *testing.T) {
	root, _, _ := buildContent()
	var ref refLayout
	ref.capture(root)
	ref.reset()
	if ref.captured() {
		t.Error("reset should drop the capture")
	}
}
