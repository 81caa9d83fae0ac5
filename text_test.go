package deck

import "testing"

func TestFaceCacheReusesDiscretizedSizes(t *testing.T) {
	src, err := defaultFaceSource()
	if err != nil {
		t.Fatal(err)
	}
	fc := newFaceCache(4)

	a := fc.get(src, 16)
	b := fc.get(src, 16.04)
	if a != b {
		t.Error("sizes in the same 0.1 step should share a face")
	}
	if fc.len() != 1 {
		t.Errorf("len = %d, want 1", fc.len())
	}
	c := fc.get(src, 16.1)
	if c == a {
		t.Error("16.1 should get its own face")
	}
	assertNear(t, "size", c.Size, 16.1)
}

func TestFaceCacheEvictsLeastRecentlyUsed(t *testing.T) {
	src, err := defaultFaceSource()
	if err != nil {
		t.Fatal(err)
	}
	fc := newFaceCache(2)

	first := fc.get(src, 10)
	fc.get(src, 11)
	fc.get(src, 10) // touch
	fc.get(src, 12) // evicts 11

	if fc.len() != 2 {
		t.Fatalf("len = %d, want 2", fc.len())
	}
	if fc.get(src, 10) != first {
		t.Error("recently used face should survive eviction")
	}
}

func TestTextBlockMeasure(t *testing.T) {
	tb := &TextBlock{Content: "Card", FontSize: 20}
	w, h := tb.Measure()
	if w <= 0 || h <= 0 {
		t.Errorf("Measure = (%v, %v), want positive", w, h)
	}

	half := &TextBlock{Content: "Card", FontSize: 10}
	w2, _ := half.Measure()
	if w2 >= w {
		t.Errorf("smaller font should measure narrower: %v >= %v", w2, w)
	}

	empty := &TextBlock{Content: "Card"}
	if w, h := empty.Measure(); w != 0 || h != 0 {
		t.Error("zero font size should measure empty")
	}
}
