package layer

import "testing"

// fixedLayer is a test double with a fixed height and visibility, recording
// every Render call it receives.
type fixedLayer struct {
	visible bool
	height  int
	calls   []call
}

type call struct {
	startRow, rowCount int
}

func (f *fixedLayer) IsVisible() bool     { return f.visible }
func (f *fixedLayer) GetHeight(int) int   { return f.height }
func (f *fixedLayer) Render(output *[]byte, width int, startRow int, rowCount int) {
	f.calls = append(f.calls, call{startRow, rowCount})
}

// TestCakeCompletenessAtFullViewport checks that with viewport_row=0 and
// viewport_height >= total_height, every visible layer is rendered in full.
func TestCakeCompletenessAtFullViewport(t *testing.T) {
	a := &fixedLayer{visible: true, height: 3}
	b := &fixedLayer{visible: true, height: 5}
	hidden := &fixedLayer{visible: false, height: 100}

	c := NewCake()
	c.Add(a)
	c.Add(hidden)
	c.Add(b)
	c.ViewportRow = 0
	c.ViewportHeight = c.TotalHeight(80)

	var out []byte
	c.Render(&out, 80)

	if len(a.calls) != 1 || a.calls[0] != (call{0, 3}) {
		t.Errorf("layer a calls = %+v, want one call {0,3}", a.calls)
	}
	if len(b.calls) != 1 || b.calls[0] != (call{0, 5}) {
		t.Errorf("layer b calls = %+v, want one call {0,5}", b.calls)
	}
	if len(hidden.calls) != 0 {
		t.Errorf("hidden layer was rendered: %+v", hidden.calls)
	}
	if got := c.TotalHeight(80); got != 8 {
		t.Errorf("TotalHeight = %d, want 8", got)
	}
}

// TestCakeViewportClipping checks that a mid-viewport window only calls
// Render for intersecting layers, with correctly clipped start_row/row_count.
func TestCakeViewportClipping(t *testing.T) {
	top := &fixedLayer{visible: true, height: 4}    // rows [0,4)
	mid := &fixedLayer{visible: true, height: 4}    // rows [4,8)
	bottom := &fixedLayer{visible: true, height: 4} // rows [8,12)

	c := NewCake()
	c.Add(top)
	c.Add(mid)
	c.Add(bottom)
	c.ViewportRow = 3
	c.ViewportHeight = 4 // window [3,7)

	var out []byte
	c.Render(&out, 80)

	if len(top.calls) != 1 || top.calls[0] != (call{3, 1}) {
		t.Errorf("top.calls = %+v, want {3,1}", top.calls)
	}
	if len(mid.calls) != 1 || mid.calls[0] != (call{0, 3}) {
		t.Errorf("mid.calls = %+v, want {0,3}", mid.calls)
	}
	if len(bottom.calls) != 0 {
		t.Errorf("bottom.calls = %+v, want no calls (fully outside viewport)", bottom.calls)
	}
}

func TestCakeSkipsInvisibleRegardlessOfHeight(t *testing.T) {
	hidden := &fixedLayer{visible: false, height: 10}
	c := NewCake()
	c.Add(hidden)
	c.ViewportRow = 0
	c.ViewportHeight = 10

	if got := c.TotalHeight(80); got != 0 {
		t.Errorf("TotalHeight with only an invisible layer = %d, want 0", got)
	}
}
