// ABOUTME: Bounding-box geometry for anchors and panels: Rect, Offset, Measure
// ABOUTME: Measure falls back to outer width/height when a host omits the size

package geom

// Rect is a bounding box in viewport-relative units.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Right returns the right edge of the rectangle.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge of the rectangle.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Offset is a viewport scroll position.
type Offset struct {
	Top  float64
	Left float64
}

// Boxer is implemented by anything that can report its bounding box.
// sized is false when the host could not determine width and height;
// Measure then queries OuterSizer instead.
type Boxer interface {
	BoundingBox() (r Rect, sized bool)
}

// OuterSizer reports the computed outer size of an element.
type OuterSizer interface {
	OuterWidth() float64
	OuterHeight() float64
}

// Measure returns the bounding box of b. Width and height are never negative.
func Measure(b Boxer) Rect {
	r, sized := b.BoundingBox()
	if !sized {
		if os, ok := b.(OuterSizer); ok {
			r.Width = os.OuterWidth()
			r.Height = os.OuterHeight()
		}
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}
