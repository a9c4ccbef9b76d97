package game

// Rect is an axis-aligned box given by its minimum corner and size.
type Rect struct {
	Position Vector2
	Size     Vector2
}

func (r Rect) Left() float64   { return r.Position.X }
func (r Rect) Right() float64  { return r.Position.X + r.Size.X }
func (r Rect) Top() float64    { return r.Position.Y }
func (r Rect) Bottom() float64 { return r.Position.Y + r.Size.Y }

// Overlaps reports whether r and o intersect. Boxes that only touch along an
// edge or a corner count as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	if r.Right() < o.Left() || r.Left() > o.Right() {
		return false
	}
	if r.Bottom() < o.Top() || r.Top() > o.Bottom() {
		return false
	}
	return true
}
