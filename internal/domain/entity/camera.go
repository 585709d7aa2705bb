package entity

// Camera is the viewport into the level
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64
	// FollowSpeed is the fraction of the remaining distance covered per tick
	FollowSpeed float64
}

// WorldToScreen translates world coordinates into screen coordinates
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// Visible reports whether a world rectangle intersects the viewport
func (c *Camera) Visible(r Rect) bool {
	sx, sy := c.WorldToScreen(r.X, r.Y)
	return Rect{X: sx, Y: sy, W: r.W, H: r.H}.Overlaps(Rect{W: c.ViewW, H: c.ViewH})
}
