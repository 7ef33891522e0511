package editor

// DefaultTolerance is the half-width of the click box used for hit-testing.
const DefaultTolerance = 5

// Hit locates a point inside the model.
type Hit struct {
	Path  int `json:"path"`
	Index int `json:"index"`
}

// FindNear returns the first stored point lying within tol of q on both
// axes. Paths and points are scanned in insertion order and the first match
// wins, even when a later point is closer.
func (m *Model) FindNear(q Point, tol int) (Hit, bool) {
	for pi, path := range m.paths {
		for i, p := range path.Points {
			if q.X-tol <= p.X && p.X <= q.X+tol &&
				q.Y-tol <= p.Y && p.Y <= q.Y+tol {
				return Hit{Path: pi, Index: i}, true
			}
		}
	}
	return Hit{}, false
}
