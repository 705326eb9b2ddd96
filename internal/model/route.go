package model

import "strings"

// Path represents a file system path.
type Path string

// Route is an ordered sequence of points. The tour it describes is the
// route read start to end plus a closing edge back to the start.
type Route []Point

// Length returns the closed-tour distance of the route: the sum of the
// consecutive edges plus the edge from the last point back to the first.
// An empty route has length zero.
func (r Route) Length() float64 {
	if len(r) == 0 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(r); i++ {
		total += r[i-1].Distance(r[i])
	}

	total += r[0].Distance(r[len(r)-1])

	return total
}

// Clone returns an independent copy of r. Cloning a nil route yields nil.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}

	out := make(Route, len(r))
	copy(out, r)

	return out
}

func (r Route) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for i, p := range r {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(p.String())
	}

	b.WriteByte(']')

	return b.String()
}
