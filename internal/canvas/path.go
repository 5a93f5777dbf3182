package canvas

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo               // Draw line to point (x, y)
	PathOpClose                // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// circleSegments is the number of line segments used to approximate a circle.
const circleSegments = 96

// PathCommand is a single path operation. To is unused by PathOpClose.
type PathCommand struct {
	Op PathOp
	To Offset
}

// Path is a polyline path made of straight segments.
//
// Build paths using MoveTo, LineTo and Close, or the AddRect and AddCircle
// helpers, then pass them to Canvas.DrawPath.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, To: Offset{X: x, Y: y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, To: Offset{X: x, Y: y}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// AddRect adds a closed rectangle subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddCircle adds a closed polygonal circle subpath.
func (p *Path) AddCircle(center Offset, radius float64) {
	for i := 0; i < circleSegments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		x, y := center.X+radius*cos, center.Y+radius*sin
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
}

// AddPolyline starts a subpath at points[0] and connects the rest with
// straight segments.
func (p *Path) AddPolyline(points []Offset) {
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
}

// Subpaths splits the path into point lists, one per subpath. The bool
// reports whether the subpath was closed.
func (p *Path) Subpaths() ([][]Offset, []bool) {
	var (
		subpaths [][]Offset
		closed   []bool
		current  []Offset
		start    Offset
	)
	flush := func(c bool) {
		if len(current) > 0 {
			subpaths = append(subpaths, current)
			closed = append(closed, c)
		}
		current = nil
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush(false)
			start = cmd.To
			current = []Offset{cmd.To}
		case PathOpLineTo:
			if len(current) == 0 {
				current = []Offset{start}
			}
			current = append(current, cmd.To)
		case PathOpClose:
			flush(true)
		}
	}
	flush(false)
	return subpaths, closed
}

// Bounds returns the bounding box of all path points.
func (p *Path) Bounds() Rect {
	first := true
	var r Rect
	for _, cmd := range p.Commands {
		if cmd.Op == PathOpClose {
			continue
		}
		if first {
			r = Rect{Left: cmd.To.X, Top: cmd.To.Y, Right: cmd.To.X, Bottom: cmd.To.Y}
			first = false
			continue
		}
		r.Left = math.Min(r.Left, cmd.To.X)
		r.Top = math.Min(r.Top, cmd.To.Y)
		r.Right = math.Max(r.Right, cmd.To.X)
		r.Bottom = math.Max(r.Bottom, cmd.To.Y)
	}
	return r
}
