package wheel

import "math"

// Geometry places the rings on the terminal grid. Radii are measured in rows;
// Aspect stretches them horizontally because terminal cells are roughly twice
// as tall as they are wide.
type Geometry struct {
	OuterRadius  float64
	InnerRadius  float64
	NumberRadius float64
	HubRadius    float64
	Aspect       float64
}

// DefaultGeometry fits the wheel into 31 rows by 59 columns.
func DefaultGeometry() Geometry {
	return Geometry{
		OuterRadius:  13,
		InnerRadius:  10.5,
		NumberRadius: 8,
		HubRadius:    6.5,
		Aspect:       2,
	}
}

// Rows is the height of the rendered wheel.
func (g Geometry) Rows() int {
	return 2*int(math.Ceil(g.outerEdge())) + 1
}

// Cols is the width of the rendered wheel.
func (g Geometry) Cols() int {
	return 2*int(math.Ceil(g.outerEdge()*g.Aspect)) + 1
}

// Centre is the centre cell of the wheel in local coordinates.
func (g Geometry) Centre() (float64, float64) {
	return float64(g.Cols() / 2), float64(g.Rows() / 2)
}

// outerEdge is the outside of the fixed alphabet ring.
func (g Geometry) outerEdge() float64 {
	return g.OuterRadius + (g.OuterRadius-g.InnerRadius)/2
}

// innerEdge separates the fixed ring from the rotating inner alphabet.
func (g Geometry) innerEdge() float64 {
	return (g.OuterRadius + g.InnerRadius) / 2
}

// numberEdge separates the inner alphabet from the number ring.
func (g Geometry) numberEdge() float64 {
	return (g.InnerRadius + g.NumberRadius) / 2
}

// band identifies which ring a point (in row units) falls into.
type band int

const (
	bandOutside band = iota
	bandOuter
	bandInner
	bandNumber
	bandHub
)

func (g Geometry) bandAt(dx, dy float64) band {
	d := math.Hypot(dx, dy)
	switch {
	case d <= g.HubRadius:
		return bandHub
	case d <= g.numberEdge():
		return bandNumber
	case d <= g.innerEdge():
		return bandInner
	case d <= g.outerEdge():
		return bandOuter
	default:
		return bandOutside
	}
}

// OnAssembly reports whether an offset from the centre hits the rotating
// inner alphabet or number ring.
func (g Geometry) OnAssembly(dx, dy float64) bool {
	b := g.bandAt(dx, dy)
	return b == bandInner || b == bandNumber
}
