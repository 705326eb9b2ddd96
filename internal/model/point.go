// Package model defines the data structures for tour solving.
package model

import (
	"math"
	"strconv"
)

// Point is an immutable 2-D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// DistanceSquared returns the squared Euclidean distance between p and other.
func (p Point) DistanceSquared(other Point) float64 {
	x := p.X - other.X
	y := p.Y - other.Y

	return (x * x) + (y * y)
}

func (p Point) String() string {
	return "(" + formatFloat(p.X) + ", " + formatFloat(p.Y) + ")"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
