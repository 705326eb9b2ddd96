package model

import "math"

// Tour is the best-tour state of one enumeration: the shortest closed
// distance seen so far and the route that produced it.
type Tour struct {
	Route    Route
	Distance float64
}

// NoTour returns the initial best-tour state: infinite distance, empty route.
func NoTour() Tour {
	return Tour{Distance: math.Inf(1)}
}

// Found reports whether any candidate route was accepted.
func (t Tour) Found() bool {
	return len(t.Route) > 0
}

// Improvement describes a new best distance replacing a previous one.
// Delta is Previous-Current and is +Inf for the first accepted candidate.
type Improvement struct {
	Previous float64
	Current  float64
	Delta    float64
}
