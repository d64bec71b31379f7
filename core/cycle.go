package core

import "math"

// ColorStep is the amount of a channel moved between neighbours per Step
const ColorStep float32 = 0.01

const cycleEpsilon = 0.0005

// ColorCycle holds three RGB triples, one per triangle vertex.
type ColorCycle struct {
	Colors [9]float32
}

// NewColorCycle starts with a pure red, green and blue vertex.
func NewColorCycle() ColorCycle {
	return ColorCycle{Colors: [9]float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// Step moves ColorStep from every channel to the next one, wrapping from
// the last channel to the first. Channels are visited in order and each
// move sees the moves before it. A channel near zero gives nothing, and
// a channel only gives to a neighbour near zero when it is itself near one.
// The checks use the values before the move, so channels can drift
// slightly outside [0, 1] over time.
func (c ColorCycle) Step() ColorCycle {
	n := len(c.Colors)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if near(c.Colors[i], 0) {
			continue
		}
		if near(c.Colors[j], 0) && !near(c.Colors[i], 1) {
			continue
		}
		c.Colors[i] -= ColorStep
		c.Colors[j] += ColorStep
	}
	return c
}

// Sum adds up every channel. Step leaves it unchanged up to rounding.
func (c ColorCycle) Sum() float32 {
	var sum float32
	for _, v := range c.Colors {
		sum += v
	}
	return sum
}

// Slice returns the channels in vertex order, ready for upload
func (c *ColorCycle) Slice() []float32 {
	return c.Colors[:]
}

func near(v, target float32) bool {
	return math.Abs(float64(v-target)) < cycleEpsilon
}
