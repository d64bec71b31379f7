package core_test

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/prism/core"
)

func assertColors(c *qt.C, got core.ColorCycle, want [9]float32) {
	c.Helper()
	for i := range want {
		if math.Abs(float64(got.Colors[i]-want[i])) > 1e-6 {
			c.Fatalf("channel %d: got %v, want %v (all %v)", i, got.Colors[i], want[i], got.Colors)
		}
	}
}

func TestColorCycleSingleStep(t *testing.T) {
	c := qt.New(t)

	got := core.NewColorCycle().Step()
	assertColors(c, got, [9]float32{
		1, 0.01, 0,
		0, 0.99, 0.01,
		0, 0, 0.99,
	})
}

func TestColorCycleStepDoesNotMutateReceiver(t *testing.T) {
	c := qt.New(t)

	start := core.NewColorCycle()
	start.Step()
	c.Assert(start, qt.Equals, core.NewColorCycle())
}

func TestColorCycleGuards(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name  string
		start [9]float32
		want  [9]float32
	}{{
		name:  "zero channels give nothing",
		start: [9]float32{},
		want:  [9]float32{},
	}, {
		name:  "partial channel does not fill an empty neighbour",
		start: [9]float32{0.5},
		want:  [9]float32{0.5},
	}, {
		name:  "full channel fills an empty neighbour",
		start: [9]float32{1},
		want:  [9]float32{0.99, 0.01},
	}, {
		name:  "partial channel feeds a non-empty neighbour",
		start: [9]float32{0.5, 0.5},
		want:  [9]float32{0.49, 0.51},
	}, {
		name:  "last channel wraps to the first",
		start: [9]float32{0.2, 0, 0, 0, 0, 0, 0, 0, 0.3},
		want:  [9]float32{0.21, 0, 0, 0, 0, 0, 0, 0, 0.29},
	}}

	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			got := core.ColorCycle{Colors: test.start}.Step()
			assertColors(c, got, test.want)
		})
	}
}

func TestColorCycleConservesSum(t *testing.T) {
	c := qt.New(t)

	cycle := core.NewColorCycle()
	for step := 1; step <= 500; step++ {
		cycle = cycle.Step()
		if diff := math.Abs(float64(cycle.Sum() - 3)); diff > 1e-3 {
			c.Fatalf("step %d: sum %v drifted by %v", step, cycle.Sum(), diff)
		}
		if step == 100 {
			c.Assert(math.Abs(float64(cycle.Sum()-3)) < 1e-4, qt.IsTrue)
		}
	}
}

func TestColorCycleSlice(t *testing.T) {
	c := qt.New(t)

	cycle := core.NewColorCycle()
	s := cycle.Slice()
	c.Assert(s, qt.HasLen, 9)
	s[0] = 0.25
	c.Assert(cycle.Colors[0], qt.Equals, float32(0.25))
}

func BenchmarkColorCycleStep(b *testing.B) {
	cycle := core.NewColorCycle()
	for idx := 0; idx < b.N; idx++ {
		cycle = cycle.Step()
	}
}
