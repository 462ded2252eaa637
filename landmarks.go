package mandel

import (
	"fmt"
	"slices"
)

// Well-known regions of the set, framed for a square display.
var (
	// SeahorseValley shows dense filaments and repeating seahorse curls.
	SeahorseValley = Viewport{MinReal: -0.8, MaxReal: -0.7, MinImag: 0.05, MaxImag: 0.15}

	// ElephantValley is a large bulb with trunk-like tendrils.
	ElephantValley = Viewport{MinReal: -1.85, MaxReal: -1.75, MinImag: -0.10, MaxImag: -0.02}

	// SpiralMinibrot is a small copy of the set with tight spiral arms.
	SpiralMinibrot = Viewport{MinReal: -0.7435, MaxReal: -0.7420, MinImag: 0.1310, MaxImag: 0.1325}

	// TripleSpiral has threefold symmetric spirals.
	TripleSpiral = Viewport{MinReal: -0.7480, MaxReal: -0.7450, MinImag: 0.0950, MaxImag: 0.0980}

	// ValleyOfTheDragon is deep spiral filament detail.
	ValleyOfTheDragon = Viewport{MinReal: -0.7400, MaxReal: -0.7350, MinImag: 0.1800, MaxImag: 0.1850}

	// MinibrotInMiniSpiral is a copy of the set inside a spiral arm.
	MinibrotInMiniSpiral = Viewport{MinReal: -1.7390, MaxReal: -1.7375, MinImag: -0.0235, MaxImag: -0.0220}
)

// Landmarks maps short names to the classic regions, plus "full" for
// DefaultViewport. The CLI selects regions by these names.
var Landmarks = map[string]Viewport{
	"full":        DefaultViewport,
	"seahorse":    SeahorseValley,
	"elephant":    ElephantValley,
	"spiral":      SpiralMinibrot,
	"triple":      TripleSpiral,
	"dragon":      ValleyOfTheDragon,
	"mini-spiral": MinibrotInMiniSpiral,
}

// LandmarkNames returns the keys of Landmarks in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for name := range Landmarks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Landmark looks up a named region.
func Landmark(name string) (Viewport, error) {
	v, ok := Landmarks[name]
	if !ok {
		return Viewport{}, fmt.Errorf("%w: unknown landmark %q (known: %v)", ErrInvalidViewport, name, LandmarkNames())
	}
	return v, nil
}
