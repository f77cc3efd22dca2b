package maze

import (
	"errors"
	"fmt"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/gridpath/grid"
)

// DefaultDensity is the obstacle probability of the random maze.
const DefaultDensity = 0.3

var (
	// ErrBadDensity indicates a probability outside [0,1].
	ErrBadDensity = errors.New("maze: density must be within [0,1]")
	// ErrBadScale indicates a non-positive noise scale.
	ErrBadScale = errors.New("maze: noise scale must be positive")
	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("maze: grid is nil")
)

// Random paints each non-endpoint cell as an obstacle with probability
// density, drawing from rng in row-major order, and clears the rest.
// It returns the number of obstacles placed.
func Random(g *grid.Grid, rng *rand.Rand, density float64) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if density < 0 || density > 1 {
		return 0, fmt.Errorf("%w: %v", ErrBadDensity, density)
	}

	placed := 0
	for i := 0; i < g.Len(); i++ {
		n := g.Node(i)
		wall := rng.Float64() < density
		g.SetObstacle(n.Row, n.Col, wall)
		if n.IsObstacle {
			placed++
		}
	}
	return placed, nil
}

// NoiseOptions tunes the simplex-noise generator.
type NoiseOptions struct {
	// Scale multiplies cell coordinates before sampling; smaller values give
	// larger blobs.
	Scale float64
	// Threshold in [0,1]; normalized noise above it becomes an obstacle.
	// Higher thresholds give sparser walls.
	Threshold float64
}

// DefaultNoiseOptions returns Scale 0.15 and Threshold 0.6, which yields
// roughly a quarter to a third of the cells as walls.
func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{Scale: 0.15, Threshold: 0.6}
}

// Noise paints obstacles where normalized OpenSimplex noise at
// (col·Scale, row·Scale) exceeds Threshold, and clears the other cells.
// The layout depends only on seed and opts. It returns the number of
// obstacles placed.
func Noise(g *grid.Grid, seed int64, opts NoiseOptions) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if opts.Scale <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrBadScale, opts.Scale)
	}
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return 0, fmt.Errorf("%w: threshold %v", ErrBadDensity, opts.Threshold)
	}

	noise := opensimplex.NewNormalized(seed)
	placed := 0
	for i := 0; i < g.Len(); i++ {
		n := g.Node(i)
		v := noise.Eval2(float64(n.Col)*opts.Scale, float64(n.Row)*opts.Scale)
		g.SetObstacle(n.Row, n.Col, v > opts.Threshold)
		if n.IsObstacle {
			placed++
		}
	}
	return placed, nil
}
