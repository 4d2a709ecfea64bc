// Package placement scatters decorative props on the XZ ground plane by
// bounded-retry rejection sampling. It always returns the requested number of
// spots: when the retry budget runs out the last candidate is kept even if it
// crowds a neighbor, so the scene always fully populates.
package placement

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"
)

const (
	// DefaultHalfExtent is half the side length of the square spawn area.
	DefaultHalfExtent = 50
	// DefaultMinSpacing is the per-axis (Chebyshev) distance two spots must keep.
	DefaultMinSpacing = 3
	// DefaultMaxAttempts bounds the rejection-sampling retries per spot.
	DefaultMaxAttempts = 100
)

// Zone is an axis-aligned rectangular exclusion region on the XZ plane,
// given as a center and half extents.
type Zone struct {
	CenterX float32
	CenterZ float32
	HalfW   float32
	HalfD   float32
}

// Contains reports whether the point (x, z) lies strictly inside the zone.
func (zn Zone) Contains(x, z float32) bool {
	return math32.Abs(x-zn.CenterX) < zn.HalfW && math32.Abs(z-zn.CenterZ) < zn.HalfD
}

// DefaultZones returns the exclusion regions of the stock scene: the
// gingerbread house footprint around the origin and the wagon beside it.
func DefaultZones() []Zone {
	return []Zone{
		{CenterX: 0, CenterZ: 0, HalfW: 8, HalfD: 8},
		{CenterX: 15, CenterZ: 5, HalfW: 5, HalfD: 5},
	}
}

// Options controls one scatter run.
// Seed == 0 uses a time-based seed so every run gets a fresh layout; any other
// value makes the output reproducible.
type Options struct {
	Count       int
	HalfExtent  float32
	MinSpacing  float32
	MaxAttempts int
	Zones       []Zone
	Seed        int64
}

// DefaultOptions returns the stock scatter configuration (zones from DefaultZones).
func DefaultOptions() Options {
	return Options{
		Count:       60,
		HalfExtent:  DefaultHalfExtent,
		MinSpacing:  DefaultMinSpacing,
		MaxAttempts: DefaultMaxAttempts,
		Zones:       DefaultZones(),
	}
}

// Spot is one accepted placement: a ground position and a rotation about Y
// in [0, 2*pi).
type Spot struct {
	X         float32
	Z         float32
	RotationY float32
}

// Generate produces exactly opts.Count spots, sequentially. Each spot is
// sampled uniformly in [-HalfExtent, +HalfExtent] on both axes and rejected
// while it falls inside an exclusion zone or within MinSpacing (per axis) of
// an already accepted spot; earlier spots act as exclusion state for later
// ones. After MaxAttempts rejections the last candidate is accepted as-is.
// The rotation is sampled independently of position acceptance.
func Generate(opts Options) []Spot {
	if opts.Count <= 0 {
		return nil
	}
	if opts.HalfExtent <= 0 {
		opts.HalfExtent = DefaultHalfExtent
	}
	if opts.MinSpacing <= 0 {
		opts.MinSpacing = DefaultMinSpacing
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	spots := make([]Spot, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		var x, z float32
		for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
			x = (rng.Float32()*2 - 1) * opts.HalfExtent
			z = (rng.Float32()*2 - 1) * opts.HalfExtent
			if isFree(x, z, opts, spots) {
				break
			}
		}
		spots = append(spots, Spot{
			X:         x,
			Z:         z,
			RotationY: rng.Float32() * 2 * math32.Pi,
		})
	}
	return spots
}

// isFree reports whether (x, z) violates no constraint: outside every zone and
// not within MinSpacing of any accepted spot on both axes at once.
func isFree(x, z float32, opts Options, accepted []Spot) bool {
	for _, zn := range opts.Zones {
		if zn.Contains(x, z) {
			return false
		}
	}
	for _, s := range accepted {
		if math32.Abs(x-s.X) < opts.MinSpacing && math32.Abs(z-s.Z) < opts.MinSpacing {
			return false
		}
	}
	return true
}
