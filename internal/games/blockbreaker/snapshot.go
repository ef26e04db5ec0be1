package blockbreaker

import "math"

// Snapshot contains the complete mutable game state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick int

	BallX, BallY   float64
	BallDX, BallDY float64

	PaddleX float64

	// Destroyed flags in scan order (column-major).
	Destroyed []bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	destroyed := make([]bool, len(g.blocks))
	for i := range g.blocks {
		destroyed[i] = g.blocks[i].Destroyed
	}

	return Snapshot{
		Tick:      g.ticks,
		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		BallDX:    g.ball.DX,
		BallDY:    g.ball.DY,
		PaddleX:   g.paddle.X,
		Destroyed: destroyed,
	}
}

// ApplySnapshot restores game state from a snapshot. Block flags are only
// restored when the snapshot covers the same grid, and a destroyed block
// stays destroyed.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.ticks = snap.Tick
	g.ball.X = snap.BallX
	g.ball.Y = snap.BallY
	g.ball.DX = snap.BallDX
	g.ball.DY = snap.BallDY
	g.paddle.X = snap.PaddleX

	if len(snap.Destroyed) == len(g.blocks) {
		for i := range g.blocks {
			if snap.Destroyed[i] {
				g.blocks[i].Destroyed = true
			}
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}
	for _, d := range snap.Destroyed {
		h *= 31
		if d {
			h++
		}
	}
	return h
}
