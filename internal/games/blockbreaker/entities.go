// Package blockbreaker implements the block breaker simulation: a ball, a
// paddle pinned to the bottom of the surface, and a fixed grid of blocks.
// The package is host-agnostic; drawing goes through Surface and frame
// scheduling belongs to the caller.
package blockbreaker

import "math"

// Surface is the abstract 2D drawing API the loop renders into.
// Coordinates are logical surface pixels with the origin at the top-left.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillCircle(x, y, r float64)
	FillRect(x, y, w, h float64)
}

// Ball represents the ball state. Velocity is in pixels per tick.
type Ball struct {
	X, Y   float64 // Center
	Radius float64
	DX, DY float64
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Move advances the ball position by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle represents the player's paddle. Only X moves; the paddle is drawn
// flush with the bottom edge of the surface.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// CenterX returns the paddle's horizontal center.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Spans reports whether x lies strictly between the paddle's edges.
func (p Paddle) Spans(x float64) bool {
	return x > p.X && x < p.X+p.Width
}

// Block is a single destructible block. Destroyed flips to true at most once.
type Block struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Destroyed     bool
}

// ContainsStrict reports whether (x, y) lies strictly inside the block.
// Points on an edge do not count as a hit.
func (b Block) ContainsStrict(x, y float64) bool {
	return x > b.X && x < b.X+b.Width && y > b.Y && y < b.Y+b.Height
}
