package blockbreaker

import "math"

// ReflectWalls applies the side and top wall rules using the projected next
// position. It reports whether each axis was flipped.
// The bottom edge is not a wall; see CrossesBottom.
func ReflectWalls(ball *Ball, width float64) (flippedX, flippedY bool) {
	nextX := ball.X + ball.DX
	if nextX > width-ball.Radius || nextX < ball.Radius {
		ball.BounceX()
		flippedX = true
	}

	if ball.Y+ball.DY < ball.Radius {
		ball.BounceY()
		flippedY = true
	}
	return flippedX, flippedY
}

// CrossesBottom reports whether the next step would take the ball past the
// bottom boundary.
func CrossesBottom(ball *Ball, height float64) bool {
	return ball.Y+ball.DY > height-ball.Radius
}

// PaddleOffset returns where x falls on the paddle relative to its center,
// normalized so the edges map to -1 and +1.
func PaddleOffset(p *Paddle, x float64) float64 {
	half := p.Width / 2
	if half <= 0 {
		return 0
	}
	return (x - p.CenterX()) / half
}

// ReflectionAngle maps a normalized paddle offset to an angle from vertical.
func ReflectionAngle(offset, maxAngle float64) float64 {
	return offset * maxAngle
}

// BounceOffPaddle redirects the ball upward at an angle determined by where
// it meets the paddle. The speed is scaled by multiplier; with 1 the
// magnitude is unchanged.
func BounceOffPaddle(ball *Ball, p *Paddle, maxAngle, multiplier float64) {
	angle := ReflectionAngle(PaddleOffset(p, ball.X), maxAngle)
	speed := ball.Speed() * multiplier
	ball.DX = math.Sin(angle) * speed
	ball.DY = -math.Cos(angle) * speed
}

// HitBlock destroys the first live block containing the ball center and
// reverses vertical velocity. Returns the block index or -1.
func HitBlock(ball *Ball, blocks []Block) int {
	for i := range blocks {
		b := &blocks[i]
		if b.Destroyed {
			continue
		}
		if b.ContainsStrict(ball.X, ball.Y) {
			b.Destroyed = true
			ball.BounceY()
			return i
		}
	}
	return -1
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
