package blockbreaker

import (
	"math/rand/v2"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

// Outcome is the result of a single tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota // Host should request another frame
	OutcomeLost                    // Ball passed the paddle
	OutcomeCleared                 // Every block is destroyed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeLost:
		return "lost"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o == OutcomeLost || o == OutcomeCleared
}

// Game owns the ball, paddle and block state and runs the per-frame
// simulation. A Game is not safe for concurrent use; the host serializes
// frame and pointer callbacks.
type Game struct {
	cfg    config.BlockBreakerConfig
	width  float64
	height float64

	ball   Ball
	paddle Paddle
	blocks []Block

	blocksReady bool
	ticks       int

	maxAngle float64 // radians
}

// New creates a game with the ball at a random position derived from seed.
func New(cfg config.BlockBreakerConfig, seed int64) *Game {
	g := &Game{
		cfg:      cfg,
		width:    cfg.Surface.Width,
		height:   cfg.Surface.Height,
		maxAngle: degToRad(cfg.Physics.MaxBounceAngle),
	}
	g.initBlocks()

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)) //#nosec G115 -- seed bits only
	r := cfg.Ball.Radius
	g.ball = Ball{
		X:      rng.Float64()*(g.width-3*r) + r,
		Y:      rng.Float64()*(g.height-3*r) + r,
		Radius: r,
		DX:     cfg.Ball.SpeedX,
		DY:     cfg.Ball.SpeedY,
	}

	g.paddle = Paddle{
		X:      (g.width - cfg.Paddle.Width) / 2,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	}
	return g
}

// initBlocks populates the grid once. Later calls are no-ops.
func (g *Game) initBlocks() {
	if g.blocksReady {
		return
	}
	g.blocks = BuildBlocks(g.cfg.Blocks)
	g.blocksReady = true
}

// Tick performs one frame: draw, resolve collisions, advance the ball.
// It returns OutcomeContinue when the host should schedule another frame.
// On a terminal outcome the ball is left where it was; the caller must not
// tick again.
func (g *Game) Tick(dst Surface) Outcome {
	g.ticks++
	g.draw(dst)

	ball := &g.ball
	_, flippedY := ReflectWalls(ball, g.width)

	// The bottom is checked only when the top wall did not fire.
	if !flippedY && CrossesBottom(ball, g.height) {
		if !g.paddle.Spans(ball.X) {
			return OutcomeLost
		}
		BounceOffPaddle(ball, &g.paddle, g.maxAngle, g.cfg.Physics.SpeedMultiplier)
	}

	HitBlock(ball, g.blocks)
	if g.Remaining() == 0 {
		return OutcomeCleared
	}

	ball.Move()
	return OutcomeContinue
}

// draw clears the surface and renders every visible entity.
func (g *Game) draw(dst Surface) {
	dst.ClearRect(0, 0, g.width, g.height)
	dst.FillCircle(g.ball.X, g.ball.Y, g.ball.Radius)
	dst.FillRect(g.paddle.X, g.height-g.paddle.Height, g.paddle.Width, g.paddle.Height)
	for i := range g.blocks {
		b := &g.blocks[i]
		if b.Destroyed {
			continue
		}
		dst.FillRect(b.X, b.Y, b.Width, b.Height)
	}
}

// MovePointer centers the paddle on a pointer x relative to the surface's
// left edge. Positions outside the surface leave the paddle where it is.
func (g *Game) MovePointer(relativeX float64) {
	if relativeX > 0 && relativeX < g.width {
		g.paddle.X = relativeX - g.paddle.Width/2
	}
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Blocks returns a copy of all blocks, destroyed ones included.
func (g *Game) Blocks() []Block {
	out := make([]Block, len(g.blocks))
	copy(out, g.blocks)
	return out
}

// Remaining returns the number of blocks not yet destroyed.
func (g *Game) Remaining() int {
	n := 0
	for i := range g.blocks {
		if !g.blocks[i].Destroyed {
			n++
		}
	}
	return n
}

// Destroyed returns the number of destroyed blocks.
func (g *Game) Destroyed() int {
	return len(g.blocks) - g.Remaining()
}

// Ticks returns the number of frames run so far.
func (g *Game) Ticks() int {
	return g.ticks
}

// Size returns the logical surface dimensions.
func (g *Game) Size() (width, height float64) {
	return g.width, g.height
}
