package blockbreaker

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

var (
	// ErrFramesClosed is returned by Run when the frame source stops before
	// the session ends.
	ErrFramesClosed = errors.New("blockbreaker: frame source closed")

	// ErrFrameLimit is returned by RunSimulated when the frame budget runs
	// out before the session ends.
	ErrFrameLimit = errors.New("blockbreaker: frame limit reached")
)

// Pilot produces pointer positions for headless play.
type Pilot interface {
	// Aim returns a pointer x relative to the surface's left edge.
	// ok=false means no pointer movement this frame.
	Aim(g *Game) (x float64, ok bool)
}

// Run drives a session from a stream of frame timestamps, such as a
// time.Ticker channel. It starts the session, then runs one frame per value
// received until the session ends, ctx is cancelled, or frames is closed.
func Run(ctx context.Context, sess *Session, dst Surface, frames <-chan time.Time, pilot Pilot) (TickResult, error) {
	next := func() (time.Time, error) {
		select {
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		case ts, ok := <-frames:
			if !ok {
				return time.Time{}, ErrFramesClosed
			}
			return ts, nil
		}
	}
	return drive(sess, dst, next, pilot)
}

// RunSimulated drives a session on a simulated clock, one clock step per
// frame, for at most limit frames after the first. The session should be
// created with WithClock(clock.Now) so clear times use simulated seconds.
func RunSimulated(ctx context.Context, sess *Session, dst Surface, clock *SimClock, limit int, pilot Pilot) (TickResult, error) {
	n := 0
	next := func() (time.Time, error) {
		if err := ctx.Err(); err != nil {
			return time.Time{}, err
		}
		if n >= limit {
			return time.Time{}, ErrFrameLimit
		}
		n++
		return clock.Advance(), nil
	}
	return drive(sess, dst, next, pilot)
}

// drive is the shared frame loop. The one-second counter advances each time
// a frame timestamp crosses a whole second after the first frame.
func drive(sess *Session, dst Surface, next func() (time.Time, error), pilot Pilot) (TickResult, error) {
	if dst == nil {
		dst = Discard
	}

	steer := func() {
		if pilot == nil {
			return
		}
		if x, ok := pilot.Aim(sess.Game()); ok {
			sess.MovePointer(x)
		}
	}

	var first time.Time
	counted := 0

	steer()
	res, _ := sess.Start(dst)
	for !res.Phase.Ended() {
		ts, err := next()
		if err != nil {
			return res, err
		}
		if first.IsZero() {
			first = ts
		}
		for counted < int(ts.Sub(first)/time.Second) {
			sess.AdvanceCounter()
			counted++
		}
		steer()
		res = sess.Frame(dst)
	}
	return res, nil
}

// Autopilot keeps the paddle under the ball, shifting its aim each time the
// ball turns downward so bounces spread across the grid.
type Autopilot struct {
	rng       *rand.Rand
	maxOffset float64
	offset    float64
	falling   bool
}

// NewAutopilot creates an autopilot. maxOffset is the largest distance kept
// between the paddle center and the ball; values at or beyond half the
// paddle width will miss.
func NewAutopilot(seed int64, maxOffset float64) *Autopilot {
	return &Autopilot{
		rng:       rand.New(rand.NewPCG(uint64(seed), 0x2545f4914f6cdd1d)), //#nosec G115 -- seed bits only
		maxOffset: maxOffset,
	}
}

// Aim implements Pilot.
func (a *Autopilot) Aim(g *Game) (float64, bool) {
	ball := g.Ball()
	falling := ball.DY > 0
	if falling && !a.falling {
		a.offset = (a.rng.Float64()*2 - 1) * a.maxOffset
	}
	a.falling = falling

	w, _ := g.Size()
	x := ball.X - a.offset
	// Keep the pointer strictly inside the surface so the input is accepted.
	if x < 1 {
		x = 1
	}
	if x > w-1 {
		x = w - 1
	}
	return x, true
}

// SimClock is a manually advanced clock for deterministic sessions.
// It is not safe for concurrent use.
type SimClock struct {
	now  time.Time
	step time.Duration
}

// NewSimClock creates a clock at start that moves by step on each Advance.
func NewSimClock(start time.Time, step time.Duration) *SimClock {
	return &SimClock{now: start, step: step}
}

// Now returns the current simulated time.
func (c *SimClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward one step and returns the new time.
func (c *SimClock) Advance() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

type discardSurface struct{}

// ClearRect implements Surface.
func (discardSurface) ClearRect(_, _, _, _ float64) {}

// FillCircle implements Surface.
func (discardSurface) FillCircle(_, _, _ float64) {}

// FillRect implements Surface.
func (discardSurface) FillRect(_, _, _, _ float64) {}

// Discard is a Surface that draws nothing.
var Discard Surface = discardSurface{}
