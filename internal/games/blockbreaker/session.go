package blockbreaker

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

// Phase is the session state machine: NotStarted -> Running -> Won | Lost.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseWon
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ended reports whether the phase is terminal.
func (p Phase) Ended() bool {
	return p == PhaseWon || p == PhaseLost
}

// LoseMessage is shown when the ball misses the paddle.
const LoseMessage = "GAME OVER"

// ClearMessage returns the notification shown when every block is gone.
func ClearMessage(seconds int) string {
	return fmt.Sprintf("ゲームクリア！　おめでとうございます😁\nクリアにかかった時間：%d秒", seconds)
}

// TickResult describes the session after a frame.
type TickResult struct {
	Outcome Outcome
	Phase   Phase

	// Notification is the blocking message for the host to show.
	// Empty unless the session just ended.
	Notification string

	// Seconds is the clear time, set only when Phase is PhaseWon.
	Seconds int
}

// Session controls one play-through: start once, run frames until the game
// ends, then wait to be replaced by Reload.
type Session struct {
	cfg  config.BlockBreakerConfig
	game *Game
	now  func() time.Time

	phase     Phase
	startedAt time.Time
	endedAt   time.Time
	counter   int
	last      TickResult
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock replaces time.Now, e.g. with a simulated clock.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates a session around a fresh game.
func NewSession(cfg config.BlockBreakerConfig, seed int64, opts ...SessionOption) *Session {
	s := &Session{
		cfg:  cfg,
		game: New(cfg, seed),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.last = TickResult{Outcome: OutcomeContinue, Phase: PhaseNotStarted}
	return s
}

// Start begins the session and runs the first frame. Only the first call has
// any effect; later calls return false.
func (s *Session) Start(dst Surface) (TickResult, bool) {
	if s.phase != PhaseNotStarted {
		return s.last, false
	}
	s.startedAt = s.now()
	s.phase = PhaseRunning
	return s.Frame(dst), true
}

// Frame runs one tick while the session is running. Outside the running
// phase it returns the last result without touching the game.
func (s *Session) Frame(dst Surface) TickResult {
	if s.phase != PhaseRunning {
		return s.last
	}

	outcome := s.game.Tick(dst)
	res := TickResult{Outcome: outcome, Phase: PhaseRunning}

	switch outcome {
	case OutcomeLost:
		s.end(PhaseLost)
		res.Phase = PhaseLost
		res.Notification = LoseMessage
	case OutcomeCleared:
		s.end(PhaseWon)
		res.Phase = PhaseWon
		res.Seconds = s.ElapsedSeconds()
		res.Notification = ClearMessage(res.Seconds)
	}

	s.last = res
	return res
}

func (s *Session) end(p Phase) {
	s.phase = p
	s.endedAt = s.now()
}

// MovePointer forwards pointer input to the game in any phase, so the
// paddle can be positioned before the start action.
func (s *Session) MovePointer(relativeX float64) {
	s.game.MovePointer(relativeX)
}

// AdvanceCounter is called by the host once per second. The counter only
// moves while the session is running. Reports whether it moved.
func (s *Session) AdvanceCounter() bool {
	if !s.Running() {
		return false
	}
	s.counter++
	return true
}

// Counter returns the displayed elapsed seconds.
func (s *Session) Counter() int {
	return s.counter
}

// ElapsedSeconds returns whole seconds since start, measured from the start
// timestamp (until the end timestamp once ended). Zero before start.
func (s *Session) ElapsedSeconds() int {
	if s.phase == PhaseNotStarted {
		return 0
	}
	end := s.endedAt
	if !s.phase.Ended() {
		end = s.now()
	}
	d := end.Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// Running reports whether frames should be scheduled.
func (s *Session) Running() bool {
	return s.phase == PhaseRunning
}

// Started reports whether Start has been called successfully.
func (s *Session) Started() bool {
	return s.phase != PhaseNotStarted
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Last returns the most recent frame result.
func (s *Session) Last() TickResult {
	return s.last
}

// Game returns the underlying game for rendering before start and for
// inspection.
func (s *Session) Game() *Game {
	return s.game
}

// Render draws the current state without advancing it.
func (s *Session) Render(dst Surface) {
	s.game.draw(dst)
}

// Reload discards all state and returns a brand-new session with the same
// configuration and clock.
func (s *Session) Reload(seed int64) *Session {
	return NewSession(s.cfg, seed, WithClock(s.now))
}
