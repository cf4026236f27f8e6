// Package breakout implements a single-screen breakout simulation: ball,
// paddle and brick physics, scoring, and the running/ended state machine.
// The simulation has no failure modes and never draws anything itself;
// renderers consume Snapshot values.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Banner texts shown while the game is ended.
const (
	WinMessage  = "YOU WIN! Press SPACE to restart"
	LossMessage = "GAME OVER Press SPACE to restart"
)

// RunState is the top-level state machine state.
type RunState int

const (
	Running RunState = iota
	Ended
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// Input is the per-tick input sample: two held directional flags and a
// one-shot restart request.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Restart   bool
}

// Game owns all mutable simulation state.
type Game struct {
	grid   Grid
	ball   Ball
	paddle Paddle

	score  int
	lives  int
	state  RunState
	banner string

	tickCount uint64

	// Screen size for Render; the simulation itself never reads it.
	runtime core.RuntimeConfig
}

// New creates a game in its session-start state.
func New() *Game {
	g := &Game{runtime: core.DefaultConfig()}
	g.Restart()
	return g
}

// Restart resets ball, paddle, bricks, score, lives and banner to their
// session-start values. It is safe to call in any state.
func (g *Game) Restart() {
	g.grid.Layout()
	g.grid.Revive()
	g.ball = spawnBall()
	g.paddle = centeredPaddle()
	g.score = 0
	g.lives = StartingLives
	g.state = Running
	g.banner = ""
	g.tickCount = 0
}

// Tick advances the simulation by one logical step.
// A restart request is honored only while the game is ended.
func (g *Game) Tick(in Input) {
	if in.Restart && g.state == Ended {
		g.Restart()
	}

	g.tickCount++

	g.score += g.grid.CollideBall(&g.ball)

	if g.score == g.grid.Total() {
		g.end(WinMessage)
	}

	if g.state != Running {
		return
	}

	g.bounceWalls()
	g.movePaddle(in)
	g.ball.Move()
}

// bounceWalls resolves side walls, ceiling, paddle and floor for the
// ball's next position.
func (g *Game) bounceWalls() {
	ball := &g.ball

	if ball.NextX() > BoardWidth-BallRadius || ball.NextX() < BallRadius {
		ball.BounceX()
		ball.SpeedUp()
	}

	switch {
	case ball.NextY() < BallRadius:
		ball.BounceY()
		ball.SpeedUp()
	case ball.NextY() > BoardHeight-BallRadius-PaddleBottomGap:
		if g.paddle.Spans(ball.X) {
			g.paddle.Reflect(ball)
		} else if ball.NextY() > BoardHeight-BallRadius {
			g.miss()
		}
	}
}

// miss costs a life and either ends the game or respawns the ball.
func (g *Game) miss() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.end(LossMessage)
		return
	}
	g.ball = spawnBall()
	g.paddle = centeredPaddle()
}

// movePaddle applies held input. Right wins when both are held.
func (g *Game) movePaddle(in Input) {
	if in.MoveRight && g.paddle.MoveRight() {
		return
	}
	if in.MoveLeft {
		g.paddle.MoveLeft()
	}
}

func (g *Game) end(banner string) {
	g.state = Ended
	g.banner = banner
}

// Score returns the number of destroyed bricks.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// RunState returns the state machine state.
func (g *Game) RunState() RunState { return g.state }

// Banner returns the end-of-game message, empty while running.
func (g *Game) Banner() string { return g.banner }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle { return g.paddle }

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset records the screen size and restarts the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.Restart()
}

// Step adapts a platform input frame to Tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Tick(Input{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Restart:   in.Has(core.ActionRestart),
	})
	return core.StepResult{State: g.State()}
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	DrawSnapshot(g.Snapshot(), dst)
}

// State returns the current summary state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == Ended,
		Won:      g.state == Ended && g.banner == WinMessage,
	}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
