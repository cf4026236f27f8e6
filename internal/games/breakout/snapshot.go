package breakout

import "math"

// BallView is the renderable ball.
type BallView struct {
	X, Y   float64
	Radius float64
}

// PaddleView is the renderable paddle.
type PaddleView struct {
	X, Y          float64
	Width, Height float64
}

// BrickView is one renderable brick.
type BrickView struct {
	X, Y          float64
	Width, Height float64
	Alive         bool
}

// Snapshot is the read-only frame handed to renderers once per tick.
// Bricks are listed column-major, matching the grid iteration order.
type Snapshot struct {
	Tick    uint64
	Ball    BallView
	BallDX  float64
	BallDY  float64
	Paddle  PaddleView
	Bricks  []BrickView
	Score   int
	Lives   int
	Running bool
	Banner  string // Empty unless the game has ended
}

// Snapshot returns the current frame.
func (g *Game) Snapshot() Snapshot {
	g.grid.Layout()

	bricks := make([]BrickView, 0, Columns*Rows)
	for c := range Columns {
		for r := range Rows {
			b := g.grid.At(c, r)
			bricks = append(bricks, BrickView{
				X:      b.X,
				Y:      b.Y,
				Width:  BrickWidth,
				Height: BrickHeight,
				Alive:  b.Alive(),
			})
		}
	}

	return Snapshot{
		Tick:   g.tickCount,
		Ball:   BallView{X: g.ball.X, Y: g.ball.Y, Radius: BallRadius},
		BallDX: g.ball.DX,
		BallDY: g.ball.DY,
		Paddle: PaddleView{
			X:      g.paddle.X,
			Y:      PaddleY,
			Width:  PaddleWidth,
			Height: PaddleHeight,
		},
		Bricks:  bricks,
		Score:   g.score,
		Lives:   g.lives,
		Running: g.state == Running,
		Banner:  g.banner,
	}
}

// ApplySnapshot restores game state from a snapshot.
// Brick positions are recomputed from the grid, only their status is read.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = snap.Tick
	g.ball = Ball{X: snap.Ball.X, Y: snap.Ball.Y, DX: snap.BallDX, DY: snap.BallDY}
	g.paddle = Paddle{X: snap.Paddle.X}
	g.score = snap.Score
	g.lives = snap.Lives
	g.banner = snap.Banner
	g.state = Ended
	if snap.Running {
		g.state = Running
	}

	g.grid = newGrid()
	if len(snap.Bricks) == Columns*Rows {
		for i, bv := range snap.Bricks {
			if !bv.Alive {
				g.grid.At(i/Rows, i%Rows).Status = BrickDestroyed
			}
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) {
		h = h*31 + v
	}

	mix(math.Float64bits(snap.Ball.X))
	mix(math.Float64bits(snap.Ball.Y))
	mix(math.Float64bits(snap.BallDX))
	mix(math.Float64bits(snap.BallDY))
	mix(math.Float64bits(snap.Paddle.X))
	mix(uint64(snap.Score)) //#nosec G115 -- hash computation
	mix(uint64(snap.Lives)) //#nosec G115 -- hash computation
	if snap.Running {
		mix(1)
	}
	for _, b := range snap.Bricks {
		if b.Alive {
			mix(1)
		} else {
			mix(0)
		}
	}
	for _, r := range snap.Banner {
		mix(uint64(r)) //#nosec G115 -- hash computation
	}

	return h
}
