package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Board geometry, in board units. The brick field is centered with equal
// 35-unit margins on both sides.
const (
	BoardWidth  = 860.0
	BoardHeight = 600.0
)

// Brick grid layout.
const (
	Columns      = 10
	Rows         = 5
	BrickWidth   = 70.0
	BrickHeight  = 20.0
	BrickPadding = 10.0
	BrickOffsetT = 50.0 // top offset of the first row
	BrickOffsetL = 35.0 // left offset of the first column
)

// Paddle parameters.
const (
	PaddleWidth      = 120.0
	PaddleHeight     = 15.0
	PaddleBottomGap  = 10.0 // gap between paddle and the bottom edge
	PaddleStep       = 7.0  // units per tick
	PaddleDeflection = 5.0  // dx after a paddle hit at the very edge
)

// Ball parameters.
const (
	BallRadius          = 8.0
	SpawnOffsetBottom   = 50.0
	SpawnDX             = 4.0
	SpawnDY             = -4.0
	SpeedIncreaseFactor = 1.1
	MaxSpeed            = 16.0
)

// StartingLives is the number of lives at session start.
const StartingLives = 3

// Ball is the ball state in board coordinates.
type Ball struct {
	X, Y   float64 // Center
	DX, DY float64 // Velocity per tick
}

// spawnBall returns the ball at its fixed reset position and velocity.
func spawnBall() Ball {
	return Ball{
		X:  BoardWidth / 2,
		Y:  BoardHeight - SpawnOffsetBottom,
		DX: SpawnDX,
		DY: SpawnDY,
	}
}

// NextX returns where the ball would be horizontally after one tick.
func (b *Ball) NextX() float64 {
	return b.X + b.DX
}

// NextY returns where the ball would be vertically after one tick.
func (b *Ball) NextY() float64 {
	return b.Y + b.DY
}

// Move updates ball position by velocity.
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

// SpeedUp scales both velocity components and clamps them to MaxSpeed.
func (b *Ball) SpeedUp() {
	b.DX = core.ClampF(b.DX*SpeedIncreaseFactor, -MaxSpeed, MaxSpeed)
	b.DY = core.ClampF(b.DY*SpeedIncreaseFactor, -MaxSpeed, MaxSpeed)
}

// Paddle is the player's paddle. Its vertical position is fixed.
type Paddle struct {
	X float64 // Left edge
}

// PaddleY is the paddle's fixed top edge.
const PaddleY = BoardHeight - PaddleHeight - PaddleBottomGap

// centeredPaddle returns a paddle in the middle of the board.
func centeredPaddle() Paddle {
	return Paddle{X: (BoardWidth - PaddleWidth) / 2}
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + PaddleWidth/2
}

// Spans reports whether x lies strictly between the paddle's edges.
func (p *Paddle) Spans(x float64) bool {
	return x > p.X && x < p.X+PaddleWidth
}

// HitOffset returns where x hits the paddle, normalized to [-1, 1]
// from the left edge to the right edge.
func (p *Paddle) HitOffset(x float64) float64 {
	return (x - p.CenterX()) / (PaddleWidth / 2)
}

// Reflect sends the ball back up with an angle shaped by the hit point.
// Paddle hits never change the ball's speed scale.
func (p *Paddle) Reflect(ball *Ball) {
	ball.DX = PaddleDeflection * p.HitOffset(ball.X)
	ball.DY = -math.Abs(ball.DY)
}

// MoveRight advances the paddle one step if it stays on the board.
func (p *Paddle) MoveRight() bool {
	if p.X+PaddleStep > BoardWidth-PaddleWidth {
		return false
	}
	p.X += PaddleStep
	return true
}

// MoveLeft retreats the paddle one step if it stays on the board.
func (p *Paddle) MoveLeft() bool {
	if p.X-PaddleStep < 0 {
		return false
	}
	p.X -= PaddleStep
	return true
}

// BrickStatus tells whether a brick can still be hit.
type BrickStatus int

const (
	BrickAlive BrickStatus = iota
	BrickDestroyed
)

// Brick is a single brick. Destruction only flips Status; bricks are never
// removed so the grid keeps its shape.
type Brick struct {
	X, Y   float64 // Top-left corner, assigned by Grid.Layout
	Status BrickStatus
}

// Alive reports whether the brick is still in play.
func (b *Brick) Alive() bool {
	return b.Status == BrickAlive
}

// Bounds returns the brick's rectangle.
func (b *Brick) Bounds() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: BrickWidth, H: BrickHeight}
}

// Grid holds the bricks in column-major order: Bricks[column][row].
type Grid struct {
	Bricks [Columns][Rows]Brick
}

// newGrid returns a laid-out grid with every brick alive.
func newGrid() Grid {
	var g Grid
	g.Layout()
	return g
}

// Layout recomputes every brick position from its grid indices.
func (g *Grid) Layout() {
	for c := range Columns {
		for r := range Rows {
			g.Bricks[c][r].X = float64(c)*(BrickWidth+BrickPadding) + BrickOffsetL
			g.Bricks[c][r].Y = float64(r)*(BrickHeight+BrickPadding) + BrickOffsetT
		}
	}
}

// At returns the brick at column c, row r.
func (g *Grid) At(c, r int) *Brick {
	return &g.Bricks[c][r]
}

// Revive sets every brick back to alive.
func (g *Grid) Revive() {
	for c := range Columns {
		for r := range Rows {
			g.Bricks[c][r].Status = BrickAlive
		}
	}
}

// CountAlive returns the number of bricks still in play.
func (g *Grid) CountAlive() int {
	n := 0
	for c := range Columns {
		for r := range Rows {
			if g.Bricks[c][r].Alive() {
				n++
			}
		}
	}
	return n
}

// Total returns the number of bricks in the grid.
func (g *Grid) Total() int {
	return Columns * Rows
}

// CollideBall destroys every alive brick whose rectangle strictly contains
// the ball center, flipping dy once per hit. It returns the number of bricks
// destroyed. Iteration is column-major and does not stop at the first hit.
func (g *Grid) CollideBall(ball *Ball) int {
	hits := 0
	for c := range Columns {
		for r := range Rows {
			b := &g.Bricks[c][r]
			if !b.Alive() || !b.Bounds().ContainsStrict(ball.X, ball.Y) {
				continue
			}
			ball.BounceY()
			b.Status = BrickDestroyed
			hits++
		}
	}
	return hits
}
