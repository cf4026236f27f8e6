package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// Minimum screen size for drawing the board.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Brick colors by row, top to bottom.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
}

// viewport maps board coordinates into the bordered play area of a screen.
type viewport struct {
	left, top     int // first inner cell
	width, height int // inner size in cells
}

func newViewport(dst *core.Screen) viewport {
	// Row 0 is the HUD, the border takes one cell on every side.
	return viewport{
		left:   1,
		top:    2,
		width:  dst.Width() - 2,
		height: dst.Height() - 3,
	}
}

func (v viewport) cellX(x float64) int {
	return v.left + int(math.Floor(x*float64(v.width)/BoardWidth))
}

func (v viewport) cellY(y float64) int {
	return v.top + int(math.Floor(y*float64(v.height)/BoardHeight))
}

// span maps the board interval [from, to) onto at least one cell.
func (v viewport) span(from, to float64, toCell func(float64) int) (int, int) {
	start := toCell(from)
	end := toCell(math.Nextafter(to, from))
	if end < start {
		end = start
	}
	return start, end
}

// DrawSnapshot renders a snapshot into dst. It reads nothing but the snapshot.
func DrawSnapshot(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	vp := newViewport(dst)

	drawHUD(snap, dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)
	drawBricks(snap, vp, dst)
	drawPaddle(snap, vp, dst)
	dst.SetColored(vp.cellX(snap.Ball.X), vp.cellY(snap.Ball.Y), BallChar, core.ColorBrightYellow)

	if !snap.Running {
		drawBanner(snap, dst)
	}
}

func drawHUD(snap Snapshot, dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)
	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorWhite)
}

func drawBricks(snap Snapshot, vp viewport, dst *core.Screen) {
	for i, b := range snap.Bricks {
		if !b.Alive {
			continue
		}
		color := rowColors[(i%Rows)%len(rowColors)]
		x0, x1 := vp.span(b.X, b.X+b.Width, vp.cellX)
		y0, y1 := vp.span(b.Y, b.Y+b.Height, vp.cellY)
		dst.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), BrickChar, color)
	}
}

func drawPaddle(snap Snapshot, vp viewport, dst *core.Screen) {
	p := snap.Paddle
	x0, x1 := vp.span(p.X, p.X+p.Width, vp.cellX)
	y := vp.cellY(p.Y)
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBrightBlue)
	}
}

// drawBanner draws the end-of-game message in a centered box.
func drawBanner(snap Snapshot, dst *core.Screen) {
	subtitle := fmt.Sprintf("Final score: %d", snap.Score)

	boxW := core.Max(len(snap.Banner), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(boxW-len(snap.Banner))/2, box.Y+1, snap.Banner, core.ColorBrightGreen)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
