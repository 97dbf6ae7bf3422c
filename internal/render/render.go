// Package render is the terminal presentation adapter: it draws a
// simulation snapshot onto the half-block canvas and overlays the HUD.
// It performs no simulation work and keeps no entity state between frames.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/driftblast/driftblast/internal/draw"
	"github.com/driftblast/driftblast/internal/object"
	"github.com/driftblast/driftblast/internal/sim"
)

// Renderer paints frames for one terminal.
type Renderer struct {
	canvas *draw.Canvas
	out    *draw.ChunkWriter
}

// New creates a renderer for a terminal of the given size.
func New(w io.Writer, termWidth, termHeight int) *Renderer {
	return &Renderer{
		canvas: draw.NewCanvas(termWidth, termHeight, object.PlayfieldWidth, object.PlayfieldHeight),
		out:    draw.NewChunkWriter(w),
	}
}

// Resize adapts the renderer to new terminal dimensions. The virtual
// playfield is unaffected.
func (r *Renderer) Resize(termWidth, termHeight int) {
	r.canvas.Resize(termWidth, termHeight)
}

// Frame draws one simulation snapshot: obstacle outlines, the craft glyph,
// projectile discs, and the text overlay.
func (r *Renderer) Frame(snap sim.Snapshot) error {
	draw.ClearScreen(r.out)
	r.canvas.Clear()

	for _, o := range snap.Obstacles {
		r.drawObstacle(o)
	}
	for _, p := range snap.Projectiles {
		r.canvas.FillCircle(p.X, p.Y, object.ProjectileRadius)
	}
	r.drawCraft(snap)

	r.canvas.Render(r.out)
	r.drawHUD(snap)
	if snap.Over {
		r.drawGameOver(snap)
	}

	return r.out.Flush()
}

func (r *Renderer) drawObstacle(o sim.ObstacleShape) {
	points := r.canvas.BorrowPoints(len(o.Outline))
	for i, off := range o.Outline {
		points[i] = draw.Point{X: o.Pos.X + off.X, Y: o.Pos.Y + off.Y}
	}
	r.canvas.DrawPolygon(points, false)
}

// drawCraft renders the craft as a filled triangle rotated by its angle,
// with an exhaust mark behind it while thrusting.
func (r *Renderer) drawCraft(snap sim.Snapshot) {
	pos := snap.CraftPos
	size := snap.CraftRadius

	nose := craftDir(snap.CraftAngle)
	left := craftDir(snap.CraftAngle + 2.5)
	right := craftDir(snap.CraftAngle - 2.5)

	triangle := r.canvas.BorrowPoints(3)
	triangle[0] = draw.Point{X: pos.X + nose.x*size*1.4, Y: pos.Y + nose.y*size*1.4}
	triangle[1] = draw.Point{X: pos.X + left.x*size, Y: pos.Y + left.y*size}
	triangle[2] = draw.Point{X: pos.X + right.x*size, Y: pos.Y + right.y*size}
	r.canvas.DrawPolygon(triangle, true)

	if snap.Thrusting {
		back := craftDir(snap.CraftAngle + math.Pi)
		r.canvas.DrawLine(
			draw.Point{X: pos.X + back.x*size, Y: pos.Y + back.y*size},
			draw.Point{X: pos.X + back.x*size*1.8, Y: pos.Y + back.y*size*1.8},
		)
	}
}

type unitVec struct{ x, y float64 }

// craftDir is the craft facing convention: angle 0 points up on screen
// and grows clockwise (screen Y is down).
func craftDir(angle float64) unitVec {
	return unitVec{x: math.Sin(angle), y: -math.Cos(angle)}
}

func (r *Renderer) drawHUD(snap sim.Snapshot) {
	termWidth := r.canvas.TerminalWidth()

	r.out.WriteAt(2, 1, fmt.Sprintf("Score: %d", snap.Score))

	levelText := fmt.Sprintf("Level: %d", snap.Level)
	r.out.WriteAt(termWidth/2-len(levelText)/2, 1, levelText)

	livesText := fmt.Sprintf("Lives: %d", snap.Lives)
	r.out.WriteAt(termWidth-len(livesText)-1, 1, livesText)
}

func (r *Renderer) drawGameOver(snap sim.Snapshot) {
	centerX := r.canvas.TerminalWidth() / 2
	centerY := r.canvas.TerminalHeight() / 2

	title := "G A M E   O V E R"
	r.out.WriteAt(centerX-len(title)/2, centerY-2, title)

	score := fmt.Sprintf("Final Score: %d", snap.Score)
	r.out.WriteAt(centerX-len(score)/2, centerY, score)

	prompt := "Press ENTER for a new game, Q to quit"
	r.out.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}

// Title draws the title screen.
func (r *Renderer) Title() error {
	draw.ClearScreen(r.out)

	centerX := r.canvas.TerminalWidth() / 2
	centerY := r.canvas.TerminalHeight() / 2

	title := "D R I F T B L A S T"
	r.out.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press ENTER to start"
	r.out.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "A/D or arrows rotate, W or Up thrusts, SPACE fires, Q quits"
	r.out.WriteAt(centerX-len(controls)/2, centerY+4, controls)

	return r.out.Flush()
}
