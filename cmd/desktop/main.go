// Desktop front end built on ebiten. The window is resizable; ebiten
// scales the fixed 800x600 playfield to fit, so the simulation never sees
// real pixel dimensions.
package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/driftblast/driftblast/internal/input"
	"github.com/driftblast/driftblast/internal/object"
	"github.com/driftblast/driftblast/internal/sim"
)

type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenOver
)

// Game adapts the simulation to ebiten's Update/Draw/Layout cycle: one
// ebiten update is one simulation tick.
type Game struct {
	state   *sim.State
	current screen
}

// readInput maps held keys to the four logical controls.
func readInput() input.Snapshot {
	return input.Snapshot{
		Left:   ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Thrust: ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Fire:   ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	switch g.current {
	case screenTitle, screenOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.state = sim.NewState()
			g.current = screenPlaying
		}
	case screenPlaying:
		g.state.Step(readInput())
		if g.state.Over {
			g.current = screenOver
		}
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{10, 10, 18, 255})

	if g.current == screenTitle {
		text := "DRIFTBLAST\n\nPress ENTER to start\n\nArrows/WASD steer, SPACE fires"
		ebitenutil.DebugPrintAt(dst, text, object.PlayfieldWidth/2-100, object.PlayfieldHeight/2-30)
		return
	}

	snap := g.state.Snapshot()

	white := color.RGBA{230, 230, 240, 255}
	for _, o := range snap.Obstacles {
		drawOutline(dst, o, white)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(object.ProjectileRadius), white, true)
	}
	drawCraft(dst, snap, white)

	hud := fmt.Sprintf("Score: %d   Lives: %d   Level: %d", snap.Score, snap.Lives, snap.Level)
	ebitenutil.DebugPrintAt(dst, hud, 8, 4)

	if snap.Over {
		over := fmt.Sprintf("GAME OVER\nFinal Score: %d\nPress ENTER for a new game", snap.Score)
		ebitenutil.DebugPrintAt(dst, over, object.PlayfieldWidth/2-80, object.PlayfieldHeight/2-24)
	}
}

func drawOutline(dst *ebiten.Image, o sim.ObstacleShape, clr color.Color) {
	n := len(o.Outline)
	for i := 0; i < n; i++ {
		a := o.Outline[i]
		b := o.Outline[(i+1)%n]
		vector.StrokeLine(dst,
			float32(o.Pos.X+a.X), float32(o.Pos.Y+a.Y),
			float32(o.Pos.X+b.X), float32(o.Pos.Y+b.Y),
			1, clr, true)
	}
}

func drawCraft(dst *ebiten.Image, snap sim.Snapshot, clr color.Color) {
	size := snap.CraftRadius

	nose := craftPoint(snap, snap.CraftAngle, size*1.4)
	left := craftPoint(snap, snap.CraftAngle+2.5, size)
	right := craftPoint(snap, snap.CraftAngle-2.5, size)

	vector.StrokeLine(dst, nose[0], nose[1], left[0], left[1], 1.5, clr, true)
	vector.StrokeLine(dst, left[0], left[1], right[0], right[1], 1.5, clr, true)
	vector.StrokeLine(dst, right[0], right[1], nose[0], nose[1], 1.5, clr, true)

	if snap.Thrusting {
		base := craftPoint(snap, snap.CraftAngle+math.Pi, size)
		tail := craftPoint(snap, snap.CraftAngle+math.Pi, size*1.8)
		flame := color.RGBA{255, 160, 40, 255}
		vector.StrokeLine(dst, base[0], base[1], tail[0], tail[1], 2, flame, true)
	}
}

// craftPoint returns the screen position at dist along the craft facing
// convention for the given angle (0 is up, clockwise, screen Y down).
func craftPoint(snap sim.Snapshot, angle, dist float64) [2]float32 {
	return [2]float32{
		float32(snap.CraftPos.X + math.Sin(angle)*dist),
		float32(snap.CraftPos.Y - math.Cos(angle)*dist),
	}
}

// Layout fixes the logical resolution; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return object.PlayfieldWidth, object.PlayfieldHeight
}

func main() {
	ebiten.SetWindowSize(object.PlayfieldWidth, object.PlayfieldHeight)
	ebiten.SetWindowTitle("driftblast")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Game{current: screenTitle}); err != nil {
		log.Fatal("game error", "err", err)
	}
}
