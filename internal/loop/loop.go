// Package loop runs the game: an explicit fixed-rate loop that reads one
// input snapshot, steps the simulation once, and renders the result. No
// frame schedules the next one; the loop checks its exit condition before
// every iteration.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/driftblast/driftblast/internal/draw"
	"github.com/driftblast/driftblast/internal/input"
	"github.com/driftblast/driftblast/internal/render"
	"github.com/driftblast/driftblast/internal/sim"
)

const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// screen is the outer presentation phase. The simulation's own game-over
// flag is terminal for a State; starting over builds a fresh one.
type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenOver
)

// Run drives the game on the given terminal streams until the player
// quits. sizeFunc supplies the terminal dimensions each frame so resizes
// take effect immediately; the virtual playfield never changes.
func Run(r *bufio.Reader, w io.Writer, sizeFunc draw.TermSizeFunc) error {
	stream := input.StartStream(r)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	renderer := render.New(w, termWidth, termHeight)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	var state *sim.State
	current := screenTitle

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := stream.Snapshot()
		if in.Quit {
			break
		}

		if tw, th, err := sizeFunc(); err == nil {
			renderer.Resize(tw, th)
		}

		// ===== UPDATE PHASE =====
		switch current {
		case screenTitle, screenOver:
			if in.Enter || (current == screenTitle && in.Fire) {
				state = sim.NewState()
				stream.Reset()
				current = screenPlaying
			}
		case screenPlaying:
			state.Step(in)
			if state.Over {
				current = screenOver
				stream.Reset()
			}
		}

		// ===== DRAW PHASE =====
		var drawErr error
		if current == screenTitle {
			drawErr = renderer.Title()
		} else {
			// The game-over screen keeps rendering the final frame.
			drawErr = renderer.Frame(state.Snapshot())
		}
		if drawErr != nil {
			return drawErr
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}
