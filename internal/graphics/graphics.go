package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window. Fullscreen ignores Width/Height and uses
// the primary monitor's resolution.
type Options struct {
	Width      int
	Height     int
	Fullscreen bool
	Title      string
	TargetFPS  int
}

// Run starts the window and main loop. Each frame it calls update (input, simulation), then clears the screen and calls draw (world, overlay).
// This keeps the graphics layer separate from the experience content.
// ESC is reserved for releasing the mouse, not quitting; close via the window button.
func Run(opts Options, update, draw func()) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	fps := opts.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
