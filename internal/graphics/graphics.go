package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1600
	windowHeight = 900
	targetFPS    = 60
)

// Run starts the window and main loop. Each frame it calls update with the
// elapsed frame time in seconds (input, camera), then clears the screen and
// calls draw (scene, overlays). update must not block: it runs inside the
// render loop and the frame is presented right after draw returns.
// ESC toggles the terminal, so it does not quit; close via the window button.
func Run(update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "holiday scene")
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.SkyBlue)
		draw()
		rl.EndDrawing()
	}
}
