// Package session owns the first-person controller's connection to real input
// for the lifetime of one scene session. It is created in main and passed
// explicitly to whoever needs it rather than living as ambient global state;
// Teardown is deterministic and always releases cursor capture.
package session

import (
	"holiday-scene/internal/fpscam"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Context drives the controller's input port (OnKeyChange, OnPointerDelta,
// OnLockChange) from raylib's keyboard and mouse. Cursor capture stands in for
// pointer lock: while captured, the cursor is hidden and only relative motion
// reaches the controller.
type Context struct {
	ctrl     *fpscam.Controller
	active   bool
	captured bool
}

// New returns a session context for the given controller.
func New(ctrl *fpscam.Controller) *Context {
	return &Context{ctrl: ctrl}
}

// Init marks the session live. Capture is not requested here; it follows the
// user's first click on the window.
func (s *Context) Init() {
	s.active = true
}

// Teardown releases cursor capture and clears the controller's input state so
// a lost key-up cannot leak into a later session. Safe to call more than once.
func (s *Context) Teardown() {
	if s.captured {
		rl.EnableCursor()
		s.captured = false
	}
	s.ctrl.Detach()
	s.active = false
}

// IsCaptured reports whether the cursor is currently captured.
func (s *Context) IsCaptured() bool {
	return s.captured
}

// Update polls input once per frame and forwards it through the controller's
// port. blocked suspends capture (the terminal is open): the cursor is
// released and the controller sees lock lost, leaving it inert. When not
// blocked, a left click requests capture; a request the host refuses is
// silent and the controller simply never engages.
func (s *Context) Update(blocked bool) {
	if !s.active {
		return
	}
	if blocked {
		if s.captured {
			rl.EnableCursor()
			s.captured = false
			s.ctrl.OnLockChange(false)
		}
		return
	}
	if !s.captured && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		rl.DisableCursor()
		s.captured = true
		s.ctrl.OnLockChange(true)
	}

	// Pushing current key state every frame is idempotent: the controller
	// keeps the last event per key.
	s.ctrl.OnKeyChange(fpscam.KeyForward, rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp))
	s.ctrl.OnKeyChange(fpscam.KeyBackward, rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown))
	s.ctrl.OnKeyChange(fpscam.KeyLeft, rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft))
	s.ctrl.OnKeyChange(fpscam.KeyRight, rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight))

	if s.captured {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			s.ctrl.OnPointerDelta(d.X, d.Y)
		}
	}
}
