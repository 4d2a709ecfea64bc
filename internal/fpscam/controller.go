package fpscam

import (
	"github.com/chewxy/math32"
)

const (
	// DefaultSensitivity converts pointer delta (pixels of relative motion) to radians.
	DefaultSensitivity = 0.002
	// DefaultMoveSpeed is the walking speed in world units per second.
	DefaultMoveSpeed = 5.0
	// pitchLimit keeps the camera from rotating past straight up / straight down.
	pitchLimit = math32.Pi / 2
)

// Key identifies one of the four movement keys the controller understands.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
)

// Pose is a first-person camera pose: a world position plus yaw/pitch Euler
// angles. Yaw (about Y) is applied before pitch (about X); roll is always zero,
// so the horizon never tilts. Pitch stays within [-pi/2, +pi/2].
type Pose struct {
	Position [3]float32
	Yaw      float32
	Pitch    float32
}

// Forward returns the normalized look direction for the pose, including pitch.
// Yaw 0, pitch 0 looks down -Z.
func (p Pose) Forward() [3]float32 {
	cp := math32.Cos(p.Pitch)
	return [3]float32{
		-math32.Sin(p.Yaw) * cp,
		math32.Sin(p.Pitch),
		-math32.Cos(p.Yaw) * cp,
	}
}

// Controller turns key state and pointer deltas into first-person camera motion.
// It is an input port: the host that owns the real events (the raylib driver in
// normal runs, plain function calls in tests) pushes them in through OnKeyChange,
// OnPointerDelta, and OnLockChange, and calls Update once per frame with the
// elapsed time. The controller is the only writer of its pose while attached.
//
// Nothing happens while the pointer is not locked: deltas are dropped and
// Update is a no-op. Key flags still track raw key state so that movement
// resumes correctly when lock is regained.
type Controller struct {
	pose *Pose

	moveForward  bool
	moveBackward bool
	moveLeft     bool
	moveRight    bool
	locked       bool

	sensitivity float32
	moveSpeed   float32
}

// New returns a controller that mutates the given pose in place.
func New(pose *Pose) *Controller {
	return &Controller{
		pose:        pose,
		sensitivity: DefaultSensitivity,
		moveSpeed:   DefaultMoveSpeed,
	}
}

// SetSensitivity overrides the mouse-look sensitivity. Values <= 0 are ignored.
func (c *Controller) SetSensitivity(s float32) {
	if s > 0 {
		c.sensitivity = s
	}
}

// SetMoveSpeed overrides the walking speed in units per second. Values <= 0 are ignored.
func (c *Controller) SetMoveSpeed(s float32) {
	if s > 0 {
		c.moveSpeed = s
	}
}

// Speed returns the current walking speed in units per second.
func (c *Controller) Speed() float32 {
	return c.moveSpeed
}

// OnKeyChange records the pressed state for a movement key. The last event per
// key wins, so duplicate key-repeat events are harmless. Unknown keys are ignored.
func (c *Controller) OnKeyChange(k Key, pressed bool) {
	switch k {
	case KeyForward:
		c.moveForward = pressed
	case KeyBackward:
		c.moveBackward = pressed
	case KeyLeft:
		c.moveLeft = pressed
	case KeyRight:
		c.moveRight = pressed
	}
}

// OnLockChange records whether the pointer is locked. A host that fails to
// acquire lock simply never reports true; the controller stays inert.
func (c *Controller) OnLockChange(locked bool) {
	c.locked = locked
}

// IsLocked reports whether the controller currently reacts to input.
func (c *Controller) IsLocked() bool {
	return c.locked
}

// OnPointerDelta applies mouse-look from a relative pointer motion. Moving the
// pointer right turns right (yaw decreases, unbounded); moving it down looks
// down. Pitch is clamped to [-pi/2, +pi/2] after every event so even a huge
// single delta cannot flip the camera. Dropped while not locked.
func (c *Controller) OnPointerDelta(dx, dy float32) {
	if !c.locked {
		return
	}
	c.pose.Yaw -= dx * c.sensitivity
	c.pose.Pitch = clamp(c.pose.Pitch-dy*c.sensitivity, -pitchLimit, pitchLimit)
}

// Update advances movement by dt seconds. Opposite keys cancel; the local
// direction is normalized so diagonals move at the same speed as a single key.
// The world basis comes from yaw alone and is horizontal, so looking up or
// down never changes walking speed and the Y position never moves. No-op while
// the pointer is not locked.
func (c *Controller) Update(dt float32) {
	if !c.locked || dt <= 0 {
		return
	}
	var fwd, right float32
	if c.moveForward {
		fwd++
	}
	if c.moveBackward {
		fwd--
	}
	if c.moveRight {
		right++
	}
	if c.moveLeft {
		right--
	}
	if fwd == 0 && right == 0 {
		return
	}
	dist := c.moveSpeed * dt / math32.Hypot(fwd, right)
	sin := math32.Sin(c.pose.Yaw)
	cos := math32.Cos(c.pose.Yaw)
	// Horizontal basis at Y=0: forward = (-sin yaw, 0, -cos yaw), right = (cos yaw, 0, -sin yaw).
	c.pose.Position[0] += (fwd*(-sin) + right*cos) * dist
	c.pose.Position[2] += (fwd*(-cos) + right*(-sin)) * dist
}

// Detach clears all input state (movement flags and lock). Call when the
// controller's event source goes away so a lost key-up cannot leak stale
// movement into a later session.
func (c *Controller) Detach() {
	c.moveForward = false
	c.moveBackward = false
	c.moveLeft = false
	c.moveRight = false
	c.locked = false
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
