package fpscam

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-4

func approxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}

func lockedController(pose *Pose) *Controller {
	c := New(pose)
	c.OnLockChange(true)
	return c
}

func TestKeyFlagsLastEventWins(t *testing.T) {
	var pose Pose
	c := lockedController(&pose)

	// Key repeat: many downs, one up.
	for i := 0; i < 5; i++ {
		c.OnKeyChange(KeyForward, true)
	}
	if !c.moveForward {
		t.Error("moveForward = false after repeated key-down")
	}
	c.OnKeyChange(KeyForward, false)
	if c.moveForward {
		t.Error("moveForward = true after key-up")
	}

	// Interleaved events: each flag reflects its most recent event.
	c.OnKeyChange(KeyLeft, true)
	c.OnKeyChange(KeyRight, true)
	c.OnKeyChange(KeyLeft, false)
	if c.moveLeft || !c.moveRight {
		t.Errorf("flags = (left=%v, right=%v), want (false, true)", c.moveLeft, c.moveRight)
	}
}

func TestNoKeysNoMotion(t *testing.T) {
	pose := Pose{Position: [3]float32{1, 2, 3}, Yaw: 0.7, Pitch: -0.3}
	c := lockedController(&pose)
	c.Update(1.0)
	if pose.Position != [3]float32{1, 2, 3} {
		t.Errorf("position moved with no keys held: %v", pose.Position)
	}
}

func TestForwardFromOrigin(t *testing.T) {
	var pose Pose
	c := lockedController(&pose)
	c.OnKeyChange(KeyForward, true)
	c.Update(1.0)
	// moveSpeed 5, forward is -Z with identity orientation.
	want := [3]float32{0, 0, -5}
	for i := range want {
		if !approxEqual(pose.Position[i], want[i], epsilon) {
			t.Fatalf("position = %v, want %v", pose.Position, want)
		}
	}
}

func TestSingleKeyDisplacementMagnitude(t *testing.T) {
	keys := []Key{KeyForward, KeyBackward, KeyLeft, KeyRight}
	for _, k := range keys {
		pose := Pose{Yaw: 1.234}
		c := lockedController(&pose)
		c.OnKeyChange(k, true)
		c.Update(0.25)
		dx := pose.Position[0]
		dz := pose.Position[2]
		dist := math32.Hypot(dx, dz)
		if !approxEqual(dist, 5*0.25, epsilon) {
			t.Errorf("key %d: displacement = %f, want %f", k, dist, 5*0.25)
		}
	}
}

func TestDiagonalDisplacementNormalized(t *testing.T) {
	pose := Pose{}
	c := lockedController(&pose)
	c.OnKeyChange(KeyForward, true)
	c.OnKeyChange(KeyRight, true)
	c.Update(0.5)
	dist := math32.Hypot(pose.Position[0], pose.Position[2])
	// Same speed as a single key, not sqrt(2) faster.
	if !approxEqual(dist, 5*0.5, epsilon) {
		t.Errorf("diagonal displacement = %f, want %f", dist, 5*0.5)
	}
}

func TestOppositeKeysCancel(t *testing.T) {
	pose := Pose{}
	c := lockedController(&pose)
	c.OnKeyChange(KeyForward, true)
	c.OnKeyChange(KeyBackward, true)
	c.OnKeyChange(KeyLeft, true)
	c.OnKeyChange(KeyRight, true)
	c.Update(1.0)
	if pose.Position != [3]float32{} {
		t.Errorf("position = %v, want origin (opposite keys should cancel)", pose.Position)
	}
}

func TestMovementStaysHorizontal(t *testing.T) {
	for _, pitch := range []float32{-math32.Pi / 2, -0.9, 0, 0.7, math32.Pi / 2} {
		pose := Pose{Position: [3]float32{0, 1.7, 0}, Pitch: pitch, Yaw: 2.1}
		c := lockedController(&pose)
		c.OnKeyChange(KeyForward, true)
		c.Update(1.0)
		if pose.Position[1] != 1.7 {
			t.Errorf("pitch %f: Y moved to %f, want 1.7", pitch, pose.Position[1])
		}
		// Walking speed is unaffected by pitch.
		dist := math32.Hypot(pose.Position[0], pose.Position[2])
		if !approxEqual(dist, 5, epsilon) {
			t.Errorf("pitch %f: displacement = %f, want 5", pitch, dist)
		}
	}
}

func TestPointerDeltaTurnsAndTilts(t *testing.T) {
	pose := Pose{}
	c := lockedController(&pose)
	c.OnPointerDelta(100, 50)
	if !approxEqual(pose.Yaw, -100*0.002, epsilon) {
		t.Errorf("yaw = %f, want %f", pose.Yaw, -100*0.002)
	}
	if !approxEqual(pose.Pitch, -50*0.002, epsilon) {
		t.Errorf("pitch = %f, want %f", pose.Pitch, -50*0.002)
	}
}

func TestPitchClampsOnHugeDelta(t *testing.T) {
	pose := Pose{}
	c := lockedController(&pose)
	c.OnPointerDelta(0, 10000)
	if pose.Pitch != -math32.Pi/2 {
		t.Errorf("pitch = %f, want exactly %f", pose.Pitch, -math32.Pi/2)
	}
	c.OnPointerDelta(0, -1e9)
	if pose.Pitch != math32.Pi/2 {
		t.Errorf("pitch = %f, want exactly %f", pose.Pitch, math32.Pi/2)
	}
}

func TestPitchStaysClampedUnderRandomishSequence(t *testing.T) {
	pose := Pose{}
	c := lockedController(&pose)
	deltas := []float32{3, -800, 12000, -0.5, 99999, -99999, 7, 40000}
	for _, dy := range deltas {
		c.OnPointerDelta(dy/3, dy)
		if pose.Pitch < -math32.Pi/2 || pose.Pitch > math32.Pi/2 {
			t.Fatalf("pitch %f escaped [-pi/2, pi/2] after delta %f", pose.Pitch, dy)
		}
	}
}

func TestYawUnbounded(t *testing.T) {
	pose := Pose{}
	c := lockedController(&pose)
	for i := 0; i < 100; i++ {
		c.OnPointerDelta(10000, 0)
	}
	// 100 * 10000 * 0.002 = 2000 radians of turn; yaw wraps naturally, no clamp.
	if !approxEqual(pose.Yaw, -2000, 0.1) {
		t.Errorf("yaw = %f, want -2000", pose.Yaw)
	}
}

func TestInertWhileUnlocked(t *testing.T) {
	pose := Pose{Position: [3]float32{0, 1.7, 0}}
	c := New(&pose)
	c.OnKeyChange(KeyForward, true)
	c.OnPointerDelta(500, 500)
	c.Update(1.0)
	if pose != (Pose{Position: [3]float32{0, 1.7, 0}}) {
		t.Errorf("pose changed while unlocked: %+v", pose)
	}

	// Flags kept tracking raw key state, so movement resumes on lock.
	c.OnLockChange(true)
	c.Update(1.0)
	if pose.Position[2] == 0 {
		t.Error("no movement after lock regained with key still held")
	}
}

func TestDetachClearsState(t *testing.T) {
	pose := Pose{}
	c := lockedController(&pose)
	c.OnKeyChange(KeyForward, true)
	c.Detach()
	if c.moveForward || c.locked {
		t.Errorf("state after Detach: forward=%v locked=%v, want both false", c.moveForward, c.locked)
	}
	c.Update(1.0)
	if pose.Position != [3]float32{} {
		t.Errorf("position = %v after Detach, want origin", pose.Position)
	}
}

func TestForwardVector(t *testing.T) {
	cases := []struct {
		name string
		pose Pose
		want [3]float32
	}{
		{"identity", Pose{}, [3]float32{0, 0, -1}},
		{"quarter turn right", Pose{Yaw: -math32.Pi / 2}, [3]float32{1, 0, 0}},
		{"straight up", Pose{Pitch: math32.Pi / 2}, [3]float32{0, 1, 0}},
		{"straight down", Pose{Pitch: -math32.Pi / 2}, [3]float32{0, -1, 0}},
	}
	for _, tc := range cases {
		got := tc.pose.Forward()
		for i := range got {
			if !approxEqual(got[i], tc.want[i], epsilon) {
				t.Errorf("%s: Forward() = %v, want %v", tc.name, got, tc.want)
				break
			}
		}
	}
}

func TestForwardIsUnitLength(t *testing.T) {
	for _, p := range []Pose{{}, {Yaw: 1.1, Pitch: 0.5}, {Yaw: -3.3, Pitch: -1.2}} {
		f := p.Forward()
		length := math.Sqrt(float64(f[0]*f[0] + f[1]*f[1] + f[2]*f[2]))
		if math.Abs(length-1) > epsilon {
			t.Errorf("pose %+v: |Forward()| = %f, want 1", p, length)
		}
	}
}
