package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// A press that stays within tapMaxMove pixels and is released before
	// tapMaxTime toggles the phase; anything else is a drag.
	tapMaxMove = 6.0
	tapMaxTime = 220 * time.Millisecond

	keyStep   = 28.0
	stickStep = 6.0
)

// gesture classifies a single pointer press.
type gesture struct {
	active   bool
	startX   float64
	startY   float64
	start    time.Duration
	dragging bool
}

func (g *gesture) Press(x, y float64, at time.Duration) {
	*g = gesture{active: true, startX: x, startY: y, start: at}
}

// Move reports whether the press has become a drag. Once a press turns into
// a drag it stays one until release.
func (g *gesture) Move(x, y float64) bool {
	if !g.active {
		return false
	}
	if !g.dragging && math.Hypot(x-g.startX, y-g.startY) >= tapMaxMove {
		g.dragging = true
	}
	return g.dragging
}

// Release ends the press and reports whether it was a tap.
func (g *gesture) Release(at time.Duration) bool {
	if !g.active {
		return false
	}
	tap := !g.dragging && at-g.start < tapMaxTime
	*g = gesture{}
	return tap
}

// Input holds the intents collected for one frame.
type Input struct {
	// Toggle is set on the frame a phase toggle was requested.
	Toggle bool
	// TargetX is the pointer x while dragging; HasTarget reports whether it
	// is valid this frame.
	TargetX   float64
	HasTarget bool
	// Nudge is the discrete key or stick movement, in pixels.
	Nudge float64
	// Confirm starts or restarts a run.
	Confirm bool
	// Quit asks the game to exit.
	Quit bool
	// Debug toggles the debug overlay.
	Debug bool
	// Copy copies the last result to the clipboard.
	Copy bool

	mouse   gesture
	touch   gesture
	touchID ebiten.TouchID
	touches []ebiten.TouchID
}

func NewInput() *Input {
	return &Input{touchID: -1}
}

// Update polls the keyboard, mouse, touch and first gamepad. now is the game
// clock used for tap timing.
func (i *Input) Update(now time.Duration) {
	i.Toggle = false
	i.HasTarget = false
	i.Nudge = 0
	i.Confirm = false
	i.Quit = false
	i.Debug = false
	i.Copy = false

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.Quit = true
	}
	i.Debug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.Copy = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		i.Toggle = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		i.Nudge -= keyStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		i.Nudge += keyStep
	}

	i.pollMouse(now)
	i.pollTouch(now)
	i.pollGamepad()
}

func (i *Input) pollMouse(now time.Duration) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		i.mouse.Press(x, y, now)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && i.mouse.Move(x, y) {
		i.TargetX, i.HasTarget = x, true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && i.mouse.Release(now) {
		i.Toggle = true
	}
}

func (i *Input) pollTouch(now time.Duration) {
	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	if i.touchID < 0 && len(i.touches) > 0 {
		i.touchID = i.touches[0]
		tx, ty := ebiten.TouchPosition(i.touchID)
		i.touch.Press(float64(tx), float64(ty), now)
	}
	if i.touchID < 0 {
		return
	}
	if inpututil.IsTouchJustReleased(i.touchID) {
		if i.touch.Release(now) {
			i.Toggle = true
		}
		i.touchID = -1
		return
	}
	tx, ty := ebiten.TouchPosition(i.touchID)
	if i.touch.Move(float64(tx), float64(ty)) {
		i.TargetX, i.HasTarget = float64(tx), true
	}
}

func (i *Input) pollGamepad() {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return
	}
	gid := ids[0]
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
		i.Toggle = true
	}
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
		i.Confirm = true
	}
	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if math.Abs(leftX) > 0.3 {
		i.Nudge += leftX * stickStep
	}
}
