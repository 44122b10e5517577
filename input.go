package wordarena

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerState tracks one pointer between press and release.
type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	target    WordID // bubble under the pointer when it went down
	hasTarget bool
}

// Input turns mouse and touch input into arena interactions. In press mode a
// pointer going down on a bubble starts a press, moving off the bubble (or
// the bubble drifting away) is a leave, and lifting is an up. In click mode a
// press and release over the same bubble is a click.
type Input struct {
	arena  *Arena
	origin Vec2 // stage top-left in screen coordinates

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
}

// NewInput creates an input processor for a stage drawn at origin.
func NewInput(arena *Arena, origin Vec2) *Input {
	return &Input{arena: arena, origin: origin}
}

// Update reads the pointers and feeds the arena. Injected events take the
// mouse's place for the frame they are consumed in.
func (in *Input) Update(now time.Time) {
	frame := in.arena.Project(now)
	if !in.processInjectedInput(frame, now) {
		in.processMousePointer(frame, now)
	}
	in.processTouchPointers(frame, now)
}

// processMousePointer handles mouse input (pointer 0).
func (in *Input) processMousePointer(frame Frame, now time.Time) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(0, float64(mx), float64(my), pressed, frame, now)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *Input) processTouchPointers(frame Frame, now time.Time) {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(slot, float64(tx), float64(ty), true, frame, now)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(i, ps.lastX, ps.lastY, false, frame, now)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for one pointer at screen
// position (sx, sy).
func (in *Input) processPointer(pointerID int, sx, sy float64, pressed bool, frame Frame, now time.Time) {
	ps := &in.pointers[pointerID]
	hit, onBubble := frame.HitTest(sx-in.origin.X, sy-in.origin.Y)
	press := in.arena.cfg.Interaction == InteractionPress

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.target, ps.hasTarget = hit.ID, onBubble
		if press && onBubble && !in.arena.PointerDown(hit.ID, now) {
			// Locked or already held by another pointer.
			ps.hasTarget = false
		}

	case pressed && ps.down:
		if !press || !ps.hasTarget {
			break
		}
		if !in.arena.Pressing(ps.target) {
			// Completed by a long press or removed meanwhile.
			ps.hasTarget = false
			break
		}
		if !onBubble || hit.ID != ps.target {
			in.arena.PointerLeave(ps.target, now)
			ps.hasTarget = false
		}

	case !pressed && ps.down:
		if ps.hasTarget {
			if press {
				in.arena.PointerUp(ps.target, now)
			} else if onBubble && hit.ID == ps.target {
				in.arena.Click(ps.target, now)
			}
		}
		ps.down = false
		ps.hasTarget = false
	}

	ps.lastX = sx
	ps.lastY = sy
}
