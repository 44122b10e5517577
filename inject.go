package wordarena

import "time"

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, processed exactly like real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's Update.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a held-pointer move. Use it between InjectPress and
// InjectRelease to keep a press alive for extra frames.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectHold queues a press held still for frames frames, then released.
// Minimum frames is 2 (press + release).
func (in *Input) InjectHold(x, y float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(x, y)
	for i := 0; i < frames-2; i++ {
		in.InjectMove(x, y)
	}
	in.InjectRelease(x, y)
}

// PendingInjections returns the number of queued synthetic events.
func (in *Input) PendingInjections() int { return len(in.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer as pointer 0. Returns true if an event was consumed
// (real mouse input should be skipped).
func (in *Input) processInjectedInput(frame Frame, now time.Time) bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(0, evt.screenX, evt.screenY, evt.pressed, frame, now)
	return true
}
