package wordarena

import (
	"slices"
	"time"
)

// press is the state of one bubble being held down.
type press struct {
	id       WordID
	start    time.Time
	progress float64
}

// progressAt returns min(1, elapsed/threshold) at now.
func (a *Arena) progressAt(p *press, now time.Time) float64 {
	return clamp01(float64(now.Sub(p.start)) / float64(a.cfg.PressThreshold))
}

// PointerDown starts a press on the bubble id. It is ignored, reporting
// false, outside press mode, while locked, when the bubble does not exist or
// when it is already being pressed.
func (a *Arena) PointerDown(id WordID, now time.Time) bool {
	if a.cfg.Interaction != InteractionPress || a.locked {
		return false
	}
	if _, ok := a.presses[id]; ok {
		return false
	}
	if _, ok := a.registry.Get(id); !ok {
		return false
	}
	a.presses[id] = &press{id: id, start: now}
	a.pressOrder = append(a.pressOrder, id)
	return true
}

// PointerUp ends the press on id. Released below full progress it removes
// exactly that instance; at full progress it removes every instance of the
// word. It reports whether anything was removed.
func (a *Arena) PointerUp(id WordID, now time.Time) bool {
	return a.endPress(id, now)
}

// PointerLeave ends the press on id when the pointer leaves the bubble. It
// behaves like PointerUp.
func (a *Arena) PointerLeave(id WordID, now time.Time) bool {
	return a.endPress(id, now)
}

// Click removes exactly the clicked instance. Only honored in click mode.
func (a *Arena) Click(id WordID, now time.Time) bool {
	if a.cfg.Interaction != InteractionClick {
		return false
	}
	return a.removeOne(id, now)
}

// PressProgress returns the progress of the press on id at its last update.
func (a *Arena) PressProgress(id WordID) (float64, bool) {
	p, ok := a.presses[id]
	if !ok {
		return 0, false
	}
	return p.progress, true
}

// Pressing reports whether id is currently pressed.
func (a *Arena) Pressing(id WordID) bool {
	_, ok := a.presses[id]
	return ok
}

func (a *Arena) endPress(id WordID, now time.Time) bool {
	p, ok := a.presses[id]
	if !ok {
		return false
	}
	a.dropPress(id)
	if a.progressAt(p, now) >= 1 {
		return a.removeAll(id, now)
	}
	return a.removeOne(id, now)
}

func (a *Arena) dropPress(id WordID) {
	if _, ok := a.presses[id]; !ok {
		return
	}
	delete(a.presses, id)
	if i := slices.Index(a.pressOrder, id); i >= 0 {
		a.pressOrder = slices.Delete(a.pressOrder, i, i+1)
	}
}

// updatePresses refreshes progress and fires the long-press removal for every
// press that reached full progress, in press order.
func (a *Arena) updatePresses(now time.Time) {
	for _, id := range slices.Clone(a.pressOrder) {
		p, ok := a.presses[id]
		if !ok {
			continue
		}
		p.progress = a.progressAt(p, now)
		if p.progress >= 1 {
			a.dropPress(id)
			a.removeAll(id, now)
		}
	}
}

// removeOne removes a single instance and spawns its burst immediately.
func (a *Arena) removeOne(id WordID, now time.Time) bool {
	if a.locked {
		return false
	}
	pos := a.position(id)
	w, ok := a.registry.Remove(id)
	if !ok {
		return false
	}
	a.synchronize()
	a.burst(w, pos, false, now)
	a.log.Debug().Uint64("id", uint64(w.ID)).Str("text", w.Text).Msg("word removed")
	return true
}

type matched struct {
	word Word
	pos  Vec2
}

// removeAll removes every instance sharing id's text, locks the arena and
// staggers one burst per removed body. The lock clears once the last burst
// has had LockSettle to play out.
func (a *Arena) removeAll(id WordID, now time.Time) bool {
	if a.locked {
		return false
	}
	target, ok := a.registry.Get(id)
	if !ok {
		return false
	}

	var hits []matched
	for _, w := range a.registry.Words() {
		if w.Text == target.Text {
			hits = append(hits, matched{word: w, pos: a.position(w.ID)})
		}
	}
	a.registry.RemoveText(target.Text)
	a.locked = true
	a.synchronize()

	for i, m := range hits {
		if i == 0 {
			a.burst(m.word, m.pos, true, now)
			continue
		}
		m := m
		a.sched.After(now, time.Duration(i)*a.cfg.BurstStagger, func(at time.Time) {
			a.burst(m.word, m.pos, true, at)
		})
	}

	hold := time.Duration(len(hits))*a.cfg.BurstStagger + a.cfg.LockSettle
	a.unlockAt = now.Add(hold)
	a.sched.After(now, hold, func(time.Time) {
		a.locked = false
		a.log.Debug().Str("text", target.Text).Msg("arena unlocked")
	})

	a.log.Debug().
		Str("text", target.Text).
		Int("count", len(hits)).
		Dur("lock", hold).
		Msg("word batch removed")
	return true
}
